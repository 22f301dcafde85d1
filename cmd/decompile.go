package cmd

import (
	"fmt"
	"io"
	"os"

	"decompile-server/core/bytecode"
	"decompile-server/core/config"
	"decompile-server/core/engine"
	"decompile-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	decompileKey    uint8
	decompileLegacy bool
	decompileOut    string
)

// decompileCmd represents the decompile command
var decompileCmd = &cobra.Command{
	Use:   "decompile [file]",
	Short: "Decompile a bytecode file from the command line",
	Long: `Runs a Luau or Lua 5.1 bytecode file through the configured engine and
prints the recovered source, without starting the HTTP server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read bytecode file: %w", err)
		}
		if err := bytecode.Validate(payload); err != nil {
			return err
		}

		eng, err := engine.New(cfg.Engine)
		if err != nil {
			return fmt.Errorf("failed to create decompilation engine: %w", err)
		}
		defer func() {
			if closer, ok := eng.(io.Closer); ok {
				_ = closer.Close()
			}
		}()

		logg.Info("Decompiling bytecode file",
			zap.String("file", args[0]),
			zap.Int("size", len(payload)),
			zap.Uint8("encode_key", decompileKey),
			zap.Bool("legacy", decompileLegacy),
		)

		result, err := eng.Decompile(cmd.Context(), payload, decompileKey, decompileLegacy)
		if err != nil {
			return err
		}

		if decompileOut != "" {
			if err := os.WriteFile(decompileOut, []byte(result), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logg.Info("Decompiled source written", zap.String("file", decompileOut))
			return nil
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(decompileCmd)

	decompileCmd.Flags().Uint8Var(&decompileKey, "key", engine.DefaultEncodeKey, "Decode key the bytecode was encoded with (0-255)")
	decompileCmd.Flags().BoolVar(&decompileLegacy, "legacy", false, "Treat the input as Lua 5.1 bytecode")
	decompileCmd.Flags().StringVarP(&decompileOut, "output", "o", "", "Write the result to a file instead of stdout")
}
