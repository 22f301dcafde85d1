package cmd

import (
	"fmt"
	"os"

	"decompile-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "decompile-server",
	Short: "Lua Bytecode Decompilation Service",
	Long: `Decompile Server is an HTTP front end for Luau and Lua 5.1 bytecode
decompilation. It exposes the decompilation engine over two REST endpoints
and hosts the accompanying browser client as static assets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports failures through the standard
// logger before exiting non-zero.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level reads best in a terminal.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
