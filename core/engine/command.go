package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandEngine runs an external decompiler binary once per request.
type CommandEngine struct {
	command string
	timeout time.Duration
}

// NewCommandEngine creates a command-mode engine.
func NewCommandEngine(cfg Config) (*CommandEngine, error) {
	if cfg.Command == "" {
		return nil, errors.New("engine command is not configured")
	}

	return &CommandEngine{
		command: cfg.Command,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Decompile pipes the bytecode into the binary and returns its stdout. A
// non-zero exit surfaces the binary's stderr as the error message.
func (e *CommandEngine) Decompile(ctx context.Context, bytecode []byte, encodeKey uint8, legacy bool) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.command, buildArgs(encodeKey, legacy)...)
	cmd.Stdin = bytes.NewReader(bytecode)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("decompiler failed: %s", msg)
		}
		return "", fmt.Errorf("decompiler failed: %w", err)
	}

	return stdout.String(), nil
}
