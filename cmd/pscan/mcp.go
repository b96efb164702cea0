package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YMC-GitHub/pscan/internal/apperr"
	"github.com/YMC-GitHub/pscan/internal/logging"
	"github.com/YMC-GitHub/pscan/internal/mcp"
	"github.com/YMC-GitHub/pscan/internal/platform"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpLogFile string

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Long: `Start the MCP server on stdio. Designed to be invoked by MCP clients
such as Claude Code or Claude Desktop.

stdout carries the protocol, so diagnostics go to stderr or, with
--log-file, to a file. The log level comes from the config file's
log_level, overridable through the PSCAN_LOG environment variable.`,
	Example: `  claude mcp add pscan -- pscan mcp serve`,
	Args:    cobra.NoArgs,
	RunE:    runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpLogFile, "log-file", "", "Append logs to this file instead of stderr")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(*cobra.Command, []string) error {
	level := logging.ParseLevel(cfg.LogLevel)
	if env := os.Getenv("PSCAN_LOG"); env != "" {
		level = logging.ParseLevel(env)
	}
	opts := []logging.Option{logging.WithLevel(level)}
	if mcpLogFile != "" {
		opts = append(opts, logging.WithFile(mcpLogFile))
	}
	log, err := logging.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Close()

	backend, err := platform.New()
	if err != nil {
		return apperr.Platform("%v", err)
	}

	server := mcp.NewServer(backend, log)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	log.Info("mcp server starting", "version", version)
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}
