package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trc-server/internal/app"
	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		overrides  config.Config
	)

	cmd := &cobra.Command{
		Use:          "trc-server",
		Short:        "TRC line-protocol chat server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := log.New("info", "console")
			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("tcp-addr") {
				cfg.TCPAddr = overrides.TCPAddr
			}
			if flags.Changed("http-addr") {
				cfg.HTTPAddr = overrides.HTTPAddr
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = overrides.LogLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = overrides.LogFormat
			}
			if flags.Changed("shutdown-timeout") {
				cfg.ShutdownTimeout = overrides.ShutdownTimeout
			}

			logger := log.New(cfg.LogLevel, cfg.LogFormat)
			logger.Info().Str("config", path).Msg("configuration loaded")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&overrides.TCPAddr, "tcp-addr", defaults.TCPAddr, "TCP listen address")
	cmd.Flags().StringVar(&overrides.HTTPAddr, "http-addr", defaults.HTTPAddr, "HTTP listen address")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&overrides.LogFormat, "log-format", defaults.LogFormat, "log format (console, json)")
	cmd.Flags().DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", defaults.ShutdownTimeout, "graceful shutdown timeout")

	return cmd
}
