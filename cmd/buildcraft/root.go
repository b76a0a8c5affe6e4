package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/advisor"
	"github.com/udisondev/buildcraft/internal/config"
	"github.com/udisondev/buildcraft/internal/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "buildcraft",
	Short: "Build advisor: decode build codes, resolve stats, search equipment",
	Long: "buildcraft decodes build chat codes, resolves combat attributes, estimates damage " +
		"and recommends armor prefixes and rune/sigil/relic combinations for a role.",
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Filled by setup for every subcommand.
var (
	cfg      config.Advisor
	registry *prometheus.Registry
	metricsS *http.Server
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	path = config.ResolvePath(path)

	loaded, err := config.LoadAdvisor(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	level := parseLogLevel(cfg.LogLevel)
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	// Stdout carries command output; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Debug("config loaded", "path", path)

	registry = prometheus.NewRegistry()
	metricsS = nil
	if cfg.MetricsAddress != "" {
		metricsS = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           metrics.Handler(registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("metrics listener started", "address", cfg.MetricsAddress)
			if err := metricsS.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics listener", "err", err)
			}
		}()
	}
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if metricsS == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	err := metricsS.Shutdown(ctx)
	metricsS = nil
	return err
}

// openService wires the advisor from the loaded config.
func openService(cmd *cobra.Command) (*advisor.Service, func(), error) {
	svc, closeFn, err := advisor.Open(cmd.Context(), cfg, registry)
	if err != nil {
		return nil, nil, fmt.Errorf("opening advisor: %w", err)
	}
	return svc, closeFn, nil
}

// writeJSON prints v indented.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
