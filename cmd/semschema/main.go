// Package main provides the semschema binary entry point.
// semschema turns the schema.org vocabulary into the validation schema used
// to check JSON-LD dataset markup.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semschema/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semschema"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}
	gen := &generateFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate a JSON-LD validation schema from schema.org",
		Long: `semschema reads the schema.org vocabulary (Turtle, N-Triples, N-Quads or
RDF/XML), selects the properties and classes relevant to dataset markup and
writes them as a validation schema:

  {"schema.org": {"<Class>": {"properties": ..., "requiredProperties": ..., "parent": ...}}}

Running semschema without a subcommand is the same as "semschema generate".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, gen)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	gen.register(cmd)

	cmd.AddCommand(
		generateCmd(g),
		validateCmd(g),
		jsonschemaCmd(),
		configCmd(g),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// newLogger writes text logs to w at the given level.
func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setupLogging creates the command logger from --log-level, falling back to
// the configured level once the config is known.
func setupLogging(cmd *cobra.Command, g *globalFlags) (*slog.Logger, *slog.LevelVar, error) {
	level := new(slog.LevelVar)
	if g.logLevel != "" {
		l, err := config.ParseLevel(g.logLevel)
		if err != nil {
			return nil, nil, err
		}
		level.Set(l)
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(logger)
	return logger, level, nil
}

// loadConfig runs the layered loader and applies the flag overrides.
func loadConfig(cmd *cobra.Command, g *globalFlags, gen *generateFlags) (*config.Config, *slog.Logger, error) {
	logger, level, err := setupLogging(cmd, g)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.NewLoader(logger).Load(g.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if gen != nil {
		gen.apply(cmd, cfg)
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, _ := config.ParseLevel(cfg.Log.Level)
	level.Set(l)
	return cfg, logger, nil
}
