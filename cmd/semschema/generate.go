package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c360studio/semschema/config"
	"github.com/c360studio/semschema/pipeline"
)

type generateFlags struct {
	inputs          []string
	output          string
	format          string
	metricsTextfile string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&f.inputs, "input", "i", nil, "RDF file or glob (repeatable, e.g. 'vocab/**/*.ttl')")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default jsonldSchema.json)")
	flags.StringVarP(&f.format, "format", "f", "", "Output format (json, js)")
	flags.StringVar(&f.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this textfile")
}

// apply overrides cfg with the flags the user set.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Paths = f.inputs
	}
	if flags.Changed("output") {
		cfg.Output.Path = f.output
	}
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = f.metricsTextfile
	}
}

func generateCmd(g *globalFlags) *cobra.Command {
	gen := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the validation schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, gen)
		},
	}
	gen.register(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalFlags, gen *generateFlags) error {
	cfg, logger, err := loadConfig(cmd, g, gen)
	if err != nil {
		return err
	}

	opts, err := pipeline.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.NewGenerator(opts, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Debug("Run summary",
		slog.String("run_id", res.RunID),
		slog.Int("triples", res.Triples),
		slog.Int("property_rows", res.PropertyRows),
		slog.Int("subclass_rows", res.SubclassRows))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d classes, %d properties)\n", res.Output, res.Classes, res.Properties)
	return nil
}
