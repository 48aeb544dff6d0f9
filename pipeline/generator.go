package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/semschema/config"
	"github.com/c360studio/semschema/export"
	"github.com/c360studio/semschema/graph"
	"github.com/c360studio/semschema/metric"
	"github.com/c360studio/semschema/query"
	"github.com/c360studio/semschema/schema"
)

// Options configures a Generator.
type Options struct {
	// Inputs are RDF files or doublestar globs.
	Inputs []string
	// Output is the file written by the write stage.
	Output string
	Format export.Format
	Query  query.Options
	// Required is overlaid on the folded document. Empty skips the overlay.
	Required schema.RequiredTable
	// MetricsTextfile, when set, receives the run metrics after the run.
	MetricsTextfile string
}

// OptionsFromConfig converts a validated config.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	format, err := cfg.Format()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Inputs:          cfg.Input.Paths,
		Output:          cfg.Output.Path,
		Format:          format,
		Query:           cfg.QueryOptions(),
		Required:        cfg.RequiredTable(),
		MetricsTextfile: cfg.Metrics.Textfile,
	}, nil
}

// Result summarizes a successful run.
type Result struct {
	RunID        string
	Output       string
	Format       export.Format
	Triples      int
	PropertyRows int
	SubclassRows int
	Classes      int
	Properties   int
	Duration     time.Duration
}

// Generator produces a validation schema from schema.org vocabulary files.
type Generator struct {
	opts    Options
	metrics *metric.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewGenerator creates a generator. A nil logger falls back to slog.Default().
func NewGenerator(opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = export.FormatJSON
	}
	return &Generator{
		opts:    opts,
		metrics: metric.New(),
		logger:  logger.With("component", "pipeline"),
		now:     time.Now,
	}
}

// Metrics returns the metrics recorded by the last run.
func (g *Generator) Metrics() *metric.Metrics {
	return g.metrics
}

// Build runs every stage except write and returns the document.
func (g *Generator) Build(ctx context.Context) (*schema.Document, *Result, error) {
	return g.build(ctx, g.logger)
}

// Run builds the document and writes it to the configured output.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := g.logger.With("run_id", runID)
	start := g.now()

	logger.Info("Generating validation schema",
		slog.Any("inputs", g.opts.Inputs),
		slog.String("output", g.opts.Output),
		slog.String("format", string(g.opts.Format)))

	res, err := g.run(ctx, logger)
	if err != nil {
		g.metrics.RecordFailure()
		g.flushMetrics(logger)
		return nil, err
	}

	res.RunID = runID
	res.Duration = g.now().Sub(start)
	g.metrics.RecordSuccess(g.now())
	g.flushMetrics(logger)

	logger.Info("Validation schema written",
		slog.String("output", res.Output),
		slog.Int("classes", res.Classes),
		slog.Int("properties", res.Properties),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func (g *Generator) run(ctx context.Context, logger *slog.Logger) (*Result, error) {
	if g.opts.Output == "" {
		return nil, errors.New("write: no output path")
	}

	doc, res, err := g.build(ctx, logger)
	if err != nil {
		return nil, err
	}

	err = g.stage(logger, metric.StageWrite, func() error {
		return export.WriteFile(g.opts.Output, doc, g.opts.Format)
	})
	if err != nil {
		return nil, err
	}

	res.Output = g.opts.Output
	return res, nil
}

func (g *Generator) build(ctx context.Context, logger *slog.Logger) (*schema.Document, *Result, error) {
	res := &Result{Format: g.opts.Format}

	var store *graph.Store
	err := g.stage(logger, metric.StageLoad, func() error {
		var err error
		store, err = graph.NewLoader(logger).LoadFiles(ctx, g.opts.Inputs...)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()
	res.Triples = store.Len()
	g.metrics.SetLoaded(res.Triples)

	var (
		props      []query.PropertyRow
		subclasses []query.SubclassRow
	)
	err = g.stage(logger, metric.StageQuery, func() error {
		runner := query.NewRunner(store, g.opts.Query, logger)
		var err error
		if props, err = runner.Properties(ctx); err != nil {
			return err
		}
		subclasses, err = runner.Subclasses(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	res.PropertyRows, res.SubclassRows = len(props), len(subclasses)
	g.metrics.SetQueryRows(res.PropertyRows, res.SubclassRows)

	var doc *schema.Document
	g.timed(logger, metric.StageFold, func() {
		doc = schema.Fold(props, subclasses)
	})

	if len(g.opts.Required) > 0 {
		err = g.stage(logger, metric.StageOverlay, func() error {
			return schema.ApplyRequired(doc, g.opts.Required)
		})
		if err != nil {
			return nil, nil, err
		}
	}

	res.Classes, res.Properties = len(doc.Classes), doc.PropertyCount()
	g.metrics.SetSchemaSize(res.Classes, res.Properties)
	return doc, res, nil
}

// stage times fn, records it and wraps its error with the stage name.
func (g *Generator) stage(logger *slog.Logger, name string, fn func() error) error {
	start := g.now()
	err := fn()
	elapsed := g.now().Sub(start)
	g.metrics.ObserveStage(name, elapsed)

	if err != nil {
		logger.Error("Stage failed", slog.String("stage", name), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("Stage complete", slog.String("stage", name), slog.Duration("duration", elapsed))
	return nil
}

// timed is stage for steps that cannot fail.
func (g *Generator) timed(logger *slog.Logger, name string, fn func()) {
	start := g.now()
	fn()
	elapsed := g.now().Sub(start)
	g.metrics.ObserveStage(name, elapsed)
	logger.Debug("Stage complete", slog.String("stage", name), slog.Duration("duration", elapsed))
}

func (g *Generator) flushMetrics(logger *slog.Logger) {
	if g.opts.MetricsTextfile == "" {
		return
	}
	if err := g.metrics.WriteTextfile(g.opts.MetricsTextfile); err != nil {
		logger.Warn("Failed to write metrics", slog.String("error", err.Error()))
	}
}
