package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "semschema"

// Pipeline stage names used as the "stage" label.
const (
	StageLoad    = "load"
	StageQuery   = "query"
	StageFold    = "fold"
	StageOverlay = "overlay"
	StageWrite   = "write"
)

// Run status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the Prometheus metrics of one generation run. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Input and query volume
	triplesLoaded prometheus.Gauge
	propertyRows  prometheus.Gauge
	subclassRows  prometheus.Gauge

	// Output volume
	classes    prometheus.Gauge
	properties prometheus.Gauge

	// Timing and outcome
	stageDuration *prometheus.GaugeVec // By stage
	runs          *prometheus.CounterVec
	lastSuccess   prometheus.Gauge
}

// New creates the metrics on a fresh registry.
func New() *Metrics {
	gauge := func(subsystem, name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		triplesLoaded: gauge("graph", "triples_loaded", "Distinct triples loaded from the vocabulary files"),
		propertyRows:  gauge("query", "property_rows", "Rows returned by the property query"),
		subclassRows:  gauge("query", "subclass_rows", "Rows returned by the subclass query"),

		classes:    gauge("schema", "classes", "Classes in the generated schema"),
		properties: gauge("schema", "properties", "Class/property pairs in the generated schema"),

		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of the last run of each pipeline stage",
		}, []string{"stage"}),

		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Generation runs by outcome",
		}, []string{"status"}), // status: success, failure

		lastSuccess: gauge("", "last_success_timestamp_seconds", "Unix time of the last successful run"),
	}

	m.registry.MustRegister(
		m.triplesLoaded,
		m.propertyRows,
		m.subclassRows,
		m.classes,
		m.properties,
		m.stageDuration,
		m.runs,
		m.lastSuccess,
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SetLoaded records the number of triples in the store.
func (m *Metrics) SetLoaded(triples int) {
	if m == nil {
		return
	}
	m.triplesLoaded.Set(float64(triples))
}

// SetQueryRows records the row counts of both queries.
func (m *Metrics) SetQueryRows(properties, subclasses int) {
	if m == nil {
		return
	}
	m.propertyRows.Set(float64(properties))
	m.subclassRows.Set(float64(subclasses))
}

// SetSchemaSize records the size of the generated document.
func (m *Metrics) SetSchemaSize(classes, properties int) {
	if m == nil {
		return
	}
	m.classes.Set(float64(classes))
	m.properties.Set(float64(properties))
}

// ObserveStage records how long a stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Set(d.Seconds())
}

// RecordSuccess counts a successful run finished at t.
func (m *Metrics) RecordSuccess(t time.Time) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(StatusSuccess).Inc()
	m.lastSuccess.Set(float64(t.Unix()))
}

// RecordFailure counts a failed run.
func (m *Metrics) RecordFailure() {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(StatusFailure).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format. The file
// is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
