// Package metrics provides Prometheus metrics for the media impact pipeline.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a pipeline process.
type Manager struct {
	namespace      string
	subsystem      string
	runBuckets     []float64
	persistBuckets []float64
	enabled        bool
	constLabels    prometheus.Labels
	registry       *prometheus.Registry

	// Run metrics
	runDuration     prometheus.Histogram
	runsTotal       *prometheus.CounterVec
	lastSuccessUnix prometheus.Gauge

	// Entity metrics
	entitiesLoaded   *prometheus.GaugeVec
	entitiesScored   *prometheus.CounterVec
	entitiesExcluded *prometheus.CounterVec

	// Text unit metrics
	unitsProcessed *prometheus.CounterVec
	unitsSkipped   *prometheus.CounterVec

	// Normalization metrics
	populationSize         *prometheus.GaugeVec
	degenerateNormalizings *prometheus.CounterVec

	// Persistence metrics
	documentsPersisted *prometheus.CounterVec
	persistErrors      *prometheus.CounterVec
	persistLatency     prometheus.Histogram
}

// defaultPersistBuckets covers one document write, in milliseconds.
var defaultPersistBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000} //nolint:gochecknoglobals // read-only

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "media_impact",
		subsystem:      "pipeline",
		runBuckets:     prometheus.DefBuckets,
		persistBuckets: defaultPersistBuckets,
		enabled:        true,
		constLabels:    prometheus.Labels{},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for all metric definitions
	auto := promauto.With(m.registry)

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_seconds",
		Help:        "Wall time of a full pipeline run",
		Buckets:     m.runBuckets,
		ConstLabels: m.constLabels,
	})

	m.runsTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_total",
		Help:        "Pipeline runs by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.lastSuccessUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_success_timestamp_seconds",
		Help:        "Unix time of the last successful run",
		ConstLabels: m.constLabels,
	})

	m.entitiesLoaded = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "entities_loaded",
		Help:        "Entities enumerated from the store in the last run",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.entitiesScored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "entities_scored_total",
		Help:        "Entities that received an impact score",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.entitiesExcluded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "entities_excluded_total",
		Help:        "Entities left out of scoring, by reason",
		ConstLabels: m.constLabels,
	}, []string{"kind", "reason"})

	m.unitsProcessed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "text_units_processed_total",
		Help:        "Text units scored, by source",
		ConstLabels: m.constLabels,
	}, []string{"source"})

	m.unitsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "text_units_skipped_total",
		Help:        "Text units skipped, by source and reason",
		ConstLabels: m.constLabels,
	}, []string{"source", "reason"})

	m.populationSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "normalization_population",
		Help:        "Members in each feature's normalization population",
		ConstLabels: m.constLabels,
	}, []string{"kind", "feature"})

	m.degenerateNormalizings = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "normalization_degenerate_total",
		Help:        "Normalizations that fell back to the interval midpoint",
		ConstLabels: m.constLabels,
	}, []string{"kind", "feature"})

	m.documentsPersisted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "documents_persisted_total",
		Help:        "Insight documents upserted",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.persistErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "persist_errors_total",
		Help:        "Insight documents that failed to upsert",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.persistLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "persist_latency_milliseconds",
		Help:        "Latency of a single insight upsert",
		Buckets:     m.persistBuckets,
		ConstLabels: m.constLabels,
	})
}

// Registry exposes the manager's registry for gathering or testing.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// ObserveRun records the outcome and duration of a pipeline run.
func (m *Manager) ObserveRun(d time.Duration, err error) {
	if !m.enabled {
		return
	}
	m.runDuration.Observe(d.Seconds())
	if err != nil {
		m.runsTotal.WithLabelValues("failure").Inc()
		return
	}
	m.runsTotal.WithLabelValues("success").Inc()
	m.lastSuccessUnix.SetToCurrentTime()
}

// UpdateEntitiesLoaded sets the enumerated population size for a kind.
func (m *Manager) UpdateEntitiesLoaded(kind string, n int) {
	if m.enabled {
		m.entitiesLoaded.WithLabelValues(kind).Set(float64(n))
	}
}

// RecordEntityScored counts an entity that received a score.
func (m *Manager) RecordEntityScored(kind string) {
	if m.enabled {
		m.entitiesScored.WithLabelValues(kind).Inc()
	}
}

// RecordEntityExcluded counts an entity dropped from scoring.
func (m *Manager) RecordEntityExcluded(kind, reason string) {
	if m.enabled {
		m.entitiesExcluded.WithLabelValues(kind, reason).Inc()
	}
}

// RecordUnitProcessed counts a scored text unit.
func (m *Manager) RecordUnitProcessed(source string) {
	if m.enabled {
		m.unitsProcessed.WithLabelValues(source).Inc()
	}
}

// RecordUnitSkipped counts a text unit that could not be used.
func (m *Manager) RecordUnitSkipped(source, reason string) {
	if m.enabled {
		m.unitsSkipped.WithLabelValues(source, reason).Inc()
	}
}

// AddUnits counts n processed text units and the skipped ones by reason.
func (m *Manager) AddUnits(source string, processed int, skipped map[string]int) {
	if !m.enabled {
		return
	}
	if processed > 0 {
		m.unitsProcessed.WithLabelValues(source).Add(float64(processed))
	}
	for reason, n := range skipped {
		if n > 0 {
			m.unitsSkipped.WithLabelValues(source, reason).Add(float64(n))
		}
	}
}

// UpdatePopulation sets the population size of a feature's normalization.
func (m *Manager) UpdatePopulation(kind, feature string, n int) {
	if m.enabled {
		m.populationSize.WithLabelValues(kind, feature).Set(float64(n))
	}
}

// RecordDegenerateNormalization counts a midpoint fallback.
func (m *Manager) RecordDegenerateNormalization(kind, feature string) {
	if m.enabled {
		m.degenerateNormalizings.WithLabelValues(kind, feature).Inc()
	}
}

// RecordPersist records an upsert attempt and its latency.
func (m *Manager) RecordPersist(kind string, latency time.Duration, err error) {
	if !m.enabled {
		return
	}
	m.persistLatency.Observe(float64(latency) / float64(time.Millisecond))
	if err != nil {
		m.persistErrors.WithLabelValues(kind).Inc()
		return
	}
	m.documentsPersisted.WithLabelValues(kind).Inc()
}

// WriteTextfile dumps the registry in the text exposition format, for the
// node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

// Package-level helpers delegate to the global manager.

func ObserveRun(d time.Duration, err error)    { globalManager.ObserveRun(d, err) }
func UpdateEntitiesLoaded(kind string, n int)  { globalManager.UpdateEntitiesLoaded(kind, n) }
func RecordEntityScored(kind string)           { globalManager.RecordEntityScored(kind) }
func RecordEntityExcluded(kind, reason string) { globalManager.RecordEntityExcluded(kind, reason) }
func RecordUnitProcessed(source string)        { globalManager.RecordUnitProcessed(source) }
func RecordUnitSkipped(source, reason string)  { globalManager.RecordUnitSkipped(source, reason) }
func AddUnits(source string, processed int, skipped map[string]int) {
	globalManager.AddUnits(source, processed, skipped)
}
func UpdatePopulation(kind, feature string, n int) { globalManager.UpdatePopulation(kind, feature, n) }
func RecordDegenerateNormalization(kind, feature string) {
	globalManager.RecordDegenerateNormalization(kind, feature)
}
func RecordPersist(kind string, latency time.Duration, err error) {
	globalManager.RecordPersist(kind, latency, err)
}
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// GetRegistry returns the registry behind the global manager.
func GetRegistry() *prometheus.Registry { return globalManager.registry }
