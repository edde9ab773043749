package prometheus

// EngineMetrics bundles the classification and deduplication metrics exposed
// by the engine.  It is constructed once at startup from a MetricsCollector
// and passed to the interface layer; domain packages never see it.
type EngineMetrics struct {
	titlesClassified CounterVec
	documentsScanned CounterVec
	coverageRate     GaugeVec
	fragmentsRemoved CounterVec
	dedupComparisons HistogramVec
}

// NewEngineMetrics registers the engine's metric families on collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	return &EngineMetrics{
		titlesClassified: collector.RegisterCounter(
			"titles_classified_total",
			"Number of headings classified, by category id and match type.",
			"category", "match_type",
		),
		documentsScanned: collector.RegisterCounter(
			"documents_scanned_total",
			"Number of documents whose heading sequence was classified.",
			"status",
		),
		coverageRate: collector.RegisterGauge(
			"coverage_rate",
			"Coverage rate of the most recent classification run, per corpus.",
			"corpus",
		),
		fragmentsRemoved: collector.RegisterCounter(
			"fragments_removed_total",
			"Number of fragments removed as near-duplicates, by category id.",
			"category",
		),
		dedupComparisons: collector.RegisterHistogram(
			"dedup_group_comparisons",
			"Pairwise similarity comparisons performed per category group.",
			[]float64{1, 10, 100, 1000, 10000},
			"category",
		),
	}
}

// ObserveTitle records one classified heading.
func (m *EngineMetrics) ObserveTitle(category, matchType string) {
	m.titlesClassified.WithLabelValues(category, matchType).Inc()
}

// ObserveDocument records one classified document.
func (m *EngineMetrics) ObserveDocument(status string) {
	m.documentsScanned.WithLabelValues(status).Inc()
}

// SetCoverageRate records the coverage rate of a classification run.
func (m *EngineMetrics) SetCoverageRate(corpus string, rate float64) {
	m.coverageRate.WithLabelValues(corpus).Set(rate)
}

// ObserveFragmentRemoved records fragments removed from one category group.
func (m *EngineMetrics) ObserveFragmentRemoved(category string, n int) {
	if n <= 0 {
		return
	}
	m.fragmentsRemoved.WithLabelValues(category).Add(float64(n))
}

// ObserveDedupComparisons records the pair count examined in a category group.
func (m *EngineMetrics) ObserveDedupComparisons(category string, pairs int) {
	m.dedupComparisons.WithLabelValues(category).Observe(float64(pairs))
}

//Personal.AI order the ending
