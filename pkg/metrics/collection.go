package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CollectionMetrics counts record mutations and form outcomes per entity kind.
type CollectionMetrics struct {
	mutations   *prometheus.CounterVec
	submissions *prometheus.CounterVec
	size        *prometheus.GaugeVec
}

// NewCollectionMetrics registers the collection metrics on the provided registerer.
func NewCollectionMetrics(reg prometheus.Registerer) *CollectionMetrics {
	if reg == nil {
		return &CollectionMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_mutations_total",
		Help: "Applied record mutations by entity kind and operation.",
	}, []string{"kind", "op"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Form submissions by entity kind and outcome.",
	}, []string{"kind", "result"})
	size := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "collection_records",
		Help: "Records currently held per entity kind.",
	}, []string{"kind"})
	reg.MustRegister(mutations, submissions, size)
	return &CollectionMetrics{
		mutations:   mutations,
		submissions: submissions,
		size:        size,
	}
}

// IncMutation records one applied insert/replace/remove.
func (c *CollectionMetrics) IncMutation(kind, op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(kind), normalizeLabel(op)).Inc()
}

// IncSubmission records an accepted or rejected form submit.
func (c *CollectionMetrics) IncSubmission(kind string, accepted bool) {
	if c == nil || c.submissions == nil {
		return
	}
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	c.submissions.WithLabelValues(normalizeLabel(kind), result).Inc()
}

// SetSize publishes the current record count of a collection.
func (c *CollectionMetrics) SetSize(kind string, n int) {
	if c == nil || c.size == nil {
		return
	}
	c.size.WithLabelValues(normalizeLabel(kind)).Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
