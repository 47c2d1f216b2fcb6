// Package metrics counts staged list operations with Prometheus collectors.
//
// Each Recorder owns a private registry, so several lists in one process
// (or several tests) never share counts.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Result labels for operation counters
const (
	ResultOK          = "ok"
	ResultOutOfBounds = "out_of_bounds"
)

// Recorder records operation, commit and rollback counts
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	commits    *prometheus.CounterVec
	rollbacks  prometheus.Counter
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stagelist_operations_total",
			Help: "Insert and delete operations attempted against the working list.",
		}, []string{"op", "result"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stagelist_commits_total",
			Help: "Commit attempts by outcome.",
		}, []string{"outcome"}),
		rollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stagelist_rollbacks_total",
			Help: "Explicit rollbacks requested by the caller.",
		}),
	}
	r.registry.MustRegister(r.operations, r.commits, r.rollbacks)
	return r
}

// Operation records one insert or delete
func (r *Recorder) Operation(op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultOutOfBounds
	}
	r.operations.WithLabelValues(op, result).Inc()
}

// Commit records one commit outcome
func (r *Recorder) Commit(outcome string) {
	r.commits.WithLabelValues(outcome).Inc()
}

// Rollback records one explicit rollback
func (r *Recorder) Rollback() {
	r.rollbacks.Inc()
}

// Sample is one gathered counter value
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Samples gathers every non-zero counter, sorted by name then labels
func (r *Recorder) Samples() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			if m.GetCounter() == nil || m.GetCounter().GetValue() == 0 {
				continue
			}
			samples = append(samples, Sample{
				Name:   family.GetName(),
				Labels: formatLabels(m.GetLabel()),
				Value:  m.GetCounter().GetValue(),
			})
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}

// Summary renders the gathered counters one per line
func (r *Recorder) Summary() (string, error) {
	samples, err := r.Samples()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range samples {
		fmt.Fprintf(&b, "%s%s %g\n", s.Name, s.Labels, s.Value)
	}
	return b.String(), nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
