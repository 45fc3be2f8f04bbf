package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := true
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					matched = false
					break
				}
			}
			if matched {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestTrackerRecordsOutcome(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	if err := m.Track("media:cleanup").End(nil); err != nil {
		t.Fatalf("success run: %v", err)
	}
	failure := errors.New("boom")
	if err := m.Track("media:cleanup").End(failure); !errors.Is(err, failure) {
		t.Fatalf("failure run returned %v", err)
	}

	if got := counterValue(t, registry, "catalogue_jobs_total", map[string]string{"job": "media:cleanup", "status": "success"}); got != 1 {
		t.Fatalf("success count = %v", got)
	}
	if got := counterValue(t, registry, "catalogue_jobs_total", map[string]string{"job": "media:cleanup", "status": "failure"}); got != 1 {
		t.Fatalf("failure count = %v", got)
	}
	if got := counterValue(t, registry, "catalogue_jobs_failures_total", map[string]string{"job": "media:cleanup"}); got != 1 {
		t.Fatalf("failures count = %v", got)
	}
}

func TestNilMetricsTrackerIsInert(t *testing.T) {
	var m *Metrics
	failure := errors.New("boom")
	if err := m.Track("media:cleanup").End(failure); !errors.Is(err, failure) {
		t.Fatal("error must pass through untouched")
	}
}
