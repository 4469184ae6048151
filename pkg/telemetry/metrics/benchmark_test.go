package metrics

import (
	"testing"
	"time"

	"mercator-hq/sieve/pkg/criteria"

	"github.com/prometheus/client_golang/prometheus"
)

func Benchmark_Collector_RecordEvaluation(b *testing.B) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collector.RecordEvaluation(criteria.KindAnd, 30*time.Microsecond, 3)
	}
}

func Benchmark_Collector_RecordEvaluation_Parallel(b *testing.B) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			collector.RecordEvaluation(criteria.KindOr, 30*time.Microsecond, 4)
		}
	})
}
