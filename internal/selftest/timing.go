package selftest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// reducerTimings holds one PowMod duration histogram per reducer
// label. Run records into it; nothing in the repository reads the
// samples back.
type reducerTimings struct {
	histogram *prometheus.HistogramVec
	registry  *prometheus.Registry
}

func newReducerTimings() *reducerTimings {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bignum",
		Subsystem: "selftest",
		Name:      "pow_mod_seconds",
		Help:      "Wall-clock duration of a PowMod call, by reducer path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"reducer"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(h)
	return &reducerTimings{histogram: h, registry: reg}
}

// Time runs fn, recording its duration under the given reducer label,
// and returns how long it took plus fn's error.
func (t *reducerTimings) Time(reducer string, fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	t.histogram.WithLabelValues(reducer).Observe(elapsed.Seconds())
	return elapsed, err
}

// Collect gathers the accumulated histogram samples into prometheus's
// wire metric family form, for a caller that wants to print or export
// them. No caller in the repository uses it.
func (t *reducerTimings) Collect() ([]*dto.MetricFamily, error) {
	return t.registry.Gather()
}
