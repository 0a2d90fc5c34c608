package section

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "libsee"

// Registry returns a Prometheus registry holding the statistics of s.
// Every metric carries the program label, so that files from several
// programs can be collected side by side.
func Registry(s *Section, program string) (*prometheus.Registry, error) {
	labels := []string{"program", "function", "group"}
	cycles := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "function_cycles",
		Help:      "Cycles spent inside an intercepted function during the run.",
	}, labels)
	calls := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "function_calls",
		Help:      "Calls of an intercepted function during the run.",
	}, labels)
	share := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "function_share_percent",
		Help:      "Share of all measured cycles spent in an intercepted function.",
	}, labels)
	totalCycles := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cycles",
		Help:      "Cycles spent in all intercepted functions during the run.",
	}, []string{"program"})
	totalCalls := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "calls",
		Help:      "Calls of all intercepted functions during the run.",
	}, []string{"program"})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{cycles, calls, share, totalCycles, totalCalls} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("section: register metrics: %w", err)
		}
	}

	for _, r := range s.Rows {
		group := r.Group()
		cycles.WithLabelValues(program, r.Function, group).Set(float64(r.Cycles))
		calls.WithLabelValues(program, r.Function, group).Set(float64(r.Calls))
		share.WithLabelValues(program, r.Function, group).Set(r.Share)
	}
	totalCycles.WithLabelValues(program).Set(float64(s.TotalCycles()))
	totalCalls.WithLabelValues(program).Set(float64(s.TotalCalls()))
	return reg, nil
}

// WritePrometheus writes s to path in the Prometheus text format, for the
// node exporter's textfile collector. The file is replaced atomically.
func WritePrometheus(path string, s *Section, program string) error {
	reg, err := Registry(s, program)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("section: write %s: %w", path, err)
	}
	return nil
}
