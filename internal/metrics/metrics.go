package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Observer is the shared metrics instance for the analysis pipeline.
var Observer = newMetrics()

// Metrics tracks the progress of a dataset scan.
type Metrics struct {
	records     *prometheus.CounterVec
	parseErrors prometheus.Counter
}

func newMetrics() *Metrics {
	m := &Metrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kdd",
				Name:      "records",
				Help:      "records parsed per label",
			}, []string{"label"}),
		parseErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kdd",
				Name:      "parse_errors",
				Help:      "records that failed to parse",
			}),
	}
	prometheus.MustRegister(m.records, m.parseErrors)
	return m
}

// IncrementRecords counts a parsed record for the given label.
func (m *Metrics) IncrementRecords(label string) {
	m.records.WithLabelValues(label).Inc()
}

// IncrementParseErrors counts a record that could not be parsed.
func (m *Metrics) IncrementParseErrors() {
	m.parseErrors.Inc()
}

// Serve exposes the metrics endpoint on the given port.
// A port of 0 disables the endpoint.
func Serve(port int) {
	if port == 0 {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			log.Error().Err(err).Int("port", port).Msg("could not serve metrics")
		}
	}()
}
