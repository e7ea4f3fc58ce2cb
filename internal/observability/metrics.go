// v1
// internal/observability/metrics.go
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	fetchFailures prometheus.Counter
	publishTotal  *prometheus.CounterVec
	occupancy     *prometheus.GaugeVec
	noise         *prometheus.GaugeVec
	temperature   *prometheus.GaugeVec
	light         *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studyspace_cycles_total",
			Help: "Total number of completed update cycles.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "studyspace_cycle_duration_seconds",
			Help:    "Histogram of update cycle durations.",
			Buckets: prometheus.DefBuckets,
		}),
		fetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studyspace_fetch_failures_total",
			Help: "Total booking API fetches that failed.",
		}),
		publishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studyspace_publish_total",
			Help: "Total published messages by payload kind and outcome.",
		}, []string{"kind", "outcome"}),
		occupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "studyspace_room_occupancy_percent",
			Help: "Last synthesized occupancy per room.",
		}, []string{"room"}),
		noise: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "studyspace_room_noise_db",
			Help: "Last synthesized noise level per room.",
		}, []string{"room"}),
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "studyspace_room_temperature_celsius",
			Help: "Last synthesized temperature per room.",
		}, []string{"room"}),
		light: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "studyspace_room_light_lux",
			Help: "Last synthesized light level per room.",
		}, []string{"room"}),
	}

	prometheus.MustRegister(
		m.cycles,
		m.cycleDuration,
		m.fetchFailures,
		m.publishTotal,
		m.occupancy,
		m.noise,
		m.temperature,
		m.light,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) CycleCompleted(d time.Duration) {
	if m == nil {
		return
	}
	m.cycles.Inc()
	m.cycleDuration.Observe(d.Seconds())
}

func (m *Metrics) FetchFailed() {
	if m == nil {
		return
	}
	m.fetchFailures.Inc()
}

func (m *Metrics) PublishResult(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "fail"
	}
	m.publishTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveReading(room string, occupancy, noise, temperature, light float64) {
	if m == nil {
		return
	}
	m.occupancy.WithLabelValues(room).Set(occupancy)
	m.noise.WithLabelValues(room).Set(noise)
	m.temperature.WithLabelValues(room).Set(temperature)
	m.light.WithLabelValues(room).Set(light)
}
