package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the set of pipeline measurements exported to Prometheus.
type Recorder interface {
	ObserveAnalysis(source, mood string)
	ObserveUpstreamAttempt(outcome string, duration time.Duration)
	IncAlertsCreated(riskLevel string)
}

type promRecorder struct {
	analysesTotal    *prometheus.CounterVec
	upstreamAttempts *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	alertsCreated    *prometheus.CounterVec
}

// New registers the collectors on reg. When disabled a no-op recorder is returned.
func New(enabled bool, reg prometheus.Registerer) Recorder {
	if !enabled {
		return Noop()
	}
	factory := promauto.With(reg)
	return &promRecorder{
		analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecompanion_mood_analyses_total",
			Help: "Completed mood analyses by provenance and mood",
		}, []string{"source", "mood"}),

		upstreamAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecompanion_upstream_attempts_total",
			Help: "Calls to the text-generation endpoint by outcome",
		}, []string{"outcome"}),

		upstreamDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carecompanion_upstream_duration_seconds",
			Help:    "Duration of a single text-generation attempt",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 180},
		}),

		alertsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecompanion_alerts_created_total",
			Help: "Caretaker alerts created by risk level",
		}, []string{"risk_level"}),
	}
}

func (m *promRecorder) ObserveAnalysis(source, mood string) {
	m.analysesTotal.WithLabelValues(source, mood).Inc()
}

func (m *promRecorder) ObserveUpstreamAttempt(outcome string, duration time.Duration) {
	m.upstreamAttempts.WithLabelValues(outcome).Inc()
	m.upstreamDuration.Observe(duration.Seconds())
}

func (m *promRecorder) IncAlertsCreated(riskLevel string) {
	m.alertsCreated.WithLabelValues(riskLevel).Inc()
}

type noopRecorder struct{}

func Noop() Recorder { return noopRecorder{} }

func (noopRecorder) ObserveAnalysis(string, string)                {}
func (noopRecorder) ObserveUpstreamAttempt(string, time.Duration) {}
func (noopRecorder) IncAlertsCreated(string)                       {}
