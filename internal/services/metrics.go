package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records ingestion and model-call outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	registry      *prometheus.Registry
	ingestions    *prometheus.CounterVec
	modelCalls    *prometheus.CounterVec
	modelDuration *prometheus.HistogramVec
	interviews    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ingestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_resume_ingestions_total",
				Help: "Resume uploads by result (accepted or rejection kind)",
			},
			[]string{"result"},
		),
		modelCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_model_calls_total",
				Help: "Chat model calls by model and status",
			},
			[]string{"model", "status"},
		),
		modelDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interview_model_call_duration_seconds",
				Help:    "Duration of chat model calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
		interviews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_completed_total",
				Help: "Finished interviews by outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(m.ingestions, m.modelCalls, m.modelDuration, m.interviews)
	return m
}

// TrackSessions exposes the live session count as a gauge.
func (m *Metrics) TrackSessions(count func() int) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "interview_sessions_active",
			Help: "Sessions currently held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

func (m *Metrics) ObserveIngestion(result string) {
	if m == nil {
		return
	}
	m.ingestions.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveModelCall(model string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.modelCalls.WithLabelValues(model, status).Inc()
	m.modelDuration.WithLabelValues(model).Observe(duration.Seconds())
}

func (m *Metrics) ObserveCompletion(outcome string) {
	if m == nil {
		return
	}
	m.interviews.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
