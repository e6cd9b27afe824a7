package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/saas-journey/journey/pkg/metrics"
)

type Metrics struct {
	apiResponseTime    *prometheus.HistogramVec
	apiErrorCounter    *prometheus.CounterVec
	sessionRefreshed   *prometheus.CounterVec
	sessionSweptTotal  *prometheus.CounterVec
	entryWritesCounter *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:    metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:    metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		sessionRefreshed:   metrics.NewCounterVec("session_refreshed", []string{"rotated"}),
		sessionSweptTotal:  metrics.NewCounterVec("session_swept_total", nil),
		entryWritesCounter: metrics.NewCounterVec("journal_entry_write", []string{"op"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) SessionRefreshedInc(rotated bool) {
	m.sessionRefreshed.WithLabelValues(strconv.FormatBool(rotated)).Inc()
}

func (m *Metrics) SessionSweptAdd(n int64) {
	m.sessionSweptTotal.WithLabelValues().Add(float64(n))
}

func (m *Metrics) EntryWriteInc(op string) {
	m.entryWritesCounter.WithLabelValues(op).Inc()
}
