package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	recomputeRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_recompute_runs_total",
			Help: "Total number of dataset recompute runs per catalog.",
		},
		[]string{"catalog", "status"},
	)
	recomputeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_recompute_duration_seconds",
			Help:    "Histogram of dataset recompute durations per catalog.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"catalog"},
	)
	datasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Rows in the current dataset version per catalog.",
		},
		[]string{"catalog"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(recomputeRunsTotal)
	prometheus.MustRegister(recomputeDuration)
	prometheus.MustRegister(datasetRows)
}

// RecordRequest записывает метрики для HTTP-запроса.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordRecompute записывает метрики одного прогона пересчёта каталога.
func RecordRecompute(catalog, status string, duration time.Duration) {
	recomputeRunsTotal.WithLabelValues(catalog, status).Inc()
	recomputeDuration.WithLabelValues(catalog).Observe(duration.Seconds())
}

// SetDatasetRows выставляет размер текущей версии датасета каталога.
func SetDatasetRows(catalog string, rows int) {
	datasetRows.WithLabelValues(catalog).Set(float64(rows))
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
