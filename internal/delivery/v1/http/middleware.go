package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/partmatch-tech/catalog-backend/internal/metrics"
)

// metricsMiddleware пишет счётчик и гистограмму длительности HTTP-запросов.
// Эндпоинт берётся из шаблона маршрута chi, чтобы не плодить метки по каждому id.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = r.URL.Path
		}

		metrics.RecordRequest(r.Method, endpoint, ww.Status(), time.Since(start))
	})
}
