package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/partmatch-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/partmatch-tech/catalog-backend/internal/metrics"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(matchUC usecase.CatalogMatchUC, recomputeUC usecase.RecomputeUC, exportUC usecase.ExportUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.router.Method(http.MethodGet, "/metrics", metrics.MetricsHandler())

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(metricsMiddleware)

		registerMatchRoutes(v1, NewCatalogMatchHandler(matchUC, r.logger))
		registerRecomputeRoutes(v1, NewRecomputeHandler(recomputeUC, r.logger))
		registerExportRoutes(v1, NewExportHandler(exportUC, r.logger))
	})
}

func registerMatchRoutes(router chi.Router, handler *CatalogMatchHandler) {
	router.Route("/catalog-matches", func(cm chi.Router) {
		cm.Get("/", handler.getCatalogMatches)
		cm.Get("/{id}", handler.getCatalogMatchByID)
	})
	router.Get("/catalog-stats", handler.getCatalogStats)
	router.Get("/seller-stats", handler.getSellerStats)
}

func registerRecomputeRoutes(router chi.Router, handler *RecomputeHandler) {
	router.Post("/recompute", handler.recomputeDataset)
}

func registerExportRoutes(router chi.Router, handler *ExportHandler) {
	router.Post("/exports", handler.exportDataset)
}
