package http

import (
	"net/http"

	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

type RecomputeHandler struct {
	recomputeUsecase usecase.RecomputeUC
	logger           logger.Logger
}

func NewRecomputeHandler(recomputeUsecase usecase.RecomputeUC, logger logger.Logger) *RecomputeHandler {
	return &RecomputeHandler{recomputeUsecase: recomputeUsecase, logger: logger}
}

// recomputeDataset
//
//	@Summary		Пересчёт датасета
//	@Description	Пересчитывает датасет сопоставлений и публикует новые версии каталогов
//	@Tags			recompute
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecomputeRequest	false	"Каталоги для пересчёта, пусто — все"
//	@Success		200		{object}	RecomputeResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Пересчёт уже выполняется"
//	@Router			/recompute [post]
func (h *RecomputeHandler) recomputeDataset(w http.ResponseWriter, r *http.Request) {
	var req RecomputeRequest
	if err := decodeBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.recomputeUsecase.RecomputeDataset(r.Context(), &usecase.RecomputeReq{Catalogs: req.Catalogs})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newRecomputeResponse(res))
}
