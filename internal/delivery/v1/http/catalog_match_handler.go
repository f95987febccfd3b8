package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

type CatalogMatchHandler struct {
	matchUsecase usecase.CatalogMatchUC
	logger       logger.Logger
}

func NewCatalogMatchHandler(matchUsecase usecase.CatalogMatchUC, logger logger.Logger) *CatalogMatchHandler {
	return &CatalogMatchHandler{matchUsecase: matchUsecase, logger: logger}
}

// getCatalogMatches
//
//	@Summary		Строки датасета сопоставлений
//	@Description	Возвращает строки текущих версий датасета с фильтрами и пагинацией
//	@Tags			catalog-matches
//	@Produce		json
//	@Param			catalog					query		string	false	"Каталоги через запятую (eur,gur), пусто — все"
//	@Param			segment					query		string	false	"Точное значение сегмента"
//	@Param			price_classification	query		string	false	"Вердикт цены: OK, HIGH или NA"
//	@Param			only_matching			query		bool	false	"Оставить во вложенных продуктах только запрошенный вердикт"
//	@Param			limit					query		int		false	"Число строк, 0 или пусто — без ограничения"
//	@Param			offset					query		int		false	"Смещение выборки"
//	@Success		200						{object}	CatalogMatchesResponse
//	@Failure		400						{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/catalog-matches [get]
func (h *CatalogMatchHandler) getCatalogMatches(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt64Query(r, "limit", 0)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	offset, err := parseInt64Query(r, "offset", 0)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	onlyMatching, err := parseBoolQuery(r, "only_matching")
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req := &usecase.GetMatchesReq{
		Catalogs:            parseCatalogsQuery(r),
		Segment:             parseOptionalQuery(r, "segment"),
		PriceClassification: parseOptionalQuery(r, "price_classification"),
		OnlyMatching:        onlyMatching,
		Limit:               limit,
		Offset:              offset,
	}

	res, err := h.matchUsecase.GetCatalogMatches(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogMatchesResponse(res))
}

// getCatalogMatchByID
//
//	@Summary		Строка датасета по идентификатору
//	@Description	Возвращает одну строку текущих версий датасета
//	@Tags			catalog-matches
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор строки"
//	@Success		200	{object}	CatalogMatchResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404	{object}	ErrorResponse	"Строка не найдена"
//	@Router			/catalog-matches/{id} [get]
func (h *CatalogMatchHandler) getCatalogMatchByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidMatchID.Error(), chi.URLParam(r, "id"))
		WriteError(w, e.ErrInvalidMatchID)
		return
	}

	info, err := h.matchUsecase.GetCatalogMatchByID(r.Context(), usecase.NewGetMatchByIDReq(id))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogMatchResponse(info))
}

// getCatalogStats
//
//	@Summary		Сводки каталогов
//	@Description	Возвращает сводку по текущей версии каждого каталога
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	CatalogStatsResponse
//	@Router			/catalog-stats [get]
func (h *CatalogMatchHandler) getCatalogStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.matchUsecase.GetCatalogStats(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogStatsResponse(res))
}

// getSellerStats
//
//	@Summary		Сводки по продавцам
//	@Description	Возвращает статистику предложений продавцов по текущим версиям датасета
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	SellerStatsResponse
//	@Router			/seller-stats [get]
func (h *CatalogMatchHandler) getSellerStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.matchUsecase.GetSellerStats(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSellerStatsResponse(res))
}
