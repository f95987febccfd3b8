package http

import (
	"net/http"

	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUC
	logger        logger.Logger
}

func NewExportHandler(exportUsecase usecase.ExportUC, logger logger.Logger) *ExportHandler {
	return &ExportHandler{exportUsecase: exportUsecase, logger: logger}
}

// exportDataset
//
//	@Summary		Выгрузка датасета
//	@Description	Собирает CSV и XLSX файлы текущих версий датасета и сохраняет их в объектное хранилище
//	@Tags			exports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExportRequest	false	"Каталоги для выгрузки, пусто — все"
//	@Success		201		{object}	ExportResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Нет опубликованной версии датасета"
//	@Router			/exports [post]
func (h *ExportHandler) exportDataset(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := decodeBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.exportUsecase.ExportDataset(r.Context(), &usecase.ExportReq{Catalogs: req.Catalogs})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &ExportResponse{
		CSVKey:  res.CSVKey,
		XLSXKey: res.XLSXKey,
	})
}
