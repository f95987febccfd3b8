package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUnknownCatalog):
		return http.StatusBadRequest, e.ErrUnknownCatalog.Error()
	case errors.Is(err, e.ErrNegativeLimit):
		return http.StatusBadRequest, e.ErrNegativeLimit.Error()
	case errors.Is(err, e.ErrNegativeOffset):
		return http.StatusBadRequest, e.ErrNegativeOffset.Error()
	case errors.Is(err, e.ErrInvalidClassification):
		return http.StatusBadRequest, e.ErrInvalidClassification.Error()
	case errors.Is(err, e.ErrInvalidMatchID):
		return http.StatusBadRequest, e.ErrInvalidMatchID.Error()
	case errors.Is(err, e.ErrMatchNotFound):
		return http.StatusNotFound, e.ErrMatchNotFound.Error()
	case errors.Is(err, e.ErrRecomputeInProgress):
		return http.StatusConflict, e.ErrRecomputeInProgress.Error()
	case errors.Is(err, e.ErrNoCurrentVersion):
		return http.StatusConflict, e.ErrNoCurrentVersion.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeBody разбирает необязательное JSON-тело запроса. Пустое тело не ошибка.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseCatalogsQuery разбирает параметр catalog: список имён через запятую.
// Пустой или отсутствующий параметр означает все каталоги.
func parseCatalogsQuery(r *http.Request) []string {
	raw := r.URL.Query().Get("catalog")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	catalogs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			catalogs = append(catalogs, trimmed)
		}
	}

	return catalogs
}

// parseOptionalQuery возвращает строковый параметр или nil, если он отсутствует.
func parseOptionalQuery(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}

	value := r.URL.Query().Get(name)
	return &value
}

// parseInt64Query разбирает целочисленный параметр, отсутствие даёт значение по умолчанию.
func parseInt64Query(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}

	return value, nil
}

// parseBoolQuery разбирает булев параметр, отсутствие даёт false.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, e.Wrap(name, e.ErrStatusBadRequest)
	}

	return value, nil
}
