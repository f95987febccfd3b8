package converter

import (
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
)

// CatalogMatchConverter преобразует строки датасета между usecase и моделью кэша.
type CatalogMatchConverter interface {
	ToRedisModel(info *usecase.CatalogMatchInfo) *CatalogMatchRedisModel
	ToUseCase(model *CatalogMatchRedisModel) *usecase.CatalogMatchInfo
}

// CatalogStatConverter преобразует сводки каталогов между usecase и моделью кэша.
type CatalogStatConverter interface {
	ToArrRedisModel(stats []usecase.CatalogStatInfo) []CatalogStatRedisModel
	ToArrUseCase(models []CatalogStatRedisModel) []usecase.CatalogStatInfo
}
