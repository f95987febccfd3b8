package converter

import (
	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
)

// CatalogEntryConverter преобразует записи каталога из модели PostgreSQL в domain.
type CatalogEntryConverter interface {
	ToEntity(model *CatalogEntryModel) *domain.CatalogEntry
}

// ProductConverter преобразует продукты из модели PostgreSQL в domain,
// включая извлечение кодов сопоставления из item_description.
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
}

// CatalogMatchConverter преобразует строки датасета между domain, моделью
// PostgreSQL и DTO чтения.
type CatalogMatchConverter interface {
	ToModel(versionID int64, match *domain.CatalogMatch) (*CatalogMatchModel, error)
	ToInfo(model *CatalogMatchModel) (*usecase.CatalogMatchInfo, error)
}

// DatasetVersionConverter преобразует версии датасета между domain и моделью PostgreSQL.
type DatasetVersionConverter interface {
	ToEntity(model *DatasetVersionModel) *domain.DatasetVersion
	ToArrEntity(models []*DatasetVersionModel) []domain.DatasetVersion
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}
