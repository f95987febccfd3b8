package usecase

import (
	"context"
	"time"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
)

type CatalogRepository interface {
	GetEntries(ctx context.Context, catalog domain.Catalog) ([]domain.CatalogEntry, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
}

// MatchRepository управляет версионированными снимками датасета сопоставлений.
// Методы записи работают в транзакции из контекста, методы чтения ходят в пул напрямую.
type MatchRepository interface {
	CreateVersion(ctx context.Context, version *domain.DatasetVersion) (*domain.DatasetVersion, error)
	InsertMatches(ctx context.Context, versionID int64, matches []domain.CatalogMatch) (int, error)
	PromoteVersion(ctx context.Context, versionID int64, catalog domain.Catalog) error
	DeleteStaleVersions(ctx context.Context, olderThan time.Time) (int64, error)

	GetCurrentVersions(ctx context.Context, catalogs []domain.Catalog) ([]domain.DatasetVersion, error)
	GetMatches(ctx context.Context, versionIDs []int64, filter MatchFilter) ([]CatalogMatchInfo, error)
	CountMatches(ctx context.Context, versionIDs []int64, filter MatchFilter) (int64, error)
	GetMatchByID(ctx context.Context, id int64, versionIDs []int64) (*CatalogMatchInfo, error)
	GetVersionStats(ctx context.Context, version *domain.DatasetVersion) (*CatalogStatInfo, error)
	GetSellerStats(ctx context.Context, versionIDs []int64) ([]SellerStatInfo, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetMatch(ctx context.Context, id int64) (*CatalogMatchInfo, error)
	SetMatch(ctx context.Context, match *CatalogMatchInfo) error
	GetStats(ctx context.Context) ([]CatalogStatInfo, error)
	SetStats(ctx context.Context, stats []CatalogStatInfo) error
	DeleteStats(ctx context.Context) error
}

type ExportRepository interface {
	Upload(ctx context.Context, req *UploadExportReq) (string, error)
}
