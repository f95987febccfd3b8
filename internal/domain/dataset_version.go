package domain

import "time"

// VersionStatus — состояние версии датасета.
type VersionStatus string

const (
	VersionDraft   VersionStatus = "draft"
	VersionCurrent VersionStatus = "current"
	VersionStale   VersionStatus = "stale"
)

// DatasetVersion — одна версия датасета каталога. Пересчёт пишет новую
// версию и атомарно переключает на неё указатель current; устаревшие
// версии удаляются после грейс-периода.
type DatasetVersion struct {
	ID         int64
	VersionUID string
	Catalog    Catalog
	Status     VersionStatus
	RunID      string
	ItemCount  int
	CreatedAt  time.Time
	PromotedAt *time.Time
	StaleAt    *time.Time
}

func NewDatasetVersion(versionUID string, catalog Catalog, runID string, itemCount int) *DatasetVersion {
	return &DatasetVersion{
		VersionUID: versionUID,
		Catalog:    catalog,
		Status:     VersionDraft,
		RunID:      runID,
		ItemCount:  itemCount,
	}
}
