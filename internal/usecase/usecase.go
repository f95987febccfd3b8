package usecase

import "context"

type CatalogMatchUC interface {
	GetCatalogMatches(ctx context.Context, req *GetMatchesReq) (*GetMatchesRes, error)
	GetCatalogMatchByID(ctx context.Context, req *GetMatchByIDReq) (*CatalogMatchInfo, error)
	GetCatalogStats(ctx context.Context) (*GetStatsRes, error)
	GetSellerStats(ctx context.Context) (*GetSellerStatsRes, error)
}

type RecomputeUC interface {
	RecomputeDataset(ctx context.Context, req *RecomputeReq) (*RecomputeRes, error)
}

type ExportUC interface {
	ExportDataset(ctx context.Context, req *ExportReq) (*ExportRes, error)
}
