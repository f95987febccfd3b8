package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type fakeMatchRepo struct {
	versions []domain.DatasetVersion
	items    []CatalogMatchInfo
	total    int64
	byID     map[int64]*CatalogMatchInfo
	stats    map[domain.Catalog]*CatalogStatInfo
	sellers  []SellerStatInfo

	lastVersionIDs []int64
	lastFilter     MatchFilter
}

func (f *fakeMatchRepo) CreateVersion(_ context.Context, version *domain.DatasetVersion) (*domain.DatasetVersion, error) {
	return version, nil
}

func (f *fakeMatchRepo) InsertMatches(_ context.Context, _ int64, matches []domain.CatalogMatch) (int, error) {
	return len(matches), nil
}

func (f *fakeMatchRepo) PromoteVersion(_ context.Context, _ int64, _ domain.Catalog) error {
	return nil
}

func (f *fakeMatchRepo) DeleteStaleVersions(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeMatchRepo) GetCurrentVersions(_ context.Context, catalogs []domain.Catalog) ([]domain.DatasetVersion, error) {
	requested := make(map[domain.Catalog]struct{}, len(catalogs))
	for _, c := range catalogs {
		requested[c] = struct{}{}
	}

	var out []domain.DatasetVersion
	for _, v := range f.versions {
		if _, ok := requested[v.Catalog]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) GetMatches(_ context.Context, versionIDs []int64, filter MatchFilter) ([]CatalogMatchInfo, error) {
	f.lastVersionIDs = versionIDs
	f.lastFilter = filter
	return f.items, nil
}

func (f *fakeMatchRepo) CountMatches(_ context.Context, _ []int64, _ MatchFilter) (int64, error) {
	return f.total, nil
}

func (f *fakeMatchRepo) GetMatchByID(_ context.Context, id int64, _ []int64) (*CatalogMatchInfo, error) {
	return f.byID[id], nil
}

func (f *fakeMatchRepo) GetVersionStats(_ context.Context, version *domain.DatasetVersion) (*CatalogStatInfo, error) {
	return f.stats[version.Catalog], nil
}

func (f *fakeMatchRepo) GetSellerStats(_ context.Context, _ []int64) ([]SellerStatInfo, error) {
	return f.sellers, nil
}

type fakeCacheRepo struct {
	matches map[int64]*CatalogMatchInfo
	stats   []CatalogStatInfo
}

func (f *fakeCacheRepo) GetMatch(_ context.Context, id int64) (*CatalogMatchInfo, error) {
	return f.matches[id], nil
}

func (f *fakeCacheRepo) SetMatch(_ context.Context, _ *CatalogMatchInfo) error { return nil }

func (f *fakeCacheRepo) GetStats(_ context.Context) ([]CatalogStatInfo, error) {
	return f.stats, nil
}

func (f *fakeCacheRepo) SetStats(_ context.Context, _ []CatalogStatInfo) error { return nil }

func (f *fakeCacheRepo) DeleteStats(_ context.Context) error { return nil }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func newTestMatchUC(repo *fakeMatchRepo, cache *fakeCacheRepo) *CatalogMatchUseCase {
	if cache.matches == nil {
		cache.matches = map[int64]*CatalogMatchInfo{}
	}
	return NewCatalogMatchUC(repo, cache, nopLogger{})
}

func currentVersion(id int64, catalog domain.Catalog) domain.DatasetVersion {
	return domain.DatasetVersion{ID: id, VersionUID: "uid", Catalog: catalog, Status: domain.VersionCurrent}
}

func TestGetCatalogMatchesValidation(t *testing.T) {
	uc := newTestMatchUC(&fakeMatchRepo{}, &fakeCacheRepo{})

	bad := "LOW"
	cases := []struct {
		name string
		req  *GetMatchesReq
		want error
	}{
		{name: "unknown catalog", req: &GetMatchesReq{Catalogs: []string{"usd"}}, want: e.ErrUnknownCatalog},
		{name: "negative limit", req: &GetMatchesReq{Limit: -1}, want: e.ErrNegativeLimit},
		{name: "negative offset", req: &GetMatchesReq{Offset: -5}, want: e.ErrNegativeOffset},
		{name: "invalid classification", req: &GetMatchesReq{PriceClassification: &bad}, want: e.ErrInvalidClassification},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.GetCatalogMatches(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestGetCatalogMatchesNoVersions(t *testing.T) {
	uc := newTestMatchUC(&fakeMatchRepo{}, &fakeCacheRepo{})

	res, err := uc.GetCatalogMatches(context.Background(), &GetMatchesReq{})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if res.TotalMatches != 0 || len(res.Items) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Catalog != "eur,gur" {
		t.Fatalf("catalog=%q", res.Catalog)
	}
}

func TestGetCatalogMatchesNarrowing(t *testing.T) {
	repo := &fakeMatchRepo{
		versions: []domain.DatasetVersion{currentVersion(1, domain.CatalogEUR)},
		total:    1,
		items: []CatalogMatchInfo{{
			ID:                   10,
			MatchedProductsCount: 3,
			MatchedProducts: []MatchedProductInfo{
				{PartID: "p1", PriceClassification: "OK"},
				{PartID: "p2", PriceClassification: "HIGH"},
				{PartID: "p3", PriceClassification: "OK"},
			},
		}},
	}
	uc := newTestMatchUC(repo, &fakeCacheRepo{})

	classification := "ok"
	res, err := uc.GetCatalogMatches(context.Background(), &GetMatchesReq{
		Catalogs:            []string{"eur"},
		PriceClassification: &classification,
		OnlyMatching:        true,
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}

	item := res.Items[0]
	if len(item.MatchedProducts) != 2 {
		t.Fatalf("narrowed len=%d", len(item.MatchedProducts))
	}
	// Счётчики строки остаются по полному набору.
	if item.MatchedProductsCount != 3 {
		t.Fatalf("count=%d", item.MatchedProductsCount)
	}
	if repo.lastFilter.PriceClassification == nil || *repo.lastFilter.PriceClassification != domain.PriceOK {
		t.Fatalf("filter classification=%v", repo.lastFilter.PriceClassification)
	}
}

func TestGetCatalogMatchesWithoutNarrowing(t *testing.T) {
	repo := &fakeMatchRepo{
		versions: []domain.DatasetVersion{currentVersion(1, domain.CatalogEUR)},
		total:    1,
		items: []CatalogMatchInfo{{
			ID: 10,
			MatchedProducts: []MatchedProductInfo{
				{PartID: "p1", PriceClassification: "OK"},
				{PartID: "p2", PriceClassification: "HIGH"},
			},
		}},
	}
	uc := newTestMatchUC(repo, &fakeCacheRepo{})

	classification := "OK"
	res, err := uc.GetCatalogMatches(context.Background(), &GetMatchesReq{
		PriceClassification: &classification,
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(res.Items[0].MatchedProducts) != 2 {
		t.Fatalf("embedded products must stay full: %+v", res.Items[0])
	}
}

func TestGetCatalogMatchByID(t *testing.T) {
	stored := &CatalogMatchInfo{ID: 7, Article: "ART"}
	repo := &fakeMatchRepo{
		versions: []domain.DatasetVersion{currentVersion(1, domain.CatalogEUR)},
		byID:     map[int64]*CatalogMatchInfo{7: stored},
	}
	uc := newTestMatchUC(repo, &fakeCacheRepo{})

	got, err := uc.GetCatalogMatchByID(context.Background(), NewGetMatchByIDReq(7))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got.Article != "ART" {
		t.Fatalf("unexpected result: %+v", got)
	}

	if _, err := uc.GetCatalogMatchByID(context.Background(), NewGetMatchByIDReq(404)); !errors.Is(err, e.ErrMatchNotFound) {
		t.Fatalf("got %v want %v", err, e.ErrMatchNotFound)
	}

	if _, err := uc.GetCatalogMatchByID(context.Background(), NewGetMatchByIDReq(0)); !errors.Is(err, e.ErrInvalidMatchID) {
		t.Fatalf("got %v want %v", err, e.ErrInvalidMatchID)
	}
}

func TestGetCatalogMatchByIDCacheHit(t *testing.T) {
	cached := &CatalogMatchInfo{ID: 7, Article: "CACHED"}
	uc := newTestMatchUC(&fakeMatchRepo{}, &fakeCacheRepo{matches: map[int64]*CatalogMatchInfo{7: cached}})

	got, err := uc.GetCatalogMatchByID(context.Background(), NewGetMatchByIDReq(7))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got.Article != "CACHED" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetCatalogStatsMissingCatalog(t *testing.T) {
	avg := decimal.RequireFromString("150.00")
	repo := &fakeMatchRepo{
		versions: []domain.DatasetVersion{currentVersion(1, domain.CatalogEUR)},
		stats: map[domain.Catalog]*CatalogStatInfo{
			domain.CatalogEUR: {Catalog: "eur", Items: 12, AvgDBPrice: &avg},
		},
	}
	uc := newTestMatchUC(repo, &fakeCacheRepo{})

	res, err := uc.GetCatalogStats(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(res.Catalogs) != 2 {
		t.Fatalf("len=%d", len(res.Catalogs))
	}
	if res.Catalogs[0].Catalog != "eur" || res.Catalogs[0].Items != 12 {
		t.Fatalf("unexpected eur stat: %+v", res.Catalogs[0])
	}
	// Каталог без версии получает нулевую сводку.
	if res.Catalogs[1].Catalog != "gur" || res.Catalogs[1].Items != 0 || res.Catalogs[1].AvgDBPrice != nil {
		t.Fatalf("unexpected gur stat: %+v", res.Catalogs[1])
	}
}
