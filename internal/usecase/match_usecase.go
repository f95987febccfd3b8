package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

// CatalogMatchUseCase реализует чтение датасета сопоставлений: строки,
// карточку по идентификатору и сводную статистику. Все операции читают
// только закоммиченные версии датасета.
type CatalogMatchUseCase struct {
	matchRepo MatchRepository
	cacheRepo CacheRepository
	logger    logger.Logger
}

func NewCatalogMatchUC(
	matchRepo MatchRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogMatchUseCase {
	return &CatalogMatchUseCase{
		matchRepo: matchRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetCatalogMatches возвращает страницу строк датасета по фильтрам запроса.
// Версии каталогов фиксируются в начале запроса, поэтому страница никогда
// не смешивает строки разных прогонов одного каталога.
func (u *CatalogMatchUseCase) GetCatalogMatches(ctx context.Context, req *GetMatchesReq) (*GetMatchesRes, error) {
	const op = "CatalogMatchUseCase.GetCatalogMatches"

	catalogs, err := resolveCatalogs(req.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filter, err := newMatchFilter(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	label := catalogLabel(catalogs)

	versions, err := u.matchRepo.GetCurrentVersions(ctx, catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(versions) == 0 {
		return NewGetMatchesRes(label, 0, req.Limit, req.Offset, []CatalogMatchInfo{}), nil
	}

	ids := versionIDs(versions)

	total, err := u.matchRepo.CountMatches(ctx, ids, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := u.matchRepo.GetMatches(ctx, ids, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.OnlyMatching && filter.PriceClassification != nil {
		narrowMatchedProducts(items, *filter.PriceClassification)
	}

	return NewGetMatchesRes(label, total, req.Limit, req.Offset, items), nil
}

// GetCatalogMatchByID возвращает одну строку датасета из текущих версий каталогов.
func (u *CatalogMatchUseCase) GetCatalogMatchByID(ctx context.Context, req *GetMatchByIDReq) (*CatalogMatchInfo, error) {
	const op = "CatalogMatchUseCase.GetCatalogMatchByID"

	if req.ID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidMatchID)
	}

	// Поиск строки в кэше
	cached, err := u.cacheRepo.GetMatch(ctx, req.ID)
	if err != nil {
		u.logger.Warnf("Failed to read catalog match from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	versions, err := u.matchRepo.GetCurrentVersions(ctx, domain.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(versions) == 0 {
		return nil, e.Wrap(op, e.ErrMatchNotFound)
	}

	info, err := u.matchRepo.GetMatchByID(ctx, req.ID, versionIDs(versions))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if info == nil {
		return nil, e.Wrap(op, e.ErrMatchNotFound)
	}

	// Фоновое добавление строки в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := u.cacheRepo.SetMatch(bgCtx, info); err != nil {
			u.logger.Warnf("Failed to cache catalog match in background: %v", e.Wrap(op, err))
		}
	}()

	return info, nil
}

// GetCatalogStats возвращает сводку по текущей версии каждого каталога.
// Каталог без закоммиченной версии получает нулевую сводку.
func (u *CatalogMatchUseCase) GetCatalogStats(ctx context.Context) (*GetStatsRes, error) {
	const op = "CatalogMatchUseCase.GetCatalogStats"

	cached, err := u.cacheRepo.GetStats(ctx)
	if err != nil {
		u.logger.Warnf("Failed to read catalog stats from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return &GetStatsRes{Catalogs: cached}, nil
	}

	versions, err := u.matchRepo.GetCurrentVersions(ctx, domain.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	byCatalog := make(map[domain.Catalog]*domain.DatasetVersion, len(versions))
	for i := range versions {
		byCatalog[versions[i].Catalog] = &versions[i]
	}

	stats := make([]CatalogStatInfo, 0, len(domain.Catalogs))
	for _, catalog := range domain.Catalogs {
		version, ok := byCatalog[catalog]
		if !ok {
			stats = append(stats, CatalogStatInfo{Catalog: string(catalog)})
			continue
		}

		stat, err := u.matchRepo.GetVersionStats(ctx, version)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		stats = append(stats, *stat)
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := u.cacheRepo.SetStats(bgCtx, stats); err != nil {
			u.logger.Warnf("Failed to cache catalog stats in background: %v", e.Wrap(op, err))
		}
	}()

	return &GetStatsRes{Catalogs: stats}, nil
}

// GetSellerStats возвращает статистику продавцов по текущим версиям каталогов.
func (u *CatalogMatchUseCase) GetSellerStats(ctx context.Context) (*GetSellerStatsRes, error) {
	const op = "CatalogMatchUseCase.GetSellerStats"

	versions, err := u.matchRepo.GetCurrentVersions(ctx, domain.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(versions) == 0 {
		return &GetSellerStatsRes{Sellers: []SellerStatInfo{}}, nil
	}

	sellers, err := u.matchRepo.GetSellerStats(ctx, versionIDs(versions))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &GetSellerStatsRes{Sellers: sellers}, nil
}

// newMatchFilter валидирует параметры запроса и собирает фильтр выборки.
func newMatchFilter(req *GetMatchesReq) (MatchFilter, error) {
	if req.Limit < 0 {
		return MatchFilter{}, e.ErrNegativeLimit
	}
	if req.Offset < 0 {
		return MatchFilter{}, e.ErrNegativeOffset
	}

	filter := MatchFilter{
		Segment: req.Segment,
		Limit:   req.Limit,
		Offset:  req.Offset,
	}

	if req.PriceClassification != nil {
		value := strings.ToUpper(strings.TrimSpace(*req.PriceClassification))
		if !domain.KnownClassification(value) {
			return MatchFilter{}, e.ErrInvalidClassification
		}
		classification := domain.PriceClassification(value)
		filter.PriceClassification = &classification
	}

	return filter, nil
}

// narrowMatchedProducts оставляет во вложенных списках только продукты с
// запрошенным вердиктом. Счётчики строки при этом не пересчитываются.
func narrowMatchedProducts(items []CatalogMatchInfo, classification domain.PriceClassification) {
	for i := range items {
		kept := make([]MatchedProductInfo, 0, len(items[i].MatchedProducts))
		for _, p := range items[i].MatchedProducts {
			if p.PriceClassification == string(classification) {
				kept = append(kept, p)
			}
		}
		items[i].MatchedProducts = kept
	}
}

// resolveCatalogs переводит имена каталогов из запроса в доменные значения.
// Пустой список означает все каталоги в фиксированном порядке.
func resolveCatalogs(names []string) ([]domain.Catalog, error) {
	if len(names) == 0 {
		return domain.Catalogs, nil
	}

	out := make([]domain.Catalog, 0, len(names))
	seen := make(map[domain.Catalog]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if !domain.KnownCatalog(name) {
			return nil, e.ErrUnknownCatalog
		}

		catalog := domain.Catalog(name)
		if _, ok := seen[catalog]; ok {
			continue
		}
		seen[catalog] = struct{}{}
		out = append(out, catalog)
	}

	return out, nil
}

func catalogLabel(catalogs []domain.Catalog) string {
	names := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		names = append(names, string(c))
	}

	return strings.Join(names, ",")
}

func versionIDs(versions []domain.DatasetVersion) []int64 {
	ids := make([]int64, 0, len(versions))
	for _, v := range versions {
		ids = append(ids, v.ID)
	}

	return ids
}
