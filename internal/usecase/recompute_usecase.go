package usecase

import (
	"context"
	"sync/atomic"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/partmatch-tech/catalog-backend/internal/cfg"
	"github.com/partmatch-tech/catalog-backend/internal/compare"
	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/metrics"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/logger"
)

// RecomputeUseCase выполняет пересчёт датасета: загрузка входов, прогон
// движка сопоставления и коммит новой версии. Одновременно допускается
// только один прогон, повторный запрос отклоняется.
type RecomputeUseCase struct {
	catalogRepo CatalogRepository
	productRepo ProductRepository
	matchRepo   MatchRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	engineCfg   *cfg.EngineCfg
	logger      logger.Logger
	running     atomic.Bool
}

func NewRecomputeUC(
	catalogRepo CatalogRepository,
	productRepo ProductRepository,
	matchRepo MatchRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	engineCfg *cfg.EngineCfg,
	logger logger.Logger,
) *RecomputeUseCase {
	return &RecomputeUseCase{
		catalogRepo: catalogRepo,
		productRepo: productRepo,
		matchRepo:   matchRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		engineCfg:   engineCfg,
		logger:      logger,
	}
}

// RecomputeDataset пересчитывает запрошенные каталоги по очереди. Ошибка
// одного каталога не прерывает прогон: его прежняя версия остаётся видимой,
// остальные каталоги обрабатываются дальше.
func (u *RecomputeUseCase) RecomputeDataset(ctx context.Context, req *RecomputeReq) (*RecomputeRes, error) {
	const op = "RecomputeUseCase.RecomputeDataset"

	catalogs, err := resolveCatalogs(req.Catalogs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !u.running.CompareAndSwap(false, true) {
		return nil, e.Wrap(op, e.ErrRecomputeInProgress)
	}
	defer u.running.Store(false)

	runID := uuid.NewString()
	u.logger.Infof("dataset recompute started: run_id=%s catalogs=%s", runID, catalogLabel(catalogs))

	res := NewRecomputeRes(runID)
	for _, catalog := range catalogs {
		started := time.Now()

		report, err := u.recomputeCatalog(ctx, runID, catalog)
		if err != nil {
			u.logger.Errorf(err, "catalog %s recompute failed", catalog)
			metrics.RecordRecompute(string(catalog), RunStatusFailure, time.Since(started))

			res.Catalogs = append(res.Catalogs, CatalogRunReport{
				Catalog: string(catalog),
				Status:  RunStatusFailure,
				Error:   err.Error(),
			})
			continue
		}

		metrics.RecordRecompute(string(catalog), RunStatusSuccess, time.Since(started))
		metrics.SetDatasetRows(string(catalog), report.Rows)

		res.Catalogs = append(res.Catalogs, *report)
	}

	u.cleanupStaleVersions(ctx)

	res.FinishedAt = time.Now().UTC()
	u.logger.Infof("dataset recompute finished: run_id=%s", runID)

	return res, nil
}

// recomputeCatalog пересчитывает один каталог и коммитит его новую версию.
// Вставка строк, переключение указателя current и outbox-событие выполняются
// в одной транзакции, при любой ошибке прежняя версия остаётся нетронутой.
func (u *RecomputeUseCase) recomputeCatalog(ctx context.Context, runID string, catalog domain.Catalog) (report *CatalogRunReport, err error) {
	const op = "RecomputeUseCase.recomputeCatalog"

	entries, err := u.catalogRepo.GetEntries(ctx, catalog)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	matches, skipped := compare.Run(entries, products, compare.Options{
		PriceDeltaPerc: u.engineCfg.PriceDeltaPerc,
		Workers:        u.engineCfg.Workers,
	})
	for _, entry := range skipped {
		u.logger.Warnf(
			"skipping catalog entry: catalog=%s article=%q brand=%q: %v",
			entry.Catalog, entry.Article, entry.Brand, e.ErrBlankGroupingKey,
		)
	}

	version := domain.NewDatasetVersion(uuid.NewString(), catalog, runID, len(matches))

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	version, err = u.matchRepo.CreateVersion(ctx, version)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rows, err := u.matchRepo.InsertMatches(ctx, version.ID, matches)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Атомарное переключение указателя current на новую версию
	if err = u.matchRepo.PromoteVersion(ctx, version.ID, catalog); err != nil {
		return nil, e.Wrap(op, err)
	}

	matchedProducts, okCount, highCount := countMatchStats(matches)

	event, err := NewDatasetRefreshedEvent(&DatasetRefreshedPayload{
		RunID:       runID,
		Catalog:     string(catalog),
		VersionUID:  version.VersionUID,
		Rows:        rows,
		OkCount:     okCount,
		HighCount:   highCount,
		RefreshedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = u.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление устаревшей сводки из кэша после коммита
	if err := u.cacheRepo.DeleteStats(ctx); err != nil {
		u.logger.Warnf("Failed to invalidate catalog stats cache: %v", e.Wrap(op, err))
	}

	u.logger.Infof(
		"catalog %s recomputed: version=%s entries=%d rows=%d matched=%d ok=%d high=%d skipped=%d",
		catalog, version.VersionUID, len(entries), rows, matchedProducts, okCount, highCount, len(skipped),
	)

	return &CatalogRunReport{
		Catalog:         string(catalog),
		Status:          RunStatusSuccess,
		VersionUID:      version.VersionUID,
		Entries:         len(entries),
		SkippedEntries:  len(skipped),
		Rows:            rows,
		MatchedProducts: matchedProducts,
		OkCount:         okCount,
		HighCount:       highCount,
	}, nil
}

// cleanupStaleVersions удаляет версии, устаревшие дольше грейс-периода.
// Читатели, начавшие запрос до переключения, успевают дочитать свою версию.
func (u *RecomputeUseCase) cleanupStaleVersions(ctx context.Context) {
	const op = "RecomputeUseCase.cleanupStaleVersions"

	deleted, err := u.matchRepo.DeleteStaleVersions(ctx, time.Now().Add(-u.engineCfg.VersionGracePeriod))
	if err != nil {
		u.logger.Warnf("Failed to delete stale dataset versions: %v", e.Wrap(op, err))
		return
	}

	if deleted > 0 {
		u.logger.Infof("deleted %d stale dataset versions", deleted)
	}
}

func countMatchStats(matches []domain.CatalogMatch) (matched, ok, high int) {
	for i := range matches {
		matched += matches[i].MatchedProductsCount
		ok += matches[i].PriceMatchOkCount
		high += matches[i].PriceMatchHighCount
	}

	return matched, ok, high
}
