package pgdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/partmatch-tech/catalog-backend/pkg/tr"
	"github.com/shopspring/decimal"
)

// Размер пачки вставки строк датасета.
const insertMatchesBatchSize = 500

// MatchRepo реализует версионированные снимки датасета поверх PostgreSQL.
// Методы записи работают в транзакции из контекста, чтение ходит в пул напрямую.
type MatchRepo struct {
	pool        *pgxpool.Pool
	conv        converter.CatalogMatchConverter
	versionConv converter.DatasetVersionConverter
}

func NewMatchRepo(pool *pgxpool.Pool, conv converter.CatalogMatchConverter, versionConv converter.DatasetVersionConverter) *MatchRepo {
	return &MatchRepo{
		pool:        pool,
		conv:        conv,
		versionConv: versionConv,
	}
}

// CreateVersion создаёт черновую версию датасета.
func (m *MatchRepo) CreateVersion(ctx context.Context, version *domain.DatasetVersion) (*domain.DatasetVersion, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO dataset_versions (version_uid, catalog, status, run_id, item_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	created := *version
	err = tx.QueryRow(ctx, query,
		version.VersionUID, string(version.Catalog), string(version.Status), version.RunID, version.ItemCount,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

// InsertMatches вставляет строки датасета в черновую версию пачками.
func (m *MatchRepo) InsertMatches(ctx context.Context, versionID int64, matches []domain.CatalogMatch) (int, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO catalog_matches (
			version_id, catalog, article, brand, catalog_oes_numbers,
			catalog_price_eur, catalog_price_usd, segment,
			matched_products_count, matched_products_ids,
			price_match_ok_count, price_match_high_count,
			avg_db_price, min_db_price, max_db_price,
			catalog_data, matched_products
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	total := 0
	for i := 0; i < len(matches); i += insertMatchesBatchSize {
		j := i + insertMatchesBatchSize
		if j > len(matches) {
			j = len(matches)
		}

		batch := &pgx.Batch{}
		for k := i; k < j; k++ {
			model, err := m.conv.ToModel(versionID, &matches[k])
			if err != nil {
				return total, e.Wrap(whereami.WhereAmI(), err)
			}

			batch.Queue(query,
				model.VersionID, model.Catalog, model.Article, model.Brand, model.CatalogOesNumbers,
				model.CatalogPriceEUR, model.CatalogPriceUSD, model.Segment,
				model.MatchedProductsCount, model.MatchedProductsIDs,
				model.PriceMatchOkCount, model.PriceMatchHighCount,
				model.AvgDBPrice, model.MinDBPrice, model.MaxDBPrice,
				model.CatalogData, model.MatchedProducts,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for k := i; k < j; k++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return total, e.Wrap(whereami.WhereAmI(), err)
			}
			total++
		}
		if err := results.Close(); err != nil {
			return total, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return total, nil
}

// PromoteVersion атомарно переключает указатель current каталога на новую версию:
// прежняя current помечается stale, черновик становится current.
func (m *MatchRepo) PromoteVersion(ctx context.Context, versionID int64, catalog domain.Catalog) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	demote := `
		UPDATE dataset_versions
		SET status = 'stale', stale_at = NOW()
		WHERE catalog = $1 AND status = 'current' AND id <> $2
	`
	if _, err := tx.Exec(ctx, demote, string(catalog), versionID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	promote := `
		UPDATE dataset_versions
		SET status = 'current', promoted_at = NOW()
		WHERE id = $1 AND status = 'draft'
	`
	tag, err := tx.Exec(ctx, promote, versionID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() != 1 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("version %d is not a draft", versionID))
	}

	return nil
}

// DeleteStaleVersions удаляет устаревшие версии, помеченные stale раньше olderThan.
// Строки датасета удаляются каскадом.
func (m *MatchRepo) DeleteStaleVersions(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		DELETE FROM dataset_versions
		WHERE status = 'stale' AND stale_at < $1
	`

	tag, err := m.pool.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}

// GetCurrentVersions возвращает текущие версии запрошенных каталогов.
// Пустой список каталогов означает все каталоги.
func (m *MatchRepo) GetCurrentVersions(ctx context.Context, catalogs []domain.Catalog) ([]domain.DatasetVersion, error) {
	query := `
		SELECT id, version_uid, catalog, status, run_id, item_count, created_at, promoted_at, stale_at
		FROM dataset_versions
		WHERE status = 'current'
	`

	args := make([]any, 0, 1)
	if len(catalogs) > 0 {
		query += ` AND catalog = ANY($1)`
		args = append(args, catalogsToStrings(catalogs))
	}
	query += ` ORDER BY catalog`

	rows, err := m.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.DatasetVersionModel, 0, len(catalogs))
	for rows.Next() {
		var model converter.DatasetVersionModel
		if err := rows.Scan(
			&model.ID, &model.VersionUID, &model.Catalog, &model.Status, &model.RunID,
			&model.ItemCount, &model.CreatedAt, &model.PromotedAt, &model.StaleAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.versionConv.ToArrEntity(models), nil
}

// GetMatches возвращает страницу строк датасета по фильтрам.
// Сортировка: больше OK-цен, больше совпадений, затем каталог, артикул, бренд.
func (m *MatchRepo) GetMatches(ctx context.Context, versionIDs []int64, filter usecase.MatchFilter) ([]usecase.CatalogMatchInfo, error) {
	where, args := buildMatchWhere(versionIDs, filter)

	query := `
		SELECT id, version_id, catalog, article, brand, catalog_oes_numbers,
			catalog_price_eur, catalog_price_usd, segment,
			matched_products_count, matched_products_ids,
			price_match_ok_count, price_match_high_count,
			avg_db_price, min_db_price, max_db_price,
			catalog_data, matched_products
		FROM catalog_matches
	` + where + `
		ORDER BY price_match_ok_count DESC, matched_products_count DESC, catalog, article, brand
	`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := m.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CatalogMatchInfo, 0)
	for rows.Next() {
		info, err := m.scanMatch(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// CountMatches возвращает число строк датасета под теми же фильтрами, что и GetMatches.
func (m *MatchRepo) CountMatches(ctx context.Context, versionIDs []int64, filter usecase.MatchFilter) (int64, error) {
	where, args := buildMatchWhere(versionIDs, filter)

	var total int64
	err := m.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_matches`+where, args...).Scan(&total)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return total, nil
}

// GetMatchByID возвращает строку датасета по идентификатору в пределах перечисленных версий.
// Отсутствие строки не считается ошибкой.
func (m *MatchRepo) GetMatchByID(ctx context.Context, id int64, versionIDs []int64) (*usecase.CatalogMatchInfo, error) {
	query := `
		SELECT id, version_id, catalog, article, brand, catalog_oes_numbers,
			catalog_price_eur, catalog_price_usd, segment,
			matched_products_count, matched_products_ids,
			price_match_ok_count, price_match_high_count,
			avg_db_price, min_db_price, max_db_price,
			catalog_data, matched_products
		FROM catalog_matches
		WHERE id = $1 AND version_id = ANY($2)
	`

	rows, err := m.pool.Query(ctx, query, id, versionIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return nil, nil
	}

	info, err := m.scanMatch(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return info, nil
}

// GetVersionStats считает сводку по одной версии датасета.
func (m *MatchRepo) GetVersionStats(ctx context.Context, version *domain.DatasetVersion) (*usecase.CatalogStatInfo, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(matched_products_count), 0),
			COALESCE(SUM(price_match_ok_count), 0),
			COALESCE(SUM(price_match_high_count), 0),
			COUNT(*) FILTER (WHERE price_match_ok_count > 0),
			COUNT(*) FILTER (WHERE price_match_ok_count = 0 AND price_match_high_count > 0),
			(
				SELECT AVG((mp->>'price')::numeric)::text
				FROM catalog_matches cm
				CROSS JOIN LATERAL jsonb_array_elements(cm.matched_products) mp
				WHERE cm.version_id = $1 AND mp->>'price' IS NOT NULL
			)
		FROM catalog_matches
		WHERE version_id = $1
	`

	stat := usecase.CatalogStatInfo{
		Catalog:    string(version.Catalog),
		VersionUID: version.VersionUID,
	}
	var avg *string
	err := m.pool.QueryRow(ctx, query, version.ID).Scan(
		&stat.Items, &stat.MatchedProducts, &stat.OkCount, &stat.HighCount,
		&stat.ItemsWithOkPrice, &stat.ItemsOnlyHighPrice, &avg,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if d := parseStatDecimal(avg); d != nil {
		rounded := d.Round(2)
		stat.AvgDBPrice = &rounded
	}

	return &stat, nil
}

// GetSellerStats считает сводку предложений по продавцам в перечисленных версиях.
func (m *MatchRepo) GetSellerStats(ctx context.Context, versionIDs []int64) ([]usecase.SellerStatInfo, error) {
	query := `
		SELECT
			mp->>'seller_email' AS seller,
			COUNT(*) AS total_matches,
			COUNT(*) FILTER (WHERE mp->>'price_classification' = 'OK') AS ok_matches,
			COUNT(*) FILTER (WHERE mp->>'price_classification' = 'HIGH') AS high_matches,
			COUNT(DISTINCT mp->>'part_id') AS total_products
		FROM catalog_matches cm
		CROSS JOIN LATERAL jsonb_array_elements(cm.matched_products) mp
		WHERE cm.version_id = ANY($1) AND COALESCE(mp->>'seller_email', '') <> ''
		GROUP BY mp->>'seller_email'
		ORDER BY ok_matches DESC, seller
	`

	rows, err := m.pool.Query(ctx, query, versionIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SellerStatInfo, 0)
	for rows.Next() {
		var stat usecase.SellerStatInfo
		if err := rows.Scan(
			&stat.SellerEmail, &stat.TotalMatches, &stat.OkMatches, &stat.HighMatches, &stat.TotalProducts,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (m *MatchRepo) scanMatch(rows pgx.Rows) (*usecase.CatalogMatchInfo, error) {
	var model converter.CatalogMatchModel
	if err := rows.Scan(
		&model.ID, &model.VersionID, &model.Catalog, &model.Article, &model.Brand, &model.CatalogOesNumbers,
		&model.CatalogPriceEUR, &model.CatalogPriceUSD, &model.Segment,
		&model.MatchedProductsCount, &model.MatchedProductsIDs,
		&model.PriceMatchOkCount, &model.PriceMatchHighCount,
		&model.AvgDBPrice, &model.MinDBPrice, &model.MaxDBPrice,
		&model.CatalogData, &model.MatchedProducts,
	); err != nil {
		return nil, err
	}

	return m.conv.ToInfo(&model)
}

// buildMatchWhere собирает условие выборки строк датасета.
// Фильтр по классификации ищет вердикт среди вложенных продуктов строки.
func buildMatchWhere(versionIDs []int64, filter usecase.MatchFilter) (string, []any) {
	conditions := []string{"version_id = ANY($1)"}
	args := []any{versionIDs}

	if filter.Segment != nil {
		args = append(args, *filter.Segment)
		conditions = append(conditions, fmt.Sprintf("segment = $%d", len(args)))
	}
	if filter.PriceClassification != nil {
		args = append(args, string(*filter.PriceClassification))
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(matched_products) mp WHERE mp->>'price_classification' = $%d)",
			len(args),
		))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func catalogsToStrings(catalogs []domain.Catalog) []string {
	out := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, string(c))
	}

	return out
}

// parseStatDecimal парсит агрегат из БД, NULL и нечисловой текст дают nil.
func parseStatDecimal(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}

	return &d
}
