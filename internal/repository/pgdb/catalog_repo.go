package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

// CatalogRepo реализует чтение позиций каталогов поверх PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
	conv converter.CatalogEntryConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.CatalogEntryConverter) *CatalogRepo {
	return &CatalogRepo{
		pool: pool,
		conv: conv,
	}
}

// GetEntries возвращает все позиции каталога в порядке загрузки.
// Таблицу наполняет внешний загрузчик, репозиторий её не пишет.
func (c *CatalogRepo) GetEntries(ctx context.Context, catalog domain.Catalog) ([]domain.CatalogEntry, error) {
	query := `
		SELECT catalog, article, brand, oes_numbers, price_eur, price_usd, segment, remains, extra
		FROM catalog_entries
		WHERE catalog = $1
		ORDER BY id
	`

	rows, err := c.pool.Query(ctx, query, string(catalog))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.CatalogEntry, 0)
	for rows.Next() {
		var model converter.CatalogEntryModel
		if err := rows.Scan(
			&model.Catalog, &model.Article, &model.Brand, &model.OesNumbers,
			&model.PriceEUR, &model.PriceUSD, &model.Segment, &model.Remains, &model.Extra,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
