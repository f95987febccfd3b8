package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
)

// ProductRepo реализует чтение спарсенных продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetAll возвращает все продукты базы объявлений.
// Таблицу наполняет внешний скрейпер, репозиторий её не пишет.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT part_id, code, price::text, url, seller_email, images, car_details, item_description
		FROM products
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.PartID, &model.Code, &model.Price, &model.URL,
			&model.SellerEmail, &model.Images, &model.CarDetails, &model.ItemDescription,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
