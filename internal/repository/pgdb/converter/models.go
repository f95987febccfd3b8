package converter

import "time"

// CatalogEntryModel представляет запись таблицы catalog_entries в PostgreSQL.
// Числовые колонки читаются текстом и парсятся в decimal на стороне приложения.
type CatalogEntryModel struct {
	ID         int64   `db:"id"`
	Catalog    string  `db:"catalog"`
	Article    *string `db:"article"`
	Brand      *string `db:"brand"`
	OesNumbers *string `db:"oes_numbers"`
	PriceEUR   *string `db:"price_eur"`
	PriceUSD   *string `db:"price_usd"`
	Segment    *string `db:"segment"`
	Remains    *string `db:"remains"`
	Extra      []byte  `db:"extra"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID              int64   `db:"id"`
	PartID          string  `db:"part_id"`
	Code            *string `db:"code"`
	Price           *string `db:"price"`
	URL             *string `db:"url"`
	SellerEmail     *string `db:"seller_email"`
	Images          []byte  `db:"images"`
	CarDetails      []byte  `db:"car_details"`
	ItemDescription []byte  `db:"item_description"`
}

// DatasetVersionModel представляет запись таблицы dataset_versions в PostgreSQL.
type DatasetVersionModel struct {
	ID         int64      `db:"id"`
	VersionUID string     `db:"version_uid"`
	Catalog    string     `db:"catalog"`
	Status     string     `db:"status"`
	RunID      string     `db:"run_id"`
	ItemCount  int        `db:"item_count"`
	CreatedAt  time.Time  `db:"created_at"`
	PromotedAt *time.Time `db:"promoted_at"`
	StaleAt    *time.Time `db:"stale_at"`
}

// CatalogMatchModel представляет запись таблицы catalog_matches в PostgreSQL.
type CatalogMatchModel struct {
	ID                   int64    `db:"id"`
	VersionID            int64    `db:"version_id"`
	Catalog              string   `db:"catalog"`
	Article              string   `db:"article"`
	Brand                string   `db:"brand"`
	CatalogOesNumbers    string   `db:"catalog_oes_numbers"`
	CatalogPriceEUR      *string  `db:"catalog_price_eur"`
	CatalogPriceUSD      *string  `db:"catalog_price_usd"`
	Segment              string   `db:"segment"`
	MatchedProductsCount int      `db:"matched_products_count"`
	MatchedProductsIDs   []string `db:"matched_products_ids"`
	PriceMatchOkCount    int      `db:"price_match_ok_count"`
	PriceMatchHighCount  int      `db:"price_match_high_count"`
	AvgDBPrice           *string  `db:"avg_db_price"`
	MinDBPrice           *string  `db:"min_db_price"`
	MaxDBPrice           *string  `db:"max_db_price"`
	CatalogData          []byte   `db:"catalog_data"`
	MatchedProducts      []byte   `db:"matched_products"`
}

// MatchedProductJSON — элемент массива matched_products в колонке JSONB.
// Цена хранится числом JSON, поэтому поле float64, а не decimal.
type MatchedProductJSON struct {
	PartID              string         `json:"part_id"`
	Code                string         `json:"code"`
	Price               *float64       `json:"price"`
	URL                 string         `json:"url"`
	SellerEmail         string         `json:"seller_email"`
	MatchedBy           string         `json:"matched_by"`
	MatchedValue        string         `json:"matched_value"`
	PriceClassification string         `json:"price_classification"`
	ProductData         map[string]any `json:"product_data"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	Catalog     string     `db:"catalog"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
