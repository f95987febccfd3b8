package converter

// CatalogMatchRedisModel — строка датасета в JSON-кэше.
// Цены хранятся числами JSON, как и в колонке matched_products.
type CatalogMatchRedisModel struct {
	ID                   int64                      `json:"id"`
	Catalog              string                     `json:"catalog"`
	Article              string                     `json:"article"`
	Brand                string                     `json:"brand"`
	CatalogOesNumbers    string                     `json:"catalog_oes_numbers"`
	CatalogPriceEUR      *float64                   `json:"catalog_price_eur"`
	CatalogPriceUSD      *float64                   `json:"catalog_price_usd"`
	Segment              string                     `json:"segment"`
	MatchedProductsCount int                        `json:"matched_products_count"`
	MatchedProductsIDs   []string                   `json:"matched_products_ids"`
	PriceMatchOkCount    int                        `json:"price_match_ok_count"`
	PriceMatchHighCount  int                        `json:"price_match_high_count"`
	AvgDBPrice           *float64                   `json:"avg_db_price"`
	MinDBPrice           *float64                   `json:"min_db_price"`
	MaxDBPrice           *float64                   `json:"max_db_price"`
	CatalogData          map[string]any             `json:"catalog_data"`
	MatchedProducts      []MatchedProductRedisModel `json:"matched_products"`
}

// MatchedProductRedisModel — сопоставленный продукт внутри кэшированной строки.
type MatchedProductRedisModel struct {
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

// CatalogStatRedisModel — сводка каталога в JSON-кэше.
type CatalogStatRedisModel struct {
	Catalog            string   `json:"catalog"`
	VersionUID         string   `json:"version_uid"`
	Items              int64    `json:"items"`
	MatchedProducts    int64    `json:"matched_products"`
	OkCount            int64    `json:"ok_count"`
	HighCount          int64    `json:"high_count"`
	AvgDBPrice         *float64 `json:"avg_db_price"`
	ItemsWithOkPrice   int64    `json:"items_with_ok_price"`
	ItemsOnlyHighPrice int64    `json:"items_only_high_price"`
}
