package domain

import "github.com/shopspring/decimal"

// CatalogMatch — агрегированная строка датасета: одна позиция каталога
// (после схлопывания вариантов по артикулу и бренду) со всеми
// сопоставленными продуктами и пересчитанной статистикой цен.
type CatalogMatch struct {
	ID                   int64
	Catalog              Catalog
	Article              string
	Brand                string
	CatalogOesNumbers    string
	CatalogPriceEUR      *decimal.Decimal
	CatalogPriceUSD      *decimal.Decimal
	Segment              string
	MatchedProductsCount int
	MatchedProductsIDs   []string
	PriceMatchOkCount    int
	PriceMatchHighCount  int
	AvgDBPrice           *decimal.Decimal
	MinDBPrice           *decimal.Decimal
	MaxDBPrice           *decimal.Decimal
	CatalogData          map[string]any
	MatchedProducts      []MatchedProduct
}

// GroupKey — ключ группировки строк датасета.
type GroupKey struct {
	Article string
	Brand   string
}

func NewGroupKey(article, brand string) GroupKey {
	return GroupKey{Article: article, Brand: brand}
}
