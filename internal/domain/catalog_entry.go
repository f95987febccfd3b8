package domain

import "github.com/shopspring/decimal"

// Catalog — имя источника каталога.
type Catalog string

const (
	CatalogEUR Catalog = "eur"
	CatalogGUR Catalog = "gur"
)

// Catalogs — фиксированный порядок обработки каталогов.
var Catalogs = []Catalog{CatalogEUR, CatalogGUR}

// KnownCatalog сообщает, относится ли имя к одному из поддерживаемых каталогов.
func KnownCatalog(name string) bool {
	for _, c := range Catalogs {
		if string(c) == name {
			return true
		}
	}

	return false
}

// CatalogEntry описывает одну позицию каталога запчастей.
// Extra хранит неизвестные поля источника без изменений.
type CatalogEntry struct {
	Catalog    Catalog
	Article    string
	Brand      string
	OesNumbers string // референс-коды, разделённые " | "
	PriceEUR   *decimal.Decimal
	PriceUSD   *decimal.Decimal
	Segment    string
	Remains    *decimal.Decimal
	Extra      map[string]any
}

func NewCatalogEntry(catalog Catalog, article, brand, oesNumbers string) *CatalogEntry {
	return &CatalogEntry{
		Catalog:    catalog,
		Article:    article,
		Brand:      brand,
		OesNumbers: oesNumbers,
	}
}
