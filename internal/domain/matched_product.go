package domain

import "github.com/shopspring/decimal"

// MatchedBy — источник кода продукта, по которому найдено совпадение.
type MatchedBy string

const (
	MatchedByOemCode          MatchedBy = "oem_code"
	MatchedByManufacturerCode MatchedBy = "manufacturer_code"
	MatchedByOtherCodes       MatchedBy = "other_codes"
)

// PriceClassification — вердикт сравнения цены объявления с каталожной.
type PriceClassification string

const (
	PriceOK   PriceClassification = "OK"
	PriceHigh PriceClassification = "HIGH"
	PriceNA   PriceClassification = "NA"
)

// KnownClassification сообщает, допустимо ли значение фильтра классификации.
func KnownClassification(v string) bool {
	switch PriceClassification(v) {
	case PriceOK, PriceHigh, PriceNA:
		return true
	default:
		return false
	}
}

// MatchedProduct — продукт, сопоставленный позиции каталога по одному из кодов.
type MatchedProduct struct {
	PartID              string
	Code                string
	Price               *decimal.Decimal
	URL                 string
	SellerEmail         string
	MatchedBy           MatchedBy
	MatchedValue        string
	PriceClassification PriceClassification
	ProductData         map[string]any
}
