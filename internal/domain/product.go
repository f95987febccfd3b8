package domain

import "github.com/shopspring/decimal"

// Product описывает объявление с маркетплейса. Продукты пишутся внешним
// скрейпером, здесь они только читаются.
type Product struct {
	PartID           string
	Code             string
	OemCode          string
	ManufacturerCode string
	OtherCodes       []string
	Price            *decimal.Decimal
	URL              string
	SellerEmail      string
	Images           []string
	CarDetails       map[string]any
	ItemDescription  map[string]any
}

func NewProduct(partID, code string, price *decimal.Decimal) *Product {
	return &Product{
		PartID: partID,
		Code:   code,
		Price:  price,
	}
}
