package compare

import (
	"strings"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// topSegment — сегмент каталога с допуском к цене.
const topSegment = "TOP"

// Classify возвращает вердикт цены продукта относительно каталожной цены EUR.
// Без цены продукта или без положительной цены каталога вердикт NA.
// Для сегмента TOP порог равен цене каталога, умноженной на priceDeltaPerc,
// для остальных сегментов порогом служит сама цена каталога.
func Classify(price, priceEUR *decimal.Decimal, segment string, priceDeltaPerc decimal.Decimal) domain.PriceClassification {
	if price == nil {
		return domain.PriceNA
	}
	if priceEUR == nil || !priceEUR.IsPositive() {
		return domain.PriceNA
	}

	threshold := *priceEUR
	if isTopSegment(segment) {
		threshold = priceEUR.Mul(priceDeltaPerc)
	}

	if price.LessThanOrEqual(threshold) {
		return domain.PriceOK
	}

	return domain.PriceHigh
}

// isTopSegment сравнивает сегмент с TOP без учёта регистра и крайних пробелов.
func isTopSegment(segment string) bool {
	return strings.EqualFold(strings.TrimSpace(segment), topSegment)
}
