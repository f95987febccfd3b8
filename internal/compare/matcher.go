package compare

import (
	"strings"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
)

// codeSource — именованный источник кодов продукта.
type codeSource struct {
	label  domain.MatchedBy
	values func(p *domain.Product) []string
}

// matchSources задаёт порядок перебора источников: oem_code, manufacturer_code, other_codes.
// Побеждает первый источник, давший совпадение.
var matchSources = []codeSource{
	{
		label: domain.MatchedByOemCode,
		values: func(p *domain.Product) []string {
			if p.OemCode == "" {
				return nil
			}
			return []string{p.OemCode}
		},
	},
	{
		label: domain.MatchedByManufacturerCode,
		values: func(p *domain.Product) []string {
			if p.ManufacturerCode == "" {
				return nil
			}
			return []string{p.ManufacturerCode}
		},
	},
	{
		label:  domain.MatchedByOtherCodes,
		values: func(p *domain.Product) []string { return p.OtherCodes },
	},
}

// NormalizeCode приводит референс-код к каноничному виду для точного сравнения.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SplitOesNumbers разбирает поле oes_numbers позиции каталога: коды разделены "|",
// пробелы по краям отбрасываются, пустые и повторные коды пропускаются.
// Порядок первых вхождений сохраняется.
func SplitOesNumbers(oesNumbers string) []string {
	parts := strings.Split(oesNumbers, "|")

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key := NormalizeCode(part)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, part)
	}

	return out
}

// MatchEntry возвращает продукты, сопоставленные позиции каталога.
// Источники кодов каждого продукта перебираются в порядке matchSources,
// сравнение точное после нормализации регистра и крайних пробелов.
// Продукт без совпадений в результат не попадает.
func MatchEntry(entry *domain.CatalogEntry, products []domain.Product) []domain.MatchedProduct {
	codes := SplitOesNumbers(entry.OesNumbers)
	if len(codes) == 0 {
		return nil
	}

	codeSet := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		codeSet[NormalizeCode(code)] = struct{}{}
	}

	var matched []domain.MatchedProduct
	for i := range products {
		product := &products[i]

		source, value, ok := probeSources(product, codeSet)
		if !ok {
			continue
		}

		matched = append(matched, domain.MatchedProduct{
			PartID:       product.PartID,
			Code:         product.Code,
			Price:        product.Price,
			URL:          product.URL,
			SellerEmail:  product.SellerEmail,
			MatchedBy:    source,
			MatchedValue: value,
			ProductData:  productData(product),
		})
	}

	return matched
}

// probeSources ищет первый источник кода продукта, значение которого входит
// в набор кодов позиции. Возвращает источник и исходное значение кода.
func probeSources(p *domain.Product, codeSet map[string]struct{}) (domain.MatchedBy, string, bool) {
	for _, src := range matchSources {
		for _, raw := range src.values(p) {
			norm := NormalizeCode(raw)
			if norm == "" {
				continue
			}
			if _, ok := codeSet[norm]; ok {
				return src.label, raw, true
			}
		}
	}

	return "", "", false
}

// productData собирает сквозные данные продукта, не вынесенные в типизированные поля.
func productData(p *domain.Product) map[string]any {
	return map[string]any{
		"images":           p.Images,
		"car_details":      p.CarDetails,
		"item_description": p.ItemDescription,
	}
}
