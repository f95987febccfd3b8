package compare

import (
	"strings"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// oesJoinSeparator — разделитель кодов в схлопнутом поле oes_numbers.
const oesJoinSeparator = " | "

// EntryResult — результат сопоставления одной позиции каталога.
type EntryResult struct {
	Entry   *domain.CatalogEntry
	Matches []domain.MatchedProduct
}

// Aggregate схлопывает результаты сопоставления по точному ключу (артикул, бренд).
// Позиции с пустым артикулом или брендом исключаются и возвращаются вторым
// значением. Порядок строк определяется первым появлением ключа, внутри группы
// коды и продукты объединяются без повторов в порядке первых вхождений.
func Aggregate(results []EntryResult) ([]domain.CatalogMatch, []*domain.CatalogEntry) {
	var (
		order   []domain.GroupKey
		skipped []*domain.CatalogEntry
	)
	groups := make(map[domain.GroupKey]*groupAccum)

	for _, res := range results {
		entry := res.Entry
		if strings.TrimSpace(entry.Article) == "" || strings.TrimSpace(entry.Brand) == "" {
			skipped = append(skipped, entry)
			continue
		}

		key := domain.NewGroupKey(entry.Article, entry.Brand)
		acc, ok := groups[key]
		if !ok {
			acc = newGroupAccum(entry)
			groups[key] = acc
			order = append(order, key)
		}

		acc.addCodes(SplitOesNumbers(entry.OesNumbers))
		acc.addMatches(res.Matches)
	}

	matches := make([]domain.CatalogMatch, 0, len(order))
	for _, key := range order {
		matches = append(matches, groups[key].build(key))
	}

	return matches, skipped
}

// groupAccum накапливает данные одной группы (артикул, бренд).
// Цена, сегмент и сквозные данные берутся из первой позиции группы.
type groupAccum struct {
	first    *domain.CatalogEntry
	codes    []string
	codeSeen map[string]struct{}
	products []domain.MatchedProduct
	idSeen   map[string]struct{}
}

func newGroupAccum(first *domain.CatalogEntry) *groupAccum {
	return &groupAccum{
		first:    first,
		codeSeen: make(map[string]struct{}),
		idSeen:   make(map[string]struct{}),
	}
}

func (g *groupAccum) addCodes(codes []string) {
	for _, code := range codes {
		key := NormalizeCode(code)
		if _, ok := g.codeSeen[key]; ok {
			continue
		}
		g.codeSeen[key] = struct{}{}
		g.codes = append(g.codes, code)
	}
}

// addMatches добавляет продукты группы, повторные part_id пропускаются.
func (g *groupAccum) addMatches(matches []domain.MatchedProduct) {
	for _, m := range matches {
		if _, ok := g.idSeen[m.PartID]; ok {
			continue
		}
		g.idSeen[m.PartID] = struct{}{}
		g.products = append(g.products, m)
	}
}

func (g *groupAccum) build(key domain.GroupKey) domain.CatalogMatch {
	ids := make([]string, 0, len(g.products))
	okCount, highCount := 0, 0
	var priced []decimal.Decimal

	for _, p := range g.products {
		ids = append(ids, p.PartID)

		switch p.PriceClassification {
		case domain.PriceOK:
			okCount++
		case domain.PriceHigh:
			highCount++
		}

		if p.Price != nil {
			priced = append(priced, *p.Price)
		}
	}

	avgPrice, minPrice, maxPrice := priceStats(priced)

	return domain.CatalogMatch{
		Catalog:              g.first.Catalog,
		Article:              key.Article,
		Brand:                key.Brand,
		CatalogOesNumbers:    strings.Join(g.codes, oesJoinSeparator),
		CatalogPriceEUR:      g.first.PriceEUR,
		CatalogPriceUSD:      g.first.PriceUSD,
		Segment:              g.first.Segment,
		MatchedProductsCount: len(g.products),
		MatchedProductsIDs:   ids,
		PriceMatchOkCount:    okCount,
		PriceMatchHighCount:  highCount,
		AvgDBPrice:           avgPrice,
		MinDBPrice:           minPrice,
		MaxDBPrice:           maxPrice,
		CatalogData:          catalogData(g.first),
		MatchedProducts:      g.products,
	}
}

// priceStats возвращает среднюю, минимальную и максимальную цену.
// Для пустого набора все значения nil.
func priceStats(prices []decimal.Decimal) (avg, min, max *decimal.Decimal) {
	if len(prices) == 0 {
		return nil, nil, nil
	}

	sum := decimal.Zero
	minV, maxV := prices[0], prices[0]
	for _, p := range prices {
		sum = sum.Add(p)
		if p.LessThan(minV) {
			minV = p
		}
		if p.GreaterThan(maxV) {
			maxV = p
		}
	}

	avgV := sum.Div(decimal.NewFromInt(int64(len(prices)))).Round(2)

	return &avgV, &minV, &maxV
}

// catalogData собирает сквозные данные позиции, не вынесенные в типизированные поля.
func catalogData(entry *domain.CatalogEntry) map[string]any {
	data := make(map[string]any, len(entry.Extra)+1)
	for k, v := range entry.Extra {
		data[k] = v
	}
	if entry.Remains != nil {
		data["remains"] = entry.Remains.InexactFloat64()
	}

	return data
}
