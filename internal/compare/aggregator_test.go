package compare

import (
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
)

func TestAggregateUnionCodes(t *testing.T) {
	e1 := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "X | Y")
	e2 := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "Z")

	matches, skipped := Aggregate([]EntryResult{{Entry: e1}, {Entry: e2}})
	if len(skipped) != 0 {
		t.Fatalf("skipped=%d", len(skipped))
	}
	if len(matches) != 1 {
		t.Fatalf("len=%d", len(matches))
	}
	if matches[0].CatalogOesNumbers != "X | Y | Z" {
		t.Fatalf("oes_numbers=%q", matches[0].CatalogOesNumbers)
	}
}

func TestAggregateGroupStats(t *testing.T) {
	e1 := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "A1")
	e1.PriceEUR = dp("100")
	e1.Segment = "TOP"

	e2 := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "A2")
	e2.PriceEUR = dp("999")
	e2.Segment = "ECO"

	results := []EntryResult{
		{Entry: e1, Matches: []domain.MatchedProduct{
			{PartID: "p1", Price: dp("100"), PriceClassification: domain.PriceOK},
			{PartID: "p2", Price: dp("200"), PriceClassification: domain.PriceHigh},
		}},
		{Entry: e2, Matches: []domain.MatchedProduct{
			{PartID: "p1", Price: dp("100"), PriceClassification: domain.PriceHigh},
			{PartID: "p3", PriceClassification: domain.PriceNA},
		}},
	}

	matches, _ := Aggregate(results)
	if len(matches) != 1 {
		t.Fatalf("len=%d", len(matches))
	}

	m := matches[0]
	if m.MatchedProductsCount != 3 {
		t.Fatalf("count=%d", m.MatchedProductsCount)
	}
	if len(m.MatchedProductsIDs) != 3 || m.MatchedProductsIDs[0] != "p1" || m.MatchedProductsIDs[1] != "p2" || m.MatchedProductsIDs[2] != "p3" {
		t.Fatalf("ids=%v", m.MatchedProductsIDs)
	}
	// Повторный p1 отброшен, остаётся вердикт первого вхождения.
	if m.PriceMatchOkCount != 1 || m.PriceMatchHighCount != 1 {
		t.Fatalf("ok=%d high=%d", m.PriceMatchOkCount, m.PriceMatchHighCount)
	}
	// Продукт без цены не входит в среднее.
	if m.AvgDBPrice == nil || !m.AvgDBPrice.Equal(*dp("150.00")) {
		t.Fatalf("avg=%v", m.AvgDBPrice)
	}
	if m.MinDBPrice == nil || !m.MinDBPrice.Equal(*dp("100")) {
		t.Fatalf("min=%v", m.MinDBPrice)
	}
	if m.MaxDBPrice == nil || !m.MaxDBPrice.Equal(*dp("200")) {
		t.Fatalf("max=%v", m.MaxDBPrice)
	}
	// Цена и сегмент группы берутся из первой позиции.
	if m.CatalogPriceEUR == nil || !m.CatalogPriceEUR.Equal(*dp("100")) || m.Segment != "TOP" {
		t.Fatalf("price=%v segment=%q", m.CatalogPriceEUR, m.Segment)
	}
}

func TestAggregateNoPricedProducts(t *testing.T) {
	e := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "A1")

	matches, _ := Aggregate([]EntryResult{{Entry: e, Matches: []domain.MatchedProduct{
		{PartID: "p1", PriceClassification: domain.PriceNA},
	}}})
	if len(matches) != 1 {
		t.Fatalf("len=%d", len(matches))
	}

	m := matches[0]
	if m.AvgDBPrice != nil || m.MinDBPrice != nil || m.MaxDBPrice != nil {
		t.Fatalf("expected nil price stats: %+v", m)
	}
}

func TestAggregateSkipsBlankKeys(t *testing.T) {
	blankArticle := domain.NewCatalogEntry(domain.CatalogEUR, "  ", "BR", "X")
	blankBrand := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "", "X")
	valid := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BR", "X")

	matches, skipped := Aggregate([]EntryResult{
		{Entry: blankArticle},
		{Entry: blankBrand},
		{Entry: valid},
	})
	if len(matches) != 1 {
		t.Fatalf("len=%d", len(matches))
	}
	if len(skipped) != 2 || skipped[0] != blankArticle || skipped[1] != blankBrand {
		t.Fatalf("skipped=%v", skipped)
	}
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	b := domain.NewCatalogEntry(domain.CatalogEUR, "B", "BR", "X")
	a := domain.NewCatalogEntry(domain.CatalogEUR, "A", "BR", "Y")
	b2 := domain.NewCatalogEntry(domain.CatalogEUR, "B", "BR", "Z")

	matches, _ := Aggregate([]EntryResult{{Entry: b}, {Entry: a}, {Entry: b2}})
	if len(matches) != 2 {
		t.Fatalf("len=%d", len(matches))
	}
	if matches[0].Article != "B" || matches[1].Article != "A" {
		t.Fatalf("order: %s, %s", matches[0].Article, matches[1].Article)
	}
}
