package compare

import (
	"fmt"
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func TestRun(t *testing.T) {
	top := domain.NewCatalogEntry(domain.CatalogEUR, "ART-1", "BR", "A1")
	top.PriceEUR = dp("100")
	top.Segment = "TOP"

	plain := domain.NewCatalogEntry(domain.CatalogEUR, "ART-2", "BR", "B2")
	plain.PriceEUR = dp("100")
	plain.Segment = "STANDARD"

	products := []domain.Product{
		{PartID: "p1", OemCode: "A1", Price: dp("110.00")},
		{PartID: "p2", OemCode: "A1", Price: dp("110.01")},
		{PartID: "p3", OemCode: "B2", Price: dp("100.01")},
		{PartID: "p4", OemCode: "B2"},
	}

	opts := Options{PriceDeltaPerc: decimal.RequireFromString("1.10"), Workers: 4}
	matches, skipped := Run([]domain.CatalogEntry{*top, *plain}, products, opts)
	if len(skipped) != 0 {
		t.Fatalf("skipped=%d", len(skipped))
	}
	if len(matches) != 2 {
		t.Fatalf("len=%d", len(matches))
	}

	first := matches[0]
	if first.Article != "ART-1" || first.PriceMatchOkCount != 1 || first.PriceMatchHighCount != 1 {
		t.Fatalf("unexpected row: %+v", first)
	}

	second := matches[1]
	if second.Article != "ART-2" || second.PriceMatchOkCount != 0 || second.PriceMatchHighCount != 1 {
		t.Fatalf("unexpected row: %+v", second)
	}
	if second.MatchedProducts[1].PriceClassification != domain.PriceNA {
		t.Fatalf("classification=%s", second.MatchedProducts[1].PriceClassification)
	}
}

func TestRunDeterministicOrder(t *testing.T) {
	entries := make([]domain.CatalogEntry, 0, 50)
	for i := 0; i < 50; i++ {
		entries = append(entries, *domain.NewCatalogEntry(domain.CatalogGUR, fmt.Sprintf("ART-%02d", i), "BR", fmt.Sprintf("C%02d", i)))
	}

	opts := Options{PriceDeltaPerc: decimal.RequireFromString("1.10"), Workers: 8}
	firstRun, _ := Run(entries, nil, opts)
	secondRun, _ := Run(entries, nil, opts)

	if len(firstRun) != 50 || len(secondRun) != 50 {
		t.Fatalf("len=%d,%d", len(firstRun), len(secondRun))
	}
	for i := range firstRun {
		if firstRun[i].Article != entries[i].Article {
			t.Fatalf("row %d: got %s want %s", i, firstRun[i].Article, entries[i].Article)
		}
		if firstRun[i].Article != secondRun[i].Article {
			t.Fatalf("row %d differs between runs", i)
		}
	}
}
