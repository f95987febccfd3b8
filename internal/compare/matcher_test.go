package compare

import (
	"strings"
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
)

func TestSplitOesNumbers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single code", input: "A1", want: []string{"A1"}},
		{name: "pipe separated", input: "A1 | B2 | C3", want: []string{"A1", "B2", "C3"}},
		{name: "blank parts dropped", input: "A1 | | B2 |", want: []string{"A1", "B2"}},
		{name: "duplicates keep first", input: "A1 | a1 | B2", want: []string{"A1", "B2"}},
		{name: "whitespace trimmed", input: "  A1  |B2", want: []string{"A1", "B2"}},
		{name: "empty field", input: "", want: nil},
		{name: "separators only", input: " | | ", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitOesNumbers(tc.input)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestMatchEntrySourcePrecedence(t *testing.T) {
	entry := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BRAND", "A1 | B2")
	products := []domain.Product{
		{PartID: "p1", OemCode: "a1", ManufacturerCode: "B2"},
		{PartID: "p2", ManufacturerCode: " b2 "},
		{PartID: "p3", OtherCodes: []string{"zzz", "A1"}},
		{PartID: "p4", OemCode: "nope", OtherCodes: []string{"none"}},
	}

	matched := MatchEntry(entry, products)
	if len(matched) != 3 {
		t.Fatalf("len=%d", len(matched))
	}
	if matched[0].PartID != "p1" || matched[0].MatchedBy != domain.MatchedByOemCode || matched[0].MatchedValue != "a1" {
		t.Fatalf("unexpected match: %+v", matched[0])
	}
	if matched[1].PartID != "p2" || matched[1].MatchedBy != domain.MatchedByManufacturerCode || matched[1].MatchedValue != " b2 " {
		t.Fatalf("unexpected match: %+v", matched[1])
	}
	if matched[2].PartID != "p3" || matched[2].MatchedBy != domain.MatchedByOtherCodes || matched[2].MatchedValue != "A1" {
		t.Fatalf("unexpected match: %+v", matched[2])
	}
}

func TestMatchEntryNoCandidates(t *testing.T) {
	entry := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BRAND", " | ")
	products := []domain.Product{{PartID: "p1", OemCode: "A1"}}

	if got := MatchEntry(entry, products); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestMatchEntryZeroMatches(t *testing.T) {
	entry := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BRAND", "A1")
	products := []domain.Product{
		{PartID: "p1", OemCode: "B9"},
		{PartID: "p2"},
	}

	if got := MatchEntry(entry, products); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestMatchEntryBlankProductCodes(t *testing.T) {
	entry := domain.NewCatalogEntry(domain.CatalogEUR, "ART", "BRAND", "A1")
	products := []domain.Product{
		{PartID: "p1", OtherCodes: []string{"", "  ", "a1"}},
	}

	matched := MatchEntry(entry, products)
	if len(matched) != 1 {
		t.Fatalf("len=%d", len(matched))
	}
	if matched[0].MatchedValue != "a1" {
		t.Fatalf("matched_value=%q", matched[0].MatchedValue)
	}
}
