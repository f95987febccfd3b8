package converter

import (
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func sp(v string) *string { return &v }

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "plain number", in: sp("149.90"), want: sp("149.9")},
		{name: "integer", in: sp("200"), want: sp("200")},
		{name: "padded", in: sp(" 12.5 "), want: sp("12.5")},
		{name: "nil", in: nil, want: nil},
		{name: "empty", in: sp(""), want: nil},
		{name: "blank", in: sp("   "), want: nil},
		{name: "non numeric", in: sp("уточняйте"), want: nil},
		{name: "comma decimal", in: sp("12,5"), want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDecimal(tc.in)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("got %v want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("got nil want %s", *tc.want)
			}
			if got.String() != *tc.want {
				t.Fatalf("got %s want %s", got.String(), *tc.want)
			}
		})
	}
}

func TestProductConverterCodeExtraction(t *testing.T) {
	conv := NewProductConverterImpl()

	cases := []struct {
		name       string
		descr      []byte
		wantOem    string
		wantManuf  string
		wantOthers []string
	}{
		{
			name:       "strings and list",
			descr:      []byte(`{"oem_code":"A1","manufacturer_code":"M1","other_codes":["X1","X2"]}`),
			wantOem:    "A1",
			wantManuf:  "M1",
			wantOthers: []string{"X1", "X2"},
		},
		{
			name:       "numeric codes",
			descr:      []byte(`{"oem_code":11115561,"other_codes":[7701478929,"K5"]}`),
			wantOem:    "11115561",
			wantOthers: []string{"7701478929", "K5"},
		},
		{
			name:       "single other code as string",
			descr:      []byte(`{"other_codes":"SOLO-1"}`),
			wantOthers: []string{"SOLO-1"},
		},
		{
			name:  "missing fields",
			descr: []byte(`{"color":"black"}`),
		},
		{
			name:  "no description",
			descr: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := conv.ToEntity(&ProductModel{PartID: "p1", ItemDescription: tc.descr})
			if got.OemCode != tc.wantOem {
				t.Fatalf("oem code: got %q want %q", got.OemCode, tc.wantOem)
			}
			if got.ManufacturerCode != tc.wantManuf {
				t.Fatalf("manufacturer code: got %q want %q", got.ManufacturerCode, tc.wantManuf)
			}
			if len(got.OtherCodes) != len(tc.wantOthers) {
				t.Fatalf("other codes: got %v want %v", got.OtherCodes, tc.wantOthers)
			}
			for i := range tc.wantOthers {
				if got.OtherCodes[i] != tc.wantOthers[i] {
					t.Fatalf("other codes: got %v want %v", got.OtherCodes, tc.wantOthers)
				}
			}
		})
	}
}

func TestCatalogMatchConverterRoundTrip(t *testing.T) {
	conv := NewCatalogMatchConverterImpl()

	eur := decimal.RequireFromString("100.50")
	price := decimal.RequireFromString("99.99")
	match := &domain.CatalogMatch{
		Catalog:              domain.CatalogEUR,
		Article:              "ART-1",
		Brand:                "BOSCH",
		CatalogOesNumbers:    "A1 | B2",
		CatalogPriceEUR:      &eur,
		Segment:              "TOP",
		MatchedProductsCount: 1,
		MatchedProductsIDs:   []string{"p1"},
		PriceMatchOkCount:    1,
		AvgDBPrice:           &price,
		MinDBPrice:           &price,
		MaxDBPrice:           &price,
		CatalogData:          map[string]any{"remains": 4.0},
		MatchedProducts: []domain.MatchedProduct{
			{
				PartID:              "p1",
				Code:                "A1",
				Price:               &price,
				SellerEmail:         "seller@example.com",
				MatchedBy:           domain.MatchedByOemCode,
				MatchedValue:        "A1",
				PriceClassification: domain.PriceOK,
			},
		},
	}

	model, err := conv.ToModel(7, match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.VersionID != 7 {
		t.Fatalf("version id: got %d want 7", model.VersionID)
	}
	if model.CatalogPriceEUR == nil || *model.CatalogPriceEUR != "100.5" {
		t.Fatalf("unexpected catalog price: %v", model.CatalogPriceEUR)
	}

	info, err := conv.ToInfo(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Article != "ART-1" || info.Brand != "BOSCH" {
		t.Fatalf("unexpected row identity: %+v", info)
	}
	if len(info.MatchedProducts) != 1 {
		t.Fatalf("matched products: got %d want 1", len(info.MatchedProducts))
	}
	mp := info.MatchedProducts[0]
	if mp.PartID != "p1" || mp.MatchedBy != "oem_code" || mp.PriceClassification != "OK" {
		t.Fatalf("unexpected matched product: %+v", mp)
	}
	if mp.Price == nil || !mp.Price.Equal(decimal.RequireFromString("99.99")) {
		t.Fatalf("unexpected matched product price: %v", mp.Price)
	}
	if info.CatalogData["remains"] != 4.0 {
		t.Fatalf("unexpected catalog data: %v", info.CatalogData)
	}
}

func TestCatalogMatchConverterEmptyJSON(t *testing.T) {
	conv := NewCatalogMatchConverterImpl()

	model, err := conv.ToModel(1, &domain.CatalogMatch{Catalog: domain.CatalogGUR, Article: "A", Brand: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(model.MatchedProducts) != "[]" {
		t.Fatalf("matched products json: got %s want []", model.MatchedProducts)
	}
	if string(model.CatalogData) != "{}" {
		t.Fatalf("catalog data json: got %s want {}", model.CatalogData)
	}
	if model.MatchedProductsIDs == nil {
		t.Fatalf("matched products ids must not be nil")
	}

	info, err := conv.ToInfo(model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info.MatchedProducts) != 0 {
		t.Fatalf("unexpected matched products: %+v", info.MatchedProducts)
	}
}
