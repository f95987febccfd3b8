package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func dp(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func exportRows() []usecase.CatalogMatchInfo {
	return []usecase.CatalogMatchInfo{
		{
			Catalog:              "eur",
			Article:              "ART-1",
			Brand:                "BOSCH",
			CatalogOesNumbers:    "A1 | B2",
			CatalogPriceEUR:      dp("100.50"),
			Segment:              "TOP",
			MatchedProductsCount: 2,
			MatchedProductsIDs:   []string{"p1", "p2"},
			PriceMatchOkCount:    1,
			PriceMatchHighCount:  1,
			AvgDBPrice:           dp("105.25"),
			MinDBPrice:           dp("99.99"),
			MaxDBPrice:           dp("110.51"),
		},
		{
			Catalog: "gur",
			Article: "ART-2",
			Brand:   "SKF",
		},
	}
}

func TestBuildCSV(t *testing.T) {
	blob, err := NewExporter().BuildCSV(exportRows())
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(blob)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("len=%d", len(records))
	}
	if len(records[0]) != len(exportHeaders) {
		t.Fatalf("header len=%d want %d", len(records[0]), len(exportHeaders))
	}

	first := records[1]
	if first[0] != "eur" || first[1] != "ART-1" || first[4] != "100.5" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if first[8] != "p1;p2" {
		t.Fatalf("ids column: got %q", first[8])
	}

	second := records[2]
	if second[4] != "" || second[11] != "" {
		t.Fatalf("empty prices must stay empty: %v", second)
	}
}

func TestBuildXLSX(t *testing.T) {
	blob, err := NewExporter().BuildXLSX(exportRows())
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0][0] != "catalog" || rows[0][1] != "article" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "ART-1" || rows[1][2] != "BOSCH" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}
