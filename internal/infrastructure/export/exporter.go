// Package export собирает файлы выгрузки датасета сопоставлений в памяти.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Колонки файла выгрузки, одна строка файла на строку датасета.
var exportHeaders = []string{
	"catalog", "article", "brand", "catalog_oes_numbers",
	"catalog_price_eur", "catalog_price_usd", "segment",
	"matched_products_count", "matched_products_ids",
	"price_match_ok_count", "price_match_high_count",
	"avg_db_price", "min_db_price", "max_db_price",
}

// Exporter реализует сборку CSV и XLSX файлов датасета.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// BuildCSV собирает CSV с заголовком и строками датасета.
func (x *Exporter) BuildCSV(rows []usecase.CatalogMatchInfo) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, e.Wrap("failed to write csv header", err)
	}

	for i := range rows {
		if err := w.Write(csvRecord(&rows[i])); err != nil {
			return nil, e.Wrap("failed to write csv row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, e.Wrap("failed to flush csv", err)
	}

	return buf.Bytes(), nil
}

// BuildXLSX собирает XLSX-файл с теми же колонками, что и CSV.
func (x *Exporter) BuildXLSX(rows []usecase.CatalogMatchInfo) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i := range rows {
		row := &rows[i]
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Catalog)
		set(2, row.Article)
		set(3, row.Brand)
		set(4, row.CatalogOesNumbers)
		set(5, derefDecimal(row.CatalogPriceEUR))
		set(6, derefDecimal(row.CatalogPriceUSD))
		set(7, row.Segment)
		set(8, row.MatchedProductsCount)
		set(9, strings.Join(row.MatchedProductsIDs, ";"))
		set(10, row.PriceMatchOkCount)
		set(11, row.PriceMatchHighCount)
		set(12, derefDecimal(row.AvgDBPrice))
		set(13, derefDecimal(row.MinDBPrice))
		set(14, derefDecimal(row.MaxDBPrice))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, e.Wrap("failed to build xlsx", err)
	}

	return buf.Bytes(), nil
}

func csvRecord(row *usecase.CatalogMatchInfo) []string {
	return []string{
		row.Catalog,
		row.Article,
		row.Brand,
		row.CatalogOesNumbers,
		decimalString(row.CatalogPriceEUR),
		decimalString(row.CatalogPriceUSD),
		row.Segment,
		strconv.Itoa(row.MatchedProductsCount),
		strings.Join(row.MatchedProductsIDs, ";"),
		strconv.Itoa(row.PriceMatchOkCount),
		strconv.Itoa(row.PriceMatchHighCount),
		decimalString(row.AvgDBPrice),
		decimalString(row.MinDBPrice),
		decimalString(row.MaxDBPrice),
	}
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// derefDecimal возвращает число для ячейки XLSX, nil превращается в пустую ячейку.
func derefDecimal(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}
