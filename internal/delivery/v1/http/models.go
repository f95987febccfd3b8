package http

import (
	"time"

	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// CatalogMatchesResponse — страница строк датасета.
type CatalogMatchesResponse struct {
	Catalog      string                 `json:"catalog"`
	TotalMatches int64                  `json:"total_matches"`
	Limit        int64                  `json:"limit"`
	Offset       int64                  `json:"offset"`
	Items        []CatalogMatchResponse `json:"items"`
}

// CatalogMatchResponse — строка датасета в ответе API.
type CatalogMatchResponse struct {
	ID                   int64                    `json:"id"`
	Catalog              string                   `json:"catalog"`
	Article              string                   `json:"article"`
	Brand                string                   `json:"brand"`
	CatalogOesNumbers    string                   `json:"catalog_oes_numbers"`
	CatalogPriceEUR      *float64                 `json:"catalog_price_eur"`
	CatalogPriceUSD      *float64                 `json:"catalog_price_usd"`
	Segment              string                   `json:"segment"`
	MatchedProductsCount int                      `json:"matched_products_count"`
	MatchedProductsIDs   []string                 `json:"matched_products_ids"`
	PriceMatchOkCount    int                      `json:"price_match_ok_count"`
	PriceMatchHighCount  int                      `json:"price_match_high_count"`
	AvgDBPrice           *float64                 `json:"avg_db_price"`
	MinDBPrice           *float64                 `json:"min_db_price"`
	MaxDBPrice           *float64                 `json:"max_db_price"`
	CatalogData          map[string]any           `json:"catalog_data"`
	MatchedProducts      []MatchedProductResponse `json:"matched_products"`
}

// MatchedProductResponse — сопоставленный продукт внутри строки датасета.
type MatchedProductResponse struct {
	PartID              string         `json:"part_id"`
	Code                string         `json:"code"`
	Price               *float64       `json:"price"`
	URL                 string         `json:"url"`
	SellerEmail         string         `json:"seller_email"`
	MatchedBy           string         `json:"matched_by"`
	MatchedValue        string         `json:"matched_value"`
	PriceClassification string         `json:"price_classification"`
	ProductData         map[string]any `json:"product_data"`
}

// CatalogStatsResponse — сводки по текущим версиям каталогов.
type CatalogStatsResponse struct {
	Catalogs []CatalogStatResponse `json:"catalogs"`
}

type CatalogStatResponse struct {
	Catalog            string   `json:"catalog"`
	VersionUID         string   `json:"version_uid"`
	Items              int64    `json:"items"`
	MatchedProducts    int64    `json:"matched_products"`
	OkCount            int64    `json:"ok_count"`
	HighCount          int64    `json:"high_count"`
	AvgDBPrice         *float64 `json:"avg_db_price"`
	ItemsWithOkPrice   int64    `json:"items_with_ok_price"`
	ItemsOnlyHighPrice int64    `json:"items_only_high_price"`
}

// SellerStatsResponse — сводки предложений по продавцам.
type SellerStatsResponse struct {
	Sellers []SellerStatResponse `json:"sellers"`
}

type SellerStatResponse struct {
	SellerEmail   string `json:"seller_email"`
	TotalMatches  int64  `json:"total_matches"`
	OkMatches     int64  `json:"ok_matches"`
	HighMatches   int64  `json:"high_matches"`
	TotalProducts int64  `json:"total_products"`
}

// RecomputeRequest — тело запроса пересчёта.
type RecomputeRequest struct {
	Catalogs []string `json:"catalogs"`
}

// RecomputeResponse — итог прогона пересчёта.
type RecomputeResponse struct {
	RunID      string               `json:"run_id"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
	Catalogs   []CatalogRunResponse `json:"catalogs"`
}

type CatalogRunResponse struct {
	Catalog         string `json:"catalog"`
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
	VersionUID      string `json:"version_uid,omitempty"`
	Entries         int    `json:"entries"`
	SkippedEntries  int    `json:"skipped_entries"`
	Rows            int    `json:"rows"`
	MatchedProducts int    `json:"matched_products"`
	OkCount         int    `json:"ok_count"`
	HighCount       int    `json:"high_count"`
}

// ExportRequest — тело запроса выгрузки.
type ExportRequest struct {
	Catalogs []string `json:"catalogs"`
}

// ExportResponse — ключи файлов выгрузки в объектном хранилище.
type ExportResponse struct {
	CSVKey  string `json:"csv_key"`
	XLSXKey string `json:"xlsx_key"`
}

func newCatalogMatchesResponse(res *usecase.GetMatchesRes) *CatalogMatchesResponse {
	items := make([]CatalogMatchResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, *newCatalogMatchResponse(&res.Items[i]))
	}

	return &CatalogMatchesResponse{
		Catalog:      res.Catalog,
		TotalMatches: res.TotalMatches,
		Limit:        res.Limit,
		Offset:       res.Offset,
		Items:        items,
	}
}

func newCatalogMatchResponse(info *usecase.CatalogMatchInfo) *CatalogMatchResponse {
	products := make([]MatchedProductResponse, 0, len(info.MatchedProducts))
	for _, p := range info.MatchedProducts {
		products = append(products, MatchedProductResponse{
			PartID:              p.PartID,
			Code:                p.Code,
			Price:               decimalToFloat(p.Price),
			URL:                 p.URL,
			SellerEmail:         p.SellerEmail,
			MatchedBy:           p.MatchedBy,
			MatchedValue:        p.MatchedValue,
			PriceClassification: p.PriceClassification,
			ProductData:         p.ProductData,
		})
	}

	return &CatalogMatchResponse{
		ID:                   info.ID,
		Catalog:              info.Catalog,
		Article:              info.Article,
		Brand:                info.Brand,
		CatalogOesNumbers:    info.CatalogOesNumbers,
		CatalogPriceEUR:      decimalToFloat(info.CatalogPriceEUR),
		CatalogPriceUSD:      decimalToFloat(info.CatalogPriceUSD),
		Segment:              info.Segment,
		MatchedProductsCount: info.MatchedProductsCount,
		MatchedProductsIDs:   info.MatchedProductsIDs,
		PriceMatchOkCount:    info.PriceMatchOkCount,
		PriceMatchHighCount:  info.PriceMatchHighCount,
		AvgDBPrice:           decimalToFloat(info.AvgDBPrice),
		MinDBPrice:           decimalToFloat(info.MinDBPrice),
		MaxDBPrice:           decimalToFloat(info.MaxDBPrice),
		CatalogData:          info.CatalogData,
		MatchedProducts:      products,
	}
}

func newCatalogStatsResponse(res *usecase.GetStatsRes) *CatalogStatsResponse {
	catalogs := make([]CatalogStatResponse, 0, len(res.Catalogs))
	for _, s := range res.Catalogs {
		catalogs = append(catalogs, CatalogStatResponse{
			Catalog:            s.Catalog,
			VersionUID:         s.VersionUID,
			Items:              s.Items,
			MatchedProducts:    s.MatchedProducts,
			OkCount:            s.OkCount,
			HighCount:          s.HighCount,
			AvgDBPrice:         decimalToFloat(s.AvgDBPrice),
			ItemsWithOkPrice:   s.ItemsWithOkPrice,
			ItemsOnlyHighPrice: s.ItemsOnlyHighPrice,
		})
	}

	return &CatalogStatsResponse{Catalogs: catalogs}
}

func newSellerStatsResponse(res *usecase.GetSellerStatsRes) *SellerStatsResponse {
	sellers := make([]SellerStatResponse, 0, len(res.Sellers))
	for _, s := range res.Sellers {
		sellers = append(sellers, SellerStatResponse{
			SellerEmail:   s.SellerEmail,
			TotalMatches:  s.TotalMatches,
			OkMatches:     s.OkMatches,
			HighMatches:   s.HighMatches,
			TotalProducts: s.TotalProducts,
		})
	}

	return &SellerStatsResponse{Sellers: sellers}
}

func newRecomputeResponse(res *usecase.RecomputeRes) *RecomputeResponse {
	catalogs := make([]CatalogRunResponse, 0, len(res.Catalogs))
	for _, report := range res.Catalogs {
		catalogs = append(catalogs, CatalogRunResponse{
			Catalog:         report.Catalog,
			Status:          report.Status,
			Error:           report.Error,
			VersionUID:      report.VersionUID,
			Entries:         report.Entries,
			SkippedEntries:  report.SkippedEntries,
			Rows:            report.Rows,
			MatchedProducts: report.MatchedProducts,
			OkCount:         report.OkCount,
			HighCount:       report.HighCount,
		})
	}

	return &RecomputeResponse{
		RunID:      res.RunID,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
		Catalogs:   catalogs,
	}
}

func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}

	f := d.InexactFloat64()
	return &f
}
