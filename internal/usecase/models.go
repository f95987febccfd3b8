package usecase

import (
	"time"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MATCH QUERY USECASE

// GetMatchesReq — запрос строк датасета с фильтрами и пагинацией.
type GetMatchesReq struct {
	Catalogs            []string // имена каталогов, пусто = все
	Segment             *string
	PriceClassification *string
	OnlyMatching        bool // оставить во вложенном списке только продукты с запрошенным вердиктом
	Limit               int64
	Offset              int64
}

// GetMatchesRes — страница строк датасета.
type GetMatchesRes struct {
	Catalog      string // запрошенные каталоги через запятую
	TotalMatches int64
	Limit        int64
	Offset       int64
	Items        []CatalogMatchInfo
}

type GetMatchByIDReq struct {
	ID int64
}

// CatalogMatchInfo — DTO строки датасета для внешнего использования.
type CatalogMatchInfo struct {
	ID                   int64
	Catalog              string
	Article              string
	Brand                string
	CatalogOesNumbers    string
	CatalogPriceEUR      *decimal.Decimal
	CatalogPriceUSD      *decimal.Decimal
	Segment              string
	MatchedProductsCount int
	MatchedProductsIDs   []string
	PriceMatchOkCount    int
	PriceMatchHighCount  int
	AvgDBPrice           *decimal.Decimal
	MinDBPrice           *decimal.Decimal
	MaxDBPrice           *decimal.Decimal
	CatalogData          map[string]any
	MatchedProducts      []MatchedProductInfo
}

// MatchedProductInfo — DTO сопоставленного продукта внутри строки датасета.
type MatchedProductInfo struct {
	PartID              string
	Code                string
	Price               *decimal.Decimal
	URL                 string
	SellerEmail         string
	MatchedBy           string
	MatchedValue        string
	PriceClassification string
	ProductData         map[string]any
}

// CatalogStatInfo — сводка по текущей версии одного каталога.
type CatalogStatInfo struct {
	Catalog            string
	VersionUID         string
	Items              int64
	MatchedProducts    int64
	OkCount            int64
	HighCount          int64
	AvgDBPrice         *decimal.Decimal
	ItemsWithOkPrice   int64
	ItemsOnlyHighPrice int64
}

type GetStatsRes struct {
	Catalogs []CatalogStatInfo
}

// SellerStatInfo — сводка предложений одного продавца по текущим версиям.
type SellerStatInfo struct {
	SellerEmail   string
	TotalMatches  int64
	OkMatches     int64
	HighMatches   int64
	TotalProducts int64
}

type GetSellerStatsRes struct {
	Sellers []SellerStatInfo
}

// RECOMPUTE USECASE

// Статусы прогона по каталогу.
const (
	RunStatusSuccess = "success"
	RunStatusFailure = "failure"
)

// RecomputeReq — запрос пересчёта датасета.
type RecomputeReq struct {
	Catalogs []string // имена каталогов, пусто = все
}

// CatalogRunReport — итог пересчёта одного каталога.
type CatalogRunReport struct {
	Catalog         string
	Status          string
	Error           string
	VersionUID      string
	Entries         int
	SkippedEntries  int
	Rows            int
	MatchedProducts int
	OkCount         int
	HighCount       int
}

// RecomputeRes — итог прогона пересчёта по всем запрошенным каталогам.
type RecomputeRes struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Catalogs   []CatalogRunReport
}

// EXPORT USECASE

type ExportReq struct {
	Catalogs []string
}

// ExportRes — ключи собранных файлов выгрузки в объектном хранилище.
type ExportRes struct {
	CSVKey  string
	XLSXKey string
}

// UploadExportReq — файл выгрузки для сохранения в объектном хранилище.
type UploadExportReq struct {
	Key         string
	ContentType string
	Data        []byte
}

// INFRASTUCTURE

type WriteMessageReq struct {
	Catalog string
	Payload []byte
}

// REPOSITORIES

// MatchFilter — фильтры выборки строк датасета.
// Limit меньше либо равный нулю означает выборку без ограничения.
type MatchFilter struct {
	Segment             *string
	PriceClassification *domain.PriceClassification
	Limit               int64
	Offset              int64
}

// MAPPERS

func NewGetMatchesRes(catalog string, total, limit, offset int64, items []CatalogMatchInfo) *GetMatchesRes {
	return &GetMatchesRes{
		Catalog:      catalog,
		TotalMatches: total,
		Limit:        limit,
		Offset:       offset,
		Items:        items,
	}
}

func NewGetMatchByIDReq(id int64) *GetMatchByIDReq {
	return &GetMatchByIDReq{ID: id}
}

func NewRecomputeRes(runID string) *RecomputeRes {
	return &RecomputeRes{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
		Catalogs:  make([]CatalogRunReport, 0, len(domain.Catalogs)),
	}
}

func NewUploadExportReq(key, contentType string, data []byte) *UploadExportReq {
	return &UploadExportReq{
		Key:         key,
		ContentType: contentType,
		Data:        data,
	}
}

func NewWriteMessageReq(catalog string, payload []byte) *WriteMessageReq {
	return &WriteMessageReq{
		Catalog: catalog,
		Payload: payload,
	}
}

// NewCatalogMatchInfo переводит доменную строку датасета в DTO.
func NewCatalogMatchInfo(m *domain.CatalogMatch) CatalogMatchInfo {
	products := make([]MatchedProductInfo, 0, len(m.MatchedProducts))
	for i := range m.MatchedProducts {
		products = append(products, NewMatchedProductInfo(&m.MatchedProducts[i]))
	}

	return CatalogMatchInfo{
		ID:                   m.ID,
		Catalog:              string(m.Catalog),
		Article:              m.Article,
		Brand:                m.Brand,
		CatalogOesNumbers:    m.CatalogOesNumbers,
		CatalogPriceEUR:      m.CatalogPriceEUR,
		CatalogPriceUSD:      m.CatalogPriceUSD,
		Segment:              m.Segment,
		MatchedProductsCount: m.MatchedProductsCount,
		MatchedProductsIDs:   m.MatchedProductsIDs,
		PriceMatchOkCount:    m.PriceMatchOkCount,
		PriceMatchHighCount:  m.PriceMatchHighCount,
		AvgDBPrice:           m.AvgDBPrice,
		MinDBPrice:           m.MinDBPrice,
		MaxDBPrice:           m.MaxDBPrice,
		CatalogData:          m.CatalogData,
		MatchedProducts:      products,
	}
}

func NewMatchedProductInfo(p *domain.MatchedProduct) MatchedProductInfo {
	return MatchedProductInfo{
		PartID:              p.PartID,
		Code:                p.Code,
		Price:               p.Price,
		URL:                 p.URL,
		SellerEmail:         p.SellerEmail,
		MatchedBy:           string(p.MatchedBy),
		MatchedValue:        p.MatchedValue,
		PriceClassification: string(p.PriceClassification),
		ProductData:         p.ProductData,
	}
}
