package converter

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/partmatch-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type CatalogEntryConverterImpl struct{}

func NewCatalogEntryConverterImpl() *CatalogEntryConverterImpl {
	return &CatalogEntryConverterImpl{}
}

func (c *CatalogEntryConverterImpl) ToEntity(model *CatalogEntryModel) *domain.CatalogEntry {
	entry := domain.NewCatalogEntry(
		domain.Catalog(model.Catalog),
		deref(model.Article),
		deref(model.Brand),
		deref(model.OesNumbers),
	)
	entry.PriceEUR = parseDecimal(model.PriceEUR)
	entry.PriceUSD = parseDecimal(model.PriceUSD)
	entry.Segment = deref(model.Segment)
	entry.Remains = parseDecimal(model.Remains)
	entry.Extra = parseMap(model.Extra)

	return entry
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

// ToEntity собирает доменный продукт из строки таблицы. Коды сопоставления
// лежат внутри item_description, поэтому извлекаются здесь же.
func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	product := domain.NewProduct(model.PartID, deref(model.Code), parseDecimal(model.Price))
	product.URL = deref(model.URL)
	product.SellerEmail = deref(model.SellerEmail)
	product.Images = parseStringList(model.Images)
	product.CarDetails = parseMap(model.CarDetails)
	product.ItemDescription = parseMap(model.ItemDescription)
	product.OemCode = stringField(product.ItemDescription, "oem_code")
	product.ManufacturerCode = stringField(product.ItemDescription, "manufacturer_code")
	product.OtherCodes = stringListField(product.ItemDescription, "other_codes")

	return product
}

type CatalogMatchConverterImpl struct{}

func NewCatalogMatchConverterImpl() *CatalogMatchConverterImpl {
	return &CatalogMatchConverterImpl{}
}

func (c *CatalogMatchConverterImpl) ToModel(versionID int64, match *domain.CatalogMatch) (*CatalogMatchModel, error) {
	products := make([]MatchedProductJSON, 0, len(match.MatchedProducts))
	for i := range match.MatchedProducts {
		p := &match.MatchedProducts[i]
		products = append(products, MatchedProductJSON{
			PartID:              p.PartID,
			Code:                p.Code,
			Price:               toFloatPtr(p.Price),
			URL:                 p.URL,
			SellerEmail:         p.SellerEmail,
			MatchedBy:           string(p.MatchedBy),
			MatchedValue:        p.MatchedValue,
			PriceClassification: string(p.PriceClassification),
			ProductData:         p.ProductData,
		})
	}

	matchedRaw, err := json.Marshal(products)
	if err != nil {
		return nil, e.Wrap("failed to marshal matched products", err)
	}

	dataRaw, err := json.Marshal(nonNilMap(match.CatalogData))
	if err != nil {
		return nil, e.Wrap("failed to marshal catalog data", err)
	}

	return &CatalogMatchModel{
		VersionID:            versionID,
		Catalog:              string(match.Catalog),
		Article:              match.Article,
		Brand:                match.Brand,
		CatalogOesNumbers:    match.CatalogOesNumbers,
		CatalogPriceEUR:      decimalToText(match.CatalogPriceEUR),
		CatalogPriceUSD:      decimalToText(match.CatalogPriceUSD),
		Segment:              match.Segment,
		MatchedProductsCount: match.MatchedProductsCount,
		MatchedProductsIDs:   nonNilStrings(match.MatchedProductsIDs),
		PriceMatchOkCount:    match.PriceMatchOkCount,
		PriceMatchHighCount:  match.PriceMatchHighCount,
		AvgDBPrice:           decimalToText(match.AvgDBPrice),
		MinDBPrice:           decimalToText(match.MinDBPrice),
		MaxDBPrice:           decimalToText(match.MaxDBPrice),
		CatalogData:          dataRaw,
		MatchedProducts:      matchedRaw,
	}, nil
}

func (c *CatalogMatchConverterImpl) ToInfo(model *CatalogMatchModel) (*usecase.CatalogMatchInfo, error) {
	var products []MatchedProductJSON
	if len(model.MatchedProducts) > 0 {
		if err := json.Unmarshal(model.MatchedProducts, &products); err != nil {
			return nil, e.Wrap("failed to unmarshal matched products", err)
		}
	}

	infos := make([]usecase.MatchedProductInfo, 0, len(products))
	for _, p := range products {
		infos = append(infos, usecase.MatchedProductInfo{
			PartID:              p.PartID,
			Code:                p.Code,
			Price:               fromFloatPtr(p.Price),
			URL:                 p.URL,
			SellerEmail:         p.SellerEmail,
			MatchedBy:           p.MatchedBy,
			MatchedValue:        p.MatchedValue,
			PriceClassification: p.PriceClassification,
			ProductData:         p.ProductData,
		})
	}

	return &usecase.CatalogMatchInfo{
		ID:                   model.ID,
		Catalog:              model.Catalog,
		Article:              model.Article,
		Brand:                model.Brand,
		CatalogOesNumbers:    model.CatalogOesNumbers,
		CatalogPriceEUR:      parseDecimal(model.CatalogPriceEUR),
		CatalogPriceUSD:      parseDecimal(model.CatalogPriceUSD),
		Segment:              model.Segment,
		MatchedProductsCount: model.MatchedProductsCount,
		MatchedProductsIDs:   model.MatchedProductsIDs,
		PriceMatchOkCount:    model.PriceMatchOkCount,
		PriceMatchHighCount:  model.PriceMatchHighCount,
		AvgDBPrice:           parseDecimal(model.AvgDBPrice),
		MinDBPrice:           parseDecimal(model.MinDBPrice),
		MaxDBPrice:           parseDecimal(model.MaxDBPrice),
		CatalogData:          parseMap(model.CatalogData),
		MatchedProducts:      infos,
	}, nil
}

type DatasetVersionConverterImpl struct{}

func NewDatasetVersionConverterImpl() *DatasetVersionConverterImpl {
	return &DatasetVersionConverterImpl{}
}

func (c *DatasetVersionConverterImpl) ToEntity(model *DatasetVersionModel) *domain.DatasetVersion {
	return &domain.DatasetVersion{
		ID:         model.ID,
		VersionUID: model.VersionUID,
		Catalog:    domain.Catalog(model.Catalog),
		Status:     domain.VersionStatus(model.Status),
		RunID:      model.RunID,
		ItemCount:  model.ItemCount,
		CreatedAt:  model.CreatedAt,
		PromotedAt: model.PromotedAt,
		StaleAt:    model.StaleAt,
	}
}

func (c *DatasetVersionConverterImpl) ToArrEntity(models []*DatasetVersionModel) []domain.DatasetVersion {
	out := make([]domain.DatasetVersion, 0, len(models))
	for _, model := range models {
		out = append(out, *c.ToEntity(model))
	}

	return out
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		Catalog:     entity.Catalog,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		Catalog:     model.Catalog,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	out := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		out = append(out, c.ToEntity(model))
	}

	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseDecimal парсит числовой текст из БД.
// Пустые и нечисловые значения трактуются как NULL, а не как ошибка.
func parseDecimal(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}

	return &d
}

func decimalToText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}

	s := d.String()
	return &s
}

func toFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}

	f := d.InexactFloat64()
	return &f
}

func fromFloatPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}

	d := decimal.NewFromFloat(*f)
	return &d
}

func parseMap(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	return m
}

func parseStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, v := range list {
		if s := asString(v); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// stringField достаёт строковое поле карты, числа приводятся к строке.
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}

	return asString(m[key])
}

// stringListField достаёт список кодов.
// Одиночное значение трактуется как список из одного элемента.
func stringListField(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}

	switch v := m[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func asString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func nonNilStrings(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
