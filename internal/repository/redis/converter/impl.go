package converter

import (
	"github.com/partmatch-tech/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

type CatalogMatchConverterImpl struct{}

func NewCatalogMatchConverterImpl() *CatalogMatchConverterImpl {
	return &CatalogMatchConverterImpl{}
}

func (c *CatalogMatchConverterImpl) ToRedisModel(info *usecase.CatalogMatchInfo) *CatalogMatchRedisModel {
	products := make([]MatchedProductRedisModel, 0, len(info.MatchedProducts))
	for _, p := range info.MatchedProducts {
		products = append(products, MatchedProductRedisModel{
			PartID:              p.PartID,
			Code:                p.Code,
			Price:               toFloatPtr(p.Price),
			URL:                 p.URL,
			SellerEmail:         p.SellerEmail,
			MatchedBy:           p.MatchedBy,
			MatchedValue:        p.MatchedValue,
			PriceClassification: p.PriceClassification,
			ProductData:         p.ProductData,
		})
	}

	return &CatalogMatchRedisModel{
		ID:                   info.ID,
		Catalog:              info.Catalog,
		Article:              info.Article,
		Brand:                info.Brand,
		CatalogOesNumbers:    info.CatalogOesNumbers,
		CatalogPriceEUR:      toFloatPtr(info.CatalogPriceEUR),
		CatalogPriceUSD:      toFloatPtr(info.CatalogPriceUSD),
		Segment:              info.Segment,
		MatchedProductsCount: info.MatchedProductsCount,
		MatchedProductsIDs:   info.MatchedProductsIDs,
		PriceMatchOkCount:    info.PriceMatchOkCount,
		PriceMatchHighCount:  info.PriceMatchHighCount,
		AvgDBPrice:           toFloatPtr(info.AvgDBPrice),
		MinDBPrice:           toFloatPtr(info.MinDBPrice),
		MaxDBPrice:           toFloatPtr(info.MaxDBPrice),
		CatalogData:          info.CatalogData,
		MatchedProducts:      products,
	}
}

func (c *CatalogMatchConverterImpl) ToUseCase(model *CatalogMatchRedisModel) *usecase.CatalogMatchInfo {
	products := make([]usecase.MatchedProductInfo, 0, len(model.MatchedProducts))
	for _, p := range model.MatchedProducts {
		products = append(products, usecase.MatchedProductInfo{
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
		CatalogPriceEUR:      fromFloatPtr(model.CatalogPriceEUR),
		CatalogPriceUSD:      fromFloatPtr(model.CatalogPriceUSD),
		Segment:              model.Segment,
		MatchedProductsCount: model.MatchedProductsCount,
		MatchedProductsIDs:   model.MatchedProductsIDs,
		PriceMatchOkCount:    model.PriceMatchOkCount,
		PriceMatchHighCount:  model.PriceMatchHighCount,
		AvgDBPrice:           fromFloatPtr(model.AvgDBPrice),
		MinDBPrice:           fromFloatPtr(model.MinDBPrice),
		MaxDBPrice:           fromFloatPtr(model.MaxDBPrice),
		CatalogData:          model.CatalogData,
		MatchedProducts:      products,
	}
}

type CatalogStatConverterImpl struct{}

func NewCatalogStatConverterImpl() *CatalogStatConverterImpl {
	return &CatalogStatConverterImpl{}
}

func (c *CatalogStatConverterImpl) ToArrRedisModel(stats []usecase.CatalogStatInfo) []CatalogStatRedisModel {
	out := make([]CatalogStatRedisModel, 0, len(stats))
	for _, s := range stats {
		out = append(out, CatalogStatRedisModel{
			Catalog:            s.Catalog,
			VersionUID:         s.VersionUID,
			Items:              s.Items,
			MatchedProducts:    s.MatchedProducts,
			OkCount:            s.OkCount,
			HighCount:          s.HighCount,
			AvgDBPrice:         toFloatPtr(s.AvgDBPrice),
			ItemsWithOkPrice:   s.ItemsWithOkPrice,
			ItemsOnlyHighPrice: s.ItemsOnlyHighPrice,
		})
	}

	return out
}

func (c *CatalogStatConverterImpl) ToArrUseCase(models []CatalogStatRedisModel) []usecase.CatalogStatInfo {
	out := make([]usecase.CatalogStatInfo, 0, len(models))
	for _, m := range models {
		out = append(out, usecase.CatalogStatInfo{
			Catalog:            m.Catalog,
			VersionUID:         m.VersionUID,
			Items:              m.Items,
			MatchedProducts:    m.MatchedProducts,
			OkCount:            m.OkCount,
			HighCount:          m.HighCount,
			AvgDBPrice:         fromFloatPtr(m.AvgDBPrice),
			ItemsWithOkPrice:   m.ItemsWithOkPrice,
			ItemsOnlyHighPrice: m.ItemsOnlyHighPrice,
		})
	}

	return out
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
