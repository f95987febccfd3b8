// Package compare реализует движок сопоставления каталога с базой продуктов:
// подбор продуктов по референс-кодам, классификацию цен и агрегацию строк датасета.
package compare

import (
	"sync"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Options — параметры прогона сопоставления.
type Options struct {
	PriceDeltaPerc decimal.Decimal
	Workers        int
}

// Run прогоняет позиции каталога через сопоставление и классификацию цен,
// затем агрегирует результат по (артикул, бренд). Позиции обрабатываются
// пулом воркеров, итоговый порядок детерминирован порядком входных позиций.
// Вторым значением возвращаются позиции, исключённые из-за пустого ключа группировки.
func Run(entries []domain.CatalogEntry, products []domain.Product, opts Options) ([]domain.CatalogMatch, []*domain.CatalogEntry) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]EntryResult, len(entries))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range entries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			entry := &entries[i]
			matches := MatchEntry(entry, products)
			for j := range matches {
				matches[j].PriceClassification = Classify(matches[j].Price, entry.PriceEUR, entry.Segment, opts.PriceDeltaPerc)
			}

			results[i] = EntryResult{Entry: entry, Matches: matches}
		}(i)
	}
	wg.Wait()

	return Aggregate(results)
}
