// Package search implements the filter, facet-aggregation, and pagination
// engine. Every query runs against one consistent snapshot of the dataset:
// filtering, ordering, windowing, and all five facets observe the same set.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/facet"
	"github.com/rentaly/offersearch/internal/domain/query"
	"github.com/rentaly/offersearch/internal/logger"
	"github.com/rentaly/offersearch/internal/metrics"
)

// cancelCheckInterval is how many offers are scanned between context
// cancellation checks. The scan is read-only against an immutable
// snapshot, so abandoning it is always safe.
const cancelCheckInterval = 1024

// slowSearchThreshold is the scan duration above which a search gets a
// warning log line with its scan statistics.
const slowSearchThreshold = 500 * time.Millisecond

// Result is one query's output: the requested page plus the five
// aggregate views, all computed over the same filtered set.
type Result struct {
	Offers             []domain.Offer
	PriceRanges        []facet.PriceRange
	CarTypeCounts      facet.CarTypeCounts
	SeatsCount         []facet.SeatsCount
	FreeKilometerRange []facet.KilometerRange
	VollkaskoCount     facet.VollkaskoCount
}

// Service executes search queries.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search takes a snapshot of the dataset, filters it against the query,
// orders it, extracts the requested page, and aggregates the facets.
// Writes committed after the snapshot was taken are not visible.
func (s *Service) Search(ctx context.Context, q *query.Query) (*Result, error) {
	start := time.Now()

	snapshot, err := s.repo.SnapshotAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot offers: %w", err)
	}

	filtered := make([]domain.Offer, 0, len(snapshot))
	for i := range snapshot {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if matches(&snapshot[i], q) {
			filtered = append(filtered, snapshot[i])
		}
	}

	sortOffers(filtered, q.SortOrder())

	res := &Result{
		Offers:             pageWindow(filtered, q.Page(), q.PageSize()),
		PriceRanges:        priceHistogram(filtered, q.PriceRangeWidth()),
		CarTypeCounts:      carTypeCounts(filtered),
		SeatsCount:         seatsCounts(filtered),
		FreeKilometerRange: kilometerHistogram(filtered, q.MinFreeKilometerWidth()),
		VollkaskoCount:     vollkaskoCounts(filtered),
	}

	elapsed := time.Since(start)
	metrics.SearchDuration.Observe(elapsed.Seconds())
	metrics.OffersScanned.Observe(float64(len(snapshot)))
	metrics.OffersMatched.Observe(float64(len(filtered)))

	if elapsed > slowSearchThreshold {
		logger.FromContext(ctx).Warn("slow search",
			zap.Duration("elapsed", elapsed),
			zap.Int("scanned", len(snapshot)),
			zap.Int("matched", len(filtered)),
		)
	}

	return res, nil
}

// sortOffers imposes the total order: price ascending or descending per
// sortOrder, ties always broken by ID ascending so repeated identical
// queries return identical pages regardless of store iteration order.
func sortOffers(offers []domain.Offer, order query.SortOrder) {
	sort.Slice(offers, func(i, j int) bool {
		a, b := &offers[i], &offers[j]
		if a.Price != b.Price {
			if order == query.SortPriceDesc {
				return a.Price > b.Price
			}
			return a.Price < b.Price
		}
		return a.ID < b.ID
	})
}

// pageWindow returns offers at positions [(page-1)*size, page*size) of
// the ordered set, clamped. Windows beyond the end yield an empty page,
// never a wrapped index.
func pageWindow(offers []domain.Offer, page, size uint64) []domain.Offer {
	total := uint64(len(offers))
	// Compared in divided form: (page-1)*size would wrap for huge pages.
	if total == 0 || page-1 > (total-1)/size {
		return []domain.Offer{}
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return offers[start:end]
}
