// Package query holds the validated search query value object.
package query

import (
	"fmt"

	"github.com/rentaly/offersearch/internal/domain"
)

// SortOrder determines the total ordering of the filtered offer set.
type SortOrder string

// Supported sort orders. Anything else is rejected, never defaulted.
const (
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// IsValid reports whether the sort order is supported.
func (s SortOrder) IsValid() bool {
	return s == SortPriceAsc || s == SortPriceDesc
}

// Params carries raw search parameters into New. Required fields are
// plain values (the transport layer rejects requests that omit them);
// optional refinements are pointers, nil meaning "not set".
type Params struct {
	RegionID              int32
	TimeRangeStart        int64
	TimeRangeEnd          int64
	NumberDays            int
	SortOrder             SortOrder
	Page                  uint64
	PageSize              uint64
	PriceRangeWidth       uint32
	MinFreeKilometerWidth uint32

	MinNumberSeats   *int
	MinPrice         *uint32
	MaxPrice         *uint32
	CarType          *string
	OnlyVollkasko    *bool
	MinFreeKilometer *uint32
}

// Query is a validated search query. Built per request, never persisted.
type Query struct {
	regionID              int32
	timeRangeStart        int64
	timeRangeEnd          int64
	numberDays            int
	sortOrder             SortOrder
	page                  uint64
	pageSize              uint64
	priceRangeWidth       uint32
	minFreeKilometerWidth uint32

	minNumberSeats   *int
	minPrice         *uint32
	maxPrice         *uint32
	carType          *string
	onlyVollkasko    *bool
	minFreeKilometer *uint32
}

// New validates search parameters and builds a Query.
func New(p Params) (Query, error) {
	if !p.SortOrder.IsValid() {
		return Query{}, fmt.Errorf("unknown sortOrder %q: %w", p.SortOrder, domain.ErrInvalidQuery)
	}
	if p.Page < 1 {
		return Query{}, fmt.Errorf("page must be >= 1: %w", domain.ErrInvalidQuery)
	}
	if p.PageSize < 1 {
		return Query{}, fmt.Errorf("pageSize must be >= 1: %w", domain.ErrInvalidQuery)
	}
	if p.PriceRangeWidth == 0 {
		return Query{}, fmt.Errorf("priceRangeWidth must be > 0: %w", domain.ErrInvalidQuery)
	}
	if p.MinFreeKilometerWidth == 0 {
		return Query{}, fmt.Errorf("minFreeKilometerWidth must be > 0: %w", domain.ErrInvalidQuery)
	}

	return Query{
		regionID:              p.RegionID,
		timeRangeStart:        p.TimeRangeStart,
		timeRangeEnd:          p.TimeRangeEnd,
		numberDays:            p.NumberDays,
		sortOrder:             p.SortOrder,
		page:                  p.Page,
		pageSize:              p.PageSize,
		priceRangeWidth:       p.PriceRangeWidth,
		minFreeKilometerWidth: p.MinFreeKilometerWidth,
		minNumberSeats:        p.MinNumberSeats,
		minPrice:              p.MinPrice,
		maxPrice:              p.MaxPrice,
		carType:               p.CarType,
		onlyVollkasko:         p.OnlyVollkasko,
		minFreeKilometer:      p.MinFreeKilometer,
	}, nil
}

// RegionID returns the required region filter.
func (q *Query) RegionID() int32 { return q.regionID }

// TimeRangeStart returns the inclusive lower bound of the availability window.
func (q *Query) TimeRangeStart() int64 { return q.timeRangeStart }

// TimeRangeEnd returns the inclusive upper bound of the availability window.
func (q *Query) TimeRangeEnd() int64 { return q.timeRangeEnd }

// NumberDays returns the requested rental duration. Carried through from
// the request but not part of any filter predicate.
func (q *Query) NumberDays() int { return q.numberDays }

// SortOrder returns the requested total ordering.
func (q *Query) SortOrder() SortOrder { return q.sortOrder }

// Page returns the 1-indexed page number.
func (q *Query) Page() uint64 { return q.page }

// PageSize returns the page window size.
func (q *Query) PageSize() uint64 { return q.pageSize }

// PriceRangeWidth returns the price histogram bucket width.
func (q *Query) PriceRangeWidth() uint32 { return q.priceRangeWidth }

// MinFreeKilometerWidth returns the free-kilometer histogram bucket width.
func (q *Query) MinFreeKilometerWidth() uint32 { return q.minFreeKilometerWidth }

// MinNumberSeats returns the optional minimum seat count, nil if unset.
func (q *Query) MinNumberSeats() *int { return q.minNumberSeats }

// MinPrice returns the optional inclusive lower price bound, nil if unset.
func (q *Query) MinPrice() *uint32 { return q.minPrice }

// MaxPrice returns the optional exclusive upper price bound, nil if unset.
func (q *Query) MaxPrice() *uint32 { return q.maxPrice }

// CarType returns the optional exact car type filter, nil if unset.
func (q *Query) CarType() *string { return q.carType }

// OnlyVollkasko returns the optional insurance flag filter, nil if unset.
func (q *Query) OnlyVollkasko() *bool { return q.onlyVollkasko }

// MinFreeKilometer returns the optional minimum free kilometers, nil if unset.
func (q *Query) MinFreeKilometer() *uint32 { return q.minFreeKilometer }
