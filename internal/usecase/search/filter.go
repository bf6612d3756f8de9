package search

import (
	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/query"
)

// matches reports whether an offer satisfies every predicate of the
// query. Pure and side-effect free; safe for concurrent query executions
// over the same snapshot. Predicates short-circuit on first failure, in
// rough order of selectivity.
func matches(o *domain.Offer, q *query.Query) bool {
	if o.RegionID != q.RegionID() {
		return false
	}
	// Inclusive overlap of [StartDate, EndDate] with the query window.
	if o.StartDate > q.TimeRangeEnd() || o.EndDate < q.TimeRangeStart() {
		return false
	}
	if min := q.MinNumberSeats(); min != nil && o.NumberSeats < *min {
		return false
	}
	if min := q.MinPrice(); min != nil && o.Price < *min {
		return false
	}
	// maxPrice is an exclusive upper bound.
	if max := q.MaxPrice(); max != nil && o.Price >= *max {
		return false
	}
	if ct := q.CarType(); ct != nil && string(o.CarType) != *ct {
		return false
	}
	if vk := q.OnlyVollkasko(); vk != nil && o.HasVollkasko != *vk {
		return false
	}
	if min := q.MinFreeKilometer(); min != nil && o.FreeKilometers < *min {
		return false
	}
	return true
}
