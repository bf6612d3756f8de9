package search

import (
	"math"
	"sort"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/facet"
)

// bucketEnd computes (bucket+1)*width in 64-bit arithmetic and saturates
// at the uint32 limit, so the topmost bucket keeps End >= Start instead
// of wrapping.
func bucketEnd(bucket, width uint32) uint32 {
	end := (uint64(bucket) + 1) * uint64(width)
	if end > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(end)
}

// All five facets are computed over the fully filtered set, the same set
// that gets paginated. No per-facet relaxation.

// priceHistogram buckets filtered offers by price into half-open
// [start, end) ranges of the given width starting at 0. Empty buckets
// are omitted; output is ascending by start.
func priceHistogram(offers []domain.Offer, width uint32) []facet.PriceRange {
	buckets := make(map[uint32]uint32)
	for i := range offers {
		buckets[offers[i].Price/width]++
	}

	out := make([]facet.PriceRange, 0, len(buckets))
	for b, count := range buckets {
		out = append(out, facet.PriceRange{
			Start: b * width,
			End:   bucketEnd(b, width),
			Count: count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// carTypeCounts counts filtered offers per fixed category. Offers with a
// car type outside the fixed set are left out of all four counters.
func carTypeCounts(offers []domain.Offer) facet.CarTypeCounts {
	var c facet.CarTypeCounts
	for i := range offers {
		switch offers[i].CarType {
		case domain.CarTypeSmall:
			c.Small++
		case domain.CarTypeSports:
			c.Sports++
		case domain.CarTypeLuxury:
			c.Luxury++
		case domain.CarTypeFamily:
			c.Family++
		}
	}
	return c
}

// seatsCounts groups filtered offers by exact seat count, ascending.
func seatsCounts(offers []domain.Offer) []facet.SeatsCount {
	counts := make(map[int]uint32)
	for i := range offers {
		counts[offers[i].NumberSeats]++
	}

	out := make([]facet.SeatsCount, 0, len(counts))
	for seats, count := range counts {
		out = append(out, facet.SeatsCount{NumberSeats: seats, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumberSeats < out[j].NumberSeats })
	return out
}

// kilometerHistogram buckets filtered offers by free kilometers with the
// same half-open rule as the price histogram.
func kilometerHistogram(offers []domain.Offer, width uint32) []facet.KilometerRange {
	buckets := make(map[uint32]uint32)
	for i := range offers {
		buckets[offers[i].FreeKilometers/width]++
	}

	out := make([]facet.KilometerRange, 0, len(buckets))
	for b, count := range buckets {
		out = append(out, facet.KilometerRange{
			Start: b * width,
			End:   bucketEnd(b, width),
			Count: count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// vollkaskoCounts tallies the insurance flag over the filtered set.
func vollkaskoCounts(offers []domain.Offer) facet.VollkaskoCount {
	var c facet.VollkaskoCount
	for i := range offers {
		if offers[i].HasVollkasko {
			c.TrueCount++
		} else {
			c.FalseCount++
		}
	}
	return c
}
