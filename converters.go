package offersearch

import (
	"fmt"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/query"
	searchuc "github.com/rentaly/offersearch/internal/usecase/search"
)

func toDomainOffers(offers []Offer) []domain.Offer {
	out := make([]domain.Offer, len(offers))
	for i, o := range offers {
		out[i] = domain.Offer{
			ID:             o.ID,
			Data:           o.Data,
			RegionID:       o.RegionID,
			StartDate:      o.StartDate,
			EndDate:        o.EndDate,
			NumberSeats:    o.NumberSeats,
			Price:          o.Price,
			CarType:        domain.CarType(o.CarType),
			HasVollkasko:   o.HasVollkasko,
			FreeKilometers: o.FreeKilometers,
		}
	}
	return out
}

func toQuery(q SearchQuery) (query.Query, error) {
	built, err := query.New(query.Params{
		RegionID:              q.RegionID,
		TimeRangeStart:        q.TimeRangeStart,
		TimeRangeEnd:          q.TimeRangeEnd,
		NumberDays:            q.NumberDays,
		SortOrder:             query.SortOrder(q.SortOrder),
		Page:                  q.Page,
		PageSize:              q.PageSize,
		PriceRangeWidth:       q.PriceRangeWidth,
		MinFreeKilometerWidth: q.MinFreeKilometerWidth,
		MinNumberSeats:        q.MinNumberSeats,
		MinPrice:              q.MinPrice,
		MaxPrice:              q.MaxPrice,
		CarType:               q.CarType,
		OnlyVollkasko:         q.OnlyVollkasko,
		MinFreeKilometer:      q.MinFreeKilometer,
	})
	if err != nil {
		return query.Query{}, fmt.Errorf("build query: %w", err)
	}
	return built, nil
}

func fromResult(res *searchuc.Result) *SearchResult {
	out := &SearchResult{
		Offers:             make([]OfferSummary, len(res.Offers)),
		PriceRanges:        make([]PriceRange, len(res.PriceRanges)),
		SeatsCount:         make([]SeatsCount, len(res.SeatsCount)),
		FreeKilometerRange: make([]KilometerRange, len(res.FreeKilometerRange)),
		CarTypeCounts: CarTypeCounts{
			Small:  res.CarTypeCounts.Small,
			Sports: res.CarTypeCounts.Sports,
			Luxury: res.CarTypeCounts.Luxury,
			Family: res.CarTypeCounts.Family,
		},
		VollkaskoCount: VollkaskoCount{
			TrueCount:  res.VollkaskoCount.TrueCount,
			FalseCount: res.VollkaskoCount.FalseCount,
		},
	}
	for i := range res.Offers {
		out.Offers[i] = OfferSummary{ID: res.Offers[i].ID, Data: res.Offers[i].Data}
	}
	for i, pr := range res.PriceRanges {
		out.PriceRanges[i] = PriceRange{Start: pr.Start, End: pr.End, Count: pr.Count}
	}
	for i, sc := range res.SeatsCount {
		out.SeatsCount[i] = SeatsCount{NumberSeats: sc.NumberSeats, Count: sc.Count}
	}
	for i, kr := range res.FreeKilometerRange {
		out.FreeKilometerRange[i] = KilometerRange{Start: kr.Start, End: kr.End, Count: kr.Count}
	}
	return out
}
