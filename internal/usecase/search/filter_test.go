package search

import (
	"testing"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/query"
)

func TestMatches_RequiredPredicates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *domain.Offer)
		want   bool
	}{
		{name: "all satisfied", mutate: func(o *domain.Offer) {}, want: true},
		{name: "other region", mutate: func(o *domain.Offer) { o.RegionID = 2 }, want: false},
		{name: "starts after window", mutate: func(o *domain.Offer) { o.StartDate = 1001 }, want: false},
		{name: "ends before window", mutate: func(o *domain.Offer) { o.StartDate = -500; o.EndDate = -1 }, want: false},
		{name: "starts exactly at window end", mutate: func(o *domain.Offer) { o.StartDate = 1000; o.EndDate = 2000 }, want: true},
		{name: "ends exactly at window start", mutate: func(o *domain.Offer) { o.StartDate = -500; o.EndDate = 0 }, want: true},
		{name: "spans entire window", mutate: func(o *domain.Offer) { o.StartDate = -500; o.EndDate = 2000 }, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := testOffer("a", 100)
			tc.mutate(&o)
			q := buildQuery(t, baseParams())

			if got := matches(&o, &q); got != tc.want {
				t.Errorf("matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatches_OptionalPredicates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *domain.Offer)
		params func(p *query.Params)
		want   bool
	}{
		{
			name:   "enough seats",
			mutate: func(o *domain.Offer) { o.NumberSeats = 5 },
			params: func(p *query.Params) { p.MinNumberSeats = ptr(5) },
			want:   true,
		},
		{
			name:   "too few seats",
			mutate: func(o *domain.Offer) { o.NumberSeats = 4 },
			params: func(p *query.Params) { p.MinNumberSeats = ptr(5) },
			want:   false,
		},
		{
			name:   "price at inclusive lower bound",
			mutate: func(o *domain.Offer) { o.Price = 100 },
			params: func(p *query.Params) { p.MinPrice = ptr(uint32(100)) },
			want:   true,
		},
		{
			name:   "price below lower bound",
			mutate: func(o *domain.Offer) { o.Price = 99 },
			params: func(p *query.Params) { p.MinPrice = ptr(uint32(100)) },
			want:   false,
		},
		{
			name:   "price at exclusive upper bound",
			mutate: func(o *domain.Offer) { o.Price = 500 },
			params: func(p *query.Params) { p.MaxPrice = ptr(uint32(500)) },
			want:   false,
		},
		{
			name:   "price just under upper bound",
			mutate: func(o *domain.Offer) { o.Price = 499 },
			params: func(p *query.Params) { p.MaxPrice = ptr(uint32(500)) },
			want:   true,
		},
		{
			name:   "car type match",
			mutate: func(o *domain.Offer) { o.CarType = domain.CarTypeLuxury },
			params: func(p *query.Params) { p.CarType = ptr("luxury") },
			want:   true,
		},
		{
			name:   "car type mismatch",
			mutate: func(o *domain.Offer) { o.CarType = domain.CarTypeSmall },
			params: func(p *query.Params) { p.CarType = ptr("luxury") },
			want:   false,
		},
		{
			name:   "vollkasko required and present",
			mutate: func(o *domain.Offer) { o.HasVollkasko = true },
			params: func(p *query.Params) { p.OnlyVollkasko = ptr(true) },
			want:   true,
		},
		{
			name:   "vollkasko required and absent",
			mutate: func(o *domain.Offer) { o.HasVollkasko = false },
			params: func(p *query.Params) { p.OnlyVollkasko = ptr(true) },
			want:   false,
		},
		{
			name:   "vollkasko false matches only uninsured",
			mutate: func(o *domain.Offer) { o.HasVollkasko = true },
			params: func(p *query.Params) { p.OnlyVollkasko = ptr(false) },
			want:   false,
		},
		{
			name:   "free kilometers at threshold",
			mutate: func(o *domain.Offer) { o.FreeKilometers = 150 },
			params: func(p *query.Params) { p.MinFreeKilometer = ptr(uint32(150)) },
			want:   true,
		},
		{
			name:   "free kilometers below threshold",
			mutate: func(o *domain.Offer) { o.FreeKilometers = 149 },
			params: func(p *query.Params) { p.MinFreeKilometer = ptr(uint32(150)) },
			want:   false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := testOffer("a", 100)
			tc.mutate(&o)

			p := baseParams()
			tc.params(&p)
			q := buildQuery(t, p)

			if got := matches(&o, &q); got != tc.want {
				t.Errorf("matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatches_AllPredicatesCombined(t *testing.T) {
	o := testOffer("a", 300)
	o.NumberSeats = 5
	o.CarType = domain.CarTypeFamily
	o.HasVollkasko = true
	o.FreeKilometers = 250

	p := baseParams()
	p.MinNumberSeats = ptr(4)
	p.MinPrice = ptr(uint32(200))
	p.MaxPrice = ptr(uint32(400))
	p.CarType = ptr("family")
	p.OnlyVollkasko = ptr(true)
	p.MinFreeKilometer = ptr(uint32(200))
	q := buildQuery(t, p)

	if !matches(&o, &q) {
		t.Error("expected offer to satisfy every predicate")
	}

	// One failing predicate rejects the offer.
	o.FreeKilometers = 100
	if matches(&o, &q) {
		t.Error("expected offer to be rejected on free kilometers")
	}
}

func TestMatches_NumberDaysIsNotAFilter(t *testing.T) {
	o := testOffer("a", 100)
	o.StartDate = 100
	o.EndDate = 150 // far shorter than any multi-day rental

	p := baseParams()
	p.NumberDays = 30
	q := buildQuery(t, p)

	if !matches(&o, &q) {
		t.Error("numberDays must not restrict the match")
	}
}
