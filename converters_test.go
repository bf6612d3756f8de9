package offersearch

import (
	"errors"
	"testing"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/facet"
	searchuc "github.com/rentaly/offersearch/internal/usecase/search"
)

func TestToDomainOffers(t *testing.T) {
	in := sampleOffers()
	out := toDomainOffers(in)

	if len(out) != len(in) {
		t.Fatalf("expected %d offers, got %d", len(in), len(out))
	}
	if out[0].ID != in[0].ID || out[0].Price != in[0].Price {
		t.Errorf("field mismatch: %+v", out[0])
	}
	if out[0].CarType != domain.CarTypeSmall {
		t.Errorf("expected car type small, got %q", out[0].CarType)
	}
	if string(out[1].Data) != "offer2" {
		t.Errorf("payload not carried through: %q", out[1].Data)
	}
}

func TestToQuery_Validates(t *testing.T) {
	q := baseQuery()
	q.Page = 0

	_, err := toQuery(q)
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestFromResult(t *testing.T) {
	res := &searchuc.Result{
		Offers: []domain.Offer{
			{ID: "id-1", Data: []byte("payload")},
		},
		PriceRanges:        []facet.PriceRange{{Start: 0, End: 100, Count: 2}},
		CarTypeCounts:      facet.CarTypeCounts{Family: 2},
		SeatsCount:         []facet.SeatsCount{{NumberSeats: 4, Count: 2}},
		FreeKilometerRange: []facet.KilometerRange{{Start: 50, End: 100, Count: 2}},
		VollkaskoCount:     facet.VollkaskoCount{TrueCount: 1, FalseCount: 1},
	}

	out := fromResult(res)

	if len(out.Offers) != 1 || out.Offers[0].ID != "id-1" || string(out.Offers[0].Data) != "payload" {
		t.Errorf("unexpected offers: %+v", out.Offers)
	}
	if len(out.PriceRanges) != 1 || out.PriceRanges[0] != (PriceRange{Start: 0, End: 100, Count: 2}) {
		t.Errorf("unexpected price ranges: %+v", out.PriceRanges)
	}
	if out.CarTypeCounts.Family != 2 {
		t.Errorf("unexpected car type counts: %+v", out.CarTypeCounts)
	}
	if len(out.SeatsCount) != 1 || out.SeatsCount[0].NumberSeats != 4 {
		t.Errorf("unexpected seats counts: %+v", out.SeatsCount)
	}
	if len(out.FreeKilometerRange) != 1 || out.FreeKilometerRange[0].Start != 50 {
		t.Errorf("unexpected kilometer ranges: %+v", out.FreeKilometerRange)
	}
	if out.VollkaskoCount.TrueCount != 1 || out.VollkaskoCount.FalseCount != 1 {
		t.Errorf("unexpected vollkasko counts: %+v", out.VollkaskoCount)
	}
}
