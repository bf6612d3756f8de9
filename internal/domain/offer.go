package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyPrefix is the default namespace for all store keys.
const KeyPrefix = "offersearch:"

// CarType is one of the four fixed offer categories.
type CarType string

// Fixed car type categories. Offers may carry other values; those are
// stored verbatim but never counted in the car-type facet.
const (
	CarTypeSmall  CarType = "small"
	CarTypeSports CarType = "sports"
	CarTypeLuxury CarType = "luxury"
	CarTypeFamily CarType = "family"
)

// IsValid reports whether the car type is one of the fixed categories.
func (c CarType) IsValid() bool {
	switch c {
	case CarTypeSmall, CarTypeSports, CarTypeLuxury, CarTypeFamily:
		return true
	}
	return false
}

// Offer is the unit of storage and filtering. The JSON tags are the wire
// and storage contract: Data marshals as a standard base64 string.
type Offer struct {
	ID             string  `json:"ID"`
	Data           []byte  `json:"data"`
	RegionID       int32   `json:"mostSpecificRegionID"`
	StartDate      int64   `json:"startDate"`
	EndDate        int64   `json:"endDate"`
	NumberSeats    int     `json:"numberSeats"`
	Price          uint32  `json:"price"`
	CarType        CarType `json:"carType"`
	HasVollkasko   bool    `json:"hasVollkasko"`
	FreeKilometers uint32  `json:"freeKilometers"`
}

// Validate checks the offer's structural invariants before persistence.
// The car type is deliberately not validated: unknown values are stored
// as-is and only excluded from the categorical facet.
func (o *Offer) Validate() error {
	if _, err := uuid.Parse(o.ID); err != nil {
		return fmt.Errorf("offer ID %q is not a valid UUID: %w", o.ID, ErrInvalidOffer)
	}
	if o.StartDate < 0 || o.EndDate < 0 {
		return fmt.Errorf("availability window must be non-negative: %w", ErrInvalidOffer)
	}
	if o.NumberSeats <= 0 {
		return fmt.Errorf("numberSeats must be positive, got %d: %w", o.NumberSeats, ErrInvalidOffer)
	}
	return nil
}
