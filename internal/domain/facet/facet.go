// Package facet holds the aggregate view types returned with every search.
// The JSON tags are the wire contract.
package facet

// PriceRange is one half-open [Start, End) price histogram bucket.
type PriceRange struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Count uint32 `json:"count"`
}

// CarTypeCounts counts filtered offers per fixed car type category.
// Offers with a car type outside the fixed set are counted nowhere.
type CarTypeCounts struct {
	Small  uint32 `json:"small"`
	Sports uint32 `json:"sports"`
	Luxury uint32 `json:"luxury"`
	Family uint32 `json:"family"`
}

// SeatsCount counts filtered offers with an exact seat count.
type SeatsCount struct {
	NumberSeats int    `json:"numberSeats"`
	Count       uint32 `json:"count"`
}

// KilometerRange is one half-open [Start, End) free-kilometer bucket.
type KilometerRange struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Count uint32 `json:"count"`
}

// VollkaskoCount counts filtered offers by insurance flag.
type VollkaskoCount struct {
	TrueCount  uint32 `json:"trueCount"`
	FalseCount uint32 `json:"falseCount"`
}
