package offersearch

// Offer is one rentable item record with searchable attributes and an
// opaque payload.
type Offer struct {
	ID             string
	Data           []byte
	RegionID       int32
	StartDate      int64
	EndDate        int64
	NumberSeats    int
	Price          uint32
	CarType        string
	HasVollkasko   bool
	FreeKilometers uint32
}

// Sort orders for search queries.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// SearchQuery holds filter, ordering, pagination, and histogram-width
// parameters for one search. Pointer fields are optional refinements;
// nil means no constraint on that dimension.
type SearchQuery struct {
	RegionID              int32
	TimeRangeStart        int64
	TimeRangeEnd          int64
	NumberDays            int
	SortOrder             string
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

// OfferSummary is one page entry: the offer ID and its opaque payload.
type OfferSummary struct {
	ID   string
	Data []byte
}

// PriceRange is one half-open [Start, End) price histogram bucket.
type PriceRange struct {
	Start uint32
	End   uint32
	Count uint32
}

// CarTypeCounts counts filtered offers per fixed car type category.
type CarTypeCounts struct {
	Small  uint32
	Sports uint32
	Luxury uint32
	Family uint32
}

// SeatsCount counts filtered offers with an exact seat count.
type SeatsCount struct {
	NumberSeats int
	Count       uint32
}

// KilometerRange is one half-open [Start, End) free-kilometer bucket.
type KilometerRange struct {
	Start uint32
	End   uint32
	Count uint32
}

// VollkaskoCount counts filtered offers by insurance flag.
type VollkaskoCount struct {
	TrueCount  uint32
	FalseCount uint32
}

// SearchResult is the page of matching offers plus the five aggregate
// views, all computed over the same filtered snapshot.
type SearchResult struct {
	Offers             []OfferSummary
	PriceRanges        []PriceRange
	CarTypeCounts      CarTypeCounts
	SeatsCount         []SeatsCount
	FreeKilometerRange []KilometerRange
	VollkaskoCount     VollkaskoCount
}
