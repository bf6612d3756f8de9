package chi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rentaly/offersearch/internal/domain/query"
)

// searchParamsFromRequest parses the search query string. Missing or
// unparseable required parameters fail here, before any store access.
func searchParamsFromRequest(r *http.Request) (query.Params, error) {
	q := r.URL.Query()
	var p query.Params
	var err error

	if p.RegionID, err = requiredInt32(q, "regionID"); err != nil {
		return query.Params{}, err
	}

	if p.TimeRangeStart, err = requiredInt64(q, "timeRangeStart"); err != nil {
		return query.Params{}, err
	}
	if p.TimeRangeEnd, err = requiredInt64(q, "timeRangeEnd"); err != nil {
		return query.Params{}, err
	}

	numberDays, err := requiredInt64(q, "numberDays")
	if err != nil {
		return query.Params{}, err
	}
	p.NumberDays = int(numberDays)

	sortOrder, err := requiredString(q, "sortOrder")
	if err != nil {
		return query.Params{}, err
	}
	p.SortOrder = query.SortOrder(sortOrder)

	if p.Page, err = requiredUint64(q, "page"); err != nil {
		return query.Params{}, err
	}
	if p.PageSize, err = requiredUint64(q, "pageSize"); err != nil {
		return query.Params{}, err
	}

	if p.PriceRangeWidth, err = requiredUint32(q, "priceRangeWidth"); err != nil {
		return query.Params{}, err
	}
	if p.MinFreeKilometerWidth, err = requiredUint32(q, "minFreeKilometerWidth"); err != nil {
		return query.Params{}, err
	}

	// Optional refinements: absent means no constraint on that dimension.
	if p.MinNumberSeats, err = optionalInt(q, "minNumberSeats"); err != nil {
		return query.Params{}, err
	}
	if p.MinPrice, err = optionalUint32(q, "minPrice"); err != nil {
		return query.Params{}, err
	}
	if p.MaxPrice, err = optionalUint32(q, "maxPrice"); err != nil {
		return query.Params{}, err
	}
	if v := q.Get("carType"); v != "" {
		p.CarType = &v
	}
	if p.OnlyVollkasko, err = optionalBool(q, "onlyVollkasko"); err != nil {
		return query.Params{}, err
	}
	if p.MinFreeKilometer, err = optionalUint32(q, "minFreeKilometer"); err != nil {
		return query.Params{}, err
	}

	return p, nil
}

func requiredString(q url.Values, name string) (string, error) {
	v := q.Get(name)
	if v == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	return v, nil
}

func requiredInt64(q url.Values, name string) (int64, error) {
	raw, err := requiredString(q, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// requiredInt32 parses at 32-bit width so out-of-range values are
// rejected at the boundary instead of silently truncated.
func requiredInt32(q url.Values, name string) (int32, error) {
	raw, err := requiredString(q, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return int32(v), nil
}

func requiredUint32(q url.Values, name string) (uint32, error) {
	raw, err := requiredString(q, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint32(v), nil
}

func requiredUint64(q url.Values, name string) (uint64, error) {
	raw, err := requiredString(q, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func optionalInt(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

func optionalUint32(q url.Values, name string) (*uint32, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	u := uint32(v)
	return &u, nil
}

func optionalBool(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}
