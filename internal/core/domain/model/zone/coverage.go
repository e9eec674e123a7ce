// Package zone contains the ShippingZone aggregate: a named geographic
// coverage definition (countries, regions, postal-code ranges, cities) and
// the links to the shipping methods offered inside it.
package zone

import (
	"strconv"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// PostalCodeRange is an inclusive [min, max] postal-code interval.
//
// Comparison is numeric when both bounds and the compared code consist of
// digits only, and case-insensitive lexical otherwise. This makes "00501"
// fall inside ["00001","01000"] and keeps alphanumeric codes (e.g. UK,
// Canada) deterministic.
type PostalCodeRange struct {
	min string
	max string
}

// NewPostalCodeRange creates a validated inclusive postal-code range.
// Both bounds are required and the range must not be inverted.
func NewPostalCodeRange(minCode, maxCode string) (PostalCodeRange, error) {
	minCode = normalizePostal(minCode)
	maxCode = normalizePostal(maxCode)

	if minCode == "" || maxCode == "" {
		return PostalCodeRange{}, errs.NewValueIsRequiredError("postal code range bound")
	}
	if comparePostal(minCode, maxCode) > 0 {
		return PostalCodeRange{}, errs.NewValueIsOutOfRangeError("postalCodeRange", minCode, minCode, maxCode)
	}

	return PostalCodeRange{min: minCode, max: maxCode}, nil
}

// Min returns the inclusive lower bound.
func (r PostalCodeRange) Min() string { return r.min }

// Max returns the inclusive upper bound.
func (r PostalCodeRange) Max() string { return r.max }

// Contains reports whether the postal code falls inside the range.
// Both boundary values match.
func (r PostalCodeRange) Contains(postalCode string) bool {
	postalCode = normalizePostal(postalCode)
	return comparePostal(postalCode, r.min) >= 0 && comparePostal(postalCode, r.max) <= 0
}

func normalizePostal(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// comparePostal orders two normalized postal codes: numerically when both
// are all digits, lexically otherwise.
func comparePostal(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// CountryCoverage describes one covered country within a zone, optionally
// narrowed by allow-lists of regions, postal-code ranges, and cities.
// An empty allow-list means "no restriction" for that filter.
type CountryCoverage struct {
	countryCode string
	regions     []string
	postalCodes []PostalCodeRange
	cities      []string
}

// NewCountryCoverage creates a coverage entry for the given country.
// The country code is required and normalized to upper case, as are region
// codes. City names keep their casing and are matched case-insensitively.
func NewCountryCoverage(countryCode string, regions []string, postalCodes []PostalCodeRange, cities []string) (CountryCoverage, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if countryCode == "" {
		return CountryCoverage{}, errs.NewValueIsRequiredError("countryCode")
	}

	normalizedRegions := make([]string, 0, len(regions))
	for _, region := range regions {
		region = strings.ToUpper(strings.TrimSpace(region))
		if region == "" {
			return CountryCoverage{}, errs.NewValueIsRequiredError("regions entry")
		}
		normalizedRegions = append(normalizedRegions, region)
	}

	normalizedCities := make([]string, 0, len(cities))
	for _, city := range cities {
		city = strings.TrimSpace(city)
		if city == "" {
			return CountryCoverage{}, errs.NewValueIsRequiredError("cities entry")
		}
		normalizedCities = append(normalizedCities, city)
	}

	return CountryCoverage{
		countryCode: countryCode,
		regions:     normalizedRegions,
		postalCodes: postalCodes,
		cities:      normalizedCities,
	}, nil
}

// CountryCode returns the covered country's ISO code.
func (c CountryCoverage) CountryCode() string { return c.countryCode }

// Regions returns the region allow-list; empty means any region.
func (c CountryCoverage) Regions() []string { return c.regions }

// PostalCodes returns the postal-range allow-list; empty means any code.
func (c CountryCoverage) PostalCodes() []PostalCodeRange { return c.postalCodes }

// Cities returns the city allow-list; empty means any city.
func (c CountryCoverage) Cities() []string { return c.cities }

// Covers reports whether the address satisfies this coverage entry.
// All present filters must pass: the country code must match exactly, and
// each non-empty allow-list must contain the corresponding address field.
func (c CountryCoverage) Covers(address kernel.Address) bool {
	if c.countryCode != address.Country() {
		return false
	}

	if len(c.regions) > 0 && !containsFold(c.regions, address.State()) {
		return false
	}

	if len(c.postalCodes) > 0 {
		inRange := false
		for _, r := range c.postalCodes {
			if r.Contains(address.PostalCode()) {
				inRange = true
				break
			}
		}
		if !inRange {
			return false
		}
	}

	if len(c.cities) > 0 && !containsFold(c.cities, address.City()) {
		return false
	}

	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
