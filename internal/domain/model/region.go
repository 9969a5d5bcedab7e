package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Region is a shipping destination zone.
type Region string

const (
	RegionSoutheast   Region = "SOUTHEAST"
	RegionSouth       Region = "SOUTH"
	RegionNortheast   Region = "NORTHEAST"
	RegionCentralWest Region = "CENTRAL_WEST"
	RegionNorth       Region = "NORTH"
)

var regionFactors = map[Region]decimal.Decimal{
	RegionSoutheast:   decimal.RequireFromString("1.00"),
	RegionSouth:       decimal.RequireFromString("1.05"),
	RegionNortheast:   decimal.RequireFromString("1.10"),
	RegionCentralWest: decimal.RequireFromString("1.20"),
	RegionNorth:       decimal.RequireFromString("1.30"),
}

// Regions lists every known region in a stable order.
func Regions() []Region {
	return []Region{RegionSoutheast, RegionSouth, RegionNortheast, RegionCentralWest, RegionNorth}
}

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	_, ok := regionFactors[r]
	return ok
}

// ShippingFactor returns the freight multiplier of the region.
// Unknown regions report false.
func (r Region) ShippingFactor() (decimal.Decimal, bool) {
	f, ok := regionFactors[r]
	return f, ok
}

// ParseRegion parses a region name, case-insensitively.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}
