package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRegion = errors.New("unknown region")

// Region carries the electrical inputs of the power/TCO model.
type Region struct {
	Key                  string  `json:"key"`
	EfficiencyMultiplier float64 `json:"efficiency_multiplier"`
	DefaultRatePerKwh    float64 `json:"default_rate_per_kwh"`
	Voltage              int     `json:"voltage"`
	HoursPerDay          float64 `json:"hours_per_day"`
}

var regions = map[string]Region{
	"US": {Key: "US", EfficiencyMultiplier: 1.03, DefaultRatePerKwh: 0.16, Voltage: 120, HoursPerDay: 4},
	"EU": {Key: "EU", EfficiencyMultiplier: 1.0, DefaultRatePerKwh: 0.30, Voltage: 230, HoursPerDay: 4},
}

// DefaultRegionKey is used when neither the request nor REGION names one.
const DefaultRegionKey = "US"

// LookupRegion returns the region for a key (case-insensitive).
func LookupRegion(key string) (Region, error) {
	r, ok := regions[strings.ToUpper(strings.TrimSpace(key))]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, key)
	}
	return r, nil
}

// RegionKeys lists the configured regions.
func RegionKeys() []string {
	return []string{"EU", "US"}
}

// WithRate overrides the default electricity rate when rate > 0.
func (r Region) WithRate(rate float64) Region {
	if rate > 0 {
		r.DefaultRatePerKwh = rate
	}
	return r
}
