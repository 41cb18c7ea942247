package country

import (
	"context"
	"math"
)

// Record is one country as returned by the provider. Name is the row key.
type Record struct {
	Name   string   `json:"name"             yaml:"name"`
	Region string   `json:"region"           yaml:"region"`
	Area   *float64 `json:"area,omitempty"   yaml:"area,omitempty"`
}

// HasArea reports whether the record carries a usable area. Zero and NaN
// count as missing, matching how the size filter gates rows.
func (r Record) HasArea() bool {
	return r.Area != nil && *r.Area != 0 && !math.IsNaN(*r.Area)
}

// AreaValue returns the area, or 0 when absent.
func (r Record) AreaValue() float64 {
	if r.Area == nil {
		return 0
	}
	return *r.Area
}

// Area is a convenience for building records with an area.
func Area(v float64) *float64 {
	return &v
}

// Provider retrieves the full list of countries. Implementations must honour
// ctx cancellation and report failures as *FetchError.
type Provider interface {
	FetchCountries(ctx context.Context) ([]Record, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]Record, error)

// FetchCountries calls f.
func (f ProviderFunc) FetchCountries(ctx context.Context) ([]Record, error) {
	return f(ctx)
}
