package mapclient

import (
	"context"
	"fmt"
)

// AddressComponent is one part of a geocoded address
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Geometry carries a resolved location
type Geometry struct {
	Location LatLng `json:"location"`
}

// GeocodeResult is one reverse-geocoding match
type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address,omitempty"`
	AddressComponents []AddressComponent `json:"address_components"`
	Geometry          *Geometry          `json:"geometry,omitempty"`
}

// PlaceSelection is what an autocomplete widget reports when the user picks a place.
// Geometry is nil when the user typed a name that matched nothing.
type PlaceSelection struct {
	Name              string             `json:"name"`
	AddressComponents []AddressComponent `json:"address_components"`
	Geometry          *Geometry          `json:"geometry,omitempty"`
}

// Geocoder turns coordinates into address results.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, pos LatLng) ([]GeocodeResult, error)
}

// GeocodeStatusError is a geocoder reply other than OK or zero results
type GeocodeStatusError struct {
	Status string
}

func (e *GeocodeStatusError) Error() string {
	return fmt.Sprintf("geocoder status %s", e.Status)
}

// CountryCode returns the short name of the first component typed "country".
// ok is false when no such component exists.
func CountryCode(components []AddressComponent) (code string, ok bool) {
	for _, c := range components {
		for _, t := range c.Types {
			if t == "country" {
				return c.ShortName, true
			}
		}
	}
	return "", false
}

// LocationFromSelection resolves an autocomplete selection.
func LocationFromSelection(sel PlaceSelection) (Location, error) {
	if sel.Geometry == nil {
		return Location{}, fmt.Errorf("%w: %q", ErrNoGeometry, sel.Name)
	}
	code, _ := CountryCode(sel.AddressComponents)
	return Location{
		Lat:         sel.Geometry.Location.Lat,
		Lng:         sel.Geometry.Location.Lng,
		CountryCode: code,
	}, nil
}

// LocationFromGeocode resolves coordinates with the first geocoding result.
func LocationFromGeocode(pos LatLng, results []GeocodeResult) (Location, error) {
	if len(results) == 0 {
		return Location{}, fmt.Errorf("%w: no results", ErrGeocode)
	}
	code, _ := CountryCode(results[0].AddressComponents)
	return Location{Lat: pos.Lat, Lng: pos.Lng, CountryCode: code}, nil
}
