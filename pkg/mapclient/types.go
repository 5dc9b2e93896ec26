package mapclient

import (
	"github.com/paulmach/orb"
)

// Notices shown to the user
const (
	NoticeNoResults   = "No interesting merchant found"
	NoticeNoGeocode   = "No results found"
	noticeNoDetails   = "No details available for input: '%s'"
	noticeGeocodeFail = "Geocoder failed due to: %s"
)

// Default map view
const (
	DefaultLat  = -33.8688
	DefaultLng  = 151.2195
	DefaultZoom = 14
)

// LatLng is a WGS84 coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts to an orb point, which is ordered lng, lat.
func (ll LatLng) Point() orb.Point {
	return orb.Point{ll.Lng, ll.Lat}
}

// Location is a search origin
type Location struct {
	Lat         float64
	Lng         float64
	CountryCode string
}

// Point converts to an orb point
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// DisplayDetails is what the popup shows for one merchant.
type DisplayDetails struct {
	Name           string
	Address        string
	Classification string
	Features       string
	History        string
}

// Marker is a pin on the map.
type Marker interface {
	Position() orb.Point
	Label() string
	SetVisible(visible bool)
	// OnClick replaces the click handler; nil detaches it.
	OnClick(fn func())
}

// Map is the rendering surface the controller draws on.
type Map interface {
	SetCenter(center orb.Point)
	Zoom() int
	SetZoom(zoom int)
	FitBounds(bounds orb.Bound)
	NewMarker(position orb.Point, label string) Marker
	// ShowPopup fills the shared popup with details and opens it on m.
	ShowPopup(m Marker, details DisplayDetails)
}

// Notifier shows a message to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) {
	f(message)
}
