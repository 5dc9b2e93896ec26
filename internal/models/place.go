package models

// PlaceQuery is the input to a nearby-merchant search.
// Coordinates stay in the caller's decimal text so they reach the provider
// exactly as entered. CountryCode is nil when the caller did not send one and
// is otherwise forwarded unchecked, empty string included.
type PlaceQuery struct {
	CountryCode *string `form:"countryCode" json:"countryCode,omitempty"`
	Latitude    string  `form:"lat" json:"latitude" validate:"required,latitude"`
	Longitude   string  `form:"lng" json:"longitude" validate:"required,longitude"`
}
