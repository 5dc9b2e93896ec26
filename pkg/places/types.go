package places

import "moi/internal/models"

// Operation names, used in logs and errors
const (
	OpMerchantPOI           = "merchantPOI"
	OpMerchantCategoryCodes = "merchantCategoryCodes"
	OpMerchantIndustries    = "merchantIndustries"
)

// Provider resource paths
const (
	PathMerchantPOI           = "/location-intelligence/places-locator/merchantpoi"
	PathMerchantCategoryCodes = "/location-intelligence/places-locator/merchantcategorycodes"
	PathMerchantIndustries    = "/location-intelligence/places-locator/merchantindustries"
)

// Fixed search shape
const (
	SearchPageOffset   = "0"
	SearchPageLength   = "10"
	SearchRadiusSearch = "true"
	SearchUnit         = "km"
	SearchDistance     = "15"
)

// SearchRequest is the body of a nearby-merchant search.
type SearchRequest struct {
	PageOffset   string      `json:"pageOffset"`
	PageLength   string      `json:"pageLength"`
	RadiusSearch string      `json:"radiusSearch"`
	Unit         string      `json:"unit"`
	Distance     string      `json:"distance"`
	Place        SearchPlace `json:"place"`
}

// SearchPlace is the origin of a radius search
type SearchPlace struct {
	CountryCode *string `json:"countryCode,omitempty"`
	Latitude    string  `json:"latitude"`
	Longitude   string  `json:"longitude"`
}

// NewSearchRequest builds the fixed-shape search with the place block copied from q.
func NewSearchRequest(q models.PlaceQuery) SearchRequest {
	return SearchRequest{
		PageOffset:   SearchPageOffset,
		PageLength:   SearchPageLength,
		RadiusSearch: SearchRadiusSearch,
		Unit:         SearchUnit,
		Distance:     SearchDistance,
		Place: SearchPlace{
			CountryCode: q.CountryCode,
			Latitude:    q.Latitude,
			Longitude:   q.Longitude,
		},
	}
}
