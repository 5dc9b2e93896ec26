package models

import (
	"bytes"
	"encoding/json"
)

// MerchantRecord is one place returned by a nearby-merchant search.
// Flags are boolean-as-string ("true"/"false") as the provider sends them.
type MerchantRecord struct {
	MerchantName                string `json:"merchantName"`
	CleansedMerchantName        string `json:"cleansedMerchantName"`
	CleansedStreetAddr          string `json:"cleansedStreetAddr"`
	CleansedCityName            string `json:"cleansedCityName,omitempty"`
	CleansedStateProvidenceCode string `json:"cleansedStateProvidenceCode,omitempty"`
	CleansedPostCode            string `json:"cleansedPostCode,omitempty"`
	CleansedCountryCode         string `json:"cleansedCountryCode,omitempty"`
	Latitude                    string `json:"latitude"`
	Longitude                   string `json:"longitude"`
	Industry                    string `json:"industry"`
	MccCode                     string `json:"mccCode"`
	LocationID                  string `json:"locationId,omitempty"`

	CashBack     string `json:"cashBack"`
	PayAtThePump string `json:"payAtThePump"`
	NfcFlag      string `json:"nfcFlag"`

	NewBusinessFlag      string `json:"newBusinessFlag"`
	InBusiness7DayFlag   string `json:"inBusiness7DayFlag"`
	InBusiness30DayFlag  string `json:"inBusiness30DayFlag"`
	InBusiness60DayFlag  string `json:"inBusiness60DayFlag"`
	InBusiness90DayFlag  string `json:"inBusiness90DayFlag"`
	InBusiness180DayFlag string `json:"inBusiness180DayFlag"`
	InBusiness360DayFlag string `json:"inBusiness360DayFlag"`
}

// MerchantPOIEnvelope is the top-level body of a nearby-merchant search response.
type MerchantPOIEnvelope struct {
	MerchantPOIResponse *MerchantPOIResponse `json:"MerchantPOIResponse"`
}

// MerchantPOIResponse carries paging details and the place list
type MerchantPOIResponse struct {
	PageOffset string     `json:"pageOffset,omitempty"`
	TotalCount string     `json:"totalCount,omitempty"`
	Places     *PlaceList `json:"places"`
}

// PlaceList wraps the place array.
type PlaceList struct {
	Place []MerchantRecord `json:"place"`
}

// UnmarshalJSON accepts "place" as either an array or a single object; the
// provider collapses one-element arrays.
func (pl *PlaceList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Place json.RawMessage `json:"place"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(raw.Place)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		pl.Place = nil
	case trimmed[0] == '{':
		var single MerchantRecord
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		pl.Place = []MerchantRecord{single}
	default:
		return json.Unmarshal(trimmed, &pl.Place)
	}
	return nil
}

// Places returns the place records, or nil when any level of the envelope is absent.
func (e *MerchantPOIEnvelope) Places() []MerchantRecord {
	if e == nil || e.MerchantPOIResponse == nil || e.MerchantPOIResponse.Places == nil {
		return nil
	}
	return e.MerchantPOIResponse.Places.Place
}
