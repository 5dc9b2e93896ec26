package mapclient

import (
	"strings"
	"testing"

	"moi/internal/models"
)

func TestHistoryOrder(t *testing.T) {
	tests := []struct {
		name   string
		record models.MerchantRecord
		want   string
	}{
		{
			name:   "new business beats everything",
			record: models.MerchantRecord{NewBusinessFlag: "true", InBusiness360DayFlag: "true"},
			want:   "New business",
		},
		{
			name:   "a year beats 30 days",
			record: models.MerchantRecord{InBusiness360DayFlag: "true", InBusiness30DayFlag: "true"},
			want:   "In business for at least a year",
		},
		{
			name:   "6 months",
			record: models.MerchantRecord{InBusiness180DayFlag: "true", InBusiness7DayFlag: "true"},
			want:   "In business for at least 6 months",
		},
		{
			name:   "90 days",
			record: models.MerchantRecord{InBusiness90DayFlag: "true"},
			want:   "In business for at least 90 days",
		},
		{
			name:   "60 days",
			record: models.MerchantRecord{InBusiness60DayFlag: "true"},
			want:   "In business for at least 60 days",
		},
		{
			name:   "30 days upper case",
			record: models.MerchantRecord{InBusiness30DayFlag: "TRUE"},
			want:   "In business for at least 30 days",
		},
		{
			name:   "7 days",
			record: models.MerchantRecord{InBusiness7DayFlag: "True"},
			want:   "In business for at least 7 days",
		},
		{
			name:   "no flags",
			record: models.MerchantRecord{NewBusinessFlag: "false", InBusiness7DayFlag: "no"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := History(tt.record); got != tt.want {
				t.Errorf("History() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFeaturesAlwaysThreeEntries(t *testing.T) {
	tests := []struct {
		record models.MerchantRecord
		want   string
	}{
		{models.MerchantRecord{}, "Cashback: No, Pay at the pump: No, Accept NFC: No"},
		{models.MerchantRecord{CashBack: "true", PayAtThePump: "TRUE", NfcFlag: "True"}, "Cashback: Yes, Pay at the pump: Yes, Accept NFC: Yes"},
		{models.MerchantRecord{CashBack: "false", PayAtThePump: "yes", NfcFlag: "true"}, "Cashback: No, Pay at the pump: No, Accept NFC: Yes"},
	}

	for _, tt := range tests {
		got := Features(tt.record)
		if got != tt.want {
			t.Errorf("Features() = %q, want %q", got, tt.want)
		}
		if n := len(strings.Split(got, ", ")); n != 3 {
			t.Errorf("expected 3 feature entries, got %d", n)
		}
	}
}

func TestClassificationFallsBackToCodes(t *testing.T) {
	lookups := NewLookups(
		[]models.Industry{{Industry: "EAP", IndustryName: "Eating Places"}},
		[]models.MerchantCategory{{MerchantCatCode: "5814", MerchantCategoryName: "Fast Food Restaurants"}},
	)

	tests := []struct {
		name    string
		record  models.MerchantRecord
		lookups *Lookups
		want    string
	}{
		{"both known", models.MerchantRecord{Industry: "EAP", MccCode: "5814"}, lookups, "Business: Eating Places / Fast Food Restaurants"},
		{"unknown industry", models.MerchantRecord{Industry: "ZZZ", MccCode: "5814"}, lookups, "Business: ZZZ / Fast Food Restaurants"},
		{"unknown category", models.MerchantRecord{Industry: "EAP", MccCode: "0000"}, lookups, "Business: Eating Places / 0000"},
		{"empty lookups", models.MerchantRecord{Industry: "EAP", MccCode: "5814"}, NewLookups(nil, nil), "Business: EAP / 5814"},
		{"nil lookups", models.MerchantRecord{Industry: "EAP", MccCode: "5814"}, nil, "Business: EAP / 5814"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classification(tt.record, tt.lookups); got != tt.want {
				t.Errorf("Classification() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupsFirstEntryWins(t *testing.T) {
	lookups := NewLookups(
		[]models.Industry{{Industry: "A", IndustryName: "first"}, {Industry: "A", IndustryName: "second"}},
		nil,
	)
	if got := lookups.IndustryName("A"); got != "first" {
		t.Errorf("expected first entry to win, got %q", got)
	}
}

func TestDetails(t *testing.T) {
	record := models.MerchantRecord{
		MerchantName:         "CORNER CAFE",
		CleansedMerchantName: "Corner Cafe",
		CleansedStreetAddr:   "1 Main St",
		Industry:             "EAP",
		MccCode:              "5814",
		NfcFlag:              "true",
		InBusiness90DayFlag:  "true",
	}

	got := Details(record, nil)
	want := DisplayDetails{
		Name:           "Corner Cafe",
		Address:        "1 Main St",
		Classification: "Business: EAP / 5814",
		Features:       "Cashback: No, Pay at the pump: No, Accept NFC: Yes",
		History:        "In business for at least 90 days",
	}
	if got != want {
		t.Errorf("Details() = %+v, want %+v", got, want)
	}
}

func TestMarkerLabel(t *testing.T) {
	tests := map[string]string{
		"CORNER CAFE": "C",
		"Épicerie":    "É",
		"":            "",
	}
	for name, want := range tests {
		if got := markerLabel(name); got != want {
			t.Errorf("markerLabel(%q) = %q, want %q", name, got, want)
		}
	}
}
