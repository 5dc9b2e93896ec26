package mapclient

import (
	"strings"

	"moi/internal/models"
)

// historyRules are checked in order; the first set flag decides the text.
var historyRules = []struct {
	flag func(models.MerchantRecord) string
	text string
}{
	{func(r models.MerchantRecord) string { return r.NewBusinessFlag }, "New business"},
	{func(r models.MerchantRecord) string { return r.InBusiness360DayFlag }, "In business for at least a year"},
	{func(r models.MerchantRecord) string { return r.InBusiness180DayFlag }, "In business for at least 6 months"},
	{func(r models.MerchantRecord) string { return r.InBusiness90DayFlag }, "In business for at least 90 days"},
	{func(r models.MerchantRecord) string { return r.InBusiness60DayFlag }, "In business for at least 60 days"},
	{func(r models.MerchantRecord) string { return r.InBusiness30DayFlag }, "In business for at least 30 days"},
	{func(r models.MerchantRecord) string { return r.InBusiness7DayFlag }, "In business for at least 7 days"},
}

// Details derives the popup content for a merchant.
func Details(r models.MerchantRecord, lookups *Lookups) DisplayDetails {
	return DisplayDetails{
		Name:           r.CleansedMerchantName,
		Address:        r.CleansedStreetAddr,
		Classification: Classification(r, lookups),
		Features:       Features(r),
		History:        History(r),
	}
}

// Classification is "Business: <industry> / <category>" with raw codes as fallback.
func Classification(r models.MerchantRecord, lookups *Lookups) string {
	return "Business: " + lookups.IndustryName(r.Industry) + " / " + lookups.CategoryName(r.MccCode)
}

// Features lists cashback, pay-at-the-pump and NFC acceptance, always in that order.
func Features(r models.MerchantRecord) string {
	return strings.Join([]string{
		feature("Cashback", r.CashBack),
		feature("Pay at the pump", r.PayAtThePump),
		feature("Accept NFC", r.NfcFlag),
	}, ", ")
}

// History describes how long the merchant has been in business, or "".
func History(r models.MerchantRecord) string {
	for _, rule := range historyRules {
		if isTrue(rule.flag(r)) {
			return rule.text
		}
	}
	return ""
}

func feature(name, flag string) string {
	if isTrue(flag) {
		return name + ": Yes"
	}
	return name + ": No"
}

func isTrue(v string) bool {
	return strings.EqualFold(v, "true")
}

// markerLabel is the first character of the merchant name
func markerLabel(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
