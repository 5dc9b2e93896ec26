package models

// Industry pairs an industry code with its display name
type Industry struct {
	Industry     string `json:"Industry"`
	IndustryName string `json:"IndustryName"`
}

// MerchantCategory pairs a merchant category code (MCC) with its display name
type MerchantCategory struct {
	MerchantCatCode      string `json:"MerchantCatCode"`
	MerchantCategoryName string `json:"MerchantCategoryName"`
}

// IndustryListEnvelope is the provider body for the industry list query.
type IndustryListEnvelope struct {
	MerchantIndustryList struct {
		MerchantIndustryArray struct {
			MerchantIndustry []Industry `json:"MerchantIndustry"`
		} `json:"MerchantIndustryArray"`
	} `json:"MerchantIndustryList"`
}

// Industries returns the ordered industry entries
func (e *IndustryListEnvelope) Industries() []Industry {
	if e == nil {
		return nil
	}
	return e.MerchantIndustryList.MerchantIndustryArray.MerchantIndustry
}

// CategoryListEnvelope is the provider body for the category code query.
type CategoryListEnvelope struct {
	MerchantCategoryCodeList struct {
		MerchantCategoryCodeArray struct {
			MerchantCategoryCode []MerchantCategory `json:"MerchantCategoryCode"`
		} `json:"MerchantCategoryCodeArray"`
	} `json:"MerchantCategoryCodeList"`
}

// Categories returns the ordered category entries
func (e *CategoryListEnvelope) Categories() []MerchantCategory {
	if e == nil {
		return nil
	}
	return e.MerchantCategoryCodeList.MerchantCategoryCodeArray.MerchantCategoryCode
}
