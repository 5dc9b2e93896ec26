package mapclient

import "moi/internal/models"

// Lookups resolves industry and category codes to names.
// A code that is not present resolves to itself.
type Lookups struct {
	industries map[string]string
	categories map[string]string
}

// NewLookups indexes the two lookup tables. The first entry for a code wins.
func NewLookups(industries []models.Industry, categories []models.MerchantCategory) *Lookups {
	l := &Lookups{
		industries: make(map[string]string, len(industries)),
		categories: make(map[string]string, len(categories)),
	}
	for _, ind := range industries {
		if _, ok := l.industries[ind.Industry]; !ok {
			l.industries[ind.Industry] = ind.IndustryName
		}
	}
	for _, cat := range categories {
		if _, ok := l.categories[cat.MerchantCatCode]; !ok {
			l.categories[cat.MerchantCatCode] = cat.MerchantCategoryName
		}
	}
	return l
}

// IndustryName returns the name for code, or code itself
func (l *Lookups) IndustryName(code string) string {
	if l == nil {
		return code
	}
	if name, ok := l.industries[code]; ok {
		return name
	}
	return code
}

// CategoryName returns the name for code, or code itself
func (l *Lookups) CategoryName(code string) string {
	if l == nil {
		return code
	}
	if name, ok := l.categories[code]; ok {
		return name
	}
	return code
}

// Len returns the number of industries and categories held
func (l *Lookups) Len() (industries, categories int) {
	if l == nil {
		return 0, 0
	}
	return len(l.industries), len(l.categories)
}
