package mapclient

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"moi/internal/models"
)

//go:embed sample/sample-moi.json
var sampleResponse []byte

// SampleResponse returns the bundled search response used outside production.
func SampleResponse() []byte {
	out := make([]byte, len(sampleResponse))
	copy(out, sampleResponse)
	return out
}

// ParseSearchResponse decodes a merchant search response
func ParseSearchResponse(body []byte) (*models.MerchantPOIEnvelope, error) {
	var env models.MerchantPOIEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &env, nil
}
