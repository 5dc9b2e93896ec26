package places

import (
	"context"

	"moi/internal/models"
)

// Provider is the merchant-location query surface used by the gateway.
// Every method returns the provider's response body unchanged.
type Provider interface {
	SearchNearbyMerchants(ctx context.Context, q models.PlaceQuery) ([]byte, error)
	ListMerchantCategoryCodes(ctx context.Context) ([]byte, error)
	ListMerchantIndustries(ctx context.Context) ([]byte, error)
}
