package mapclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moi/internal/models"
)

// Gateway paths
const (
	PathMerchantPOI           = "/places/merchantPOI"
	PathMerchantCategoryCodes = "/places/merchantCategoryCodes"
	PathMerchantIndustries    = "/places/merchantIndustries"
)

// Gateway is the client's view of the query gateway.
type Gateway interface {
	SearchNearby(ctx context.Context, loc Location) (*models.MerchantPOIEnvelope, error)
	MerchantIndustries(ctx context.Context) ([]models.Industry, error)
	MerchantCategories(ctx context.Context) ([]models.MerchantCategory, error)
}

// HTTPGateway calls the query gateway over HTTP.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGateway creates a gateway client rooted at baseURL
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchNearby queries merchants around loc
func (g *HTTPGateway) SearchNearby(ctx context.Context, loc Location) (*models.MerchantPOIEnvelope, error) {
	query := url.Values{}
	query.Set("lat", formatCoord(loc.Lat))
	query.Set("lng", formatCoord(loc.Lng))
	query.Set("countryCode", loc.CountryCode)

	var env models.MerchantPOIEnvelope
	if err := g.getJSON(ctx, PathMerchantPOI, query, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// MerchantIndustries fetches the industry lookup table
func (g *HTTPGateway) MerchantIndustries(ctx context.Context) ([]models.Industry, error) {
	var env models.IndustryListEnvelope
	if err := g.getJSON(ctx, PathMerchantIndustries, nil, &env); err != nil {
		return nil, err
	}
	return env.Industries(), nil
}

// MerchantCategories fetches the category code lookup table
func (g *HTTPGateway) MerchantCategories(ctx context.Context) ([]models.MerchantCategory, error) {
	var env models.CategoryListEnvelope
	if err := g.getJSON(ctx, PathMerchantCategoryCodes, nil, &env); err != nil {
		return nil, err
	}
	return env.Categories(), nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
