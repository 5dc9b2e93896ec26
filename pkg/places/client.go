package places

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"moi/internal/models"
	"moi/pkg/config"
	"moi/pkg/logger"

	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 8 << 20

// Client talks to the Mastercard Places API.
// The signing session is set up on first use and kept for the life of the
// client; a failed setup is retried by the next call.
type Client struct {
	config     *config.PlacesConfig
	production bool
	httpClient *http.Client
	loadKey    func(path, password string) (*rsa.PrivateKey, error)

	mu          sync.Mutex
	initialized bool
	signer      *Signer
	baseURL     string
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for provider calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithKeyLoader replaces the keystore loader
func WithKeyLoader(load func(path, password string) (*rsa.PrivateKey, error)) Option {
	return func(c *Client) {
		c.loadKey = load
	}
}

// NewClient creates a Places client. production selects the production
// endpoint, otherwise the sandbox is used.
func NewClient(cfg *config.PlacesConfig, production bool, opts ...Option) *Client {
	if cfg == nil {
		cfg = config.NewPlacesConfig()
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		config:     cfg,
		production: production,
		httpClient: &http.Client{Timeout: timeout},
		loadKey:    LoadSigningKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialized reports whether the signing session has been set up
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// ensureSession loads credentials and selects the environment exactly once.
func (c *Client) ensureSession() (*Signer, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return c.signer, c.baseURL, nil
	}

	if c.config.ConsumerKey == "" {
		return nil, "", ErrMissingConsumerKey
	}
	if c.config.KeyStorePath == "" {
		return nil, "", ErrMissingKeyStore
	}

	key, err := c.loadKey(c.config.KeyStorePath, c.config.KeyPassword)
	if err != nil {
		return nil, "", err
	}

	c.signer = NewSigner(c.config.ConsumerKey, key)
	c.baseURL = strings.TrimRight(c.config.BaseURL(c.production), "/")
	c.initialized = true

	logger.Info("Places session initialized",
		zap.String("base_url", c.baseURL),
		zap.Bool("production", c.production),
		zap.String("key_alias", c.config.KeyAlias))

	return c.signer, c.baseURL, nil
}

// SearchNearbyMerchants runs a radius search around the place in q.
func (c *Client) SearchNearbyMerchants(ctx context.Context, q models.PlaceQuery) ([]byte, error) {
	if q.Latitude == "" || q.Longitude == "" {
		return nil, NewProviderError(OpMerchantPOI, http.StatusBadRequest, nil,
			fmt.Errorf("%w: latitude and longitude are required", ErrInvalidQuery))
	}

	body, err := json.Marshal(NewSearchRequest(q))
	if err != nil {
		return nil, NewProviderError(OpMerchantPOI, 0, nil, err)
	}
	return c.call(ctx, OpMerchantPOI, http.MethodPost, PathMerchantPOI, body)
}

// ListMerchantCategoryCodes returns the merchant category code table.
func (c *Client) ListMerchantCategoryCodes(ctx context.Context) ([]byte, error) {
	return c.call(ctx, OpMerchantCategoryCodes, http.MethodGet, PathMerchantCategoryCodes, nil)
}

// ListMerchantIndustries returns the merchant industry table.
func (c *Client) ListMerchantIndustries(ctx context.Context) ([]byte, error) {
	return c.call(ctx, OpMerchantIndustries, http.MethodGet, PathMerchantIndustries, nil)
}

// call performs one provider request and logs a single outcome line.
func (c *Client) call(ctx context.Context, op, method, path string, body []byte) ([]byte, error) {
	log := logger.FromContext(logger.WithOperation(ctx, op))
	start := time.Now()

	payload, err := c.do(ctx, op, method, path, body)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.Duration("duration", time.Since(start))}
		if pe, ok := AsProviderError(err); ok && len(pe.Body) > 0 {
			fields = append(fields, zap.Int("status", pe.StatusCode), logger.PayloadField(pe.Body))
		}
		log.Error("Places request failed", fields...)
		return nil, err
	}

	log.Info("Places request succeeded",
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(payload)))
	if c.config.EnableDebug {
		log.Debug("Places response", logger.PayloadField(payload))
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte) ([]byte, error) {
	signer, baseURL, err := c.ensureSession()
	if err != nil {
		return nil, NewProviderError(op, 0, nil, err)
	}

	u, err := url.Parse(baseURL + path)
	if err != nil {
		return nil, NewProviderError(op, 0, nil, err)
	}
	query := u.Query()
	query.Set("Format", "JSON")
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, NewProviderError(op, 0, nil, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := signer.Sign(req, body); err != nil {
		return nil, NewProviderError(op, 0, nil, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewProviderError(op, 0, nil, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, NewProviderError(op, resp.StatusCode, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewProviderError(op, resp.StatusCode, payload, nil)
	}
	return payload, nil
}
