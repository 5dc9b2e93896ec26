package places

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"moi/internal/models"
	"moi/pkg/config"
	"moi/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// emptyBodyHash is base64(sha256("")).
const emptyBodyHash = "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="

func newTestClient(t *testing.T, sandboxURL string) *Client {
	t.Helper()
	key := signingKey(t)
	cfg := &config.PlacesConfig{
		ConsumerKey:   "consumer-key",
		KeyStorePath:  "/keys/places.p12",
		KeyPassword:   "keystorepassword",
		SandboxURL:    sandboxURL,
		ProductionURL: "http://production.invalid",
		Timeout:       5,
	}
	return NewClient(cfg, false, WithKeyLoader(func(path, password string) (*rsa.PrivateKey, error) {
		return key, nil
	}))
}

func TestSearchNearbyMerchantsSendsFixedShape(t *testing.T) {
	const providerBody = `{"MerchantPOIResponse":{"places":{"place":[{"merchantName":"Cafe"}]}}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != PathMerchantPOI {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("Format") != "JSON" {
			t.Errorf("expected Format=JSON, got %q", r.URL.RawQuery)
		}
		params := parseAuthorization(t, r.Header.Get("Authorization"))
		if params["oauth_consumer_key"] != "consumer-key" {
			t.Errorf("unexpected consumer key %q", params["oauth_consumer_key"])
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		want := map[string]interface{}{
			"pageOffset":   "0",
			"pageLength":   "10",
			"radiusSearch": "true",
			"unit":         "km",
			"distance":     "15",
			"place": map[string]interface{}{
				"countryCode": "AUS",
				"latitude":    "-33.87",
				"longitude":   "151.21",
			},
		}
		if !reflect.DeepEqual(req, want) {
			t.Errorf("unexpected search request %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, providerBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	body, err := client.SearchNearbyMerchants(context.Background(), models.PlaceQuery{
		CountryCode: stringPtr("AUS"),
		Latitude:    "-33.87",
		Longitude:   "151.21",
	})
	if err != nil {
		t.Fatalf("SearchNearbyMerchants returned error: %v", err)
	}
	if string(body) != providerBody {
		t.Errorf("expected body relayed verbatim, got %s", body)
	}
}

func TestListOperationsSendEmptyPayload(t *testing.T) {
	var hits []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected empty body, got %q", body)
		}
		params := parseAuthorization(t, r.Header.Get("Authorization"))
		if params["oauth_body_hash"] != emptyBodyHash {
			t.Errorf("unexpected body hash %q", params["oauth_body_hash"])
		}
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()
	if _, err := client.ListMerchantCategoryCodes(ctx); err != nil {
		t.Fatalf("ListMerchantCategoryCodes returned error: %v", err)
	}
	if _, err := client.ListMerchantIndustries(ctx); err != nil {
		t.Fatalf("ListMerchantIndustries returned error: %v", err)
	}

	if len(hits) != 2 || hits[0] != PathMerchantCategoryCodes || hits[1] != PathMerchantIndustries {
		t.Errorf("unexpected paths %v", hits)
	}
}

func TestProviderErrorRelaysStatusAndBody(t *testing.T) {
	const errorBody = `{"Errors":{"Error":[{"ReasonCode":"INVALID_INPUT"}]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, errorBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListMerchantIndustries(context.Background())

	pe, ok := AsProviderError(err)
	if !ok {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Operation != OpMerchantIndustries {
		t.Errorf("unexpected operation %q", pe.Operation)
	}
	if pe.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", pe.HTTPStatus())
	}
	if string(pe.Body) != errorBody {
		t.Errorf("expected provider body, got %s", pe.Body)
	}
}

func TestProviderErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   int
	}{
		{0, http.StatusInternalServerError},
		{http.StatusFound, http.StatusInternalServerError},
		{http.StatusUnauthorized, http.StatusUnauthorized},
		{http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{700, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		pe := NewProviderError(OpMerchantPOI, tt.status, nil, nil)
		if got := pe.HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus() for %d = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestSearchRequiresCoordinates(t *testing.T) {
	client := newTestClient(t, "http://unused.invalid")
	_, err := client.SearchNearbyMerchants(context.Background(), models.PlaceQuery{Latitude: "1"})

	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	pe, _ := AsProviderError(err)
	if pe.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", pe.HTTPStatus())
	}
	if client.Initialized() {
		t.Error("session should not be initialized by an invalid query")
	}
}

func TestSessionInitializedOnceAndRetriedAfterFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	key := signingKey(t)
	var loads int32
	cfg := &config.PlacesConfig{ConsumerKey: "k", KeyStorePath: "/keys/places.p12", SandboxURL: server.URL}
	client := NewClient(cfg, false, WithKeyLoader(func(path, password string) (*rsa.PrivateKey, error) {
		if atomic.AddInt32(&loads, 1) == 1 {
			return nil, ErrKeyStore
		}
		return key, nil
	}))

	ctx := context.Background()
	_, err := client.ListMerchantIndustries(ctx)
	if !errors.Is(err, ErrKeyStore) {
		t.Fatalf("expected ErrKeyStore on first call, got %v", err)
	}
	if pe, ok := AsProviderError(err); !ok || pe.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("expected provider error with status 500, got %v", err)
	}
	if client.Initialized() {
		t.Fatal("client should not be initialized after a failed setup")
	}

	for i := 0; i < 3; i++ {
		if _, err := client.ListMerchantIndustries(ctx); err != nil {
			t.Fatalf("call %d returned error: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&loads); got != 2 {
		t.Errorf("expected keystore to be loaded twice, got %d", got)
	}
}

func TestMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PlacesConfig
		want error
	}{
		{name: "no consumer key", cfg: &config.PlacesConfig{KeyStorePath: "/k.p12"}, want: ErrMissingConsumerKey},
		{name: "no keystore", cfg: &config.PlacesConfig{ConsumerKey: "k"}, want: ErrMissingKeyStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.cfg, false)
			_, err := client.ListMerchantCategoryCodes(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEnvironmentSelectsBaseURL(t *testing.T) {
	var sandboxHits, productionHits int32
	sandbox := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&sandboxHits, 1)
		io.WriteString(w, `{}`)
	}))
	defer sandbox.Close()
	production := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&productionHits, 1)
		io.WriteString(w, `{}`)
	}))
	defer production.Close()

	key := signingKey(t)
	loader := WithKeyLoader(func(path, password string) (*rsa.PrivateKey, error) { return key, nil })
	cfg := &config.PlacesConfig{
		ConsumerKey:   "k",
		KeyStorePath:  "/k.p12",
		SandboxURL:    sandbox.URL,
		ProductionURL: production.URL,
	}

	ctx := context.Background()
	if _, err := NewClient(cfg, false, loader).ListMerchantIndustries(ctx); err != nil {
		t.Fatalf("sandbox call failed: %v", err)
	}
	if _, err := NewClient(cfg, true, loader).ListMerchantIndustries(ctx); err != nil {
		t.Fatalf("production call failed: %v", err)
	}

	if atomic.LoadInt32(&sandboxHits) != 1 || atomic.LoadInt32(&productionHits) != 1 {
		t.Errorf("expected one hit each, got sandbox=%d production=%d", sandboxHits, productionHits)
	}
}

func TestCallLogsOneLinePerOutcome(t *testing.T) {
	const errorBody = `{"Errors":{"Error":[{"ReasonCode":"SYSTEM_ERROR"}]}}`

	core, logs := observer.New(zapcore.DebugLevel)
	saved := logger.Logger
	logger.Logger = zap.New(core)
	defer func() { logger.Logger = saved }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == PathMerchantIndustries {
			io.WriteString(w, `{"MerchantIndustryList":{}}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, errorBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.ListMerchantIndustries(context.Background()); err != nil {
		t.Fatalf("ListMerchantIndustries returned error: %v", err)
	}
	if _, err := client.ListMerchantCategoryCodes(context.Background()); err == nil {
		t.Fatal("expected error from ListMerchantCategoryCodes")
	}

	succeeded := logs.FilterMessage("Places request succeeded").All()
	if len(succeeded) != 1 {
		t.Fatalf("expected 1 success entry, got %d", len(succeeded))
	}
	if op := succeeded[0].ContextMap()["operation"]; op != OpMerchantIndustries {
		t.Errorf("expected operation %q on success, got %v", OpMerchantIndustries, op)
	}

	failed := logs.FilterMessage("Places request failed").All()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failure entry, got %d", len(failed))
	}
	fields := failed[0].ContextMap()
	if fields["operation"] != OpMerchantCategoryCodes {
		t.Errorf("expected operation %q on failure, got %v", OpMerchantCategoryCodes, fields["operation"])
	}
	if fields["payload"] != errorBody {
		t.Errorf("expected raw payload on failure, got %v", fields["payload"])
	}
	if failed[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected error level, got %s", failed[0].Level)
	}
}

func TestSearchRequestCopiesCountryCodeVerbatim(t *testing.T) {
	tests := []struct {
		name        string
		countryCode *string
		wantPresent bool
		want        string
	}{
		{name: "absent", countryCode: nil, wantPresent: false},
		{name: "empty", countryCode: stringPtr(""), wantPresent: true, want: ""},
		{name: "unchecked value", countryCode: stringPtr("undefined"), wantPresent: true, want: "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(NewSearchRequest(models.PlaceQuery{
				CountryCode: tt.countryCode,
				Latitude:    "1",
				Longitude:   "2",
			}))
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			var decoded struct {
				Place map[string]interface{} `json:"place"`
			}
			if err := json.Unmarshal(body, &decoded); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			got, present := decoded.Place["countryCode"]
			if present != tt.wantPresent {
				t.Fatalf("countryCode present = %v, want %v (%s)", present, tt.wantPresent, body)
			}
			if present && got != tt.want {
				t.Errorf("countryCode = %v, want %q", got, tt.want)
			}
		})
	}
}
