package mapclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGatewaySearchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathMerchantPOI {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "-33.8688" || q.Get("lng") != "151.2195" || q.Get("countryCode") != "AU" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		io.WriteString(w, `{"MerchantPOIResponse":{"places":{"place":[{"merchantName":"A","latitude":"1","longitude":"2"}]}}}`)
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL+"/", time.Second)
	env, err := gw.SearchNearby(context.Background(), Location{Lat: -33.8688, Lng: 151.2195, CountryCode: "AU"})
	if err != nil {
		t.Fatalf("SearchNearby returned error: %v", err)
	}
	if places := env.Places(); len(places) != 1 || places[0].MerchantName != "A" {
		t.Errorf("unexpected places %+v", places)
	}
}

func TestHTTPGatewayAlwaysSendsCountryCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["countryCode"]; !ok {
			t.Errorf("expected countryCode parameter, got %s", r.URL.RawQuery)
		}
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	if _, err := NewHTTPGateway(server.URL, time.Second).SearchNearby(context.Background(), Location{Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("SearchNearby returned error: %v", err)
	}
}

func TestHTTPGatewayLookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathMerchantIndustries:
			io.WriteString(w, `{"MerchantIndustryList":{"MerchantIndustryArray":{"MerchantIndustry":[{"Industry":"EAP","IndustryName":"Eating Places"}]}}}`)
		case PathMerchantCategoryCodes:
			io.WriteString(w, `{"MerchantCategoryCodeList":{"MerchantCategoryCodeArray":{"MerchantCategoryCode":[{"MerchantCatCode":"5814","MerchantCategoryName":"Fast Food"}]}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, time.Second)
	ctx := context.Background()

	industries, err := gw.MerchantIndustries(ctx)
	if err != nil || len(industries) != 1 || industries[0].IndustryName != "Eating Places" {
		t.Errorf("unexpected industries %+v, err %v", industries, err)
	}
	categories, err := gw.MerchantCategories(ctx)
	if err != nil || len(categories) != 1 || categories[0].MerchantCatCode != "5814" {
		t.Errorf("unexpected categories %+v, err %v", categories, err)
	}
}

func TestHTTPGatewayErrors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error":true}`)
	}))
	defer failing.Close()

	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer garbled.Close()

	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
		want error
	}{
		{name: "non-200", url: failing.URL, want: ErrHTTPStatus},
		{name: "bad body", url: garbled.URL, want: ErrDecode},
		{name: "unreachable", url: closedURL, want: ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPGateway(tt.url, time.Second).SearchNearby(context.Background(), Location{Lat: 1, Lng: 2})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
