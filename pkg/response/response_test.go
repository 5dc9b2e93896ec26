package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestWriteRawJSONIsVerbatim(t *testing.T) {
	c, w := newContext()
	raw := []byte(`{"b":1,  "a":[2]}`)
	WriteRawJSON(c, http.StatusOK, raw)

	if w.Body.String() != string(raw) {
		t.Errorf("expected body unchanged, got %s", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestWriteProviderError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       []byte
		wantStatus int
		wantRaw    bool
	}{
		{name: "relays provider body", status: http.StatusNotFound, body: []byte(`{"Errors":{}}`), wantStatus: http.StatusNotFound, wantRaw: true},
		{name: "no body", status: http.StatusBadGateway, wantStatus: http.StatusBadGateway},
		{name: "non-error status", status: http.StatusOK, wantStatus: http.StatusInternalServerError},
		{name: "zero status", status: 0, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			WriteProviderError(c, tt.status, tt.body, errors.New("provider failed"))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantRaw {
				if w.Body.String() != string(tt.body) {
					t.Errorf("expected provider body, got %s", w.Body.String())
				}
				return
			}
			var body ErrorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected JSON error body: %v", err)
			}
			if !body.Error || body.Code != tt.wantStatus || body.Details != "provider failed" {
				t.Errorf("unexpected error body %+v", body)
			}
		})
	}
}
