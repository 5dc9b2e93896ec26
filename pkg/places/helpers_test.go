package places

import (
	"crypto/rand"
	"crypto/rsa"
	"net/url"
	"strings"
	"sync"
	"testing"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func signingKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("failed to generate key: %v", err)
		}
		testKey = key
	})
	return testKey
}

// parseAuthorization splits an OAuth header into decoded parameters.
func parseAuthorization(t *testing.T, header string) map[string]string {
	t.Helper()
	if !strings.HasPrefix(header, "OAuth ") {
		t.Fatalf("expected OAuth header, got %q", header)
	}
	params := make(map[string]string)
	for _, part := range strings.Split(strings.TrimPrefix(header, "OAuth "), ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			t.Fatalf("malformed header part %q", part)
		}
		v, err := url.PathUnescape(strings.Trim(kv[1], `"`))
		if err != nil {
			t.Fatalf("failed to unescape %q: %v", kv[1], err)
		}
		params[kv[0]] = v
	}
	return params
}

func stringPtr(s string) *string {
	return &s
}
