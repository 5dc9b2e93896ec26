package places

import (
	"crypto/rsa"
	"fmt"
	"net/http"

	oauth "github.com/mastercard/oauth1-signer-go"
)

// Signer adds the OAuth 1.0a RSA-SHA256 Authorization header, body hash
// included, that the provider requires on every request.
type Signer struct {
	ConsumerKey string
	SigningKey  *rsa.PrivateKey
}

// NewSigner creates a signer for the given consumer key and private key
func NewSigner(consumerKey string, key *rsa.PrivateKey) *Signer {
	return &Signer{
		ConsumerKey: consumerKey,
		SigningKey:  key,
	}
}

// Sign computes the Authorization header for req carrying body.
// body must be the exact bytes sent; nil signs an empty payload.
func (s *Signer) Sign(req *http.Request, body []byte) error {
	if s.SigningKey == nil {
		return fmt.Errorf("%w: no signing key", ErrSigning)
	}

	header, err := oauth.GetAuthorizationHeader(req.URL, req.Method, body, s.ConsumerKey, s.SigningKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSigning, err)
	}
	req.Header.Set("Authorization", header)
	return nil
}
