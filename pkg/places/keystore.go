package places

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mastercard/oauth1-signer-go/utils"
)

// LoadSigningKey reads the RSA private key used to sign provider requests.
// PKCS#12 keystores (.p12/.pfx) are decoded with password; PEM files holding a
// PKCS#1 or PKCS#8 key are accepted for local development.
func LoadSigningKey(path, password string) (*rsa.PrivateKey, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pem", ".key":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyStore, err)
		}
		return parsePEMKey(data)
	default:
		key, err := utils.LoadSigningKey(path, password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyStore, err)
		}
		return key, nil
	}
}

func parsePEMKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyStore)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyStore, err)
	}
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	return rsaKey, nil
}
