package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	serrors "github.com/sealedenv/sealed/internal/errors"
)

// KeySize is the symmetric key length in bytes (256-bit).
const KeySize = 32

// NewKey generates a fresh random symmetric key. The caller owns the
// returned bytes and should Wipe them when done.
func NewKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, serrors.Cryptof("failed to generate key")
	}
	return key, nil
}

// EncodeKey returns the standard-base64 form of a key, the only external
// representation keys ever take.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey decodes a standard-base64 key and enforces the 32-byte length.
// The caller owns the returned bytes and should Wipe them when done.
func DecodeKey(b64 string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, serrors.Cryptof("invalid base64 key")
	}

	if len(decoded) != KeySize {
		Wipe(decoded)
		return nil, serrors.Cryptof("key must be 32 bytes after base64 decode")
	}

	return decoded, nil
}
