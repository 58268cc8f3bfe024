package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"

	serrors "github.com/sealedenv/sealed/internal/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

const sealedVersion = "ENCv1"

// SealedPrefix is the literal prefix of every sealed value. Matching it is
// a routing heuristic only; it does not imply the rest of the value is
// well-formed.
const SealedPrefix = sealedVersion + ":"

// NonceSize is the ChaCha20-Poly1305 nonce length in bytes.
const NonceSize = chacha20poly1305.NonceSize

// EncryptValue seals plaintext under key with the variable name as
// associated data, producing ENCv1:<base64(nonce)>:<base64(ciphertext)>.
// A fresh nonce is drawn from crypto/rand on every call, so sealing the
// same value twice yields different output. Renaming the variable
// invalidates decryption.
func EncryptValue(key []byte, varName string, plaintext []byte) (string, error) {
	if len(key) != KeySize {
		return "", serrors.Cryptof("key must be 32 bytes after base64 decode")
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", serrors.Cryptof("encryption failed")
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", serrors.Cryptof("failed to generate nonce")
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, []byte(varName))

	nonceB64 := base64.StdEncoding.EncodeToString(nonce)
	ctB64 := base64.StdEncoding.EncodeToString(ciphertext)

	return sealedVersion + ":" + nonceB64 + ":" + ctB64, nil
}

// DecryptValue opens a sealed value with the variable name as associated
// data and returns the plaintext. The caller owns the returned bytes and
// should Wipe them when done. Authentication failures are deliberately
// indistinguishable: a wrong key, a renamed variable, and tampered
// ciphertext all produce the same error message.
func DecryptValue(key []byte, varName string, sealed string) ([]byte, error) {
	nonce, ciphertext, err := ParseSealed(sealed)
	if err != nil {
		return nil, err
	}

	if len(key) != KeySize {
		return nil, serrors.Cryptof("key must be 32 bytes after base64 decode")
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, serrors.Cryptof("decryption failed (bad key or data)")
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(varName))
	if err != nil {
		return nil, serrors.Cryptof("decryption failed (bad key or data)")
	}

	return plaintext, nil
}

// ParseSealed splits a sealed value into its nonce and ciphertext,
// enforcing the version tag, field count, and nonce length.
func ParseSealed(value string) (nonce []byte, ciphertext []byte, err error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 || parts[0] != sealedVersion {
		return nil, nil, serrors.Cryptof("invalid encrypted value format")
	}

	nonce, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, serrors.Cryptof("invalid base64 nonce")
	}

	if len(nonce) != NonceSize {
		return nil, nil, serrors.Cryptof("nonce must be 12 bytes after base64 decode")
	}

	ciphertext, err = base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, serrors.Cryptof("invalid base64 ciphertext")
	}

	return nonce, ciphertext, nil
}

// IsSealed reports whether value carries the ENCv1 prefix.
func IsSealed(value string) bool {
	return strings.HasPrefix(value, SealedPrefix)
}
