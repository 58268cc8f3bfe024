package sealedenv

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/sealedenv/sealed/internal/secrets"
)

// keyEnvVar is the sole key source for the embedded read path.
const keyEnvVar = "SEALED_KEY"

// Sentinel errors for the embedded read API, matched with errors.Is.
var (
	// ErrMissingVar indicates the requested environment variable is not set.
	ErrMissingVar = errors.New("environment variable is not set")

	// ErrMissingKey indicates a sealed value needs decryption but
	// SEALED_KEY is absent from the environment.
	ErrMissingKey = errors.New("SEALED_KEY is not set")

	// ErrNotEncrypted indicates the variable is set but does not carry
	// the ENCv1 prefix.
	ErrNotEncrypted = errors.New("environment variable is not encrypted")

	// ErrCrypto indicates any cryptographic or decoding failure,
	// including non-UTF-8 plaintext.
	ErrCrypto = errors.New("crypto failure")
)

// Var reads a sealed variable from the process environment and returns
// its plaintext.
//
// This is the strict variant: the variable must be present and sealed.
// Use VarOrPlain if plaintext values should pass through.
func Var(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrMissingVar)
	}

	if !secrets.IsSealed(value) {
		return "", fmt.Errorf("%s: %w", name, ErrNotEncrypted)
	}

	return decrypt(name, value)
}

// VarOrPlain reads a variable from the process environment, returning it
// as-is when it is not sealed and decrypting it when it is.
func VarOrPlain(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrMissingVar)
	}

	if !secrets.IsSealed(value) {
		return value, nil
	}

	return decrypt(name, value)
}

// VarOptional reads a variable from the process environment, reporting
// absence instead of failing. A present value behaves as in VarOrPlain.
func VarOptional(name string) (string, bool, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false, nil
	}

	if !secrets.IsSealed(value) {
		return value, true, nil
	}

	plaintext, err := decrypt(name, value)
	if err != nil {
		return "", false, err
	}
	return plaintext, true, nil
}

// decrypt opens a sealed value using SEALED_KEY, enforcing UTF-8 on the
// plaintext. Key and plaintext buffers are wiped before returning; the
// returned string is the caller's to manage.
func decrypt(name, value string) (string, error) {
	keyB64 := os.Getenv(keyEnvVar)
	if keyB64 == "" {
		return "", fmt.Errorf("%s: %w", name, ErrMissingKey)
	}

	key, err := secrets.DecodeKey(keyB64)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", name, ErrCrypto, err)
	}
	defer secrets.Wipe(key)

	plaintext, err := secrets.DecryptValue(key, name, value)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", name, ErrCrypto, err)
	}

	if !utf8.Valid(plaintext) {
		secrets.Wipe(plaintext)
		return "", fmt.Errorf("%s: %w: decrypted value is not valid UTF-8", name, ErrCrypto)
	}

	decoded := string(plaintext)
	secrets.Wipe(plaintext)
	return decoded, nil
}
