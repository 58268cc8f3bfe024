// Package secrets provides the sealed-value codec and key material
// handling for sealed.
//
// # Sealed-value format
//
// A sealed value is the textual form
//
//	ENCv1:<base64(nonce)>:<base64(ciphertext)>
//
// where base64 is standard with padding, the nonce is 12 bytes drawn
// fresh from crypto/rand per encryption, and the ciphertext carries the
// ChaCha20-Poly1305 authentication tag. The variable's name is bound as
// associated data, so moving a ciphertext to a differently named variable
// fails authentication. ENCv1 is the only version tag this package
// accepts; any other prefix is malformed.
//
// # Keys
//
// Keys are 32 random bytes, externally represented as standard base64
// without line wrapping. They are generated by NewKey and decoded by
// DecodeKey, which enforces the length.
//
// # Secret material
//
// Raw key and plaintext bytes live in Material containers that expose
// bytes only through an accessor and zero-overwrite their storage on
// Destroy. Wipe is the shared primitive for erasing intermediate buffers
// on every exit path; Go strings received from argv or the environment
// cannot be wiped, but every byte copy this package makes of them is.
//
// # Error discipline
//
// All failures are KindCrypto. Authentication failures produce the
// uniform message "decryption failed (bad key or data)" regardless of
// whether the key, the variable name, or the ciphertext was wrong.
package secrets
