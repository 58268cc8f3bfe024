// Package sealedenv reads and decrypts sealed environment variables.
//
// It mirrors the ergonomics of os.Getenv but understands values stored
// in the ENCv1:<base64(nonce)>:<base64(ciphertext)> format produced by
// the sealed CLI. When a value is sealed, SEALED_KEY must be present in
// the environment for decryption; it is the sole key source on this
// path.
//
// # Quick start
//
//	secret, err := sealedenv.Var("DATABASE_PASSWORD")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Behavior summary
//
//   - Var: requires the variable to be present and sealed.
//   - VarOrPlain: returns plaintext values as-is.
//   - VarOptional: reports absence instead of failing; otherwise
//     decrypts if needed.
//
// Failures are classified by the sentinel errors ErrMissingVar,
// ErrMissingKey, ErrNotEncrypted, and ErrCrypto, matched with errors.Is.
//
// All three functions are safe for concurrent use provided the process
// environment is not being mutated concurrently.
package sealedenv
