// Package errors provides classified error values for the sealed CLI.
//
// Every failure the tool reports belongs to one of four kinds, each with
// a stable process exit code:
//
//   - KindVarNotFound (exit 1): the variable is not bound in the env file
//   - KindCrypto (exit 2): any cryptographic or format failure
//   - KindArg (exit 3): user-facing misuse of flags or sources
//   - KindEnvFile (exit 4): I/O failure on the env file
//
// Using a typed error with a kind (rather than string matching) lets the
// CLI layer map failures to exit codes with errors.As while internal
// packages stay free to add message context with fmt.Errorf("...: %w").
//
// # Usage
//
// Return classified errors from internal packages:
//
//	if len(decoded) != 32 {
//	    return serrors.Cryptof("key must be 32 bytes after base64 decode")
//	}
//
// Map to an exit code at the top level:
//
//	os.Exit(serrors.ExitCode(err))
//
// Crypto messages for authentication failures are deliberately uniform:
// a wrong key, a renamed variable, and tampered ciphertext all produce
// "decryption failed (bad key or data)". Messages never contain key or
// plaintext bytes.
package errors
