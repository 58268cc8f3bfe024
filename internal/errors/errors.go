package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the stable failure categories
// surfaced by the CLI. Each kind maps to a fixed process exit code.
type Kind int

const (
	// KindArg indicates user-facing misuse: conflicting sources, missing
	// required inputs, or invalid flag combinations.
	KindArg Kind = iota

	// KindCrypto indicates any cryptographic or format failure: base64
	// decoding, nonce length, version tag, key length, or authentication.
	KindCrypto

	// KindVarNotFound indicates the requested variable is not bound in
	// the env file.
	KindVarNotFound

	// KindEnvFile indicates an I/O failure reading or writing the env file.
	KindEnvFile
)

// String returns the category name used in debug output.
func (k Kind) String() string {
	switch k {
	case KindArg:
		return "arg"
	case KindCrypto:
		return "crypto"
	case KindVarNotFound:
		return "var-not-found"
	case KindEnvFile:
		return "env-file"
	default:
		return "unknown"
	}
}

// Error is a classified failure. The message never contains key or
// plaintext material.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Argf returns a KindArg error with a formatted message.
func Argf(format string, args ...any) *Error {
	return &Error{Kind: KindArg, Msg: fmt.Sprintf(format, args...)}
}

// Cryptof returns a KindCrypto error with a formatted message.
func Cryptof(format string, args ...any) *Error {
	return &Error{Kind: KindCrypto, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a KindVarNotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindVarNotFound, Msg: fmt.Sprintf(format, args...)}
}

// EnvFilef returns a KindEnvFile error with a formatted message.
func EnvFilef(format string, args ...any) *Error {
	return &Error{Kind: KindEnvFile, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or any error it wraps) is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ExitCode maps an error to the process exit code contract:
// variable not found = 1, crypto/format = 2, argument misuse = 3,
// env-file I/O = 4. Errors that do not carry a kind (e.g. flag parsing
// failures from cobra) are treated as argument misuse.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if !errors.As(err, &e) {
		return 3
	}
	switch e.Kind {
	case KindVarNotFound:
		return 1
	case KindCrypto:
		return 2
	case KindArg:
		return 3
	case KindEnvFile:
		return 4
	default:
		return 3
	}
}
