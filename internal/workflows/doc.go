// Package workflows provides high-level orchestration for sealed commands.
//
// Workflows coordinate the input, secrets, and envfile packages to
// implement complete user-facing operations, independent of CLI concerns
// like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Selecting and reading value and key sources
//   - Performing the cryptographic operation
//   - Reading and rewriting the env file
//   - Wiping secret material on every exit path
//
// # Available Workflows
//
//   - Set: seals a value and upserts it into the env file
//   - Get: reads a variable, decrypting it if sealed
//   - Keygen: generates a fresh base64 key
//   - List: reports which bindings in a file are sealed
//
// # Error Handling
//
// Workflows return classified errors from the internal/errors package so
// the CLI layer can map failures to exit codes with errors.As rather than
// string matching. Each operation is a one-shot transformation with no
// shared state; nothing is retried.
package workflows
