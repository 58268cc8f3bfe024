// Package input acquires plaintext and key bytes from their permitted
// sources and guarantees erasure of every intermediate buffer.
//
// A plaintext value comes from exactly one of stdin, an argv string
// (only with an explicit --allow-argv acknowledgement, since command
// lines are world-readable on many systems), or a file. A key comes from
// exactly one of an argv string, a file, stdin, or the SEALED_KEY
// environment variable (when non-empty). Offering more than one key
// source at once is an error — the package never silently picks one.
//
// Trailing newline and carriage-return bytes introduced by terminals,
// editors, or `echo` are stripped after the content is materialised;
// interior newlines survive.
//
// Argv and environment strings are owned by the Go runtime and cannot be
// zeroed; every byte copy this package makes of them is wiped, and the
// returned Material containers are wiped by their owners via Destroy.
package input
