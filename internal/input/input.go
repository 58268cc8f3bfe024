package input

import (
	"io"
	"os"
	"unicode/utf8"

	serrors "github.com/sealedenv/sealed/internal/errors"
	"github.com/sealedenv/sealed/internal/secrets"
)

// SealedKeyEnv is the environment variable consulted as the fallback key
// source. It participates only when non-empty.
const SealedKeyEnv = "SEALED_KEY"

// ValueSource describes where the plaintext for a set operation comes
// from. Exactly one of Stdin, ValueSet, or ValueFile must be chosen.
type ValueSource struct {
	Stdin     bool
	Value     string
	ValueSet  bool
	AllowArgv bool
	ValueFile string
}

// KeySource describes the key flags a command received. The SEALED_KEY
// environment variable is consulted by SelectKeyInput in addition to
// these.
type KeySource struct {
	Key      string
	KeyFile  string
	KeyStdin bool
}

// KeyInputKind identifies where key bytes will be read from.
type KeyInputKind int

const (
	KeyDirect KeyInputKind = iota
	KeyFile
	KeyStdin
	KeyEnv
)

// KeyInput is a resolved key source. Value holds the base64 key for
// KeyDirect and KeyEnv, and the file path for KeyFile.
type KeyInput struct {
	Kind  KeyInputKind
	Value string
}

// ReadValue materialises the plaintext from the single chosen source.
// Trailing newline and carriage-return bytes from stdin and file input
// are stripped; interior newlines are preserved. Every intermediate
// buffer is wiped; the caller owns the returned Material and must
// Destroy it.
func ReadValue(src ValueSource, stdin io.Reader) (*secrets.Material, error) {
	count := 0
	if src.Stdin {
		count++
	}
	if src.ValueSet {
		count++
	}
	if src.ValueFile != "" {
		count++
	}

	if count != 1 {
		return nil, serrors.Argf("value required; choose exactly one of --stdin, --value (with --allow-argv), or --value-file")
	}

	if src.ValueSet && !src.AllowArgv {
		return nil, serrors.Argf("--value requires --allow-argv")
	}

	switch {
	case src.Stdin:
		raw, err := readAll(stdin)
		if err != nil {
			return nil, serrors.Argf("failed to read stdin: %v", err)
		}
		if !utf8.Valid(raw) {
			secrets.Wipe(raw)
			return nil, serrors.Argf("failed to read stdin: input is not valid UTF-8")
		}
		trimmed := trimNewlines(raw)
		secrets.Wipe(raw)
		return secrets.NewMaterial(trimmed), nil

	case src.ValueFile != "":
		raw, err := os.ReadFile(src.ValueFile)
		if err != nil {
			return nil, serrors.Argf("failed to read value file %s: %v", src.ValueFile, err)
		}
		if !utf8.Valid(raw) {
			secrets.Wipe(raw)
			return nil, serrors.Argf("failed to read value file %s: content is not valid UTF-8", src.ValueFile)
		}
		trimmed := trimNewlines(raw)
		secrets.Wipe(raw)
		return secrets.NewMaterial(trimmed), nil

	default:
		// Argv strings cannot be wiped; the byte copy we make can be.
		return secrets.NewMaterial([]byte(src.Value)), nil
	}
}

// SelectKeyInput resolves the key flags and the SEALED_KEY environment
// variable to at most one key source. More than one present source is an
// error; the precedence Direct > File > Stdin > Env is never used to pick
// silently. Returns nil when no source is present — whether that is an
// error depends on the operation, so the caller decides.
func SelectKeyInput(src KeySource) (*KeyInput, error) {
	envKey := os.Getenv(SealedKeyEnv)

	count := 0
	if src.Key != "" {
		count++
	}
	if src.KeyFile != "" {
		count++
	}
	if src.KeyStdin {
		count++
	}
	if envKey != "" {
		count++
	}

	if count > 1 {
		return nil, serrors.Argf("choose exactly one key source: --key, --key-file, --key-stdin, or SEALED_KEY")
	}

	switch {
	case src.Key != "":
		return &KeyInput{Kind: KeyDirect, Value: src.Key}, nil
	case src.KeyFile != "":
		return &KeyInput{Kind: KeyFile, Value: src.KeyFile}, nil
	case src.KeyStdin:
		return &KeyInput{Kind: KeyStdin}, nil
	case envKey != "":
		return &KeyInput{Kind: KeyEnv, Value: envKey}, nil
	default:
		return nil, nil
	}
}

// ReadKey materialises and decodes the key from a resolved source. File
// and stdin input have trailing newlines stripped. The caller owns the
// returned Material and must Destroy it.
func ReadKey(in *KeyInput, stdin io.Reader) (*secrets.Material, error) {
	var b64 string

	switch in.Kind {
	case KeyDirect, KeyEnv:
		b64 = in.Value

	case KeyFile:
		raw, err := os.ReadFile(in.Value)
		if err != nil {
			return nil, serrors.Argf("failed to read key file %s: %v", in.Value, err)
		}
		if !utf8.Valid(raw) {
			secrets.Wipe(raw)
			return nil, serrors.Argf("failed to read key file %s: content is not valid UTF-8", in.Value)
		}
		trimmed := trimNewlines(raw)
		secrets.Wipe(raw)
		b64 = string(trimmed)
		secrets.Wipe(trimmed)

	case KeyStdin:
		raw, err := readAll(stdin)
		if err != nil {
			return nil, serrors.Argf("failed to read stdin: %v", err)
		}
		trimmed := trimNewlines(raw)
		secrets.Wipe(raw)
		b64 = string(trimmed)
		secrets.Wipe(trimmed)
	}

	key, err := secrets.DecodeKey(b64)
	if err != nil {
		return nil, err
	}

	return secrets.NewMaterial(key), nil
}

// readAll drains r to EOF. When r is a terminal with no piped data, it
// fails fast with a hint instead of hanging on an interactive read.
func readAll(r io.Reader) ([]byte, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return nil, serrors.Argf("no data provided on stdin (hint: pipe the input to this command)")
		}
	}

	return io.ReadAll(r)
}

// trimNewlines copies raw minus any trailing '\n' and '\r' bytes.
// Interior newlines are preserved; a multi-line secret is permitted. The
// copy lets the caller wipe raw without clobbering the result.
func trimNewlines(raw []byte) []byte {
	end := len(raw)
	for end > 0 && (raw[end-1] == '\n' || raw[end-1] == '\r') {
		end--
	}
	out := make([]byte, end)
	copy(out, raw[:end])
	return out
}
