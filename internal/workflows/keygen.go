package workflows

import (
	"context"
	"os"

	serrors "github.com/sealedenv/sealed/internal/errors"
	"github.com/sealedenv/sealed/internal/secrets"
)

// KeygenOptions configures the keygen workflow.
type KeygenOptions struct {
	// OutFile, when set, receives the base64 key followed by a newline.
	// Created or overwritten with mode 0600. When empty the key is only
	// returned in the result for the caller to print.
	OutFile string
}

// KeygenResult contains the outcome of a keygen operation.
type KeygenResult struct {
	// KeyB64 is the standard-base64 form of the new 32-byte key.
	KeyB64 string

	// OutFile is the path the key was written to, if any.
	OutFile string
}

// Keygen draws a fresh 32-byte key from the system CSPRNG. The raw key
// bytes are wiped before returning; only the base64 form leaves this
// function.
func Keygen(ctx context.Context, opts KeygenOptions) (*KeygenResult, error) {
	key, err := secrets.NewKey()
	if err != nil {
		return nil, err
	}

	b64 := secrets.EncodeKey(key)
	secrets.Wipe(key)

	if opts.OutFile != "" {
		if err := os.WriteFile(opts.OutFile, []byte(b64+"\n"), 0600); err != nil {
			return nil, serrors.EnvFilef("failed to write key file %s: %v", opts.OutFile, err)
		}
	}

	return &KeygenResult{KeyB64: b64, OutFile: opts.OutFile}, nil
}
