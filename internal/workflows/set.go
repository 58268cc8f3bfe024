package workflows

import (
	"context"
	"io"

	"github.com/sealedenv/sealed/internal/envfile"
	serrors "github.com/sealedenv/sealed/internal/errors"
	"github.com/sealedenv/sealed/internal/input"
	"github.com/sealedenv/sealed/internal/secrets"
)

// SetOptions configures the set workflow.
type SetOptions struct {
	// VarName is the variable to seal. It is bound into the ciphertext as
	// associated data.
	VarName string

	// EnvFile is the dotenv file to update. Created if missing.
	EnvFile string

	// Value selects where the plaintext comes from.
	Value input.ValueSource

	// Key selects where the key comes from; SEALED_KEY is consulted too.
	Key input.KeySource

	// Stdin is read when the value or key source is stdin.
	Stdin io.Reader
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	// VarName is the variable that was sealed.
	VarName string

	// EnvFile is the file that was created or modified.
	EnvFile string
}

// Set seals a plaintext value and upserts it into the env file.
//
// It acquires the plaintext and the key from their single chosen sources,
// seals the value under the variable's name, and rewrites every existing
// binding of the variable (or appends one). All secret material is wiped
// before returning, on success and failure alike.
func Set(ctx context.Context, opts SetOptions) (*SetResult, error) {
	if opts.Value.Stdin && opts.Key.KeyStdin {
		return nil, serrors.Argf("stdin may be used only once; --stdin and --key-stdin cannot be used together")
	}

	plaintext, err := input.ReadValue(opts.Value, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer plaintext.Destroy()

	keyIn, err := input.SelectKeyInput(opts.Key)
	if err != nil {
		return nil, err
	}
	if keyIn == nil {
		return nil, serrors.Argf("key required; provide --key, --key-file, --key-stdin, or set SEALED_KEY")
	}

	key, err := input.ReadKey(keyIn, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	sealed, err := secrets.EncryptValue(key.Bytes(), opts.VarName, plaintext.Bytes())
	if err != nil {
		return nil, err
	}

	if err := envfile.Upsert(opts.EnvFile, opts.VarName, sealed); err != nil {
		return nil, err
	}

	return &SetResult{VarName: opts.VarName, EnvFile: opts.EnvFile}, nil
}
