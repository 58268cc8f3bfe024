package workflows

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/sealedenv/sealed/internal/envfile"
	serrors "github.com/sealedenv/sealed/internal/errors"
	"github.com/sealedenv/sealed/internal/input"
	"github.com/sealedenv/sealed/internal/secrets"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	// VarName is the variable to read.
	VarName string

	// EnvFile is the dotenv file to read from.
	EnvFile string

	// Key selects where the key comes from; SEALED_KEY is consulted too.
	// Only needed when the stored value is sealed.
	Key input.KeySource

	// Reveal requests the decrypted plaintext in the result.
	Reveal bool

	// Stdin is read when the key source is stdin.
	Stdin io.Reader
}

// GetResult contains the outcome of a get operation.
type GetResult struct {
	// Value is the stored value verbatim when it is not sealed.
	Value string

	// Sealed indicates the stored value was in sealed form.
	Sealed bool

	// Plaintext holds the decrypted value when Reveal was set. The caller
	// owns it and must Destroy it. Nil otherwise.
	Plaintext *secrets.Material
}

// Get reads a variable from the env file, decrypting it if sealed.
//
// A plain value is returned verbatim. A sealed value requires a key; it
// is decrypted even when Reveal is unset, so a wrong key fails loudly,
// but the plaintext is only handed back (and only as UTF-8) when Reveal
// is set.
//
// Returns KindVarNotFound when the variable has no binding, and
// KindCrypto when a sealed value has no key source or fails to decrypt.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	value, found, err := envfile.Read(opts.EnvFile, opts.VarName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, serrors.NotFoundf("variable '%s' not found in %s", opts.VarName, opts.EnvFile)
	}

	if !secrets.IsSealed(value) {
		return &GetResult{Value: value}, nil
	}

	keyIn, err := input.SelectKeyInput(opts.Key)
	if err != nil {
		return nil, err
	}
	if keyIn == nil {
		return nil, serrors.Cryptof("encrypted value requires a key; provide --key, --key-file, --key-stdin, or set SEALED_KEY")
	}

	key, err := input.ReadKey(keyIn, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	plaintext, err := secrets.DecryptValue(key.Bytes(), opts.VarName, value)
	if err != nil {
		return nil, err
	}

	if !opts.Reveal {
		secrets.Wipe(plaintext)
		return &GetResult{Sealed: true}, nil
	}

	if !utf8.Valid(plaintext) {
		secrets.Wipe(plaintext)
		return nil, serrors.Cryptof("decrypted value is not valid UTF-8")
	}

	return &GetResult{Sealed: true, Plaintext: secrets.NewMaterial(plaintext)}, nil
}
