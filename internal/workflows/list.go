package workflows

import (
	"context"

	"github.com/sealedenv/sealed/internal/envfile"
	"github.com/sealedenv/sealed/internal/secrets"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// EnvFile is the dotenv file to inspect.
	EnvFile string
}

// ListEntry describes one binding: its key and whether the stored value
// carries the sealed prefix. Values themselves are never included.
type ListEntry struct {
	Key    string
	Sealed bool
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	EnvFile string
	Entries []ListEntry
}

// List reports every binding in the env file in order, duplicates
// included, marking which ones hold sealed values.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	entries, err := envfile.Entries(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	result := &ListResult{EnvFile: opts.EnvFile}
	for _, e := range entries {
		result.Entries = append(result.Entries, ListEntry{
			Key:    e.Key,
			Sealed: secrets.IsSealed(e.Value),
		})
	}

	return result, nil
}
