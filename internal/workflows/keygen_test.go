package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealedenv/sealed/internal/secrets"
)

func TestKeygen_ProducesDecodableKey(t *testing.T) {
	result, err := Keygen(context.Background(), KeygenOptions{})
	if err != nil {
		t.Fatalf("Keygen() failed: %v", err)
	}

	if len(result.KeyB64) != 44 {
		t.Errorf("key length = %d base64 chars, want 44", len(result.KeyB64))
	}

	key, err := secrets.DecodeKey(result.KeyB64)
	if err != nil {
		t.Fatalf("generated key does not decode: %v", err)
	}
	if len(key) != secrets.KeySize {
		t.Errorf("decoded key length = %d, want %d", len(key), secrets.KeySize)
	}
}

func TestKeygen_KeysAreUnique(t *testing.T) {
	first, err := Keygen(context.Background(), KeygenOptions{})
	if err != nil {
		t.Fatalf("Keygen() failed: %v", err)
	}
	second, err := Keygen(context.Background(), KeygenOptions{})
	if err != nil {
		t.Fatalf("Keygen() failed: %v", err)
	}
	if first.KeyB64 == second.KeyB64 {
		t.Error("two generated keys are identical")
	}
}

func TestKeygen_WritesOutFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sealed.key")

	result, err := Keygen(context.Background(), KeygenOptions{OutFile: outPath})
	if err != nil {
		t.Fatalf("Keygen() failed: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}
	if string(content) != result.KeyB64+"\n" {
		t.Errorf("key file = %q, want key followed by newline", content)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("key file mode = %o, want 0600", info.Mode().Perm())
	}
}

func TestKeygen_UnwritableOutFile(t *testing.T) {
	_, err := Keygen(context.Background(), KeygenOptions{
		OutFile: filepath.Join(t.TempDir(), "missing", "sealed.key"),
	})
	if err == nil {
		t.Fatal("Keygen() into a missing directory should fail")
	}
}
