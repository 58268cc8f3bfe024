package sealed_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sealedenv/sealed/internal/secrets"
	"github.com/sealedenv/sealed/pkg/sealedenv"
	"github.com/sealedenv/sealed/test/integration/shared"
)

// clearSealedKey blanks SEALED_KEY so a key set in the developer's
// environment cannot conflict with the key flags a test passes.
func clearSealedKey(t *testing.T) {
	t.Helper()
	t.Setenv("SEALED_KEY", "")
}

// genKey runs `sealed keygen` and returns the base64 key it printed.
func genKey(t *testing.T) string {
	t.Helper()
	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("keygen")
	})
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	key := strings.TrimSpace(stdout)
	if _, err := base64.StdEncoding.DecodeString(key); err != nil {
		t.Fatalf("keygen printed invalid base64: %q", key)
	}
	return key
}

// sealedValueOf extracts the stored value for varName from an env file.
func sealedValueOf(t *testing.T, path, varName string) string {
	t.Helper()
	for _, line := range strings.Split(shared.ReadEnvFile(t, path), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		trimmed = strings.TrimPrefix(trimmed, "export ")
		if rest, ok := strings.CutPrefix(trimmed, varName+"="); ok {
			return rest
		}
	}
	t.Fatalf("variable %s not found in %s", varName, path)
	return ""
}

func TestKeygenSetGetRoundTrip(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "DB_PASS",
			"--value", "hunter2", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	content := shared.ReadEnvFile(t, envFile)
	if !strings.Contains(content, "DB_PASS=ENCv1:") {
		t.Errorf("env file does not contain a sealed DB_PASS binding: %q", content)
	}
	if strings.Contains(content, "hunter2") {
		t.Errorf("env file contains the plaintext value: %q", content)
	}

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("get", "DB_PASS",
			"--reveal",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stdout != "hunter2\n" {
		t.Errorf("get printed %q, want %q", stdout, "hunter2\n")
	}
}

func TestSetReadsValueFromStdin(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	key := genKey(t)

	err := shared.WithStdin(t, "s3cr3t\n", func() error {
		_, err := shared.CaptureOutput(func() error {
			return shared.RunCLI("set", "API_TOKEN",
				"--stdin",
				"--key", key,
				"--env-file", envFile)
		})
		return err
	})
	if err != nil {
		t.Fatalf("set --stdin failed: %v", err)
	}

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("get", "API_TOKEN",
			"--reveal",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stdout != "s3cr3t\n" {
		t.Errorf("get printed %q, want %q", stdout, "s3cr3t\n")
	}
}

func TestSetReadsKeyFromFile(t *testing.T) {
	clearSealedKey(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	keyFile := filepath.Join(dir, "sealed.key")
	key := genKey(t)
	if err := os.WriteFile(keyFile, []byte(key+"\n"), 0o600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "SECRET",
			"--value", "from-key-file", "--allow-argv",
			"--key-file", keyFile,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("get", "SECRET",
			"--reveal",
			"--key-file", keyFile,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stdout != "from-key-file\n" {
		t.Errorf("get printed %q, want %q", stdout, "from-key-file\n")
	}
}

func TestSetPreservesSurroundingLayout(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	shared.WriteEnvFile(t, envFile, "# database settings\n   export DB_PASS=old\nKEEP=me\n")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "DB_PASS",
			"--value", "new-secret", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	lines := strings.Split(shared.ReadEnvFile(t, envFile), "\n")
	if lines[0] != "# database settings" {
		t.Errorf("comment line changed: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "   export DB_PASS=ENCv1:") {
		t.Errorf("rewritten line lost its whitespace or export prefix: %q", lines[1])
	}
	if lines[2] != "KEEP=me" {
		t.Errorf("untouched line changed: %q", lines[2])
	}
}

func TestSetRewritesAllDuplicates(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	shared.WriteEnvFile(t, envFile, "A=1\nB=2\nA=3\n")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "A",
			"--value", "9", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	rawKey, err := secrets.DecodeKey(key)
	if err != nil {
		t.Fatalf("DecodeKey failed: %v", err)
	}
	defer secrets.Wipe(rawKey)

	sealedCount := 0
	for _, line := range strings.Split(shared.ReadEnvFile(t, envFile), "\n") {
		value, ok := strings.CutPrefix(line, "A=")
		if !ok {
			continue
		}
		sealedCount++
		plaintext, err := secrets.DecryptValue(rawKey, "A", value)
		if err != nil {
			t.Fatalf("DecryptValue failed for %q: %v", line, err)
		}
		if string(plaintext) != "9" {
			t.Errorf("duplicate decrypted to %q, want %q", plaintext, "9")
		}
		secrets.Wipe(plaintext)
	}
	if sealedCount != 2 {
		t.Errorf("expected 2 rewritten A bindings, found %d", sealedCount)
	}
}

func TestGetPlainValuePassthrough(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	shared.WriteEnvFile(t, envFile, "GREETING=hello world\n")

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("get", "GREETING", "--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stdout != "hello world\n" {
		t.Errorf("get printed %q, want %q", stdout, "hello world\n")
	}
}

func TestGetWithoutRevealWithholdsPlaintext(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "TOKEN",
			"--value", "super-secret", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("get", "TOKEN",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.Contains(output, "super-secret") {
		t.Errorf("plaintext leaked without --reveal: %q", output)
	}
	if !strings.Contains(output, "--reveal") {
		t.Errorf("expected notice mentioning --reveal, got: %q", output)
	}
}

func TestListMarksSealedValues(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	shared.WriteEnvFile(t, envFile, "PLAIN=visible\n")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "SECRET",
			"--value", "hidden", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("list", "--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(stdout, "PLAIN") || !strings.Contains(stdout, "plaintext") {
		t.Errorf("list output missing plaintext marker: %q", stdout)
	}
	if !strings.Contains(stdout, "SECRET") || !strings.Contains(stdout, "sealed") {
		t.Errorf("list output missing sealed marker: %q", stdout)
	}
	if strings.Contains(stdout, "hidden") || strings.Contains(stdout, "visible") {
		t.Errorf("list output leaked values: %q", stdout)
	}
}

func TestKeygenWritesOutFile(t *testing.T) {
	clearSealedKey(t)
	keyFile := filepath.Join(t.TempDir(), "sealed.key")

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("keygen", "--out-file", keyFile)
	})
	if err != nil {
		t.Fatalf("keygen --out-file failed: %v", err)
	}

	info, err := os.Stat(keyFile)
	if err != nil {
		t.Fatalf("key file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key file permissions = %04o, want 0600", perm)
	}

	content, err := os.ReadFile(keyFile)
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		t.Fatalf("key file content is not valid base64: %v", err)
	}
	if len(raw) != secrets.KeySize {
		t.Errorf("decoded key length = %d, want %d", len(raw), secrets.KeySize)
	}
}

func TestEmbeddedReadAfterSet(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	key := genKey(t)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "CFG_TOKEN",
			"--value", "tok-12345", "--allow-argv",
			"--key", key,
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	t.Setenv("CFG_TOKEN", sealedValueOf(t, envFile, "CFG_TOKEN"))
	t.Setenv("SEALED_KEY", key)

	value, err := sealedenv.Var("CFG_TOKEN")
	if err != nil {
		t.Fatalf("sealedenv.Var failed: %v", err)
	}
	if value != "tok-12345" {
		t.Errorf("sealedenv.Var = %q, want %q", value, "tok-12345")
	}
}

func TestSetUsesKeyFromEnvironment(t *testing.T) {
	clearSealedKey(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	key := genKey(t)
	t.Setenv("SEALED_KEY", key)

	_, err := shared.CaptureOutput(func() error {
		return shared.RunCLI("set", "ENV_KEYED",
			"--value", "via-env", "--allow-argv",
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	stdout, err := shared.CaptureStdout(func() error {
		return shared.RunCLI("get", "ENV_KEYED",
			"--reveal",
			"--env-file", envFile)
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stdout != "via-env\n" {
		t.Errorf("get printed %q, want %q", stdout, "via-env\n")
	}
}
