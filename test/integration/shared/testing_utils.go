// Package shared contains testing utilities shared between integration tests.
// It provides helpers for running the CLI in-process, capturing output, and
// feeding stdin to commands that read from it.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/sealedenv/sealed/cmd"
	logger "github.com/sealedenv/sealed/internal/logging"
)

// RunCLI resets global command state and executes the root command with the
// given arguments. The returned error is whatever the command surfaced.
func RunCLI(args ...string) error {
	cmd.ResetGlobalState()
	cmd.SetLogger(logger.Logger{})
	root := cmd.GetRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CaptureStdout captures only stdout during function execution, leaving
// stderr untouched. Useful when a test must inspect exactly what a command
// printed for machine consumption.
func CaptureStdout(fn func() error) (string, error) {
	originalStdout := os.Stdout

	reader, writer, _ := os.Pipe()
	os.Stdout = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, reader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	writer.Close()
	os.Stdout = originalStdout

	return <-outputChan, err
}

// WithStdin replaces os.Stdin with a pipe carrying the given content for the
// duration of fn. Commands reading --stdin or --key-stdin see it as piped
// input rather than a terminal.
func WithStdin(t *testing.T, content string, fn func() error) error {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdin pipe: %v", err)
	}

	originalStdin := os.Stdin
	os.Stdin = reader
	defer func() {
		os.Stdin = originalStdin
		reader.Close()
	}()

	go func() {
		_, _ = writer.WriteString(content)
		writer.Close()
	}()

	return fn()
}

// WriteEnvFile writes content to path so tests can seed env files.
func WriteEnvFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file %s: %v", path, err)
	}
}

// ReadEnvFile reads path back for byte-level assertions.
func ReadEnvFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read env file %s: %v", path, err)
	}
	return string(content)
}
