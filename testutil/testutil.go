package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
// This is useful for testing commands that write to stdout.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
//	if !strings.Contains(output, "test output") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create pipe
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout
	os.Stdout = w

	// Channel for output (buffered to avoid goroutine leak)
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	// Execute function
	fnErr := fn()

	// Close write end and restore stdout
	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	// Get output
	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// TempDir creates a temporary directory for testing with automatic cleanup.
// The directory is automatically removed when the test completes via t.Cleanup().
//
// Example:
//
//	tmpDir := testutil.TempDir(t)
//	configPath := filepath.Join(tmpDir, "profiles.yaml")
//	// Directory is automatically cleaned up after test
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "urldial-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// Contains checks if a string contains a substring.
// This is a convenience helper for common test assertions.
//
// Example:
//
//	if !testutil.Contains(output, "expected text") {
//	    t.Error("output does not contain expected text")
//	}
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
