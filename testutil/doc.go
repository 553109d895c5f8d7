// Package testutil provides common testing utilities for urldial.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/urldial/urldial/testutil"
//	)
//
//	func TestCommand(t *testing.T) {
//	    // Capture stdout from a command
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand()
//	    })
//
//	    // Check output contains expected text
//	    if !testutil.Contains(output, "up") {
//	        t.Error("expected up status")
//	    }
//	}
package testutil
