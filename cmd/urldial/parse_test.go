package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/urldial/urldial/testutil"
	"github.com/urldial/urldial/urlparse"
)

func TestParseCommand(t *testing.T) {
	output, err := executeCommand(t, "parse", "http://example.com/docs/guide")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"http", "example.com", "/docs/guide", "80"} {
		if !testutil.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestParseCommandJSON(t *testing.T) {
	output, err := executeCommand(t, "--output", "json", "parse", "http://example.com/index.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var u urlparse.URL
	if err := json.Unmarshal([]byte(output), &u); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, output)
	}
	if u.Host != "example.com" {
		t.Errorf("Host = %q, want %q", u.Host, "example.com")
	}
	if u.Path != "/index.html" {
		t.Errorf("Path = %q, want %q", u.Path, "/index.html")
	}
	if u.Port != 80 {
		t.Errorf("Port = %d, want 80", u.Port)
	}
}

func TestParseCommandMissingDelimiter(t *testing.T) {
	_, err := executeCommand(t, "parse", "example.com/index.html")
	if err == nil {
		t.Fatal("expected error for url without scheme delimiter")
	}
	if !errors.Is(err, urlparse.ErrMissingSchemeDelimiter) {
		t.Errorf("expected ErrMissingSchemeDelimiter, got %v", err)
	}
}

func TestParseCommandUnsupportedScheme(t *testing.T) {
	_, err := executeCommand(t, "parse", "https://example.com/")
	if err == nil {
		t.Fatal("expected error for https scheme")
	}

	var schemeErr *urlparse.UnsupportedSchemeError
	if !errors.As(err, &schemeErr) {
		t.Fatalf("expected UnsupportedSchemeError, got %v", err)
	}
	if schemeErr.Scheme != "https" {
		t.Errorf("Scheme = %q, want %q", schemeErr.Scheme, "https")
	}
}

func TestParseCommandNoArgs(t *testing.T) {
	_, err := executeCommand(t, "parse")
	if err == nil {
		t.Fatal("expected error when no URL argument is given")
	}

	var usage usageError
	if !errors.As(err, &usage) {
		t.Errorf("expected usage error, got %v", err)
	}
}
