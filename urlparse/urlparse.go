package urlparse

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// SchemeHTTP is the only scheme accepted by Parse.
	SchemeHTTP = "http"

	// DefaultPort is the TCP port assigned to every parsed URL.
	DefaultPort uint16 = 80
)

var (
	// ErrMissingSchemeDelimiter is returned when the input contains no "://".
	ErrMissingSchemeDelimiter = errors.New(`url missing scheme delimiter "://"`)

	// ErrEmptyHost is returned when nothing precedes the first "/" after the
	// scheme delimiter, as in "http://" or "http:///docs".
	ErrEmptyHost = errors.New("url host is empty")
)

// UnsupportedSchemeError is returned when the scheme is anything other than
// "http". It carries the offending scheme text so callers can report it.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("only http is supported, got: %q", e.Scheme)
}

// URL is a parsed http URL. A zero URL is not valid; construct one with Parse.
//
// Invariants held by every URL returned from Parse:
//   - Scheme is exactly "http"
//   - Host is non-empty and contains no "/"
//   - Path starts with "/" ("/" itself when the input had no path)
//   - Port is DefaultPort (80)
type URL struct {
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
	Path   string `json:"path"`
	Port   uint16 `json:"port"`
}

// Parse parses a raw URL string into a URL value.
// It applies the following rules:
//   - The input must contain the scheme delimiter "://"
//   - The scheme must be exactly "http" (case-sensitive, so "HTTP://..." is rejected)
//   - Everything between the delimiter and the first "/" is the host, which must be non-empty
//   - The path is the first "/" after the host and everything following it, defaulting to "/"
//   - The port is always DefaultPort (80)
//
// The input is taken as-is: no whitespace trimming and no case folding.
//
// Parsing failures are reported as typed errors:
//   - ErrMissingSchemeDelimiter if "://" is absent
//   - *UnsupportedSchemeError if the scheme is not "http"
//   - ErrEmptyHost if the host is empty
//
// Example:
//
//	u, err := urlparse.Parse("http://example.com/index.html")
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Host, u.Path) // example.com /index.html
func Parse(raw string) (URL, error) {
	// Split at the first "://"
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return URL{}, ErrMissingSchemeDelimiter
	}

	// Only plain http is supported
	if scheme != SchemeHTTP {
		return URL{}, &UnsupportedSchemeError{Scheme: scheme}
	}

	// Everything up to the first "/" is the host, the remainder is the path
	host, path, _ := strings.Cut(rest, "/")
	if host == "" {
		return URL{}, ErrEmptyHost
	}

	return URL{
		Scheme: SchemeHTTP,
		Host:   host,
		Path:   "/" + path,
		Port:   DefaultPort,
	}, nil
}

// String reassembles the URL as scheme://host followed by the path.
// For any URL produced by Parse, the result parses back to an equal URL.
func (u URL) String() string {
	return u.Scheme + "://" + u.Host + u.Path
}

// Address returns the host:port pair to dial for this URL.
//
// Example:
//
//	u, _ := urlparse.Parse("http://example.com/index.html")
//	fmt.Println(u.Address()) // example.com:80
func (u URL) Address() string {
	return fmt.Sprintf("%s:%d", u.Host, u.Port)
}
