// Package urlparse provides a deliberately small parser for plain http URLs.
//
// This package is the entry point of urldial: every command and every probe
// starts by turning a raw string into a URL value. Unlike net/url, which
// accepts any RFC 3986 URI, urlparse accepts exactly one shape of input,
// http://host followed by an optional path, and rejects everything else with
// a typed error. Consumers get a URL whose invariants they never have to
// re-check: the scheme is "http", the host is non-empty, the path starts
// with "/", and the port is 80.
//
// # Usage
//
// Use Parse to turn a raw string into a URL:
//
//	import "github.com/urldial/urldial/urlparse"
//
//	u, err := urlparse.Parse("http://example.com/index.html")
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Host) // example.com
//	fmt.Println(u.Path) // /index.html
//
// Use Address to obtain the host:port pair for dialing:
//
//	conn, err := net.Dial("tcp", u.Address()) // example.com:80
//
// Use the typed errors to distinguish failure modes:
//
//	_, err := urlparse.Parse("https://example.com")
//	var schemeErr *urlparse.UnsupportedSchemeError
//	if errors.As(err, &schemeErr) {
//		fmt.Println(schemeErr.Scheme) // https
//	}
//
// # Parsing Rules
//
// Parse enforces the following rules, in order:
//   - The input must contain "://"; the text before the first occurrence is the scheme
//   - The scheme must be exactly "http", compared case-sensitively
//   - The text between "://" and the first "/" is the host, which must be non-empty
//   - The path is the first "/" after the host plus everything following it; "/" if absent
//   - The port is always 80
//
// The input is never trimmed or case-folded, so " http://example.com" and
// "HTTP://example.com" are both rejected. Query strings, fragments, user
// info, and explicit ports are not recognized; whatever follows the first
// "/" is simply the path.
//
// # Round-Tripping
//
// URL.String reassembles scheme://host + path, and for any URL produced by
// Parse the reassembled string parses back to an equal URL. This makes URL
// values safe to store, log, and compare.
package urlparse
