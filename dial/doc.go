// Package dial opens raw TCP connections to parsed URLs.
//
// This package is the transport half of urldial's core: urlparse decides
// where to connect, dial connects there. It holds deliberately little
// policy. A call is one connection attempt to one address, and whatever
// the operating system reports comes back to the caller as a typed error.
// Retry loops, timeouts, circuit breaking, and rate limiting belong to
// callers such as the probe package.
//
// # Usage
//
// Use Dial for a plain blocking connection:
//
//	import (
//		"github.com/urldial/urldial/dial"
//		"github.com/urldial/urldial/urlparse"
//	)
//
//	u, err := urlparse.Parse("http://example.com/index.html")
//	if err != nil {
//		return err
//	}
//	conn, err := dial.Dial(u)
//	if err != nil {
//		return err
//	}
//	defer func() { _ = conn.Close() }()
//
// Use DialContext when the caller needs cancellation or a deadline:
//
//	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
//	defer cancel()
//	conn, err := dial.DialContext(ctx, u)
//
// Use ConnectionError to inspect failures:
//
//	var connErr *dial.ConnectionError
//	if errors.As(err, &connErr) {
//		fmt.Printf("could not reach %s:%d: %v\n", connErr.Host, connErr.Port, connErr.Err)
//	}
//
// # Contract
//
// The connection functions guarantee the following:
//   - One attempt per call, directly to host:port over TCP
//   - No retry, no connection pooling, no DNS caching
//   - The caller owns the returned net.Conn and must close it
//   - Failures are returned as *ConnectionError, never logged and never panicked
//
// Dial itself applies no timeout, so an unresponsive target blocks for as
// long as the operating system allows. Callers that cannot afford that use
// DialContext with a deadline.
package dial
