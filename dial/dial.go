package dial

import (
	"context"
	"fmt"
	"net"

	"github.com/urldial/urldial/urlparse"
)

// ConnectionError reports a failed connection attempt. It wraps the
// underlying transport error, which callers can inspect with errors.Is
// and errors.As.
type ConnectionError struct {
	Host string
	Port uint16
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s:%d failed: %v", e.Host, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Dial opens a TCP connection to the URL's host and port.
//
// The attempt is direct and blocking: a single connection, no retries, no
// pooling, and no timeout beyond what the operating system applies. Name
// resolution is left entirely to the OS resolver.
//
// On success the caller owns the returned connection and is responsible
// for closing it. On failure the error is a *ConnectionError wrapping the
// transport error; Dial never panics on unreachable targets.
//
// Example:
//
//	u, _ := urlparse.Parse("http://example.com/index.html")
//	conn, err := dial.Dial(u)
//	if err != nil {
//		return err
//	}
//	defer func() { _ = conn.Close() }()
func Dial(u urlparse.URL) (net.Conn, error) {
	return DialContext(context.Background(), u)
}

// DialContext is Dial with a context. The context can cancel the attempt
// or impose a deadline; the contract is otherwise identical to Dial.
func DialContext(ctx context.Context, u urlparse.URL) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", u.Address())
	if err != nil {
		return nil, &ConnectionError{Host: u.Host, Port: u.Port, Err: err}
	}
	return conn, nil
}
