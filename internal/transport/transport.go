// Package transport provides the two primitives the resolver depends on:
// a single UDP request/reply round trip and a source of fresh 16-bit
// transaction identifiers.
package transport

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"time"
)

// ErrTimeout indicates no reply arrived within the deadline. The transport
// never retries; retry policy belongs to the caller.
var ErrTimeout = errors.New("transport: timed out waiting for reply")

const (
	// DNSPort is the well-known DNS port.
	DNSPort = 53

	// DefaultTimeout bounds a single round trip when the caller supplies
	// no deadline of its own.
	DefaultTimeout = 3 * time.Second

	// recvBufferSize is the fixed receive buffer. Without EDNS a
	// compliant UDP reply fits in 512 bytes; the slack tolerates servers
	// that answer large anyway.
	recvBufferSize = 2048
)

// Exchanger performs one datagram round trip with a DNS server.
// The resolver accepts any implementation, which is how tests substitute
// scripted replies for the network.
type Exchanger interface {
	// Exchange sends payload to server and returns the raw reply bytes.
	Exchange(ctx context.Context, server string, payload []byte) ([]byte, error)
}

// IDSource returns fresh 16-bit transaction identifiers.
type IDSource func() uint16

// NewRandomIDSource returns an IDSource drawing uniform random identifiers.
// Collision resistance across a handful of in-flight queries is all that is
// required; this is not a security boundary.
func NewRandomIDSource() IDSource {
	return func() uint16 {
		return uint16(rand.Uint32())
	}
}

// UDPExchanger implements Exchanger over a throwaway UDP socket per call.
// Sequential single-flight resolution never reuses a socket, so there is no
// pool; the socket is closed on every exit path.
type UDPExchanger struct {
	Timeout time.Duration // per round trip; DefaultTimeout if zero
	Port    int           // DNSPort if zero
}

// NewUDPExchanger creates a UDPExchanger with the given round-trip timeout.
func NewUDPExchanger(timeout time.Duration) *UDPExchanger {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UDPExchanger{Timeout: timeout}
}

// Exchange sends payload to server (a bare IP or hostname) and waits for one
// reply datagram. The deadline is the sooner of the configured timeout and
// the context deadline; expiry surfaces as ErrTimeout.
func (u *UDPExchanger) Exchange(ctx context.Context, server string, payload []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	port := u.Port
	if port == 0 {
		port = DNSPort
	}
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(server, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", server, err)
	}
	c, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", server, err)
	}
	defer c.Close()

	timeout := u.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	_ = c.SetDeadline(deadline)

	if _, err := c.Write(payload); err != nil {
		return nil, wrapNetErr(server, err)
	}

	buf := make([]byte, recvBufferSize)
	n, err := c.Read(buf)
	if err != nil {
		return nil, wrapNetErr(server, err)
	}
	return buf[:n:n], nil
}

// wrapNetErr maps deadline expiry to ErrTimeout so callers can distinguish
// a silent nameserver from other I/O failures.
func wrapNetErr(server string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, server)
	}
	return fmt.Errorf("exchange with %s: %w", server, err)
}
