// Package dns implements the DNS wire format used by the resolver: domain
// name compression (encode and decode), header and question framing, and a
// closed set of typed resource records (RFC 1035, RFC 2782, RFC 3596).
//
// Cursor Convention:
//
// All parse functions take the whole message plus a *int offset and advance
// it past what they consumed. Compression pointers are absolute offsets from
// the start of the message, which is why parsing always sees the full buffer
// rather than a slice of the remainder.
//
// Type-Oriented Design:
//
// Each record type is represented by an explicit type (IPRecord, NameRecord,
// MXRecord, ...) behind the Record interface rather than a generic struct.
// Anything not modeled, and anything outside class IN, decodes as an
// OpaqueRecord carrying its raw RDATA.
//
// Error Handling:
//
// Failures are reported as one of the sentinel errors below, wrapped with
// context using fmt.Errorf("...: %w", err) so callers can errors.Is on the
// failure class.
package dns

import "errors"

var (
	// ErrTruncated indicates a decode needed more bytes than the buffer held.
	ErrTruncated = errors.New("dns: truncated message")

	// ErrInvalidName indicates a domain name that cannot be encoded
	// (empty, non-ASCII, label over 63 bytes, or over 255 bytes total).
	ErrInvalidName = errors.New("dns: invalid domain name")

	// ErrInvalidLabel indicates a malformed label on decode, such as a
	// non-ASCII byte or a reserved length-byte encoding.
	ErrInvalidLabel = errors.New("dns: invalid label")

	// ErrCompressionCycle indicates a compression pointer chain that
	// revisited an offset. A crafted reply can use such a cycle to induce
	// unbounded recursion, so decoding aborts immediately.
	ErrCompressionCycle = errors.New("dns: compression pointer cycle")
)
