package dns

import (
	"fmt"
	"net"
)

// IPRecord represents a DNS A or AAAA record containing an IP address.
// The wire form is exactly 4 (A) or 16 (AAAA) raw bytes; ParseRecord never
// constructs an IPRecord from an rdlength that disagrees with the type.
type IPRecord struct {
	H    RRHeader
	T    RecordType
	Addr net.IP
}

// NewIPRecord creates an IP record; the type follows the address version
// (IPv4 → TypeA, IPv6 → TypeAAAA).
func NewIPRecord(h RRHeader, addr net.IP) *IPRecord {
	rt := TypeAAAA
	if addr.To4() != nil {
		rt = TypeA
	}
	return &IPRecord{H: h, T: rt, Addr: addr}
}

// Type returns TypeA or TypeAAAA.
func (r *IPRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *IPRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *IPRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the IP address to its 4- or 16-byte wire form.
func (r *IPRecord) MarshalRData() ([]byte, error) {
	if r.T == TypeA {
		if ip4 := r.Addr.To4(); ip4 != nil {
			return []byte(ip4), nil
		}
		return nil, fmt.Errorf("%w: A record address %v is not IPv4", ErrInvalidName, r.Addr)
	}
	if ip6 := r.Addr.To16(); ip6 != nil {
		return []byte(ip6), nil
	}
	return nil, fmt.Errorf("%w: invalid IP address", ErrInvalidName)
}

// String renders the record in zone-file style.
func (r *IPRecord) String() string {
	return fmt.Sprintf("%s %d IN %s %s", r.H.Name, r.H.TTL, r.T, r.Addr)
}

// parseIPRData parses A or AAAA record RDATA. The caller has already
// verified that rdlen matches the record type exactly.
func parseIPRData(msg []byte, off *int, rt RecordType, rdlen int) (*IPRecord, error) {
	if *off+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected end of message in address rdata", ErrTruncated)
	}
	b := make([]byte, rdlen)
	copy(b, msg[*off:*off+rdlen])
	*off += rdlen
	return &IPRecord{T: rt, Addr: net.IP(b)}, nil
}
