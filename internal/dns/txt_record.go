package dns

import (
	"fmt"
	"strings"
)

// TXTRecord represents a DNS text record (RFC 1035 Section 3.3.14).
// RDATA is an ordered sequence of length-prefixed character strings; order
// is significant and preserved.
type TXTRecord struct {
	H        RRHeader
	Segments []string
}

// NewTXTRecord creates a new TXT record.
func NewTXTRecord(h RRHeader, segments ...string) *TXTRecord {
	return &TXTRecord{H: h, Segments: segments}
}

// Type returns TypeTXT.
func (r *TXTRecord) Type() RecordType { return TypeTXT }

// Header returns the record header.
func (r *TXTRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *TXTRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals each segment as a length byte plus its bytes.
func (r *TXTRecord) MarshalRData() ([]byte, error) {
	out := make([]byte, 0, len(r.Segments)*16)
	for _, s := range r.Segments {
		if len(s) > 255 {
			return nil, fmt.Errorf("%w: TXT segment is %d bytes (max 255)", ErrInvalidLabel, len(s))
		}
		out = append(out, byte(len(s)))
		out = append(out, s...)
	}
	return out, nil
}

// String renders the record in zone-file style with quoted segments.
func (r *TXTRecord) String() string {
	quoted := make([]string, 0, len(r.Segments))
	for _, s := range r.Segments {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	return fmt.Sprintf("%s %d IN TXT %s", r.H.Name, r.H.TTL, strings.Join(quoted, " "))
}

// parseTXTRData parses consecutive length-prefixed ASCII segments until the
// cursor reaches the record boundary exactly. A segment whose declared
// length would overrun the boundary is a truncation error.
func parseTXTRData(msg []byte, off *int, start, rdlen int) (*TXTRecord, error) {
	end := start + rdlen
	segments := make([]string, 0, 1)
	for *off < end {
		n := int(msg[*off])
		*off++
		if *off+n > end {
			return nil, fmt.Errorf("%w: TXT segment of %d bytes runs past record boundary", ErrTruncated, n)
		}
		seg := msg[*off : *off+n]
		for _, b := range seg {
			if b > 0x7F {
				return nil, fmt.Errorf("%w: non-ASCII byte 0x%02x in TXT segment", ErrInvalidLabel, b)
			}
		}
		segments = append(segments, string(seg))
		*off += n
	}
	return &TXTRecord{Segments: segments}, nil
}
