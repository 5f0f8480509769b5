package dns

import "fmt"

// MXRecord represents a DNS mail exchange record (RFC 1035 Section 3.3.9).
type MXRecord struct {
	H          RRHeader
	Preference uint16
	Exchange   string
}

// NewMXRecord creates a new MX record.
func NewMXRecord(h RRHeader, preference uint16, exchange string) *MXRecord {
	return &MXRecord{H: h, Preference: preference, Exchange: exchange}
}

// Type returns TypeMX.
func (r *MXRecord) Type() RecordType { return TypeMX }

// Header returns the record header.
func (r *MXRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *MXRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals preference and exchange name to wire format.
func (r *MXRecord) MarshalRData() ([]byte, error) {
	name, err := EncodeName(r.Exchange)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2+len(name))
	out = appendUint16(out, r.Preference)
	return append(out, name...), nil
}

// String renders the record in zone-file style.
func (r *MXRecord) String() string {
	return fmt.Sprintf("%s %d IN MX %d %s", r.H.Name, r.H.TTL, r.Preference, r.Exchange)
}

// parseMXRData parses MX record RDATA: a 16-bit preference followed by a
// possibly-compressed exchange name.
func parseMXRData(msg []byte, off *int) (*MXRecord, error) {
	pref, err := readUint16(msg, off)
	if err != nil {
		return nil, err
	}
	exchange, err := DecodeName(msg, off)
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	return &MXRecord{Preference: pref, Exchange: exchange}, nil
}
