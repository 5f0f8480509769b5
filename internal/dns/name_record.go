package dns

import "fmt"

// NameRecord represents DNS records whose RDATA is a single domain name
// (NS, CNAME, PTR). The target may arrive compressed, pointing anywhere
// earlier in the message.
type NameRecord struct {
	H      RRHeader
	T      RecordType
	Target string
}

// NewNameRecord creates a new name-based record (NS, CNAME, or PTR).
func NewNameRecord(h RRHeader, rt RecordType, target string) *NameRecord {
	return &NameRecord{H: h, T: rt, Target: target}
}

// NewNSRecord creates a new NS record.
func NewNSRecord(h RRHeader, target string) *NameRecord {
	return NewNameRecord(h, TypeNS, target)
}

// NewCNAMERecord creates a new CNAME record.
func NewCNAMERecord(h RRHeader, target string) *NameRecord {
	return NewNameRecord(h, TypeCNAME, target)
}

// Type returns the record type (NS, CNAME, or PTR).
func (r *NameRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *NameRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *NameRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the target name to wire format, uncompressed.
func (r *NameRecord) MarshalRData() ([]byte, error) {
	return EncodeName(r.Target)
}

// String renders the record in zone-file style.
func (r *NameRecord) String() string {
	return fmt.Sprintf("%s %d IN %s %s", r.H.Name, r.H.TTL, r.T, r.Target)
}

// parseNameRData parses NS, CNAME, or PTR record RDATA. Compression can make
// the name shorter on the wire than the declared rdlength implies; the
// record boundary is enforced by ParseRecord, not here.
func parseNameRData(msg []byte, off *int, rt RecordType) (*NameRecord, error) {
	target, err := DecodeName(msg, off)
	if err != nil {
		return nil, fmt.Errorf("%s target: %w", rt, err)
	}
	return &NameRecord{T: rt, Target: target}, nil
}
