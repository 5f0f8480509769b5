package dns

import "fmt"

// SRVRecord represents a DNS service locator record (RFC 2782).
type SRVRecord struct {
	H        RRHeader
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// NewSRVRecord creates a new SRV record.
func NewSRVRecord(h RRHeader, priority, weight, port uint16, target string) *SRVRecord {
	return &SRVRecord{H: h, Priority: priority, Weight: weight, Port: port, Target: target}
}

// Type returns TypeSRV.
func (r *SRVRecord) Type() RecordType { return TypeSRV }

// Header returns the record header.
func (r *SRVRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *SRVRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals priority, weight, port, and target to wire format.
func (r *SRVRecord) MarshalRData() ([]byte, error) {
	name, err := EncodeName(r.Target)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 6+len(name))
	out = appendUint16(out, r.Priority)
	out = appendUint16(out, r.Weight)
	out = appendUint16(out, r.Port)
	return append(out, name...), nil
}

// String renders the record in zone-file style.
func (r *SRVRecord) String() string {
	return fmt.Sprintf("%s %d IN SRV %d %d %d %s", r.H.Name, r.H.TTL, r.Priority, r.Weight, r.Port, r.Target)
}

// parseSRVRData parses SRV record RDATA: three 16-bit fields followed by the
// target name. RFC 2782 forbids compressing the target but replies in the
// wild do it anyway, so the decoder tolerates it.
func parseSRVRData(msg []byte, off *int) (*SRVRecord, error) {
	r := &SRVRecord{}
	var err error
	if r.Priority, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	if r.Weight, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	if r.Port, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	if r.Target, err = DecodeName(msg, off); err != nil {
		return nil, fmt.Errorf("SRV target: %w", err)
	}
	return r, nil
}
