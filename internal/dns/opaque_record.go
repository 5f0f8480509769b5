package dns

import (
	"encoding/hex"
	"fmt"
)

// OpaqueRecord carries raw RDATA for anything the codec does not model:
// unknown record types, any class other than IN, and A/AAAA records whose
// declared rdlength disagrees with their fixed wire size. It is a
// first-class variant, not an error case, and round-trips losslessly.
type OpaqueRecord struct {
	H    RRHeader
	T    RecordType
	Data []byte
}

// NewOpaqueRecord creates a new opaque record.
func NewOpaqueRecord(h RRHeader, rt RecordType, data []byte) *OpaqueRecord {
	return &OpaqueRecord{H: h, T: rt, Data: data}
}

// Type returns the record type.
func (r *OpaqueRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *OpaqueRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *OpaqueRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData returns the raw data unchanged.
func (r *OpaqueRecord) MarshalRData() ([]byte, error) {
	return r.Data, nil
}

// String renders the record with RFC 3597 unknown-RDATA syntax.
func (r *OpaqueRecord) String() string {
	return fmt.Sprintf("%s %d CLASS%d %s \\# %d %s",
		r.H.Name, r.H.TTL, r.H.Class, r.T, len(r.Data), hex.EncodeToString(r.Data))
}

// parseOpaqueRData copies rdlen raw bytes without interpretation.
func parseOpaqueRData(msg []byte, off *int, rdlen int, rt RecordType) (*OpaqueRecord, error) {
	if *off+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected end of message in rdata", ErrTruncated)
	}
	b := make([]byte, rdlen)
	copy(b, msg[*off:*off+rdlen])
	*off += rdlen
	return &OpaqueRecord{T: rt, Data: b}, nil
}
