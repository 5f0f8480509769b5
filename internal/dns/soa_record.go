package dns

import "fmt"

// SOARecord represents a DNS Start of Authority record (RFC 1035 Section 3.3.13).
type SOARecord struct {
	H       RRHeader
	MName   string // primary nameserver for the zone
	RName   string // mailbox of the person responsible
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

// Type returns TypeSOA.
func (r *SOARecord) Type() RecordType { return TypeSOA }

// Header returns the record header.
func (r *SOARecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *SOARecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals both names and the five 32-bit fields to wire format.
func (r *SOARecord) MarshalRData() ([]byte, error) {
	mname, err := EncodeName(r.MName)
	if err != nil {
		return nil, err
	}
	rname, err := EncodeName(r.RName)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(mname)+len(rname)+20)
	out = append(out, mname...)
	out = append(out, rname...)
	out = appendUint32(out, r.Serial)
	out = appendUint32(out, r.Refresh)
	out = appendUint32(out, r.Retry)
	out = appendUint32(out, r.Expire)
	out = appendUint32(out, r.Minimum)
	return out, nil
}

// String renders the record in zone-file style.
func (r *SOARecord) String() string {
	return fmt.Sprintf("%s %d IN SOA %s %s %d %d %d %d %d",
		r.H.Name, r.H.TTL, r.MName, r.RName, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

// parseSOARData parses SOA record RDATA: MNAME and RNAME (both possibly
// compressed), then SERIAL, REFRESH, RETRY, EXPIRE, MINIMUM.
func parseSOARData(msg []byte, off *int) (*SOARecord, error) {
	r := &SOARecord{}
	var err error
	if r.MName, err = DecodeName(msg, off); err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	if r.RName, err = DecodeName(msg, off); err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}
	fields := []*uint32{&r.Serial, &r.Refresh, &r.Retry, &r.Expire, &r.Minimum}
	for _, f := range fields {
		if *f, err = readUint32(msg, off); err != nil {
			return nil, err
		}
	}
	return r, nil
}
