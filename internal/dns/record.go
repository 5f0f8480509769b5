package dns

import (
	"fmt"

	"github.com/jroosing/rootwalk/internal/helpers"
)

// RRHeader contains common metadata for DNS resource records.
// This is distinct from Header which is the DNS message header.
type RRHeader struct {
	Name  string
	Class uint16
	TTL   uint32
}

// NewRRHeader creates a new resource record header.
func NewRRHeader(name string, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: uint16(class), TTL: ttl}
}

// Record is the interface for DNS resource records.
// All DNS records implement this interface for type-safe handling.
type Record interface {
	// Type returns the DNS record type.
	Type() RecordType

	// Header returns the record's metadata.
	Header() RRHeader

	// SetHeader sets the record's metadata.
	SetHeader(h RRHeader)

	// MarshalRData marshals the record-specific data (RDATA) to wire format.
	MarshalRData() ([]byte, error)

	// String renders the record in zone-file style for display.
	String() string
}

// ParseRecord parses a resource record from wire format.
// It advances *off past the parsed record on success.
//
// The cursor always lands on rdata-start + rdlength as declared in the fixed
// record header, regardless of how far the variant decode advanced: a
// compressed name inside RDATA can finish short of the declared boundary.
func ParseRecord(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return nil, fmt.Errorf("record name: %w", err)
	}
	var rrType, rrClass, rdlen uint16
	var ttl uint32
	if rrType, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	if rrClass, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	if ttl, err = readUint32(msg, off); err != nil {
		return nil, err
	}
	if rdlen, err = readUint16(msg, off); err != nil {
		return nil, err
	}
	start := *off
	if start+int(rdlen) > len(msg) {
		return nil, fmt.Errorf("%w: rdata of %d bytes runs past end of message", ErrTruncated, rdlen)
	}

	r, err := parseRData(RecordType(rrType), rrClass, msg, start, int(rdlen))
	if err != nil {
		return nil, err
	}
	r.SetHeader(RRHeader{Name: name, Class: rrClass, TTL: ttl})
	*off = start + int(rdlen)
	return r, nil
}

// parseRData decodes RDATA into a typed Record based on (type, class).
//
// Dispatch rules:
//   - class other than IN: opaque, raw bytes (round-trips losslessly)
//   - A/AAAA with an rdlength that is not exactly 4/16: opaque fallback
//   - NS/CNAME/PTR: a single possibly-compressed name
//   - MX/SRV/SOA/TXT: structured sub-fields
//   - anything else: opaque
func parseRData(rt RecordType, class uint16, msg []byte, start, rdlen int) (Record, error) {
	off := start
	if RecordClass(class) != ClassIN {
		return parseOpaqueRData(msg, &off, rdlen, rt)
	}
	switch rt {
	case TypeA:
		if rdlen != 4 {
			return parseOpaqueRData(msg, &off, rdlen, rt)
		}
		return parseIPRData(msg, &off, rt, rdlen)
	case TypeAAAA:
		if rdlen != 16 {
			return parseOpaqueRData(msg, &off, rdlen, rt)
		}
		return parseIPRData(msg, &off, rt, rdlen)
	case TypeNS, TypeCNAME, TypePTR:
		return parseNameRData(msg, &off, rt)
	case TypeMX:
		return parseMXRData(msg, &off)
	case TypeSRV:
		return parseSRVRData(msg, &off)
	case TypeSOA:
		return parseSOARData(msg, &off)
	case TypeTXT:
		return parseTXTRData(msg, &off, start, rdlen)
	default:
		return parseOpaqueRData(msg, &off, rdlen, rt)
	}
}

// MarshalRecord converts a Record to wire-format bytes.
func MarshalRecord(r Record) ([]byte, error) {
	rdata, err := r.MarshalRData()
	if err != nil {
		return nil, err
	}
	h := r.Header()

	nameWire, err := EncodeName(h.Name)
	if err != nil {
		return nil, err
	}
	if len(rdata) > 65535 {
		return nil, fmt.Errorf("rdata too large: %d bytes (max 65535)", len(rdata))
	}

	out := make([]byte, 0, len(nameWire)+10+len(rdata))
	out = append(out, nameWire...)
	out = appendUint16(out, uint16(r.Type()))
	out = appendUint16(out, h.Class)
	out = appendUint32(out, h.TTL)
	out = appendUint16(out, helpers.ClampIntToUint16(len(rdata)))
	out = append(out, rdata...)
	return out, nil
}

// String returns the mnemonic for well-known types and TYPEn otherwise.
func (rt RecordType) String() string {
	switch rt {
	case TypeA:
		return "A"
	case TypeNS:
		return "NS"
	case TypeCNAME:
		return "CNAME"
	case TypeSOA:
		return "SOA"
	case TypePTR:
		return "PTR"
	case TypeMX:
		return "MX"
	case TypeTXT:
		return "TXT"
	case TypeAAAA:
		return "AAAA"
	case TypeSRV:
		return "SRV"
	default:
		return fmt.Sprintf("TYPE%d", uint16(rt))
	}
}
