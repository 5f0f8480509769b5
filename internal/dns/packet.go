package dns

import (
	"fmt"

	"github.com/jroosing/rootwalk/internal/helpers"
)

// Packet represents a complete DNS message (RFC 1035 Section 4.1).
//
// DNS messages are composed of five sections:
//   - Header: Transaction ID, flags, section counts
//   - Questions: What is being asked
//   - Answers: Resource records answering the question
//   - Authorities: Name servers authoritative for the domain
//   - Additionals: Extra records, notably glue addresses for NS targets
//
// Section order as received is preserved; the resolver's "first matching
// record wins" decisions depend on it.
type Packet struct {
	Header      Header
	Questions   []Question
	Answers     []Record
	Authorities []Record
	Additionals []Record

	// TrailingBytes counts bytes left after the sections the header's
	// counts declared. Trailing data is an anomaly worth surfacing, not
	// an error.
	TrailingBytes int
}

// Marshal serializes the packet to DNS wire format (big-endian).
// Section counts are derived from the slice lengths, not Header.
func (p Packet) Marshal() ([]byte, error) {
	h := Header{
		ID:      p.Header.ID,
		Flags:   p.Header.Flags,
		QDCount: helpers.ClampIntToUint16(len(p.Questions)),
		ANCount: helpers.ClampIntToUint16(len(p.Answers)),
		NSCount: helpers.ClampIntToUint16(len(p.Authorities)),
		ARCount: helpers.ClampIntToUint16(len(p.Additionals)),
	}

	// Estimate capacity: header(12) + question(~50) + records(~100 each)
	estimated := HeaderSize + len(p.Questions)*50 +
		(len(p.Answers)+len(p.Authorities)+len(p.Additionals))*100
	out := make([]byte, 0, estimated)
	out = append(out, h.Marshal()...)

	for _, q := range p.Questions {
		qb, err := q.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, qb...)
	}
	for _, section := range [][]Record{p.Answers, p.Authorities, p.Additionals} {
		for _, r := range section {
			rb, err := MarshalRecord(r)
			if err != nil {
				return nil, err
			}
			out = append(out, rb...)
		}
	}
	return out, nil
}

// MarshalQuery builds the wire form of an outbound query: a header carrying
// exactly one question and zero records, followed by that question. This
// codec only ever encodes queries; responses are decode-only.
func MarshalQuery(id uint16, name string, qtype RecordType, recursionDesired bool) ([]byte, error) {
	var flags uint16
	if recursionDesired {
		flags |= RDFlag
	}
	p := Packet{
		Header:    Header{ID: id, Flags: flags},
		Questions: []Question{{Name: name, Type: uint16(qtype), Class: uint16(ClassIN)}},
	}
	return p.Marshal()
}

// ParsePacket parses a full DNS message. The header's counts drive how many
// questions and records follow; a message whose declared counts exceed what
// the buffer holds fails with ErrTruncated.
func ParsePacket(msg []byte) (Packet, error) {
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return Packet{}, err
	}

	p := Packet{Header: h}

	// Cap initial allocations: the counts are untrusted network input and
	// a 16-bit count can promise far more records than the buffer holds.
	p.Questions = make([]Question, 0, min(int(h.QDCount), MaxQuestions))
	for i := uint16(0); i < h.QDCount; i++ {
		q, err := ParseQuestion(msg, &off)
		if err != nil {
			return Packet{}, err
		}
		p.Questions = append(p.Questions, q)
	}
	if p.Answers, err = parseSection(msg, &off, h.ANCount); err != nil {
		return Packet{}, fmt.Errorf("answer section: %w", err)
	}
	if p.Authorities, err = parseSection(msg, &off, h.NSCount); err != nil {
		return Packet{}, fmt.Errorf("authority section: %w", err)
	}
	if p.Additionals, err = parseSection(msg, &off, h.ARCount); err != nil {
		return Packet{}, fmt.Errorf("additional section: %w", err)
	}

	p.TrailingBytes = len(msg) - off
	return p, nil
}

// parseSection parses count records starting at *off.
func parseSection(msg []byte, off *int, count uint16) ([]Record, error) {
	records := make([]Record, 0, min(int(count), MaxRRPerSection))
	for i := uint16(0); i < count; i++ {
		r, err := ParseRecord(msg, off)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
