package dns

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalQuery(t *testing.T) {
	b, err := MarshalQuery(0xABCD, "example.com", TypeA, false)
	require.NoError(t, err)

	exp := []byte{
		0xAB, 0xCD, // id
		0x00, 0x00, // flags: RD clear
		0x00, 0x01, // qdcount
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // an/ns/ar
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01, // type A
		0x00, 0x01, // class IN
	}
	assert.Equal(t, exp, b)
}

func TestMarshalQuery_RecursionDesired(t *testing.T) {
	b, err := MarshalQuery(1, "example.com", TypeA, true)
	require.NoError(t, err)

	off := 0
	h, err := ParseHeader(b, &off)
	require.NoError(t, err)
	assert.True(t, h.RecursionDesired())
	assert.False(t, h.IsResponse())
	assert.Equal(t, uint16(1), h.QDCount)
	assert.Zero(t, h.ANCount)
	assert.Zero(t, h.NSCount)
	assert.Zero(t, h.ARCount)
}

func TestMarshalQuery_InvalidName(t *testing.T) {
	_, err := MarshalQuery(1, "", TypeA, false)
	require.ErrorIs(t, err, ErrInvalidName)
}

// buildReferralFixture assembles a realistic referral reply by hand:
// question for example.com, one authority NS whose owner name is a
// compression pointer into the question, and one glue A record.
func buildReferralFixture(t *testing.T) []byte {
	t.Helper()

	h := Header{ID: 7, Flags: QRFlag, QDCount: 1, NSCount: 1, ARCount: 1}
	msg := h.Marshal()

	// Question: example.com A IN. The "com" label starts 8 bytes into
	// the encoded name.
	qnameOff := len(msg)
	qname, err := EncodeName("example.com")
	require.NoError(t, err)
	msg = append(msg, qname...)
	msg = appendUint16(msg, uint16(TypeA))
	msg = appendUint16(msg, uint16(ClassIN))
	comOff := qnameOff + 8

	// Authority: com NS a.gtld-servers.net, owner name compressed.
	msg = append(msg, 0xC0, byte(comOff))
	msg = appendUint16(msg, uint16(TypeNS))
	msg = appendUint16(msg, uint16(ClassIN))
	msg = appendUint32(msg, 172800)
	nsTarget, err := EncodeName("a.gtld-servers.net")
	require.NoError(t, err)
	msg = appendUint16(msg, uint16(len(nsTarget)))
	nsTargetOff := len(msg)
	msg = append(msg, nsTarget...)

	// Additional: a.gtld-servers.net A 192.5.6.30, owner name compressed
	// against the authority rdata.
	msg = append(msg, 0xC0, byte(nsTargetOff))
	msg = appendUint16(msg, uint16(TypeA))
	msg = appendUint16(msg, uint16(ClassIN))
	msg = appendUint32(msg, 172800)
	msg = appendUint16(msg, 4)
	msg = append(msg, 192, 5, 6, 30)

	return msg
}

func TestParsePacket_Referral(t *testing.T) {
	msg := buildReferralFixture(t)
	p, err := ParsePacket(msg)
	require.NoError(t, err)

	assert.Equal(t, uint16(7), p.Header.ID)
	require.Len(t, p.Questions, 1)
	assert.Equal(t, "example.com", p.Questions[0].Name)
	assert.Empty(t, p.Answers)
	assert.Zero(t, p.TrailingBytes)

	require.Len(t, p.Authorities, 1)
	ns, ok := p.Authorities[0].(*NameRecord)
	require.True(t, ok)
	assert.Equal(t, "com", ns.Header().Name)
	assert.Equal(t, "a.gtld-servers.net", ns.Target)

	require.Len(t, p.Additionals, 1)
	glue, ok := p.Additionals[0].(*IPRecord)
	require.True(t, ok)
	assert.Equal(t, "a.gtld-servers.net", glue.Header().Name)
	assert.Equal(t, "192.5.6.30", glue.Addr.String())
}

func TestParsePacket_TrailingBytes(t *testing.T) {
	msg := buildReferralFixture(t)
	msg = append(msg, 0xDE, 0xAD, 0xBE)
	p, err := ParsePacket(msg)
	require.NoError(t, err)
	assert.Equal(t, 3, p.TrailingBytes)
}

func TestParsePacket_CountsExceedBuffer(t *testing.T) {
	// Header promises an answer that isn't there.
	h := Header{ID: 1, Flags: QRFlag, ANCount: 1}
	_, err := ParsePacket(h.Marshal())
	require.ErrorIs(t, err, ErrTruncated)
}

func TestPacketMarshalRoundTrip(t *testing.T) {
	p := Packet{
		Header:    Header{ID: 99, Flags: QRFlag | RDFlag | RAFlag},
		Questions: []Question{{Name: "example.com", Type: uint16(TypeA), Class: uint16(ClassIN)}},
		Answers: []Record{
			NewIPRecord(NewRRHeader("example.com", ClassIN, 300), net.ParseIP("93.184.216.34")),
			NewCNAMERecord(NewRRHeader("www.example.com", ClassIN, 300), "example.com"),
		},
		Authorities: []Record{
			NewNSRecord(NewRRHeader("example.com", ClassIN, 86400), "ns1.example.com"),
		},
		Additionals: []Record{
			NewIPRecord(NewRRHeader("ns1.example.com", ClassIN, 86400), net.ParseIP("192.0.2.53")),
		},
	}

	b, err := p.Marshal()
	require.NoError(t, err)

	got, err := ParsePacket(b)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), got.Header.QDCount)
	assert.Equal(t, uint16(2), got.Header.ANCount)
	assert.Equal(t, p.Questions, got.Questions)
	require.Len(t, got.Answers, 2)
	assert.Equal(t, "93.184.216.34", got.Answers[0].(*IPRecord).Addr.String())
	assert.Equal(t, "example.com", got.Answers[1].(*NameRecord).Target)
	assert.Equal(t, "ns1.example.com", got.Authorities[0].(*NameRecord).Target)
	assert.Zero(t, got.TrailingBytes)
}

func TestParseResponseBounded_RejectsQuery(t *testing.T) {
	b, err := MarshalQuery(5, "example.com", TypeA, false)
	require.NoError(t, err)
	_, err = ParseResponseBounded(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QR flag")
}

func TestParseResponseBounded_TooManyQuestions(t *testing.T) {
	p := Packet{Header: Header{ID: 1, Flags: QRFlag}}
	for i := 0; i < MaxQuestions+1; i++ {
		p.Questions = append(p.Questions, Question{Name: "example.com", Type: uint16(TypeA), Class: uint16(ClassIN)})
	}
	b, err := p.Marshal()
	require.NoError(t, err)

	_, err = ParseResponseBounded(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many questions")
}

func TestParseResponseBounded_TooLarge(t *testing.T) {
	_, err := ParseResponseBounded(make([]byte, MaxResponseSize+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestParseResponseBounded_Valid(t *testing.T) {
	msg := buildReferralFixture(t)
	p, err := ParseResponseBounded(msg)
	require.NoError(t, err)
	assert.True(t, p.Header.IsResponse())
}
