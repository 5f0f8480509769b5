package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshal(t *testing.T) {
	h := Header{ID: 0x1234, Flags: RDFlag, QDCount: 1}
	b := h.Marshal()
	exp := []byte{0x12, 0x34, 0x01, 0x00, 0x00, 0x01, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, exp, b)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{ID: 0xBEEF, Flags: QRFlag | RDFlag | RAFlag, QDCount: 1, ANCount: 2, NSCount: 3, ARCount: 4}
	off := 0
	got, err := ParseHeader(h.Marshal(), &off)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, HeaderSize, off)
}

func TestHeaderFlagsRoundTripOpaquely(t *testing.T) {
	// Bits this codec never interprets must still survive a round trip.
	h := Header{ID: 1, Flags: 0xAD0F}
	off := 0
	got, err := ParseHeader(h.Marshal(), &off)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xAD0F), got.Flags)
}

func TestParseHeader_Truncated(t *testing.T) {
	off := 0
	_, err := ParseHeader(make([]byte, HeaderSize-1), &off)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestHeaderAccessors(t *testing.T) {
	h := Header{Flags: QRFlag | RDFlag}
	assert.True(t, h.IsResponse())
	assert.True(t, h.RecursionDesired())
	assert.False(t, h.Truncated())

	h.Flags = TCFlag
	assert.False(t, h.IsResponse())
	assert.False(t, h.RecursionDesired())
	assert.True(t, h.Truncated())
}
