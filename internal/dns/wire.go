package dns

import (
	"encoding/binary"
	"fmt"
)

// Fixed-width big-endian field access shared by header, question, and record
// parsing. Reads advance the cursor; appends grow the output slice.

// readUint16 reads a big-endian uint16 at *off and advances the cursor.
func readUint16(msg []byte, off *int) (uint16, error) {
	if *off < 0 || *off+2 > len(msg) {
		return 0, fmt.Errorf("%w: need 2 bytes at offset %d of %d", ErrTruncated, *off, len(msg))
	}
	v := binary.BigEndian.Uint16(msg[*off : *off+2])
	*off += 2
	return v, nil
}

// readUint32 reads a big-endian uint32 at *off and advances the cursor.
func readUint32(msg []byte, off *int) (uint32, error) {
	if *off < 0 || *off+4 > len(msg) {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d of %d", ErrTruncated, *off, len(msg))
	}
	v := binary.BigEndian.Uint32(msg[*off : *off+4])
	*off += 4
	return v, nil
}

// appendUint16 appends v to b in big-endian order.
func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

// appendUint32 appends v to b in big-endian order.
func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
