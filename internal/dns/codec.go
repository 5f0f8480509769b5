package dns

import (
	"fmt"
	"strings"
)

const (
	maxLabelLength = 63  // RFC 1035 Section 2.3.4
	maxNameLength  = 255 // RFC 1035 Section 2.3.4, encoded form
)

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1):
// each dot-separated label as a length byte plus its raw ASCII bytes, then a
// terminating zero byte.
//
// Example: "example.com" → [7]"example"[3]"com"[0]
//
// No compression pointers are ever produced; outbound queries contain a
// single name and have nothing to point back to.
func EncodeName(domain string) ([]byte, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: name must be non-empty", ErrInvalidName)
	}
	domain = trimTrailingDots(domain)
	if domain == "" {
		return []byte{0}, nil // root
	}

	out := make([]byte, 0, len(domain)+2)
	start := 0
	for i := 0; i <= len(domain); i++ {
		if i != len(domain) && domain[i] != '.' {
			continue
		}
		label := domain[start:i]
		if len(label) == 0 {
			return nil, fmt.Errorf("%w: empty label in %q", ErrInvalidName, domain)
		}
		if len(label) > maxLabelLength {
			return nil, fmt.Errorf("%w: label is %d bytes (max %d): %q", ErrInvalidName, len(label), maxLabelLength, label)
		}
		for j := 0; j < len(label); j++ {
			if label[j] > 0x7F {
				return nil, fmt.Errorf("%w: non-ASCII byte in label %q", ErrInvalidName, label)
			}
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
		start = i + 1
	}
	out = append(out, 0)

	if len(out) > maxNameLength {
		return nil, fmt.Errorf("%w: encoded name is %d bytes (max %d)", ErrInvalidName, len(out), maxNameLength)
	}
	return out, nil
}

// DecodeName decodes a possibly-compressed domain name from wire format
// (RFC 1035 Section 4.1.4).
//
// A length byte with the two high bits set (11xxxxxx) marks a 14-bit
// compression pointer: the remaining 6 bits plus the next byte form an
// absolute offset from the start of msg where decoding continues.
//
// The cursor is left immediately after the first terminator of the top-level
// label sequence, either the zero byte or the two pointer bytes; following a
// pointer never advances the caller's cursor past the jump.
//
// Every offset where label decoding starts is tracked for the duration of
// one DecodeName call; a pointer chain that revisits an offset fails with
// ErrCompressionCycle instead of recursing forever.
func DecodeName(msg []byte, off *int) (string, error) {
	labels := make([]string, 0, 6)
	if err := decodeLabels(msg, off, map[int]struct{}{}, &labels); err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: empty name", ErrInvalidLabel)
	}
	return strings.Join(labels, "."), nil
}

// decodeLabels reads labels at *off into labels until a terminator, following
// compression pointers. visited holds the start offset of every label
// sequence entered during this top-level decode.
func decodeLabels(msg []byte, off *int, visited map[int]struct{}, labels *[]string) error {
	if _, seen := visited[*off]; seen {
		return fmt.Errorf("%w: offset %d visited twice", ErrCompressionCycle, *off)
	}
	visited[*off] = struct{}{}

	for {
		if *off < 0 || *off >= len(msg) {
			return fmt.Errorf("%w: unexpected end of message in name", ErrTruncated)
		}
		lengthByte := msg[*off]
		*off++

		switch {
		case lengthByte == 0:
			return nil

		case isCompressionPointer(lengthByte):
			if *off >= len(msg) {
				return fmt.Errorf("%w: compression pointer missing second byte", ErrTruncated)
			}
			ptr := int(lengthByte&0x3F)<<8 | int(msg[*off])
			*off++
			if ptr >= len(msg) {
				return fmt.Errorf("%w: compression pointer %d out of range", ErrTruncated, ptr)
			}
			ptrOff := ptr
			return decodeLabels(msg, &ptrOff, visited, labels)

		case lengthByte&0xC0 != 0:
			// 01xxxxxx and 10xxxxxx are reserved per RFC 1035.
			return fmt.Errorf("%w: reserved length encoding 0x%02x", ErrInvalidLabel, lengthByte)

		default:
			end := *off + int(lengthByte)
			if end > len(msg) {
				return fmt.Errorf("%w: label runs past end of message", ErrTruncated)
			}
			label := msg[*off:end]
			for _, b := range label {
				if b > 0x7F {
					return fmt.Errorf("%w: non-ASCII byte 0x%02x", ErrInvalidLabel, b)
				}
			}
			*labels = append(*labels, string(label))
			*off = end
		}
	}
}

// isCompressionPointer checks if the length byte starts a compression
// pointer (two high bits set, 0xC0 mask).
func isCompressionPointer(b byte) bool {
	return b&0xC0 == 0xC0
}

// trimTrailingDots removes all trailing dots from a name.
func trimTrailingDots(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
