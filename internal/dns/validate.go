package dns

import (
	"errors"
	"fmt"
)

// Limits for replies to prevent resource exhaustion from a hostile or
// broken nameserver.
const (
	MaxResponseSize = 4096 // Maximum size of a reply we will parse
	MaxQuestions    = 4    // Maximum questions echoed back (we only send 1)
	MaxRRPerSection = 100  // Maximum resource records per section
	MaxTotalRR      = 200  // Maximum total resource records
)

// ParseResponseBounded parses a reply with sanity bounds checking.
// It validates that the message is a response (not a query, which would mean
// a reflected or spoofed datagram) and doesn't exceed resource limits.
//
// Returns an error if:
//   - Message exceeds MaxResponseSize
//   - QR flag is clear (packet is a query, not a response)
//   - Question or RR counts exceed limits
func ParseResponseBounded(msg []byte) (Packet, error) {
	if len(msg) > MaxResponseSize {
		return Packet{}, fmt.Errorf("dns message too large: %d bytes", len(msg))
	}
	p, err := ParsePacket(msg)
	if err != nil {
		return Packet{}, err
	}

	if !p.Header.IsResponse() {
		return Packet{}, errors.New("invalid packet: QR flag clear (query received where response expected)")
	}

	if err := validateSectionCounts(p.Header); err != nil {
		return Packet{}, err
	}
	return p, nil
}

// validateSectionCounts checks that section counts don't exceed limits.
func validateSectionCounts(h Header) error {
	qd := int(h.QDCount)
	an := int(h.ANCount)
	ns := int(h.NSCount)
	ar := int(h.ARCount)

	if qd > MaxQuestions {
		return errors.New("too many questions")
	}
	if an > MaxRRPerSection || ns > MaxRRPerSection || ar > MaxRRPerSection {
		return errors.New("too many resource records")
	}
	if (an + ns + ar) > MaxTotalRR {
		return errors.New("too many total resource records")
	}
	return nil
}
