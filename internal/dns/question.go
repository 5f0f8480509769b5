package dns

import "fmt"

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
//
// Each question specifies what the client is asking for:
//   - Name: The domain name being queried
//   - Type: The record type requested (A, AAAA, MX, etc.)
//   - Class: Usually ClassIN (Internet); other values round-trip untouched
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// Marshal serializes the question to DNS wire format.
func (q Question) Marshal() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(name)+4)
	b = append(b, name...)
	b = appendUint16(b, q.Type)
	b = appendUint16(b, q.Class)
	return b, nil
}

// ParseQuestion parses a question from the message at the given offset.
// It advances *off past the parsed question on success.
func ParseQuestion(msg []byte, off *int) (Question, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, fmt.Errorf("question name: %w", err)
	}
	q := Question{Name: name}
	if q.Type, err = readUint16(msg, off); err != nil {
		return Question{}, err
	}
	if q.Class, err = readUint16(msg, off); err != nil {
		return Question{}, err
	}
	return q, nil
}
