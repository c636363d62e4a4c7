package timeutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	// RFC3339Millis is RFC 3339 with millisecond precision, always UTC.
	RFC3339Millis = "2006-01-02T15:04:05.000Z"

	// RFC3339Micros is RFC 3339 with microsecond precision, always UTC.
	RFC3339Micros = "2006-01-02T15:04:05.000000Z"
)

// Time wraps time.Time to serialize as RFC 3339 with millisecond precision
// in JSON and as a tagged text string in CBOR.
type Time struct {
	time.Time
}

// NewTime creates a Time from a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current time as a Time.
func Now() Time {
	return NewTime(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts RFC 3339 with any
// fractional precision. A JSON null preserves the existing value.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timeutil: invalid time %q", s)
	}
	parsed, err := parseRFC3339(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler using tag 0 (standard date/time string).
func (t Time) MarshalCBOR() ([]byte, error) {
	s := t.UTC().Format(RFC3339Millis)
	data := make([]byte, 0, 2+len(s))
	data = append(data, 0xc0)
	return appendCBORTextString(data, s), nil
}

// UnmarshalCBOR implements cbor.Unmarshaler. Accepts a text string with or
// without the tag 0 prefix.
func (t *Time) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return errors.New("timeutil: empty CBOR data")
	}
	if data[0] == 0xc0 {
		data = data[1:]
	}
	if len(data) == 0 {
		return errors.New("timeutil: missing CBOR content after tag")
	}

	s, err := decodeCBORTextString(data)
	if err != nil {
		return err
	}

	parsed, err := parseRFC3339(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// decodeCBORTextString decodes a CBOR text string (major type 3) from data.
func decodeCBORTextString(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("timeutil: empty CBOR data")
	}

	// Major type 3 (text string) only.
	major := data[0] >> 5
	if major != 3 {
		return "", fmt.Errorf("timeutil: expected CBOR text string, got major type %d", major)
	}

	info := data[0] & 0x1f
	var length int
	var offset int
	switch {
	case info < 24:
		length = int(info)
		offset = 1
	case info == 24:
		if len(data) < 2 {
			return "", errors.New("timeutil: truncated CBOR length")
		}
		length = int(data[1])
		offset = 2
	case info == 25:
		if len(data) < 3 {
			return "", errors.New("timeutil: truncated CBOR length")
		}
		length = int(data[1])<<8 | int(data[2])
		offset = 3
	default:
		return "", fmt.Errorf("timeutil: unsupported CBOR length encoding %d", info)
	}

	if len(data) < offset+length {
		return "", errors.New("timeutil: truncated CBOR text string")
	}

	return string(data[offset : offset+length]), nil
}

func parseRFC3339(s string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: cannot parse time %q: %w", s, err)
	}
	return parsed, nil
}

// appendCBORTextString appends a CBOR text string (major type 3) to data.
func appendCBORTextString(data []byte, s string) []byte {
	n := len(s)
	switch {
	case n < 24:
		data = append(data, 0x60+byte(n))
	case n < 256:
		data = append(data, 0x78, byte(n))
	default:
		data = append(data, 0x79, byte(n>>8), byte(n))
	}
	return append(data, s...)
}
