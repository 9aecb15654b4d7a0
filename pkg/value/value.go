package value

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/vitalvas/radpair/pkg/dictionary"
	"layeh.com/radius"
)

// ErrUnsupportedType is returned for data types that carry no scalar value.
var ErrUnsupportedType = errors.New("unsupported data type")

// DateLayout is the textual date format accepted besides Unix seconds and RFC 3339.
const DateLayout = "Jan _2 2006 15:04:05 MST"

// Box is a scalar value in its wire encoding.
type Box struct {
	Type dictionary.DataType
	Raw  radius.Attribute
}

// Octets returns an octets box holding a copy of b.
func Octets(b []byte) Box {
	return Box{Type: dictionary.DataTypeOctets, Raw: append(radius.Attribute{}, b...)}
}

// String returns a string box holding s verbatim.
func String(s string) (Box, error) {
	raw, err := radius.NewString(s)
	if err != nil {
		return Box{}, err
	}
	return Box{Type: dictionary.DataTypeString, Raw: raw}, nil
}

// Parse decodes text (already unescaped) according to the data type of attr.
func Parse(attr *dictionary.Attribute, text string) (Box, error) {
	raw, err := encode(attr, text)
	if err != nil {
		return Box{}, err
	}
	if err := attr.CheckLength(len(raw)); err != nil {
		return Box{}, err
	}
	return Box{Type: attr.DataType, Raw: raw}, nil
}

func encode(attr *dictionary.Attribute, text string) (radius.Attribute, error) {
	switch attr.DataType {
	case dictionary.DataTypeString:
		return radius.NewString(text)

	case dictionary.DataTypeOctets, dictionary.DataTypeABinary:
		if hasHexPrefix(text) {
			b, err := hex.DecodeString(text[2:])
			if err != nil {
				return nil, fmt.Errorf("invalid hex string %q: %w", text, err)
			}
			return radius.NewBytes(b)
		}
		return radius.NewBytes([]byte(text))

	case dictionary.DataTypeInteger:
		v, err := parseUnsigned(attr, text, 32)
		if err != nil {
			return nil, err
		}
		return radius.NewInteger(uint32(v)), nil

	case dictionary.DataTypeByte:
		v, err := parseUnsigned(attr, text, 8)
		if err != nil {
			return nil, err
		}
		return radius.Attribute{byte(v)}, nil

	case dictionary.DataTypeShort:
		v, err := parseUnsigned(attr, text, 16)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.AppendUint16(nil, uint16(v)), nil

	case dictionary.DataTypeInteger64:
		v, err := parseUnsigned(attr, text, 64)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.AppendUint64(nil, v), nil

	case dictionary.DataTypeIPAddr:
		ip := net.ParseIP(text)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("invalid IPv4 address: %s", text)
		}
		return radius.NewIPAddr(ip.To4())

	case dictionary.DataTypeIPv6Addr:
		ip := net.ParseIP(text)
		if ip == nil || !strings.Contains(text, ":") {
			return nil, fmt.Errorf("invalid IPv6 address: %s", text)
		}
		return radius.NewIPv6Addr(ip.To16())

	case dictionary.DataTypeIPv6Prefix:
		if !strings.Contains(text, "/") {
			text += "/128"
		}
		ip, prefix, err := net.ParseCIDR(text)
		if err != nil || ip.To4() != nil {
			return nil, fmt.Errorf("invalid IPv6 prefix: %s", text)
		}
		return radius.NewIPv6Prefix(prefix)

	case dictionary.DataTypeIfID:
		return parseIfID(text)

	case dictionary.DataTypeDate:
		t, err := parseDate(text)
		if err != nil {
			return nil, err
		}
		return radius.NewDate(t)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, attr.DataType)
	}
}

// parseUnsigned accepts decimal, 0x-prefixed hex, or a value name of attr.
func parseUnsigned(attr *dictionary.Attribute, text string, bits int) (uint64, error) {
	if v, ok := attr.ValueByName(text); ok {
		return uint64(v), nil
	}

	var (
		v   uint64
		err error
	)
	if hasHexPrefix(text) {
		v, err = strconv.ParseUint(text[2:], 16, bits)
	} else {
		v, err = strconv.ParseUint(text, 10, bits)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", attr.DataType, text)
	}

	return v, nil
}

func parseIfID(text string) (radius.Attribute, error) {
	groups := strings.Split(text, ":")
	if len(groups) != 4 {
		return nil, fmt.Errorf("invalid interface id: %s", text)
	}

	raw := make(radius.Attribute, 0, 8)
	for _, g := range groups {
		if g == "" || len(g) > 4 {
			return nil, fmt.Errorf("invalid interface id: %s", text)
		}
		v, err := strconv.ParseUint(g, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid interface id: %s", text)
		}
		raw = binary.BigEndian.AppendUint16(raw, uint16(v))
	}

	return raw, nil
}

func parseDate(text string) (time.Time, error) {
	if secs, err := strconv.ParseUint(text, 10, 32); err == nil {
		return time.Unix(int64(secs), 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DateLayout, text); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %s", text)
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Len returns the length of the wire encoding.
func (b Box) Len() int {
	return len(b.Raw)
}

// Equal reports whether b and other have the same type and encoding.
func (b Box) Equal(other Box) bool {
	return b.Type == other.Type && bytes.Equal(b.Raw, other.Raw)
}
