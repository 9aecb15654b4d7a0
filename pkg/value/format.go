package value

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/vitalvas/radpair/pkg/dictionary"
	"layeh.com/radius"
)

// String renders the canonical text of the value. Values whose encoding does
// not match their type are rendered as hex octets.
func (b Box) String() string {
	s, err := b.format()
	if err != nil {
		return hexString(b.Raw)
	}
	return s
}

// Format renders the value like String, using the value names of attr for
// integer types when one matches.
func Format(attr *dictionary.Attribute, b Box) string {
	if attr != nil && len(attr.Values) > 0 {
		if v, ok := b.unsigned(); ok && v <= uint64(^uint32(0)) {
			if name, ok := attr.ValueName(uint32(v)); ok {
				return name
			}
		}
	}
	return b.String()
}

func (b Box) format() (string, error) {
	switch b.Type {
	case dictionary.DataTypeString:
		return radius.String(b.Raw), nil

	case dictionary.DataTypeOctets, dictionary.DataTypeABinary:
		return hexString(b.Raw), nil

	case dictionary.DataTypeInteger, dictionary.DataTypeByte, dictionary.DataTypeShort, dictionary.DataTypeInteger64:
		v, ok := b.unsigned()
		if !ok {
			return "", fmt.Errorf("invalid %s length %d", b.Type, len(b.Raw))
		}
		return strconv.FormatUint(v, 10), nil

	case dictionary.DataTypeIPAddr:
		ip, err := radius.IPAddr(b.Raw)
		if err != nil {
			return "", err
		}
		return ip.String(), nil

	case dictionary.DataTypeIPv6Addr:
		ip, err := radius.IPv6Addr(b.Raw)
		if err != nil {
			return "", err
		}
		return ip.String(), nil

	case dictionary.DataTypeIPv6Prefix:
		prefix, err := radius.IPv6Prefix(b.Raw)
		if err != nil {
			return "", err
		}
		return prefix.String(), nil

	case dictionary.DataTypeIfID:
		if len(b.Raw) != 8 {
			return "", fmt.Errorf("invalid ifid length %d", len(b.Raw))
		}
		return fmt.Sprintf("%04x:%04x:%04x:%04x",
			binary.BigEndian.Uint16(b.Raw[0:]), binary.BigEndian.Uint16(b.Raw[2:]),
			binary.BigEndian.Uint16(b.Raw[4:]), binary.BigEndian.Uint16(b.Raw[6:])), nil

	case dictionary.DataTypeDate:
		t, err := radius.Date(b.Raw)
		if err != nil {
			return "", err
		}
		return t.UTC().Format(time.RFC3339), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, b.Type)
	}
}

func (b Box) unsigned() (uint64, bool) {
	switch {
	case b.Type == dictionary.DataTypeInteger && len(b.Raw) == 4:
		v, err := radius.Integer(b.Raw)
		return uint64(v), err == nil
	case b.Type == dictionary.DataTypeByte && len(b.Raw) == 1:
		return uint64(b.Raw[0]), true
	case b.Type == dictionary.DataTypeShort && len(b.Raw) == 2:
		return uint64(binary.BigEndian.Uint16(b.Raw)), true
	case b.Type == dictionary.DataTypeInteger64 && len(b.Raw) == 8:
		return binary.BigEndian.Uint64(b.Raw), true
	default:
		return 0, false
	}
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
