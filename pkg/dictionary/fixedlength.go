package dictionary

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrValueLength is returned for values that do not fit the length of a
// fixed-length attribute.
var ErrValueLength = errors.New("invalid value length")

// FixedLengthType represents a data type with optional fixed length constraint
type FixedLengthType struct {
	BaseType DataType
	Length   int
}

// String returns the string representation of the fixed-length type
func (flt FixedLengthType) String() string {
	if flt.Length > 0 {
		return fmt.Sprintf("%s[%d]", flt.BaseType, flt.Length)
	}
	return string(flt.BaseType)
}

// fixedLengthTypeRegex matches types like "string[10]", "octets[16]", etc.
var fixedLengthTypeRegex = regexp.MustCompile(`^([a-z0-9]+)(?:\[(\d+)\])?$`)

// ParseFixedLengthType parses a data type with an optional length suffix.
func ParseFixedLengthType(typeStr string) (FixedLengthType, error) {
	matches := fixedLengthTypeRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(typeStr)))
	if matches == nil {
		return FixedLengthType{}, fmt.Errorf("invalid type format: %s", typeStr)
	}

	flt := FixedLengthType{BaseType: DataType(matches[1])}
	if !flt.BaseType.IsValid() {
		return FixedLengthType{}, fmt.Errorf("unsupported data type: %s", flt.BaseType)
	}

	if matches[2] != "" {
		length, err := strconv.Atoi(matches[2])
		if err != nil || length <= 0 {
			return FixedLengthType{}, fmt.Errorf("invalid length specification: %s", matches[2])
		}
		flt.Length = length
	}

	if err := checkFixedLength(flt); err != nil {
		return FixedLengthType{}, err
	}

	return flt, nil
}

// checkFixedLength accepts a length on string and octets types only, up to
// MaxValueLength.
func checkFixedLength(flt FixedLengthType) error {
	if flt.Length == 0 {
		return nil
	}

	switch flt.BaseType {
	case DataTypeString, DataTypeOctets:
		if flt.Length > MaxValueLength {
			return fmt.Errorf("%s attribute length cannot exceed %d bytes", flt.BaseType, MaxValueLength)
		}
		return nil
	default:
		return fmt.Errorf("%s attributes cannot have a length", flt.BaseType)
	}
}

// normalizeDefinition splits a length suffix out of the data type. def is
// returned unchanged when it has none.
func normalizeDefinition(def *AttributeDefinition) (*AttributeDefinition, error) {
	if def == nil || !strings.Contains(string(def.DataType), "[") {
		return def, nil
	}

	flt, err := ParseFixedLengthType(string(def.DataType))
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", def.Name, err)
	}
	if def.Length != 0 && def.Length != flt.Length {
		return nil, fmt.Errorf("attribute %q: length %d conflicts with type %s", def.Name, def.Length, flt)
	}

	normalized := *def
	normalized.DataType = flt.BaseType
	normalized.Length = flt.Length
	return &normalized, nil
}

// FixedLengthType returns the data type and length of the attribute.
func (a *Attribute) FixedLengthType() FixedLengthType {
	return FixedLengthType{BaseType: a.DataType, Length: a.Length}
}

// CheckLength validates the encoded length n of a value for a.
// Fixed-length octets must match exactly; fixed-length strings may be shorter.
func (a *Attribute) CheckLength(n int) error {
	if a.Length == 0 {
		return nil
	}

	switch a.DataType {
	case DataTypeOctets:
		if n != a.Length {
			return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrValueLength, a.Name, a.Length, n)
		}
	case DataTypeString:
		if n > a.Length {
			return fmt.Errorf("%w: %s allows at most %d bytes, got %d", ErrValueLength, a.Name, a.Length, n)
		}
	}
	return nil
}
