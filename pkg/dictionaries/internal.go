package dictionaries

import (
	"fmt"

	"github.com/vitalvas/radpair/pkg/dictionary"
)

// InternalName is the name of the internal attribute namespace.
const InternalName = "freeradius"

// InternalAttributes are server-local attributes that never appear on the wire.
var InternalAttributes = []*dictionary.AttributeDefinition{
	{ID: dictionary.FallThroughID, Name: "Fall-Through", DataType: dictionary.DataTypeInteger, Values: map[string]uint32{
		"No":  0,
		"Yes": 1,
	}},
	{ID: 1200, Name: "Tmp-Group-0", DataType: dictionary.DataTypeGroup},
}

// tmpAttributes generates Tmp-<kind>-0..3 starting at base.
func tmpAttributes(kind string, base uint32, dt dictionary.DataType) []*dictionary.AttributeDefinition {
	defs := make([]*dictionary.AttributeDefinition, 0, 4)
	for i := uint32(0); i < 4; i++ {
		defs = append(defs, &dictionary.AttributeDefinition{
			ID:       base + i,
			Name:     fmt.Sprintf("Tmp-%s-%d", kind, i),
			DataType: dt,
		})
	}
	return defs
}

// NewInternal creates the internal dictionary holding Fall-Through and the
// Tmp-* scratch attributes.
func NewInternal() (*dictionary.Dictionary, error) {
	dict := dictionary.NewInternal(InternalName)

	if err := dict.AddAttributes(nil, InternalAttributes); err != nil {
		return nil, err
	}

	for _, defs := range [][]*dictionary.AttributeDefinition{
		tmpAttributes("String", 1000, dictionary.DataTypeString),
		tmpAttributes("Integer", 1010, dictionary.DataTypeInteger),
		tmpAttributes("Octets", 1020, dictionary.DataTypeOctets),
	} {
		if err := dict.AddAttributes(nil, defs); err != nil {
			return nil, err
		}
	}

	return dict, nil
}

// MustInternal is like NewInternal but panics on error.
func MustInternal() *dictionary.Dictionary {
	dict, err := NewInternal()
	if err != nil {
		panic(err)
	}
	return dict
}
