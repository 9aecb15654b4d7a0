package dictionaries

import "github.com/vitalvas/radpair/pkg/dictionary"

// DefaultName is the name of the standard RADIUS dictionary.
const DefaultName = "radius"

// NewDefault creates a dictionary pre-loaded with the standard RFC attributes and common vendor dictionaries.
// Currently includes:
//   - RFC 2865/2866/2869/3162 standard attributes
//   - RFC 6929 Extended-Attribute-1
//   - WISPr vendor attributes
//   - Mikrotik vendor attributes
//
// Returns an error if there are duplicate attribute names, which would indicate a programming error
// in the dictionary definitions.
//
// Example usage:
//
//	dict, err := dictionaries.NewDefault()
//	if err != nil {
//		return err
//	}
//	parser := pair.NewParser(dict, pair.WithInternal(dictionaries.MustInternal()))
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New(DefaultName)

	if err := dict.AddAttributes(nil, StandardRFCAttributes); err != nil {
		return nil, err
	}

	for _, v := range Vendors {
		if err := dict.AddVendor(v); err != nil {
			return nil, err
		}
	}

	return dict, nil
}
