package pair

import (
	"fmt"
	"strings"

	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/token"
	"github.com/vitalvas/radpair/pkg/value"
)

// Maker builds single pairs from a name, a literal value and an operator.
// It is safe for concurrent use.
type Maker struct {
	dict     *dictionary.Dictionary
	internal *dictionary.Dictionary
}

// NewMaker returns a maker resolving names in dict, then in internal
// (which may be nil).
func NewMaker(dict, internal *dictionary.Dictionary) *Maker {
	return &Maker{dict: dict, internal: internal}
}

// Make builds a pair for name with the literal val and appends it to list
// when list is non-nil. val is unescaped with double-quote rules.
//
// Names that do not resolve are synthesized as unknown attributes, whose
// value must be a 0x hex string. Regular expression operators check that val
// compiles and keep it as a deferred expansion; the unconditional comparison
// operators drop the value.
func (m *Maker) Make(list *List, name, val string, op token.Token) (*Pair, error) {
	return m.make(list, name, val, true, op)
}

// MakeEmpty is like Make without a literal value.
func (m *Maker) MakeEmpty(list *List, name string, op token.Token) (*Pair, error) {
	return m.make(list, name, "", false, op)
}

// MakeUnknown synthesizes an unknown attribute from the raw OID in name and
// builds an octets pair for it. An absent value is an empty octet string.
func (m *Maker) MakeUnknown(list *List, name, val string, hasValue bool, op token.Token) (*Pair, error) {
	if hasValue && !hasHexPrefix(val) {
		return nil, fmt.Errorf("%w %q requires a hex string, not %q", ErrUnknownAttribute, name, val)
	}

	attr, err := dictionary.UnknownFromOID(m.dict.Root(), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownAttribute, err)
	}

	box := value.Octets(nil)
	if hasValue {
		box, err = value.Parse(attr, val)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value for %s: %w", name, err)
		}
	}

	p := New(attr, op)
	p.Value = &Scalar{Box: box}

	if list != nil {
		list.Append(p)
	}
	return p, nil
}

func (m *Maker) make(list *List, name, val string, hasValue bool, op token.Token) (*Pair, error) {
	attr, err := resolveName(m.dict, m.internal, m.dict.Root(), name)
	if err != nil {
		return m.MakeUnknown(list, name, val, hasValue, op)
	}

	if !attr.IsLeaf() {
		return nil, ErrGroupNotSupported
	}

	p := New(attr, op)

	switch p.Op {
	case token.OpCmpTrue, token.OpCmpFalse:

	case token.OpRegEq, token.OpRegNE:
		if !hasValue {
			break
		}
		if err := checkRegex(name, val); err != nil {
			return nil, err
		}
		p = New(attr, op)
		if err := MarkXlat(p, val); err != nil {
			return nil, err
		}

	default:
		if !hasValue {
			break
		}
		box, err := value.Parse(attr, token.UnescapeDouble(val))
		if err != nil {
			return nil, fmt.Errorf("failed to parse value for %s: %w", name, err)
		}
		p.Value = &Scalar{Box: box}
	}

	if list != nil {
		list.Append(p)
	}
	return p, nil
}

// resolveName looks name up below parent, then in whichever of dict and
// internal parent does not belong to.
// A leading dictionary name ("radius.User-Name") restricts the lookup to that
// dictionary. Names with the raw prefix never resolve.
func resolveName(dict, internal *dictionary.Dictionary, parent *dictionary.Attribute, name string) (*dictionary.Attribute, error) {
	if hasRawPrefix(name) {
		return nil, dictionary.ErrNotFound
	}

	if qualifier, rest, ok := strings.Cut(name, "."); ok && rest != "" {
		for _, d := range []*dictionary.Dictionary{dict, internal} {
			if d != nil && strings.EqualFold(d.Name(), qualifier) {
				return d.Root().Resolve(rest)
			}
		}
	}

	attr, err := parent.Resolve(name)
	if err == nil {
		return attr, nil
	}

	for _, d := range []*dictionary.Dictionary{dict, internal} {
		if d == nil || d == parent.Dictionary() {
			continue
		}
		if attr, derr := d.Root().Resolve(name); derr == nil {
			return attr, nil
		}
	}

	return nil, err
}

func hasRawPrefix(name string) bool {
	return len(name) >= len(dictionary.RawPrefix) && strings.EqualFold(name[:len(dictionary.RawPrefix)], dictionary.RawPrefix)
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
