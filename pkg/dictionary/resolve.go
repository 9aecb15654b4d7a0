package dictionary

import (
	"fmt"
	"strconv"
	"strings"
)

// RawPrefix forces raw (unknown) synthesis of the attribute that follows it.
const RawPrefix = "raw."

// OIDError reports a failure to resolve or synthesize an attribute from OID text.
// Offset is the byte offset of the failing component within the text.
type OIDError struct {
	Text   string
	Offset int
	Err    error
}

func (e *OIDError) Error() string {
	return fmt.Sprintf("invalid attribute reference %q at offset %d: %v", e.Text, e.Offset, e.Err)
}

func (e *OIDError) Unwrap() error {
	return e.Err
}

// Resolve finds the attribute named by text relative to a.
//
// text is an attribute name or a dotted path whose components are names or
// decimal numbers ("Attr-N" is accepted as a number). Each component is looked
// up among the children of the previous one. From a dictionary root the first
// component is also looked up in the dictionary-wide name index; from a group
// attribute without a matching child it falls back to the dictionary root.
func (a *Attribute) Resolve(text string) (*Attribute, error) {
	if text == "" {
		return nil, &OIDError{Text: text, Err: ErrNotFound}
	}

	cur := a
	offset := 0
	for i, comp := range strings.Split(text, ".") {
		if cur.IsLeaf() {
			return nil, &OIDError{Text: text, Offset: offset, Err: fmt.Errorf("%s has no children", cur.Name)}
		}

		next, ok := cur.lookup(comp, i == 0)
		if !ok {
			return nil, &OIDError{Text: text, Offset: offset, Err: ErrNotFound}
		}

		cur = next
		offset += len(comp) + 1
	}

	return cur, nil
}

func (a *Attribute) lookup(comp string, first bool) (*Attribute, bool) {
	if child, ok := a.ChildByName(comp); ok {
		return child, true
	}
	if id, ok := parseArc(comp); ok {
		if child, ok := a.Child(id); ok {
			return child, true
		}
	}
	if !first {
		return nil, false
	}
	if a.IsRoot() {
		return a.dict.AttributeByName(comp)
	}
	if a.DataType == DataTypeGroup && !a.Unknown {
		return a.dict.root.lookup(comp, true)
	}
	return nil, false
}

// UnknownFromOID synthesizes an unknown attribute from raw OID text relative
// to parent.
//
// Leading components may name known attributes; once a component does not
// resolve, it and every following component must be numeric. The final
// attribute has type octets. Intermediate unknown components become tlv
// attributes, or vendor attributes below a vsa.
//
// With the "raw." prefix the text may name a known leaf attribute; the result
// is then an unknown octets copy of it.
func UnknownFromOID(parent *Attribute, text string) (*Attribute, error) {
	body := text
	base := 0
	if len(body) >= len(RawPrefix) && strings.EqualFold(body[:len(RawPrefix)], RawPrefix) {
		body = body[len(RawPrefix):]
		base = len(RawPrefix)
	}
	if body == "" {
		return nil, &OIDError{Text: text, Offset: base, Err: fmt.Errorf("empty OID")}
	}

	comps := strings.Split(body, ".")
	cur := parent
	offset := base
	known := true

	for i, comp := range comps {
		last := i == len(comps)-1
		if comp == "" {
			return nil, &OIDError{Text: text, Offset: offset, Err: fmt.Errorf("empty OID component")}
		}

		if known {
			if next, ok := cur.lookup(comp, i == 0); ok {
				if last {
					return next.unknownCopy(), nil
				}
				if next.IsLeaf() {
					return nil, &OIDError{Text: text, Offset: offset, Err: fmt.Errorf("%s has no children", next.Name)}
				}
				cur = next
				offset += len(comp) + 1
				continue
			}
			known = false
		}

		id, ok := parseArc(comp)
		if !ok {
			return nil, &OIDError{Text: text, Offset: offset, Err: fmt.Errorf("%w: %q is not a number", ErrNotFound, comp)}
		}

		dt := DataTypeOctets
		if !last {
			dt = DataTypeTLV
			if cur.DataType == DataTypeVSA {
				dt = DataTypeVendor
			}
		}
		cur = &Attribute{
			ID:       id,
			Name:     "Attr-" + strconv.FormatUint(uint64(id), 10),
			DataType: dt,
			Parent:   cur,
			Unknown:  true,
			dict:     cur.dict,
		}
		offset += len(comp) + 1
	}

	return cur, nil
}

func (a *Attribute) unknownCopy() *Attribute {
	return &Attribute{
		ID:       a.ID,
		Name:     a.Name,
		DataType: DataTypeOctets,
		Parent:   a.Parent,
		Unknown:  true,
		dict:     a.dict,
	}
}

func parseArc(comp string) (uint32, bool) {
	if len(comp) > 5 && strings.EqualFold(comp[:5], "Attr-") {
		comp = comp[5:]
	}
	if comp == "" || comp[0] < '0' || comp[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseUint(comp, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
