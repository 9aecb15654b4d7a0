package dictionary

import (
	"sort"
	"strconv"
	"strings"
)

// Attribute is a resolved attribute descriptor: a node in the dictionary tree.
//
// Known attributes are owned by their Dictionary and must not be modified after
// loading. Unknown attributes are synthesized by UnknownFromOID, are never
// registered in a Dictionary and belong to whichever pair references them.
type Attribute struct {
	ID          uint32
	Name        string
	DataType    DataType
	Length      int
	Encryption  EncryptionType
	HasTag      bool
	Array       bool
	Values      map[string]uint32
	Description string

	// Parent is nil only for a dictionary root.
	Parent *Attribute

	// Unknown is set for attributes synthesized from raw OID text.
	Unknown bool

	dict        *Dictionary
	childByID   map[uint32]*Attribute
	childByName map[string]*Attribute
	children    []*Attribute
}

func newAttribute(dict *Dictionary, parent *Attribute, def *AttributeDefinition) *Attribute {
	return &Attribute{
		ID:          def.ID,
		Name:        def.Name,
		DataType:    def.DataType,
		Length:      def.Length,
		Encryption:  def.Encryption,
		HasTag:      def.HasTag,
		Array:       def.Array,
		Values:      def.Values,
		Description: def.Description,
		Parent:      parent,
		dict:        dict,
	}
}

// IsLeaf reports whether the attribute carries a scalar value.
func (a *Attribute) IsLeaf() bool {
	return a.DataType.IsLeaf()
}

// IsRoot reports whether the attribute is the root of its dictionary.
func (a *Attribute) IsRoot() bool {
	return a.Parent == nil
}

// IsTopLevel reports whether the attribute sits directly below a dictionary root.
func (a *Attribute) IsTopLevel() bool {
	return a.Parent != nil && a.Parent.Parent == nil
}

// Dictionary returns the dictionary the attribute belongs to.
func (a *Attribute) Dictionary() *Dictionary {
	return a.dict
}

// OID returns the numeric path of the attribute from its dictionary root.
func (a *Attribute) OID() []uint32 {
	var depth int
	for n := a; n.Parent != nil; n = n.Parent {
		depth++
	}

	oid := make([]uint32, depth)
	for n := a; n.Parent != nil; n = n.Parent {
		depth--
		oid[depth] = n.ID
	}
	return oid
}

// OIDString returns the dotted form of OID, e.g. "26.14122.1".
func (a *Attribute) OIDString() string {
	return formatOID(a.OID())
}

// RelativeOID returns the dotted numeric path from ancestor down to a.
// The second result is false when ancestor is not an ancestor of a.
func (a *Attribute) RelativeOID(ancestor *Attribute) (string, bool) {
	var path []uint32
	for n := a; n != nil; n = n.Parent {
		if n == ancestor {
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return formatOID(path), true
		}
		path = append(path, n.ID)
	}
	return "", false
}

// IsDescendantOf reports whether ancestor is on the parent chain of a.
func (a *Attribute) IsDescendantOf(ancestor *Attribute) bool {
	for n := a.Parent; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Child returns the child with the given id.
func (a *Attribute) Child(id uint32) (*Attribute, bool) {
	child, ok := a.childByID[id]
	return child, ok
}

// ChildByName returns the child with the given name. Names compare case-insensitively.
func (a *Attribute) ChildByName(name string) (*Attribute, bool) {
	child, ok := a.childByName[strings.ToLower(name)]
	return child, ok
}

// Children returns the children in registration order.
func (a *Attribute) Children() []*Attribute {
	return append([]*Attribute(nil), a.children...)
}

// ValueName returns the symbolic name for an integer value, if one is defined.
// When several names map to the same number the lexically smallest one wins.
func (a *Attribute) ValueName(v uint32) (string, bool) {
	var names []string
	for name, num := range a.Values {
		if num == v {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// ValueByName looks up a symbolic integer value, case-insensitively.
func (a *Attribute) ValueByName(name string) (uint32, bool) {
	if v, ok := a.Values[name]; ok {
		return v, true
	}
	for n, v := range a.Values {
		if strings.EqualFold(n, name) {
			return v, true
		}
	}
	return 0, false
}

// String returns the attribute name.
func (a *Attribute) String() string {
	return a.Name
}

func (a *Attribute) addChild(child *Attribute) {
	if a.childByID == nil {
		a.childByID = make(map[uint32]*Attribute)
		a.childByName = make(map[string]*Attribute)
	}
	a.childByID[child.ID] = child
	a.childByName[strings.ToLower(child.Name)] = child
	a.children = append(a.children, child)
}

// Same reports whether a and b identify the same attribute. Unknown
// attributes are distinct objects per pair, so they compare by OID.
func Same(a, b *Attribute) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || !a.Unknown || !b.Unknown || a.dict != b.dict {
		return false
	}
	return a.OIDString() == b.OIDString()
}

func formatOID(oid []uint32) string {
	var b strings.Builder
	for i, arc := range oid {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return b.String()
}
