package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a name or OID does not resolve in a dictionary.
var ErrNotFound = errors.New("attribute not found")

// Dictionary is a tree of attribute descriptors below a root.
//
// Names of top-level and vendor attributes are unique across the dictionary
// and resolvable from the root by name alone. Children of tlv and group
// attributes are unique among their siblings only.
//
// A Dictionary is safe for concurrent reads once loading is complete.
type Dictionary struct {
	name     string
	internal bool
	root     *Attribute

	// Unified name index (top-level and vendor attributes)
	byName map[string]*Attribute
}

// New creates an empty dictionary.
func New(name string) *Dictionary {
	d := &Dictionary{
		name:   name,
		byName: make(map[string]*Attribute),
	}
	d.root = &Attribute{
		Name:     name,
		DataType: DataTypeTLV,
		dict:     d,
	}
	return d
}

// NewInternal creates an empty dictionary for the internal namespace
// (Fall-Through, Tmp-* attributes and the like).
func NewInternal(name string) *Dictionary {
	d := New(name)
	d.internal = true
	return d
}

// Name returns the dictionary name, used as a qualifier in "name.Attribute".
func (d *Dictionary) Name() string {
	return d.name
}

// IsInternal reports whether this is an internal-namespace dictionary.
func (d *Dictionary) IsInternal() bool {
	return d.internal
}

// Root returns the root attribute.
func (d *Dictionary) Root() *Attribute {
	return d.root
}

// AttributeByName finds a top-level or vendor attribute by name.
func (d *Dictionary) AttributeByName(name string) (*Attribute, bool) {
	attr, ok := d.byName[strings.ToLower(name)]
	return attr, ok
}

// AttributeByOID finds an attribute by its dotted numeric path.
func (d *Dictionary) AttributeByOID(oid string) (*Attribute, bool) {
	attr, err := d.root.Resolve(oid)
	return attr, err == nil
}

// VendorSpecific returns the Vendor-Specific attribute, if defined.
func (d *Dictionary) VendorSpecific() (*Attribute, bool) {
	attr, ok := d.root.Child(AttributeVendorSpecific)
	if !ok || attr.DataType != DataTypeVSA {
		return nil, false
	}
	return attr, true
}

// AddAttributes adds definitions (and their nested children) below parent.
// A nil parent means the root.
func (d *Dictionary) AddAttributes(parent *Attribute, defs []*AttributeDefinition) error {
	for _, def := range defs {
		if _, err := d.AddAttribute(parent, def); err != nil {
			return err
		}
	}
	return nil
}

// AddAttribute adds one definition (and its nested children) below parent.
// A nil parent means the root.
func (d *Dictionary) AddAttribute(parent *Attribute, def *AttributeDefinition) (*Attribute, error) {
	if parent == nil {
		parent = d.root
	}

	def, err := normalizeDefinition(def)
	if err != nil {
		return nil, err
	}

	if err := d.checkDefinition(parent, def); err != nil {
		return nil, err
	}

	attr := newAttribute(d, parent, def)
	parent.addChild(attr)
	if d.indexed(attr) {
		d.byName[strings.ToLower(attr.Name)] = attr
	}

	for _, childDef := range def.Attributes {
		if _, err := d.AddAttribute(attr, childDef); err != nil {
			return nil, fmt.Errorf("%s: %w", attr.Name, err)
		}
	}

	return attr, nil
}

// AddVendor registers a vendor below Vendor-Specific, creating that attribute
// when the dictionary does not define it yet.
func (d *Dictionary) AddVendor(vendor *VendorDefinition) error {
	if vendor == nil {
		return fmt.Errorf("vendor definition cannot be nil")
	}
	if vendor.ID == 0 {
		return fmt.Errorf("vendor %q: vendor ID cannot be zero", vendor.Name)
	}

	vsa, ok := d.root.Child(AttributeVendorSpecific)
	if !ok {
		var err error
		vsa, err = d.AddAttribute(nil, &AttributeDefinition{
			ID:       AttributeVendorSpecific,
			Name:     "Vendor-Specific",
			DataType: DataTypeVSA,
		})
		if err != nil {
			return err
		}
	} else if vsa.DataType != DataTypeVSA {
		return fmt.Errorf("attribute %d is %s, not vsa", AttributeVendorSpecific, vsa.DataType)
	}

	_, err := d.AddAttribute(vsa, &AttributeDefinition{
		ID:          vendor.ID,
		Name:        vendor.Name,
		DataType:    DataTypeVendor,
		Description: vendor.Description,
		Attributes:  vendor.Attributes,
	})
	return err
}

// Load adds the contents of a dictionary file.
func (d *Dictionary) Load(file *File) error {
	if err := d.AddAttributes(nil, file.Attributes); err != nil {
		return err
	}
	for _, vendor := range file.Vendors {
		if err := d.AddVendor(vendor); err != nil {
			return err
		}
	}
	return nil
}

// Merge copies the attributes of src into d. Attributes present in both with
// the same id, name and type are merged recursively; any other overlap is a conflict.
func (d *Dictionary) Merge(src *Dictionary) error {
	return d.mergeChildren(d.root, src.root)
}

func (d *Dictionary) mergeChildren(target, source *Attribute) error {
	for _, child := range source.children {
		existing, ok := target.Child(child.ID)
		if !ok {
			if _, err := d.AddAttribute(target, definitionOf(child)); err != nil {
				return err
			}
			continue
		}

		if !strings.EqualFold(existing.Name, child.Name) || existing.DataType != child.DataType || existing.Length != child.Length {
			return fmt.Errorf("attribute conflict: %s.%d defined as both %q (%s) and %q (%s)",
				target.Name, child.ID, existing.Name, existing.DataType, child.Name, child.DataType)
		}

		if err := d.mergeChildren(existing, child); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dictionary) checkDefinition(parent *Attribute, def *AttributeDefinition) error {
	if def == nil {
		return fmt.Errorf("attribute definition cannot be nil")
	}
	if def.Name == "" {
		return fmt.Errorf("attribute %d: name cannot be empty", def.ID)
	}
	if len(def.Name) >= MaxNameLength {
		return fmt.Errorf("attribute %q: name too long", def.Name)
	}
	if strings.ContainsAny(def.Name, " \t.") {
		return fmt.Errorf("attribute %q: name contains whitespace or '.'", def.Name)
	}
	if !def.DataType.IsValid() {
		return fmt.Errorf("attribute %q: invalid data type %q", def.Name, def.DataType)
	}
	if err := checkFixedLength(FixedLengthType{BaseType: def.DataType, Length: def.Length}); err != nil {
		return fmt.Errorf("attribute %q: %w", def.Name, err)
	}
	if parent.IsLeaf() {
		return fmt.Errorf("attribute %q: parent %s of type %s cannot have children", def.Name, parent.Name, parent.DataType)
	}
	if def.DataType.IsLeaf() && len(def.Attributes) > 0 {
		return fmt.Errorf("attribute %q: type %s cannot have children", def.Name, def.DataType)
	}
	if def.DataType == DataTypeVendor && parent.DataType != DataTypeVSA {
		return fmt.Errorf("attribute %q: vendor must be a child of a vsa attribute", def.Name)
	}

	if existing, ok := parent.Child(def.ID); ok {
		return fmt.Errorf("duplicate attribute id %d: %q already defined as %q", def.ID, def.Name, existing.Name)
	}
	if _, ok := parent.ChildByName(def.Name); ok {
		return fmt.Errorf("duplicate attribute name %q below %s", def.Name, parent.Name)
	}

	candidate := &Attribute{Parent: parent, DataType: def.DataType}
	if d.indexed(candidate) {
		if existing, ok := d.byName[strings.ToLower(def.Name)]; ok {
			return fmt.Errorf("duplicate attribute name %q: conflicts with %s", def.Name, existing.OIDString())
		}
	}

	return nil
}

// indexed reports whether attr is resolvable by name from the root.
func (d *Dictionary) indexed(attr *Attribute) bool {
	return attr.Parent == d.root || attr.Parent.DataType == DataTypeVendor
}

func definitionOf(attr *Attribute) *AttributeDefinition {
	def := &AttributeDefinition{
		ID:          attr.ID,
		Name:        attr.Name,
		DataType:    attr.DataType,
		Length:      attr.Length,
		Encryption:  attr.Encryption,
		HasTag:      attr.HasTag,
		Array:       attr.Array,
		Values:      attr.Values,
		Description: attr.Description,
	}
	for _, child := range attr.children {
		def.Attributes = append(def.Attributes, definitionOf(child))
	}
	return def
}
