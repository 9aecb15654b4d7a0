package pair

import (
	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/token"
	"github.com/vitalvas/radpair/pkg/value"
)

// Value is the value of a pair: *Scalar, *Xlat or *Group.
// A nil Value means the pair carries no value.
type Value interface {
	isValue()
}

// Scalar is a decoded leaf value.
type Scalar struct {
	value.Box
}

// Xlat is a deferred expansion kept as its source text.
type Xlat struct {
	Source string
}

// Group holds the children of a structural attribute.
type Group struct {
	Children List
}

func (*Scalar) isValue() {}
func (*Xlat) isValue()   {}
func (*Group) isValue()  {}

// Pair is one attribute-operator-value record.
type Pair struct {
	Attr  *dictionary.Attribute
	Op    token.Token
	Value Value
}

// New allocates a pair for attr. An unset operator becomes OpEq. Structural
// attributes start with an empty child list.
func New(attr *dictionary.Attribute, op token.Token) *Pair {
	if op == token.Invalid {
		op = token.OpEq
	}

	p := &Pair{Attr: attr, Op: op}
	if !attr.IsLeaf() {
		p.Value = &Group{}
	}
	return p
}

// Children returns the child list of a structural pair, or nil for leaves.
func (p *Pair) Children() *List {
	if g, ok := p.Value.(*Group); ok {
		return &g.Children
	}
	return nil
}

// Box returns the scalar value, if the pair has one.
func (p *Pair) Box() (value.Box, bool) {
	if s, ok := p.Value.(*Scalar); ok {
		return s.Box, true
	}
	return value.Box{}, false
}

// SetBox sets a scalar value on a leaf pair that has none yet.
func (p *Pair) SetBox(b value.Box) error {
	if p.Value != nil || !p.Attr.IsLeaf() {
		return ErrHasValue
	}
	p.Value = &Scalar{Box: b}
	return nil
}

// MarkXlat turns p into a deferred expansion of literal.
func MarkXlat(p *Pair, literal string) error {
	if p.Value != nil || !p.Attr.IsLeaf() {
		return ErrHasValue
	}
	p.Value = &Xlat{Source: literal}
	return nil
}

// Copy returns a deep copy of p.
func (p *Pair) Copy() *Pair {
	c := &Pair{Attr: p.Attr, Op: p.Op}

	switch v := p.Value.(type) {
	case *Scalar:
		c.Value = &Scalar{Box: value.Box{Type: v.Type, Raw: append(v.Raw[:0:0], v.Raw...)}}
	case *Xlat:
		c.Value = &Xlat{Source: v.Source}
	case *Group:
		g := &Group{}
		for _, child := range v.Children.pairs {
			g.Children.Append(child.Copy())
		}
		c.Value = g
	}

	return c
}

// IsFallThrough reports whether p is the top-level Fall-Through attribute.
func (p *Pair) IsFallThrough() bool {
	return p.Attr.IsTopLevel() && p.Attr.ID == dictionary.FallThroughID
}
