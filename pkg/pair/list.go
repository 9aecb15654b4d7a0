package pair

import (
	"github.com/vitalvas/radpair/pkg/dictionary"
)

// List is an ordered sequence of pairs. Duplicates are allowed.
// The zero value is an empty list ready to use.
type List struct {
	pairs []*Pair
}

// NewList returns a list holding pairs in order.
func NewList(pairs ...*Pair) *List {
	return &List{pairs: append([]*Pair(nil), pairs...)}
}

// Len returns the number of pairs.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.pairs)
}

// Pairs returns the pairs in order. The slice is a copy.
func (l *List) Pairs() []*Pair {
	if l == nil {
		return nil
	}
	return append([]*Pair(nil), l.pairs...)
}

// Each calls fn for every pair until fn returns false.
func (l *List) Each(fn func(*Pair) bool) {
	for _, p := range l.pairs {
		if !fn(p) {
			return
		}
	}
}

// Append adds p to the end of the list.
func (l *List) Append(p *Pair) {
	l.pairs = append(l.pairs, p)
}

// Prepend adds p to the front of the list.
func (l *List) Prepend(p *Pair) {
	l.pairs = append([]*Pair{p}, l.pairs...)
}

// AppendList moves every pair of other to the end of l, leaving other empty.
func (l *List) AppendList(other *List) {
	if other == nil || other == l || len(other.pairs) == 0 {
		return
	}
	l.pairs = append(l.pairs, other.pairs...)
	other.pairs = nil
}

// PrependList moves every pair of other to the front of l, leaving other empty.
func (l *List) PrependList(other *List) {
	if other == nil || other == l || len(other.pairs) == 0 {
		return
	}
	l.pairs = append(append([]*Pair(nil), other.pairs...), l.pairs...)
	other.pairs = nil
}

// Remove unlinks p from the list. It reports whether p was found.
func (l *List) Remove(p *Pair) bool {
	for i, q := range l.pairs {
		if q == p {
			l.pairs = append(l.pairs[:i], l.pairs[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first pair for attr.
func (l *List) Find(attr *dictionary.Attribute) *Pair {
	if l == nil {
		return nil
	}
	for _, p := range l.pairs {
		if dictionary.Same(p.Attr, attr) {
			return p
		}
	}
	return nil
}

// FindAll returns every pair for attr, in order.
func (l *List) FindAll(attr *dictionary.Attribute) []*Pair {
	var found []*Pair
	for _, p := range l.pairs {
		if dictionary.Same(p.Attr, attr) {
			found = append(found, p)
		}
	}
	return found
}

// DeleteByAttr removes every pair for attr and returns how many were removed.
func (l *List) DeleteByAttr(attr *dictionary.Attribute) int {
	kept := l.pairs[:0]
	for _, p := range l.pairs {
		if !dictionary.Same(p.Attr, attr) {
			kept = append(kept, p)
		}
	}

	removed := len(l.pairs) - len(kept)
	for i := len(kept); i < len(l.pairs); i++ {
		l.pairs[i] = nil
	}
	l.pairs = kept
	return removed
}

// Copy returns a deep copy of the list.
func (l *List) Copy() *List {
	c := &List{}
	for _, p := range l.pairs {
		c.Append(p.Copy())
	}
	return c
}

// truncate drops every pair after the first n.
func (l *List) truncate(n int) {
	if n >= len(l.pairs) {
		return
	}
	for i := n; i < len(l.pairs); i++ {
		l.pairs[i] = nil
	}
	l.pairs = l.pairs[:n]
}
