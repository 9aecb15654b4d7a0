package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radpair/pkg/token"
)

func makePair(t *testing.T, p *Parser, name, val string, op token.Token) *Pair {
	t.Helper()

	vp, err := p.Maker().Make(nil, name, val, op)
	require.NoError(t, err)
	return vp
}

func names(l *List) []string {
	var out []string
	l.Each(func(p *Pair) bool {
		out = append(out, p.Attr.Name+"="+p.Value.(*Scalar).String())
		return true
	})
	return out
}

func TestListOrder(t *testing.T) {
	p := testParser(t)

	a := makePair(t, p, "User-Name", "a", token.OpEq)
	b := makePair(t, p, "Reply-Message", "b", token.OpEq)
	c := makePair(t, p, "Filter-Id", "c", token.OpEq)

	list := NewList(b)
	list.Append(c)
	list.Prepend(a)

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, []*Pair{a, b, c}, list.Pairs())

	assert.True(t, list.Remove(b))
	assert.False(t, list.Remove(b))
	assert.Equal(t, []*Pair{a, c}, list.Pairs())

	var nilList *List
	assert.Equal(t, 0, nilList.Len())
	assert.Nil(t, nilList.Pairs())
	assert.Nil(t, nilList.Find(a.Attr))
}

func TestListEachStops(t *testing.T) {
	p := testParser(t)

	list := NewList(
		makePair(t, p, "User-Name", "a", token.OpEq),
		makePair(t, p, "User-Name", "b", token.OpEq),
	)

	var seen int
	list.Each(func(*Pair) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestListSplice(t *testing.T) {
	p := testParser(t)

	a := makePair(t, p, "User-Name", "a", token.OpEq)
	b := makePair(t, p, "User-Name", "b", token.OpEq)
	c := makePair(t, p, "User-Name", "c", token.OpEq)
	d := makePair(t, p, "User-Name", "d", token.OpEq)

	list := NewList(b)
	front := NewList(a)
	back := NewList(c, d)

	list.PrependList(front)
	list.AppendList(back)

	assert.Equal(t, []*Pair{a, b, c, d}, list.Pairs())
	assert.Equal(t, 0, front.Len())
	assert.Equal(t, 0, back.Len())

	list.AppendList(list)
	assert.Equal(t, 4, list.Len())
}

func TestListFind(t *testing.T) {
	p := testParser(t)

	list := NewList(
		makePair(t, p, "User-Name", "a", token.OpEq),
		makePair(t, p, "Reply-Message", "b", token.OpEq),
		makePair(t, p, "User-Name", "c", token.OpEq),
	)
	userName := testAttr(t, p, "User-Name")

	first := list.Find(userName)
	require.NotNil(t, first)
	assert.Equal(t, "a", boxString(t, first))

	assert.Len(t, list.FindAll(userName), 2)
	assert.Nil(t, list.Find(testAttr(t, p, "Filter-Id")))

	assert.Equal(t, 2, list.DeleteByAttr(userName))
	assert.Equal(t, []string{"Reply-Message=b"}, names(list))
}

func TestListFindUnknown(t *testing.T) {
	p := testParser(t)

	a, err := p.Maker().Make(nil, "Attr-200", "0x01", token.OpEq)
	require.NoError(t, err)
	b, err := p.Maker().Make(nil, "Attr-200", "0x02", token.OpEq)
	require.NoError(t, err)

	list := NewList(a)
	assert.NotSame(t, a.Attr, b.Attr)
	assert.Same(t, a, list.Find(b.Attr))
}

func TestListCopy(t *testing.T) {
	p := testParser(t)

	list := NewList(makePair(t, p, "User-Name", "a", token.OpEq))
	dup := list.Copy()

	require.Equal(t, 1, dup.Len())
	assert.NotSame(t, list.Pairs()[0], dup.Pairs()[0])
	assert.Equal(t, names(list), names(dup))
}

func TestListTruncate(t *testing.T) {
	p := testParser(t)

	list := NewList(
		makePair(t, p, "User-Name", "a", token.OpEq),
		makePair(t, p, "User-Name", "b", token.OpEq),
		makePair(t, p, "User-Name", "c", token.OpEq),
	)

	list.truncate(5)
	assert.Equal(t, 3, list.Len())

	list.truncate(1)
	assert.Equal(t, []string{"User-Name=a"}, names(list))
}
