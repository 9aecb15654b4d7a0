package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radpair/pkg/token"
)

func parseList(t *testing.T, p *Parser, line string) *List {
	t.Helper()

	list := &List{}
	_, err := p.ParseLine(line, list, nil)
	require.NoError(t, err)
	return list
}

func TestMove(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name     string
		to       string
		from     string
		op       token.Token
		want     []string
		leftover []string
	}{
		{
			name: "append and prepend",
			to:   `User-Name = 1`,
			from: `Reply-Message += 3, Filter-Id ^= 4`,
			op:   token.OpAdd,
			want: []string{"Filter-Id=4", "User-Name=1", "Reply-Message=3"},
		},
		{
			name: "prepend placement",
			to:   `User-Name = 1`,
			from: `Reply-Message += 3, Filter-Id ^= 4`,
			op:   token.OpPrepend,
			want: []string{"Filter-Id=4", "Reply-Message=3", "User-Name=1"},
		},
		{
			name: "prepend reverses order",
			to:   `User-Name = 1`,
			from: `Reply-Message ^= a, Filter-Id ^= b`,
			op:   token.OpSet,
			want: []string{"Filter-Id=b", "Reply-Message=a", "User-Name=1"},
		},
		{
			name: "set replaces",
			to:   `User-Name = 1, User-Name = 2`,
			from: `User-Name := 9`,
			op:   token.OpSet,
			want: []string{"User-Name=9"},
		},
		{
			name:     "equal keeps existing",
			to:       `User-Name = 1`,
			from:     `User-Name = 2, Reply-Message = 3`,
			op:       token.OpEq,
			want:     []string{"User-Name=1", "Reply-Message=3"},
			leftover: []string{"User-Name=2"},
		},
		{
			name: "equal twice in one pass",
			to:   `Reply-Message = x`,
			from: `User-Name = 1, User-Name = 2`,
			op:   token.OpEq,
			want: []string{"Reply-Message=x", "User-Name=1", "User-Name=2"},
		},
		{
			name:     "other operators stay",
			to:       `User-Name = 1`,
			from:     `Reply-Message -= a, Filter-Id += b, Session-Timeout == 3`,
			op:       token.OpAdd,
			want:     []string{"User-Name=1", "Filter-Id=b"},
			leftover: []string{"Reply-Message=a", "Session-Timeout=3"},
		},
		{
			name:     "fall through stays",
			to:       `User-Name = 1`,
			from:     `Fall-Through := Yes, Reply-Message += a`,
			op:       token.OpAdd,
			want:     []string{"User-Name=1", "Reply-Message=a"},
			leftover: []string{"Fall-Through=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to := parseList(t, p, tt.to)
			from := parseList(t, p, tt.from)

			Move(to, from, tt.op)

			assert.Equal(t, tt.want, names(to))
			assert.Equal(t, tt.leftover, names(from))
		})
	}
}

func TestMoveEmptySource(t *testing.T) {
	p := testParser(t)

	to := parseList(t, p, `User-Name = 1, Reply-Message = 2`)
	before := to.Pairs()

	Move(to, &List{}, token.OpAdd)
	Move(to, nil, token.OpAdd)

	after := to.Pairs()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Same(t, before[i], after[i])
	}
}

func TestMoveNilDestination(t *testing.T) {
	p := testParser(t)

	from := parseList(t, p, `User-Name += 1`)
	Move(nil, from, token.OpAdd)
	assert.Equal(t, 1, from.Len())
}

func TestMoveKeepsPairs(t *testing.T) {
	p := testParser(t)

	to := &List{}
	from := parseList(t, p, `User-Name += 1, Tunnel-Group += { Reply-Message := x }`)
	moved := from.Pairs()

	Move(to, from, token.OpAdd)

	require.Equal(t, 2, to.Len())
	assert.Same(t, moved[0], to.Pairs()[0])
	assert.Same(t, moved[1], to.Pairs()[1])
	assert.Equal(t, 0, from.Len())
}
