package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radpair/pkg/dictionaries"
	"github.com/vitalvas/radpair/pkg/pair"
)

func newTestStore(t *testing.T, opts Options) (*miniredis.Miniredis, *Client, *ListStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	opts.Addr = mr.Addr()

	client, err := NewClient(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)
	parser := pair.NewParser(dict, pair.WithInternal(dictionaries.MustInternal()))

	return mr, client, NewListStore(client, parser)
}

func parse(t *testing.T, s *ListStore, line string) *pair.List {
	t.Helper()

	list := &pair.List{}
	_, err := s.parser.ParseLine(line, list, nil)
	require.NoError(t, err)
	return list
}

func TestNewClientUnreachable(t *testing.T) {
	_, err := NewClient(context.Background(), Options{
		Addr:    "127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSaveLoad(t *testing.T) {
	mr, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	list := parse(t, s, `User-Name := "bob", Service-Type = Framed-User, Extended-Attribute-1 := { Frag-Status := 1 }, Tmp-String-0 += "x"`)

	name, err := s.Save(ctx, "policy", list)
	require.NoError(t, err)
	assert.Equal(t, "policy", name)

	stored, err := mr.List(ListKey("policy"))
	require.NoError(t, err)
	assert.Len(t, stored, 4)
	assert.Equal(t, `User-Name := "bob"`, stored[0])
	assert.True(t, mr.Exists(KeyIndex))

	loaded, err := s.Load(ctx, "policy")
	require.NoError(t, err)
	assert.Equal(t, list.String(), loaded.String())
}

func TestSaveReplaces(t *testing.T) {
	_, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.Save(ctx, "policy", parse(t, s, `User-Name := a, User-Name := b`))
	require.NoError(t, err)
	_, err = s.Save(ctx, "policy", parse(t, s, `Reply-Message := c`))
	require.NoError(t, err)

	loaded, err := s.Load(ctx, "policy")
	require.NoError(t, err)
	assert.Equal(t, `Reply-Message := "c"`, loaded.String())
}

func TestSaveGeneratedName(t *testing.T) {
	_, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	name, err := s.Save(ctx, "", parse(t, s, `User-Name := a`))
	require.NoError(t, err)

	_, err = uuid.Parse(name)
	assert.NoError(t, err)

	names, err := s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)
}

func TestSaveEmptyList(t *testing.T) {
	_, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.Save(ctx, "empty", &pair.List{})
	require.NoError(t, err)

	loaded, err := s.Load(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestLoadRelativeLines(t *testing.T) {
	mr, _, s := newTestStore(t, Options{})

	_, err := mr.Push(ListKey("grouped"), `Extended-Attribute-1 := { Frag-Status := 1 }`, `.Proxy-State-Length := 4`)
	require.NoError(t, err)
	_, err = mr.SetAdd(KeyIndex, "grouped")
	require.NoError(t, err)

	loaded, err := s.Load(context.Background(), "grouped")
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, 2, loaded.Pairs()[0].Children().Len())
}

func TestLoadNotFound(t *testing.T) {
	_, _, s := newTestStore(t, Options{})

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestLoadCorrupt(t *testing.T) {
	mr, client, s := newTestStore(t, Options{BreakerFailures: 1})

	_, err := mr.Push(ListKey("bad"), "bogus line")
	require.NoError(t, err)
	_, err = mr.SetAdd(KeyIndex, "bad")
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "bad")
	require.Error(t, err)

	var perr *pair.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "list bad line 1")
	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestDelete(t *testing.T) {
	mr, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	_, err := s.Save(ctx, "policy", parse(t, s, `User-Name := a`))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "policy"))
	assert.False(t, mr.Exists(ListKey("policy")))

	_, err = s.Load(ctx, "policy")
	assert.ErrorIs(t, err, ErrListNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "policy"), ErrListNotFound)
}

func TestNames(t *testing.T) {
	_, _, s := newTestStore(t, Options{})
	ctx := context.Background()

	names, err := s.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"reply", "check", "default"} {
		_, err := s.Save(ctx, name, parse(t, s, `User-Name := a`))
		require.NoError(t, err)
	}

	names, err = s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"check", "default", "reply"}, names)
}

func TestCircuitBreaker(t *testing.T) {
	mr, client, s := newTestStore(t, Options{BreakerFailures: 2, BreakerTimeout: time.Minute})
	ctx := context.Background()

	mr.SetError("LOADING server is loading")

	for i := 0; i < 2; i++ {
		_, err := s.Names(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, gobreaker.StateOpen, client.State())

	mr.SetError("")

	_, err := s.Names(ctx)
	assert.ErrorIs(t, err, ErrCircuitOpen)

	_, err = s.Save(ctx, "policy", &pair.List{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestListKey(t *testing.T) {
	assert.Equal(t, "radpair:list:policy", ListKey("policy"))
}
