package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vitalvas/radpair/pkg/pair"
)

const (
	// PrefixList is the key prefix of stored pair lists.
	PrefixList = "radpair:list:"

	// KeyIndex is the set of stored list names.
	KeyIndex = "radpair:lists"
)

// ListKey returns the key holding the list called name.
func ListKey(name string) string {
	return PrefixList + name
}

// ListStore saves pair lists as one printed pair per Redis list element.
type ListStore struct {
	client *Client
	parser *pair.Parser
}

// NewListStore returns a store reading lists back with p.
func NewListStore(c *Client, p *pair.Parser) *ListStore {
	return &ListStore{client: c, parser: p}
}

// Save replaces the list called name with list. An empty name is replaced by
// a generated one. The name used is returned.
func (s *ListStore) Save(ctx context.Context, name string, list *pair.List) (string, error) {
	if name == "" {
		name = uuid.NewString()
	}

	lines := make([]any, 0, list.Len())
	for _, p := range list.Pairs() {
		lines = append(lines, p.String())
	}

	key := ListKey(name)
	_, err := s.client.execute(func() (any, error) {
		_, err := s.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if len(lines) > 0 {
				pipe.RPush(ctx, key, lines...)
			}
			pipe.SAdd(ctx, KeyIndex, name)
			return nil
		})
		return nil, err
	})
	if err != nil {
		return "", fmt.Errorf("failed to save list %s: %w", name, err)
	}

	s.client.logger.Debugf("saved list %s with %d pairs", name, len(lines))

	return name, nil
}

// Load reads the list called name back. Each stored line is parsed in order;
// relative references may continue a group from the previous line.
func (s *ListStore) Load(ctx context.Context, name string) (*pair.List, error) {
	key := ListKey(name)

	result, err := s.client.execute(func() (any, error) {
		var lines *redis.StringSliceCmd
		var member *redis.BoolCmd
		_, err := s.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			lines = pipe.LRange(ctx, key, 0, -1)
			member = pipe.SIsMember(ctx, KeyIndex, name)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if !member.Val() {
			return nil, nil
		}
		return lines.Val(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", name, err)
	}

	lines, ok := result.([]string)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrListNotFound, name)
	}

	list := &pair.List{}
	var anchor *pair.Pair
	for i, line := range lines {
		res, err := s.parser.ParseLine(line, list, anchor)
		if err != nil {
			return nil, fmt.Errorf("list %s line %d: %w", name, i+1, err)
		}
		anchor = res.Anchor
	}

	return list, nil
}

// Delete removes the list called name.
func (s *ListStore) Delete(ctx context.Context, name string) error {
	result, err := s.client.execute(func() (any, error) {
		var removed *redis.IntCmd
		_, err := s.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, ListKey(name))
			removed = pipe.SRem(ctx, KeyIndex, name)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return removed.Val(), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete list %s: %w", name, err)
	}

	if n, _ := result.(int64); n == 0 {
		return fmt.Errorf("%w: %s", ErrListNotFound, name)
	}
	return nil
}

// Names returns the names of every stored list, sorted.
func (s *ListStore) Names(ctx context.Context) ([]string, error) {
	result, err := s.client.execute(func() (any, error) {
		return s.client.rdb.SMembers(ctx, KeyIndex).Result()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}

	names, _ := result.([]string)
	sort.Strings(names)
	return names, nil
}
