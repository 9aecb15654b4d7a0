// Package store persists named pair lists in Redis or Valkey.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/vitalvas/radpair/pkg/log"
)

var (
	ErrListNotFound = errors.New("pair list not found")
	ErrUnavailable  = errors.New("store unavailable")
	ErrCircuitOpen  = errors.New("store circuit breaker is open")
)

// Options configures the connection and the circuit breaker.
type Options struct {
	Addr     string
	Password string
	DB       int

	// Timeout bounds dialing, each read and write, and the initial ping.
	Timeout time.Duration

	BreakerName        string
	BreakerFailures    uint32
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration

	Logger log.Logger
}

func (o *Options) setDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = 3 * time.Second
	}
	if o.BreakerName == "" {
		o.BreakerName = "radpair-store"
	}
	if o.BreakerFailures == 0 {
		o.BreakerFailures = 5
	}
	if o.BreakerTimeout <= 0 {
		o.BreakerTimeout = 30 * time.Second
	}
	if o.Logger == nil {
		o.Logger = log.NewNopLogger()
	}
}

// Client is a Redis connection guarded by a circuit breaker.
type Client struct {
	rdb    *redis.Client
	cb     *gobreaker.CircuitBreaker
	logger log.Logger
}

// NewClient connects to the server and pings it.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	opts.setDefaults()

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.Timeout,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: failed to connect to %s: %w", ErrUnavailable, opts.Addr, err)
	}

	c := &Client{
		rdb:    rdb,
		logger: opts.Logger,
	}

	failures := opts.BreakerFailures
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.BreakerName,
		MaxRequests: opts.BreakerMaxRequests,
		Interval:    opts.BreakerInterval,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				c.logger.Warnf("circuit breaker %s: %s -> %s", name, from, to)
				return
			}
			c.logger.Infof("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	opts.Logger.Debugf("connected to %s db %d", opts.Addr, opts.DB)

	return c, nil
}

// Redis returns the underlying client.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State {
	return c.cb.State()
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// execute runs fn through the breaker. Errors returned by fn count as
// failures and are wrapped in ErrUnavailable.
func (c *Client) execute(fn func() (any, error)) (any, error) {
	result, err := c.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return result, nil
}
