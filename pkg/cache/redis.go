package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"heritage/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

const choicesKey = "heritage:choices:v1"

var lookups = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "heritage_choices_cache_lookups_total",
	Help: "Choices cache lookups by result",
}, []string{"result"})

// Options configure the Redis connection.
type Options struct {
	// URL is a redis:// connection URL. An empty URL disables caching.
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Redis is a ChoicesCache backed by a single Redis key holding the JSON
// encoded choices.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and verifies the connection. It returns
// nil when options.URL is empty.
func NewRedisClient(ctx context.Context, options Options) (*redis.Client, error) {
	if options.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}
	if options.PoolSize > 0 {
		opts.PoolSize = options.PoolSize
	}
	if options.MinIdleConns > 0 {
		opts.MinIdleConns = options.MinIdleConns
	}
	if options.DialTimeout > 0 {
		opts.DialTimeout = options.DialTimeout
	}
	if options.ReadTimeout > 0 {
		opts.ReadTimeout = options.ReadTimeout
	}
	if options.WriteTimeout > 0 {
		opts.WriteTimeout = options.WriteTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

// New returns a Redis backed cache when client is not nil and Noop otherwise.
func New(client *redis.Client, ttl time.Duration) ChoicesCache {
	if client == nil {
		return Noop{}
	}

	return NewRedis(client, ttl)
}

func (r *Redis) Choices(ctx context.Context) (*domain.FilterChoices, error) {
	b, err := r.client.Get(ctx, choicesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		lookups.WithLabelValues("miss").Inc()

		return nil, nil
	}
	if err != nil {
		lookups.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("could not get choices from redis: %w", err)
	}

	var choices domain.FilterChoices
	if err := json.Unmarshal(b, &choices); err != nil {
		// a value written by an incompatible version is treated as a miss
		lookups.WithLabelValues("miss").Inc()

		return nil, nil
	}
	lookups.WithLabelValues("hit").Inc()

	return &choices, nil
}

func (r *Redis) StoreChoices(ctx context.Context, choices domain.FilterChoices) error {
	b, err := json.Marshal(choices)
	if err != nil {
		return fmt.Errorf("could not marshal choices: %w", err)
	}

	if err := r.client.Set(ctx, choicesKey, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("could not store choices into redis: %w", err)
	}

	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, choicesKey).Err(); err != nil {
		return fmt.Errorf("could not invalidate choices in redis: %w", err)
	}

	return nil
}
