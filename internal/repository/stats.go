package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

var ErrEmptyOutcome = errors.New("outcome name is empty")

// StatsRepository keeps aggregate counters of move outcomes.
type StatsRepository interface {
	Increment(ctx context.Context, outcome string) error
	GetAll(ctx context.Context) (map[string]int64, error)
}

type dbStats struct {
	client *redis.Client
	prefix string
}

func NewStatsRepository(client *redis.Client, prefix string) StatsRepository {
	return &dbStats{
		client: client,
		prefix: prefix,
	}
}

func (that *dbStats) Increment(ctx context.Context, outcome string) error {
	if outcome == "" {
		return ErrEmptyOutcome
	}

	if err := that.client.Incr(ctx, that.prefix+outcome).Err(); err != nil {
		return fmt.Errorf("failed to increment %s: %w", outcome, err)
	}

	return nil
}

func (that *dbStats) GetAll(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)

	iter := that.client.Scan(ctx, 0, that.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		count, err := that.client.Get(ctx, key).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}

		stats[strings.TrimPrefix(key, that.prefix)] = count
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan stats: %w", err)
	}

	return stats, nil
}
