package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	KeyThread = "thread:%s"
)

type threadCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client, ttl time.Duration) *threadCache {
	return &threadCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *threadCache) GetThread(ctx context.Context, threadID string) (res domain.ThreadRecord, err error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyThread, threadID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ThreadRecord{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ThreadRecord{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.ThreadRecord{}, err
	}
	return
}

func (c *threadCache) SetThread(ctx context.Context, rec domain.ThreadRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyThread, rec.ID), data, c.ttl).Err()
}
