package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis under a TTL, so "session-only" state
// expires on its own.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) seqKey(id string) string {
	return r.prefix + id + ":searchseq"
}

func (r *RedisStore) Get(ctx context.Context, id string) (*State, error) {
	val, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s State
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal state: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *State) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("session: missing session id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal state: %w", err)
	}

	return r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id), r.seqKey(id)).Err()
}

func (r *RedisStore) NextSearchSeq(ctx context.Context, id string) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, r.seqKey(id))
	pipe.Expire(ctx, r.seqKey(id), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (r *RedisStore) SearchSeq(ctx context.Context, id string) (int64, error) {
	seq, err := r.client.Get(ctx, r.seqKey(id)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return seq, nil
}
