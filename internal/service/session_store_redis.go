package service

import (
	"context"
	"encoding/json"
	"time"

	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const redisSessionPrefix = "soloquiz:session:"

// RedisSessionStore keeps session state in redis with a TTL, for deployments
// that restart the process without wanting to drop in-flight quizzes.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	data, err := r.rdb.Get(ctx, redisSessionPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, util.ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}

	var s model.QuizSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisSessionStore) Put(ctx context.Context, id string, s *model.QuizSession) error {
	s.LastSeen = time.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, redisSessionPrefix+id, data, r.ttl).Err()
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, redisSessionPrefix+id).Err()
}
