package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/thespread/spreadbot/internal/redisx"
)

type RedisStore struct {
	RDB *redis.Client
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (State, bool, error) {
	v, err := s.RDB.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return State(v), true, nil
}

func (s *RedisStore) Set(ctx context.Context, userID int64, st State) error {
	return s.RDB.Set(ctx, key(userID), string(st), 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	return s.RDB.Del(ctx, key(userID)).Err()
}

func key(userID int64) string {
	return fmt.Sprintf(redisx.KeySession, userID)
}
