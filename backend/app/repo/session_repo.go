package repo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "sess:"

type SessionRepository struct{ rdb *redis.Client }

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	return r.rdb.Set(ctx, sessionKeyPrefix+sessionID, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// Owner returns the user a live session belongs to.
func (r *SessionRepository) Owner(ctx context.Context, sessionID string) (uint, error) {
	val, err := r.rdb.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
