package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/models"
	"github.com/redis/go-redis/v9"
)

// UserCacheRepository caches user records by id in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new repository instance
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user_info:%d", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.UserInfo, error) {
	key := userKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("user cache get", "key", key, "hit", err == nil, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var userInfo models.UserInfo
	if err := json.Unmarshal(val, &userInfo); err != nil {
		return nil, err
	}
	return &userInfo, nil
}

// Set stores the user with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, userInfo models.UserInfo) error {
	val, err := json.Marshal(userInfo)
	if err != nil {
		return err
	}

	key := userKey(userInfo.ID)
	err = r.client.Set(ctx, key, val, r.exp).Err()
	logger.Log.Debugw("user cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}
