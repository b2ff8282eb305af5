// Package views stores named filter presets so admins can reuse a table
// configuration across sessions. Redis is the primary store with an
// in-memory fallback behind a failover wrapper.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

type RedisViewRepository struct {
	client *redis.Client
}

// NewRedisClient builds a redis client from connection settings.
func NewRedisClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

func NewRedisViewRepository(client *redis.Client) *RedisViewRepository {
	return &RedisViewRepository{client: client}
}

func viewKey(entity, name string) string {
	return fmt.Sprintf("admin:view:%s:%s", entity, name)
}

func (r *RedisViewRepository) SaveView(ctx context.Context, view *models.View) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal view: %w", err)
	}
	if err := r.client.Set(ctx, viewKey(view.Entity, view.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("save view to redis: %w", err)
	}
	return nil
}

func (r *RedisViewRepository) GetView(ctx context.Context, entity, name string) (*models.View, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, viewKey(entity, name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get view from redis: %w", err)
	}

	var view models.View
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, fmt.Errorf("unmarshal view: %w", err)
	}
	return &view, nil
}

func (r *RedisViewRepository) ListViews(ctx context.Context, entity string) ([]*models.View, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	var views []*models.View
	iter := r.client.Scan(ctx, 0, viewKey(entity, "*"), 0).Iterator()
	for iter.Next(ctx) {
		val, err := r.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}
		var view models.View
		if err := json.Unmarshal([]byte(val), &view); err != nil {
			continue
		}
		views = append(views, &view)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan views: %w", err)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (r *RedisViewRepository) DeleteView(ctx context.Context, entity, name string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, viewKey(entity, name)).Err(); err != nil {
		return fmt.Errorf("delete view from redis: %w", err)
	}
	return nil
}

// Ping verifies the redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Close closes the redis connection if present.
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
