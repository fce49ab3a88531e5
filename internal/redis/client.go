package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant_manager/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key does not exist or has expired.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

// StaffSession is the server-side record behind a JWT. Deleting it
// revokes the token before its expiry.
type StaffSession struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management

func (c *Client) SetSession(sessionID string, data *StaffSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(sessionID string) (*StaffSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session StaffSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

// Kitchen queue snapshot cache. Bounds database load under the 5s
// kitchen display poll; the overdue flag is computed after a cache
// read, never stored, so it cannot go stale.

func (c *Client) SetKitchenQueue(sortMode string, orders []models.Order, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal kitchen queue: %w", err)
	}

	return c.rdb.Set(ctx, "kitchen_queue:"+sortMode, jsonData, ttl).Err()
}

func (c *Client) GetKitchenQueue(sortMode string) ([]models.Order, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "kitchen_queue:"+sortMode).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get kitchen queue: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(val), &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kitchen queue: %w", err)
	}
	return orders, nil
}

// InvalidateKitchenQueue drops every cached sort mode. Called on any
// order mutation so staff never poll a deleted or transitioned order.
func (c *Client) InvalidateKitchenQueue() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "kitchen_queue:priority", "kitchen_queue:time").Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
