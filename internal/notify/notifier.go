// Package notify - очередь всплывающих уведомлений сессии в Redis.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service"
)

const queueKeyPrefix = "notifications:"

// RedisNotifier складывает уведомления в список Redis на каждую сессию.
// Клиент забирает их при следующем опросе.
type RedisNotifier struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisNotifier создает новый RedisNotifier
func NewRedisNotifier(client *redis.Client, ttl time.Duration) service.Notifier {
	return &RedisNotifier{
		redisClient: client,
		ttl:         ttl,
	}
}

func queueKey(sessionID string) string {
	return queueKeyPrefix + sessionID
}

// Notify публикует уведомление в очередь сессии
func (n *RedisNotifier) Notify(ctx context.Context, sessionID string, notification models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := queueKey(sessionID)
	// LPUSH добавляет в левую часть списка, поэтому новые уведомления идут первыми
	_, err = n.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		if n.ttl > 0 {
			pipe.Expire(ctx, key, n.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}

// Drain забирает все накопленные уведомления, от старых к новым
func (n *RedisNotifier) Drain(ctx context.Context, sessionID string) ([]models.Notification, error) {
	key := queueKey(sessionID)

	var rangeCmd *redis.StringSliceCmd
	_, err := n.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain notifications from Redis: %w", err)
	}

	raw := rangeCmd.Val()
	slices.Reverse(raw)
	notifications := make([]models.Notification, 0, len(raw))
	for _, item := range raw {
		var notification models.Notification
		if err := json.Unmarshal([]byte(item), &notification); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

// Clear удаляет очередь сессии
func (n *RedisNotifier) Clear(ctx context.Context, sessionID string) error {
	if err := n.redisClient.Del(ctx, queueKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
