package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"vidtube.com/config"
)

// Counter cache for hot engagement reads. Redis only ever holds values
// derived from the store; on any doubt the entry is dropped and recomputed,
// so it can never drift into authority.

var client *redis.Client

const (
	likeCountKey       = "like:count:%s:%d"     // kind, target id
	subscriberCountKey = "subscriber:count:%d"  // channel id
	counterExpire      = time.Hour
)

func Load() {
	client = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("redis unavailable, counter cache disabled: %v", err)
		client = nil
	}
}

func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (int64, bool) {
	return getCounter(ctx, fmt.Sprintf(likeCountKey, targetKind, targetId))
}

func SetLikeCount(ctx context.Context, targetKind string, targetId, count int64) {
	setCounter(ctx, fmt.Sprintf(likeCountKey, targetKind, targetId), count)
}

func InvalidateLikeCount(ctx context.Context, targetKind string, targetId int64) {
	invalidate(ctx, fmt.Sprintf(likeCountKey, targetKind, targetId))
}

func GetSubscriberCount(ctx context.Context, channelId int64) (int64, bool) {
	return getCounter(ctx, fmt.Sprintf(subscriberCountKey, channelId))
}

func SetSubscriberCount(ctx context.Context, channelId, count int64) {
	setCounter(ctx, fmt.Sprintf(subscriberCountKey, channelId), count)
}

func InvalidateSubscriberCount(ctx context.Context, channelId int64) {
	invalidate(ctx, fmt.Sprintf(subscriberCountKey, channelId))
}

func getCounter(ctx context.Context, key string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func setCounter(ctx context.Context, key string, count int64) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, key, count, counterExpire).Err(); err != nil {
		hlog.CtxWarnf(ctx, "cache set %s failed: %v", key, err)
	}
}

func invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		hlog.CtxWarnf(ctx, "cache del %s failed: %v", key, err)
	}
}
