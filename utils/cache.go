// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"posada/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// ChatCacheClient is the Redis client backing conversation caching.
var ChatCacheClient *redis.Client

// InitChatCache initializes the Redis client for conversation caching
// (using the chat DB from AppConfig).
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Cache): %v", err)
	}
}

// GetChatCacheClient returns the conversation cache client.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}

// QueueRedisOpt returns the asynq connection settings for the task queue DB.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
