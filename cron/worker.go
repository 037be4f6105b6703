package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"posada/config"
	convRepo "posada/database/repository/conversation"
	"posada/models"
	"posada/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitCleanupWorker runs the async worker in background. It removes pending
// conversations that sat untouched past the session TTL, so abandoned chats
// never pin inventory math forever.
func InitCleanupWorker(conversations convRepo.ConversationRepository, ttl time.Duration) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	client := asynq.NewClient(redisOpts)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeConversationExpire, handleExpireTask(conversations, client, ttl))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[CleanupWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CleanupWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CleanupWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(conversations convRepo.ConversationRepository, client *asynq.Client, ttl time.Duration) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CleanupHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		conv, err := conversations.GetBySessionID(p.SessionID)
		if err != nil {
			log.Printf("[CleanupHandler] ❌ Failed to load session %s: %v", p.SessionID, err)
			return err
		}
		if conv == nil || conv.Status == models.StatusConfirmed {
			return nil
		}

		// Activity since scheduling pushes the deadline forward.
		deadline := conv.UpdatedAt.Add(ttl)
		if time.Now().Before(deadline) {
			next, opts, err := tasks.NewConversationExpireTask(p.SessionID, deadline)
			if err != nil {
				return err
			}
			if _, err := client.Enqueue(next, opts...); err != nil {
				log.Printf("[CleanupHandler] ❌ Failed to reschedule session %s: %v", p.SessionID, err)
				return err
			}
			return nil
		}

		deleted, err := conversations.DeleteIfStalePending(p.SessionID, time.Now().Add(-ttl))
		if err != nil {
			log.Printf("[CleanupHandler] ❌ Failed to expire session %s: %v", p.SessionID, err)
			return err
		}
		if deleted {
			log.Printf("[CleanupHandler] ⏰ Expired stale pending session %s", p.SessionID)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CleanupWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
