package convRepo

import (
	"context"
	"encoding/json"
	"time"

	"posada/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedConversationRepo decorates a ConversationRepository with a Redis
// read/write-through cache. Mongo stays the source of truth; the cache only
// spares a document read on the hot per-turn path. Cache failures are logged
// and otherwise ignored.
type CachedConversationRepo struct {
	Inner  ConversationRepository
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewCachedConversationRepo wraps inner with a Redis session cache.
func NewCachedConversationRepo(inner ConversationRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) ConversationRepository {
	return &CachedConversationRepo{Inner: inner, Client: client, TTL: ttl, Logger: logger}
}

func cacheKey(sessionID string) string {
	return "chat:conv:" + sessionID
}

// GetBySessionID serves from cache when possible, falling back to the inner
// repository on a miss.
func (r *CachedConversationRepo) GetBySessionID(sessionID string) (*models.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if data, err := r.Client.Get(ctx, cacheKey(sessionID)).Result(); err == nil {
		var conv models.Conversation
		if err := json.Unmarshal([]byte(data), &conv); err == nil {
			return &conv, nil
		}
		r.Logger.Warn("discarding undecodable cached conversation", zap.String("session", sessionID))
	}

	conv, err := r.Inner.GetBySessionID(sessionID)
	if err != nil || conv == nil {
		return conv, err
	}
	r.store(conv)
	return conv, nil
}

// Create inserts through to Mongo and primes the cache.
func (r *CachedConversationRepo) Create(conv *models.Conversation) error {
	if err := r.Inner.Create(conv); err != nil {
		return err
	}
	r.store(conv)
	return nil
}

// Update writes through to Mongo and refreshes the cache.
func (r *CachedConversationRepo) Update(conv *models.Conversation) error {
	if err := r.Inner.Update(conv); err != nil {
		return err
	}
	r.store(conv)
	return nil
}

// DeleteBySessionID removes the document and invalidates the cache.
func (r *CachedConversationRepo) DeleteBySessionID(sessionID string) error {
	if err := r.Inner.DeleteBySessionID(sessionID); err != nil {
		return err
	}
	r.invalidate(sessionID)
	return nil
}

// GetConfirmedOverlapping always hits the store: availability must be computed
// from live state, never from a cache.
func (r *CachedConversationRepo) GetConfirmedOverlapping(start, end time.Time) ([]models.Conversation, error) {
	return r.Inner.GetConfirmedOverlapping(start, end)
}

// DeleteIfStalePending delegates and invalidates on an actual delete.
func (r *CachedConversationRepo) DeleteIfStalePending(sessionID string, cutoff time.Time) (bool, error) {
	deleted, err := r.Inner.DeleteIfStalePending(sessionID, cutoff)
	if deleted {
		r.invalidate(sessionID)
	}
	return deleted, err
}

func (r *CachedConversationRepo) store(conv *models.Conversation) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(conv)
	if err != nil {
		r.Logger.Warn("failed to marshal conversation for cache", zap.String("session", conv.SessionID), zap.Error(err))
		return
	}
	if err := r.Client.Set(ctx, cacheKey(conv.SessionID), data, r.TTL).Err(); err != nil {
		r.Logger.Warn("failed to cache conversation", zap.String("session", conv.SessionID), zap.Error(err))
	}
}

func (r *CachedConversationRepo) invalidate(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.Client.Del(ctx, cacheKey(sessionID)).Err(); err != nil {
		r.Logger.Warn("failed to invalidate cached conversation", zap.String("session", sessionID), zap.Error(err))
	}
}
