package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeConversationExpire = "conversation:expire"

// ExpirePayload identifies the conversation a cleanup task targets.
type ExpirePayload struct {
	SessionID string `json:"sessionId"`
}

func NewConversationExpireTask(sessionID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ExpirePayload{SessionID: sessionID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeConversationExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqExpiryScheduler enqueues a cleanup task for each new conversation,
// delayed by the pending-session TTL.
type AsynqExpiryScheduler struct {
	Client *asynq.Client
	TTL    time.Duration
}

func (s *AsynqExpiryScheduler) ScheduleExpire(sessionID string) error {
	task, opts, err := NewConversationExpireTask(sessionID, time.Now().Add(s.TTL))
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
