package inventory

import (
	"time"

	convRepo "posada/database/repository/conversation"
	roomRepo "posada/database/repository/room"
	"posada/models"

	"go.uber.org/zap"
)

// AvailabilityResolver computes, per room type, how many physical units have
// no confirmed reservation overlapping a date range.
type AvailabilityResolver interface {
	Available(start, end time.Time) (map[string]int, error)
}

// Allocator assigns physical units to a conversation's chosen room-type
// quantities at confirmation time.
type Allocator interface {
	Commit(conv *models.Conversation) ([]string, error)
}

// DefaultAvailabilityResolver implements AvailabilityResolver against the
// room and conversation repositories.
type DefaultAvailabilityResolver struct {
	Rooms         roomRepo.RoomRepository
	Conversations convRepo.ConversationRepository
}

// DefaultAllocator implements Allocator. It re-derives availability at commit
// time and takes units greedily; a shortfall is logged and tolerated rather
// than failing the confirmation.
type DefaultAllocator struct {
	Rooms         roomRepo.RoomRepository
	Conversations convRepo.ConversationRepository
	Logger        *zap.Logger
}
