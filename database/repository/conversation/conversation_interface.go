package convRepo

import (
	"time"

	"posada/models"
)

// ConversationRepository defines access to per-session conversation documents,
// which double as reservation records once confirmed.
type ConversationRepository interface {
	// GetBySessionID retrieves the conversation for a session. Returns
	// (nil, nil) when the session has no conversation yet.
	GetBySessionID(sessionID string) (*models.Conversation, error)
	// Create inserts a new conversation document.
	Create(conv *models.Conversation) error
	// Update replaces the conversation document for its session.
	Update(conv *models.Conversation) error
	// DeleteBySessionID removes the conversation for a session. Deleting an
	// absent session is not an error.
	DeleteBySessionID(sessionID string) error
	// GetConfirmedOverlapping retrieves confirmed reservations whose date
	// range overlaps [start, end) under the half-open overlap rule.
	GetConfirmedOverlapping(start, end time.Time) ([]models.Conversation, error)
	// DeleteIfStalePending removes the session's conversation when it is
	// still pending and has not been touched since the cutoff. Reports
	// whether a document was removed.
	DeleteIfStalePending(sessionID string, cutoff time.Time) (bool, error)
}
