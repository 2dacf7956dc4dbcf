package types

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusCollecting SessionStatus = "collecting"
	StatusReady      SessionStatus = "ready"
	StatusCompleted  SessionStatus = "completed"
)

// Session is one user's preference-collection conversation. It lives in
// process memory only and is discarded when completed or deleted.
type Session struct {
	ID          uuid.UUID        `json:"id"`
	Status      SessionStatus    `json:"status"`
	Preferences PreferenceRecord `json:"preferences"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
