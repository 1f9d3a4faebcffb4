package models

import (
	"time"

	"github.com/google/uuid"
)

// Swap request statuses. pending -> accepted and pending -> rejected are
// the only meaningful transitions; both targets are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidResolution reports whether status is a legal resolution target.
func ValidResolution(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// SwapRequestDB represents a swap request record in the database.
// Recipient is derived from the listing owner at creation time and is
// never mutated afterwards. Requester and recipient are always distinct.
type SwapRequestDB struct {
	RequestID   uuid.UUID `db:"request_id"`
	RequesterID uuid.UUID `db:"requester_id"`
	RecipientID uuid.UUID `db:"recipient_id"`
	SkillID     uuid.UUID `db:"skill_id"`
	Message     string    `db:"message"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// SwapRequestView is a read-time join of a request with the counterpart
// user's public fields and the listing's display fields. Counterpart means
// the requester for incoming requests and the recipient for outgoing ones.
type SwapRequestView struct {
	SwapRequestDB
	CounterpartName   string `db:"counterpart_name"`
	CounterpartEmail  string `db:"counterpart_email"`
	CounterpartAvatar string `db:"counterpart_avatar"`
	SkillTitle        string `db:"skill_title"`
	SkillImage        string `db:"skill_image"`
}
