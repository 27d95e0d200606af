package domain

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	ID         uuid.UUID        `json:"id" db:"invitation_id"`
	GroupID    uuid.UUID        `json:"group_id" db:"group_id"`
	SenderID   uuid.UUID        `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID        `json:"receiver_id" db:"receiver_id"`
	Status     InvitationStatus `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}

// Invitations move pending -> accepted or pending -> declined; both are
// terminal.
type InvitationStatus string

const (
	InviteStatusPending  InvitationStatus = "pending"
	InviteStatusAccepted InvitationStatus = "accepted"
	InviteStatusDeclined InvitationStatus = "declined"
)

func (s InvitationStatus) IsResolution() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined
}

type SendInviteInput struct {
	Username string `json:"username"`
}

type ResolveInviteInput struct {
	GroupID uuid.UUID        `json:"group_id"`
	Status  InvitationStatus `json:"status"`
}
