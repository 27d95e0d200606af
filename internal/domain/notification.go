package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID        `json:"id" db:"notification_id"`
	SenderID     uuid.UUID        `json:"sender_id" db:"sender_id"`
	ReceiverID   uuid.UUID        `json:"receiver_id" db:"receiver_id"`
	GroupID      uuid.UUID        `json:"group_id" db:"group_id"`
	DiscussionID *uuid.UUID       `json:"discussion_id,omitempty" db:"discussion_id"`
	Type         NotificationType `json:"type" db:"type"`
	Message      string           `json:"message" db:"message"`
	Data         json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead       bool             `json:"is_read" db:"is_read"`
	ReadAt       *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

// NotificationType replaces the original's content-string sentinel: the
// kind is a tagged field, not a magic message.
type NotificationType string

const (
	NotifInvite            NotificationType = "INVITE"
	NotifDiscussionCreated NotificationType = "DISCUSSION_CREATED"
	NotifNewComment        NotificationType = "NEW_COMMENT"
	NotifNewReply          NotificationType = "NEW_REPLY"
	NotifReaction          NotificationType = "REACTION"
)

// NotificationView is the denormalized listing shape: ids resolved to the
// sender's username, the group name and the discussion title.
type NotificationView struct {
	Notification
	SenderUsername  string  `json:"sender" db:"sender_username"`
	GroupName       string  `json:"group" db:"group_name"`
	DiscussionTitle *string `json:"discussion,omitempty" db:"discussion_title"`
}
