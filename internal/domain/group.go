package domain

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID          uuid.UUID `json:"id" db:"group_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatorID   uuid.UUID `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Membership struct {
	GroupID  uuid.UUID `json:"group_id" db:"group_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// GroupDetail is the expanded view of a single group with its member
// profiles.
type GroupDetail struct {
	Group
	Members []Profile `json:"members"`
}

// GroupSummary is the list view: the group plus its creator's public
// profile, member usernames and discussions.
type GroupSummary struct {
	Group
	CreatorName    string       `json:"creator_name"`
	Username       string       `json:"username"`
	ProfilePicture *string      `json:"profile_picture"`
	MemberNames    []string     `json:"members"`
	Discussions    []Discussion `json:"discussions"`
}

type CreateGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
