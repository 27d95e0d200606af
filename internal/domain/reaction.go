package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is a first-class like/dislike. A user holds at most one
// reaction per target, enforced by a unique index on
// (user_id, target_type, target_id).
type Reaction struct {
	ID         uuid.UUID      `json:"id" db:"reaction_id"`
	UserID     uuid.UUID      `json:"user_id" db:"user_id"`
	TargetType ReactionTarget `json:"target_type" db:"target_type"`
	TargetID   uuid.UUID      `json:"target_id" db:"target_id"`
	Kind       ReactionKind   `json:"kind" db:"kind"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

type ReactionTarget string

const (
	TargetDiscussion ReactionTarget = "discussion"
	TargetComment    ReactionTarget = "comment"
)

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

func (k ReactionKind) IsValid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Opposite returns the mutually exclusive counterpart.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// ReactionResult reports what a toggle call did.
type ReactionResult struct {
	Applied bool         `json:"applied"`
	Kind    ReactionKind `json:"kind"`
}

type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
