package domain

import (
	"time"

	"github.com/google/uuid"
)

// Discussion is immutable once created; there is no update path.
type Discussion struct {
	ID        uuid.UUID `json:"id" db:"discussion_id"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID           uuid.UUID `json:"id" db:"comment_id"`
	DiscussionID uuid.UUID `json:"discussion_id" db:"discussion_id"`
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Author  *Profile `json:"author,omitempty"`
	Replies []Reply  `json:"replies,omitempty"`
}

type Reply struct {
	ID        uuid.UUID `json:"id" db:"reply_id"`
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Author *Profile `json:"author,omitempty"`
}

// DiscussionDetail is a discussion with its comment tree, reaction totals
// and the creator's public profile.
type DiscussionDetail struct {
	Discussion
	Comments []Comment `json:"comments"`
	Likes    int64     `json:"likes"`
	Dislikes int64     `json:"dislikes"`
	Creator  *Profile  `json:"creator,omitempty"`
}

type CreateDiscussionInput struct {
	GroupID uuid.UUID `json:"group_id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type CreateCommentInput struct {
	DiscussionID uuid.UUID `json:"discussion_id"`
	Content      string    `json:"content"`
}

type CreateReplyInput struct {
	CommentID uuid.UUID `json:"comment_id"`
	Content   string    `json:"content"`
}
