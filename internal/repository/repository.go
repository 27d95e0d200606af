package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
// Duplicate membership, pending invitation and reaction rows are rejected
// by the schema, not by application-level pre-checks, so concurrent
// check-then-act sequences cannot slip through.
var ErrDuplicate = errors.New("duplicate record")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Group        GroupRepository
	Membership   MembershipRepository
	Discussion   DiscussionRepository
	Comment      CommentRepository
	Reply        ReplyRepository
	Reaction     ReactionRepository
	Invitation   InvitationRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Group:        NewGroupRepository(db),
		Membership:   NewMembershipRepository(db),
		Discussion:   NewDiscussionRepository(db),
		Comment:      NewCommentRepository(db),
		Reply:        NewReplyRepository(db),
		Reaction:     NewReactionRepository(db),
		Invitation:   NewInvitationRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
