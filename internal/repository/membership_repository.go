package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type MembershipRepository interface {
	// Create inserts a membership and returns ErrDuplicate when the
	// (group, user) pair already exists.
	Create(ctx context.Context, membership *domain.Membership) error
	// CreateIfAbsent inserts with ON CONFLICT DO NOTHING; resolving an
	// accepted invitation twice never duplicates the membership.
	CreateIfAbsent(ctx context.Context, groupID, userID uuid.UUID) error
	Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.Profile, error)
	ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	ListMemberUsernames(ctx context.Context, groupID uuid.UUID) ([]string, error)
}

type membershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		RETURNING joined_at`

	err := r.db.QueryRowxContext(ctx, query,
		membership.GroupID, membership.UserID,
	).Scan(&membership.JoinedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *membershipRepository) CreateIfAbsent(ctx context.Context, groupID, userID uuid.UUID) error {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (group_id, user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, groupID, userID)
	return err
}

func (r *membershipRepository) Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, groupID, userID)
	return exists, err
}

func (r *membershipRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.Profile, error) {
	var members []domain.Profile
	query := `
		SELECT u.user_id, u.name, u.email, u.username, u.profile_picture, u.country, u.sex, u.hobbies
		FROM group_members gm
		JOIN users u ON u.user_id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at`

	err := r.db.SelectContext(ctx, &members, query, groupID)
	return members, err
}

func (r *membershipRepository) ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT user_id FROM group_members WHERE group_id = $1 ORDER BY joined_at`

	err := r.db.SelectContext(ctx, &ids, query, groupID)
	return ids, err
}

func (r *membershipRepository) ListMemberUsernames(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	var usernames []string
	query := `
		SELECT u.username
		FROM group_members gm
		JOIN users u ON u.user_id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at`

	err := r.db.SelectContext(ctx, &usernames, query, groupID)
	return usernames, err
}
