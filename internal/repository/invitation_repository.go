package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type InvitationRepository interface {
	// Create inserts a pending invitation; a second pending invitation for
	// the same (group, receiver) hits the partial unique index and returns
	// ErrDuplicate.
	Create(ctx context.Context, invitation *domain.Invitation) error
	GetPending(ctx context.Context, groupID, receiverID uuid.UUID) (*domain.Invitation, error)
	HasPending(ctx context.Context, groupID, receiverID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvitationStatus) error
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]domain.Invitation, error)
}

type invitationRepository struct {
	db *sqlx.DB
}

func NewInvitationRepository(db *sqlx.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	query := `
		INSERT INTO invitations (invitation_id, group_id, sender_id, receiver_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		invitation.ID, invitation.GroupID, invitation.SenderID,
		invitation.ReceiverID, invitation.Status,
	).Scan(&invitation.CreatedAt, &invitation.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *invitationRepository) GetPending(ctx context.Context, groupID, receiverID uuid.UUID) (*domain.Invitation, error) {
	var invitation domain.Invitation
	query := `
		SELECT * FROM invitations
		WHERE group_id = $1 AND receiver_id = $2 AND status = 'pending'`

	err := r.db.GetContext(ctx, &invitation, query, groupID, receiverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) HasPending(ctx context.Context, groupID, receiverID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE group_id = $1 AND receiver_id = $2 AND status = 'pending')`

	err := r.db.GetContext(ctx, &exists, query, groupID, receiverID)
	return exists, err
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvitationStatus) error {
	query := `UPDATE invitations SET status = $2, updated_at = NOW() WHERE invitation_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *invitationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]domain.Invitation, error) {
	var invitations []domain.Invitation
	query := `SELECT * FROM invitations WHERE receiver_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &invitations, query, receiverID)
	return invitations, err
}
