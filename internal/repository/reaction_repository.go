package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type ReactionRepository interface {
	// Create inserts a reaction; a second reaction by the same user on the
	// same target hits the unique index and returns ErrDuplicate.
	Create(ctx context.Context, reaction *domain.Reaction) error
	GetByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType domain.ReactionTarget, targetID uuid.UUID) (*domain.Reaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByTarget(ctx context.Context, targetType domain.ReactionTarget, targetID uuid.UUID) (domain.ReactionCounts, error)
}

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(ctx context.Context, reaction *domain.Reaction) error {
	query := `
		INSERT INTO reactions (reaction_id, user_id, target_type, target_id, kind)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		reaction.ID, reaction.UserID, reaction.TargetType, reaction.TargetID, reaction.Kind,
	).Scan(&reaction.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *reactionRepository) GetByUserAndTarget(ctx context.Context, userID uuid.UUID, targetType domain.ReactionTarget, targetID uuid.UUID) (*domain.Reaction, error) {
	var reaction domain.Reaction
	query := `SELECT * FROM reactions WHERE user_id = $1 AND target_type = $2 AND target_id = $3`

	err := r.db.GetContext(ctx, &reaction, query, userID, targetType, targetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reactions WHERE reaction_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *reactionRepository) CountByTarget(ctx context.Context, targetType domain.ReactionTarget, targetID uuid.UUID) (domain.ReactionCounts, error) {
	var counts domain.ReactionCounts
	query := `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'like')    AS likes,
			COUNT(*) FILTER (WHERE kind = 'dislike') AS dislikes
		FROM reactions
		WHERE target_type = $1 AND target_id = $2`

	err := r.db.GetContext(ctx, &counts, query, targetType, targetID)
	return counts, err
}
