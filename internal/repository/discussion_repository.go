package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type DiscussionRepository interface {
	Create(ctx context.Context, discussion *domain.Discussion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Discussion, error)
}

type discussionRepository struct {
	db *sqlx.DB
}

func NewDiscussionRepository(db *sqlx.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(ctx context.Context, discussion *domain.Discussion) error {
	query := `
		INSERT INTO discussions (discussion_id, group_id, author_id, title, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		discussion.ID, discussion.GroupID, discussion.AuthorID,
		discussion.Title, discussion.Content,
	).Scan(&discussion.CreatedAt)
}

func (r *discussionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	var discussion domain.Discussion
	query := `SELECT * FROM discussions WHERE discussion_id = $1`

	err := r.db.GetContext(ctx, &discussion, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (r *discussionRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Discussion, error) {
	var discussions []domain.Discussion
	query := `SELECT * FROM discussions WHERE group_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &discussions, query, groupID)
	return discussions, err
}
