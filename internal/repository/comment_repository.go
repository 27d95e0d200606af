package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByDiscussion(ctx context.Context, discussionID uuid.UUID) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, discussion_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.DiscussionID, comment.AuthorID, comment.Content,
	).Scan(&comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT comment_id, discussion_id, author_id, content, created_at FROM comments WHERE comment_id = $1`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByDiscussion(ctx context.Context, discussionID uuid.UUID) ([]domain.Comment, error) {
	type commentRow struct {
		domain.Comment
		domain.Profile
	}

	var rows []commentRow
	query := `
		SELECT c.comment_id, c.discussion_id, c.author_id, c.content, c.created_at,
			u.user_id, u.name, u.email, u.username, u.profile_picture, u.country, u.sex, u.hobbies
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.discussion_id = $1
		ORDER BY c.created_at`

	if err := r.db.SelectContext(ctx, &rows, query, discussionID); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comment := row.Comment
		author := row.Profile
		comment.Author = &author
		comments = append(comments, comment)
	}
	return comments, nil
}
