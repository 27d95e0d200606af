package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *domain.Reply) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error)
	ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Reply, error)
}

type replyRepository struct {
	db *sqlx.DB
}

func NewReplyRepository(db *sqlx.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *domain.Reply) error {
	query := `
		INSERT INTO replies (reply_id, comment_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		reply.ID, reply.CommentID, reply.AuthorID, reply.Content,
	).Scan(&reply.CreatedAt)
}

func (r *replyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	var reply domain.Reply
	query := `SELECT reply_id, comment_id, author_id, content, created_at FROM replies WHERE reply_id = $1`

	err := r.db.GetContext(ctx, &reply, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) ListByComment(ctx context.Context, commentID uuid.UUID) ([]domain.Reply, error) {
	type replyRow struct {
		domain.Reply
		domain.Profile
	}

	var rows []replyRow
	query := `
		SELECT rp.reply_id, rp.comment_id, rp.author_id, rp.content, rp.created_at,
			u.user_id, u.name, u.email, u.username, u.profile_picture, u.country, u.sex, u.hobbies
		FROM replies rp
		JOIN users u ON u.user_id = rp.author_id
		WHERE rp.comment_id = $1
		ORDER BY rp.created_at`

	if err := r.db.SelectContext(ctx, &rows, query, commentID); err != nil {
		return nil, err
	}

	replies := make([]domain.Reply, 0, len(rows))
	for _, row := range rows {
		reply := row.Reply
		author := row.Profile
		reply.Author = &author
		replies = append(replies, reply)
	}
	return replies, nil
}
