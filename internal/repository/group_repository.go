package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	Update(ctx context.Context, group *domain.Group) error
	// Delete removes the group's memberships and the group row in one
	// transaction; a partial delete can never be observed.
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Group, error)
}

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	query := `
		INSERT INTO groups (group_id, name, description, creator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		group.ID, group.Name, group.Description, group.CreatorID,
	).Scan(&group.CreatedAt, &group.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	var group domain.Group
	query := `SELECT * FROM groups WHERE group_id = $1`

	err := r.db.GetContext(ctx, &group, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) Update(ctx context.Context, group *domain.Group) error {
	query := `
		UPDATE groups
		SET name = :name, description = :description, updated_at = NOW()
		WHERE group_id = :group_id`

	_, err := r.db.NamedExecContext(ctx, query, group)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE group_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *groupRepository) ListAll(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	query := `SELECT * FROM groups ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &groups, query)
	return groups, err
}
