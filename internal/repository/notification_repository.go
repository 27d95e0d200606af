package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tribehub/internal/domain"
)

const notificationViewColumns = `
	n.notification_id, n.sender_id, n.receiver_id, n.group_id, n.discussion_id,
	n.type, n.message, n.data, n.is_read, n.read_at, n.created_at,
	u.username AS sender_username,
	g.name AS group_name,
	d.title AS discussion_title`

const notificationViewJoins = `
	FROM notifications n
	JOIN users u ON u.user_id = n.sender_id
	JOIN groups g ON g.group_id = n.group_id
	LEFT JOIN discussions d ON d.discussion_id = n.discussion_id`

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByReceiver(ctx context.Context, receiverID uuid.UUID, params domain.PaginationParams) ([]domain.NotificationView, int64, error)
	ListByReceiverAndGroup(ctx context.Context, receiverID, groupID uuid.UUID) ([]domain.NotificationView, error)
	ListByReceiverAndType(ctx context.Context, receiverID uuid.UUID, notifType domain.NotificationType) ([]domain.NotificationView, error)
	GetUnreadByReceiverGroupAndType(ctx context.Context, receiverID, groupID uuid.UUID, notifType domain.NotificationType) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, receiverID uuid.UUID) error
	MarkDiscussionAsRead(ctx context.Context, receiverID, groupID, discussionID uuid.UUID) ([]domain.Notification, error)
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, sender_id, receiver_id, group_id, discussion_id, type, message, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.SenderID, notif.ReceiverID, notif.GroupID,
		notif.DiscussionID, notif.Type, notif.Message, notif.Data,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT * FROM notifications WHERE notification_id = $1`

	err := r.db.GetContext(ctx, &notif, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID, params domain.PaginationParams) ([]domain.NotificationView, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE receiver_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, receiverID); err != nil {
		return nil, 0, err
	}

	var notifications []domain.NotificationView
	query := `SELECT ` + notificationViewColumns + notificationViewJoins + `
		WHERE n.receiver_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &notifications, query, receiverID, params.PageSize, params.Offset())
	return notifications, total, err
}

func (r *notificationRepository) ListByReceiverAndGroup(ctx context.Context, receiverID, groupID uuid.UUID) ([]domain.NotificationView, error) {
	var notifications []domain.NotificationView
	query := `SELECT ` + notificationViewColumns + notificationViewJoins + `
		WHERE n.receiver_id = $1 AND n.group_id = $2
		ORDER BY n.created_at DESC`

	err := r.db.SelectContext(ctx, &notifications, query, receiverID, groupID)
	return notifications, err
}

func (r *notificationRepository) ListByReceiverAndType(ctx context.Context, receiverID uuid.UUID, notifType domain.NotificationType) ([]domain.NotificationView, error) {
	var notifications []domain.NotificationView
	query := `SELECT ` + notificationViewColumns + notificationViewJoins + `
		WHERE n.receiver_id = $1 AND n.type = $2
		ORDER BY n.created_at DESC`

	err := r.db.SelectContext(ctx, &notifications, query, receiverID, notifType)
	return notifications, err
}

func (r *notificationRepository) GetUnreadByReceiverGroupAndType(ctx context.Context, receiverID, groupID uuid.UUID, notifType domain.NotificationType) (*domain.Notification, error) {
	var notif domain.Notification
	query := `
		SELECT * FROM notifications
		WHERE receiver_id = $1 AND group_id = $2 AND type = $3 AND is_read = false
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &notif, query, receiverID, groupID, notifType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, read_at = NOW() WHERE notification_id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, receiverID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, read_at = NOW() WHERE receiver_id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, receiverID)
	return err
}

func (r *notificationRepository) MarkDiscussionAsRead(ctx context.Context, receiverID, groupID, discussionID uuid.UUID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	query := `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE receiver_id = $1 AND group_id = $2 AND discussion_id = $3
		RETURNING *`

	err := r.db.SelectContext(ctx, &notifications, query, receiverID, groupID, discussionID)
	return notifications, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE receiver_id = $1 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, receiverID)
	return count, err
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notifications WHERE notification_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
