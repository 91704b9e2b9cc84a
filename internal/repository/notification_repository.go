package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	const query = `
		INSERT INTO app_notifications (user_id, title, body, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`
	row := r.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Body, n.Type)
	if err := row.Scan(&n.ID, &n.IsRead, &n.CreatedAt); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// ListByUser returns a user's notifications, or guest (user_id IS NULL)
// notifications when userID is nil.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID *int64) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, title, body, type, is_read, created_at
		FROM app_notifications WHERE user_id IS NULL
		ORDER BY created_at DESC
	`
	args := []any{}
	if userID != nil {
		query = `
			SELECT id, user_id, title, body, type, is_read, created_at
			FROM app_notifications WHERE user_id = $1
			ORDER BY created_at DESC
		`
		args = append(args, *userID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID *int64) (int, error) {
	var count int
	var err error
	if userID != nil {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM app_notifications WHERE user_id = $1 AND is_read = FALSE`,
			*userID,
		).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM app_notifications WHERE user_id IS NULL AND is_read = FALSE`,
		).Scan(&count)
	}
	return count, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, userID *int64) error {
	var cmdRows int64
	if userID != nil {
		cmd, err := r.pool.Exec(ctx,
			`UPDATE app_notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
			id, *userID,
		)
		if err != nil {
			return err
		}
		cmdRows = cmd.RowsAffected()
	} else {
		cmd, err := r.pool.Exec(ctx,
			`UPDATE app_notifications SET is_read = TRUE WHERE id = $1 AND user_id IS NULL`,
			id,
		)
		if err != nil {
			return err
		}
		cmdRows = cmd.RowsAffected()
	}
	if cmdRows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID *int64) error {
	if userID != nil {
		_, err := r.pool.Exec(ctx,
			`UPDATE app_notifications SET is_read = TRUE WHERE user_id = $1`, *userID,
		)
		return err
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE app_notifications SET is_read = TRUE WHERE user_id IS NULL`,
	)
	return err
}

// DeleteReadOlderThan removes read notifications past the cutoff; used
// by the nightly janitor.
func (r *NotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`DELETE FROM app_notifications WHERE is_read = TRUE AND created_at < $1`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
