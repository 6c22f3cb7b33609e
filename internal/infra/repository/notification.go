package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"wanderbook/internal/infra"
	"wanderbook/internal/infra/db"
	"wanderbook/internal/usecase/shared"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

const insertNotificationSQL = `
INSERT INTO notification_jobs (id, kind, booking_id, recipient_id, payload, status, created_at)
VALUES ($1, $2, $3, $4, $5, 'queued', now())
`

// Enqueue writes the job in the caller's transaction. If the booking change
// rolls back, so does the notification.
func (r *NotificationRepository) Enqueue(ctx context.Context, job shared.NotificationJob) error {
	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	_, err = r.db.Exec(ctx, insertNotificationSQL,
		uuid.New(), job.Kind, job.BookingID, job.RecipientID, payload,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification", err)
	}
	return nil
}
