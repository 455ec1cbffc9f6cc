package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
)

// MarkPassengerSmsSent flags the trip once its passenger SMS went out
func (r *NotificationRepo) MarkPassengerSmsSent(ctx context.Context, tripID uuid.UUID) error {
	query := `UPDATE trips SET passenger_sms_sent = true, updated_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), tripID)
	if err != nil {
		return fmt.Errorf("failed to mark passenger sms sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("trip")
	}
	return nil
}
