package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type EventRepository interface {
	// SaveLoanEvent is idempotent on the event uid; a redelivered event is a no-op.
	SaveLoanEvent(ctx context.Context, ev model.LoanEvent) error
	ListLoanEvents(ctx context.Context, loanID int64) ([]model.LoanEvent, error)
}

type loanEventRow struct {
	ID         int64           `db:"id"`
	EventUID   string          `db:"event_uid"`
	LoanID     int64           `db:"loan_id"`
	Type       model.EventType `db:"event_type"`
	TeacherID  int64           `db:"teacher_id"`
	Status     model.Status    `db:"status"`
	Payload    string          `db:"payload"`
	OccurredAt time.Time       `db:"occurred_at"`
}

func (r *repository) SaveLoanEvent(ctx context.Context, ev model.LoanEvent) error {
	payload := "{}"
	if len(ev.Payload) > 0 {
		payload = string(ev.Payload)
	}
	q, args, err := qb.Insert(loanEventsTableName).
		Columns("event_uid", "loan_id", "event_type", "teacher_id", "status", "payload", "occurred_at").
		Values(ev.EventUID, ev.LoanID, ev.Type, ev.TeacherID, ev.Status, sq.Expr("?::jsonb", payload), ev.OccurredAt).
		Suffix("on conflict (event_uid) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SaveLoanEvent", zap.String("uid", ev.EventUID), zap.Error(err))
		return mapErr(err, "loan event %s", ev.EventUID)
	}
	return nil
}

func (r *repository) ListLoanEvents(ctx context.Context, loanID int64) ([]model.LoanEvent, error) {
	q, args, err := qb.Select("id", "event_uid", "loan_id", "event_type", "teacher_id", "status",
		"payload::text as payload", "occurred_at").
		From(loanEventsTableName).
		Where(sq.Eq{"loan_id": loanID}).
		OrderBy("occurred_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []loanEventRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	events := make([]model.LoanEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, model.LoanEvent{
			ID:         row.ID,
			EventUID:   row.EventUID,
			LoanID:     row.LoanID,
			Type:       row.Type,
			TeacherID:  row.TeacherID,
			Status:     row.Status,
			Payload:    json.RawMessage(row.Payload),
			OccurredAt: row.OccurredAt,
		})
	}
	return events, nil
}
