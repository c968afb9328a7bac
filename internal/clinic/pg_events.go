package clinic

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgEventSink appends events to the event_logs table created by db.ConnectJournal.
type PgEventSink struct {
	pool *pgxpool.Pool
}

func NewPgEventSink(pool *pgxpool.Pool) *PgEventSink {
	return &PgEventSink{pool: pool}
}

func (s *PgEventSink) Publish(ctx context.Context, ev Event) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO event_logs (id, event_type, patient_id, doctor_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
	`, ev.ID, ev.Type, nullableString(ev.PatientID), nullableString(ev.DoctorID), ev.Payload, nullableTime(ev.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert event log: %w", err)
	}
	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
