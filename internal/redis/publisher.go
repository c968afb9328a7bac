package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

// StreamPublisher appends clinic events to a capped Redis stream so other
// processes can follow bookings and prescriptions as they happen.
type StreamPublisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewStreamPublisher(client redis.Cmdable, stream string, maxLen int64) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

func (p *StreamPublisher) Publish(ctx context.Context, ev clinic.Event) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":         ev.ID.String(),
			"type":       ev.Type,
			"patient_id": ev.PatientID,
			"doctor_id":  ev.DoctorID,
			"payload":    string(ev.Payload),
			"created_at": ev.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish event to %s: %w", p.stream, err)
	}
	return nil
}
