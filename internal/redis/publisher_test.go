package redisclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

// fakeStream overrides XAdd; any other command panics on the nil embedded client.
type fakeStream struct {
	redis.Cmdable
	err  error
	args []*redis.XAddArgs
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

func TestStreamPublisherWritesEvent(t *testing.T) {
	fake := &fakeStream{}
	pub := NewStreamPublisher(fake, "clinic:events", 500)

	ev := clinic.Event{
		ID:        uuid.New(),
		Type:      clinic.EventAppointmentBooked,
		PatientID: "1",
		DoctorID:  "A",
		Payload:   []byte(`{"weekday":"lunes"}`),
		CreatedAt: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pub.Publish(context.Background(), ev))

	require.Len(t, fake.args, 1)
	args := fake.args[0]
	assert.Equal(t, "clinic:events", args.Stream)
	assert.Equal(t, int64(500), args.MaxLen)
	assert.True(t, args.Approx)

	values, ok := args.Values.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, ev.ID.String(), values["id"])
	assert.Equal(t, clinic.EventAppointmentBooked, values["type"])
	assert.Equal(t, `{"weekday":"lunes"}`, values["payload"])
	assert.Equal(t, "2024-01-01T09:00:00Z", values["created_at"])
}

func TestStreamPublisherWrapsErrors(t *testing.T) {
	boom := errors.New("READONLY")
	pub := NewStreamPublisher(&fakeStream{err: boom}, "clinic:events", 500)

	err := pub.Publish(context.Background(), clinic.Event{ID: uuid.New()})
	assert.ErrorIs(t, err, boom)
}
