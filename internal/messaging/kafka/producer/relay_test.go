package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	batches [][]kafkago.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.batches = append(w.batches, msgs)
	return w.err
}

func testOptions() RelayOptions {
	return RelayOptions{BatchSize: 10, ClaimLease: time.Minute, MaxAttempts: 3}
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()
	ok := kafka.OutboxEvent{ID: "ev-1", RequestID: "req-1", AggregateID: "agg-1", EventType: "payroll.locked", Topic: "t", Payload: []byte(`{}`)}
	bad := kafka.OutboxEvent{ID: "ev-2", AggregateID: "agg-2", EventType: "payroll.approved", Topic: "t", Payload: []byte(`{}`), RetryCount: 2}

	t.Run("partial write failure marks only the failed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimDue(ctx, 10, time.Minute).Return([]kafka.OutboxEvent{ok, bad}, nil)
		repo.EXPECT().MarkSent(ctx, "ev-1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "ev-2", "broker down", 3).Return(nil)

		w := &fakeWriter{err: kafkago.WriteErrors{nil, errors.New("broker down")}}
		n, err := NewRelay(repo, w, testOptions(), zap.NewNop()).Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		require.Len(t, w.batches, 1)
		msg := w.batches[0][0]
		assert.Equal(t, "agg-1", string(msg.Key))
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
	})

	t.Run("whole batch error fails every event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimDue(ctx, 10, time.Minute).Return([]kafka.OutboxEvent{ok, bad}, nil)
		repo.EXPECT().MarkFailed(ctx, "ev-1", "dial tcp: refused", 3).Return(nil)
		repo.EXPECT().MarkFailed(ctx, "ev-2", "dial tcp: refused", 3).Return(nil)

		_, err := NewRelay(repo, &fakeWriter{err: errors.New("dial tcp: refused")}, testOptions(), zap.NewNop()).Flush(ctx)
		assert.NoError(t, err)
	})

	t.Run("nothing due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimDue(ctx, 10, time.Minute).Return(nil, nil)

		w := &fakeWriter{}
		n, err := NewRelay(repo, w, testOptions(), zap.NewNop()).Flush(ctx)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, w.batches)
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimDue(ctx, 10, time.Minute).Return(nil, errors.New("db gone"))

		_, err := NewRelay(repo, &fakeWriter{}, testOptions(), zap.NewNop()).Flush(ctx)
		assert.EqualError(t, err, "db gone")
	})
}
