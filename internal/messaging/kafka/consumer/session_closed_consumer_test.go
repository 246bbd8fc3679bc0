package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// scriptedReader hands out queued messages, then blocks until ctx is done.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type applyCall struct {
	orgID, memberID, requestID string
	date                       time.Time
}

type fakeApplier struct {
	calls []applyCall
	errs  []error
}

func (f *fakeApplier) ApplyShiftRulesToDay(ctx context.Context, orgID, memberID string, date time.Time) error {
	f.calls = append(f.calls, applyCall{orgID, memberID, contextutil.GetRequestID(ctx), date})
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func sessionClosedMsg(t *testing.T, offset int64, memberID string) kafkago.Message {
	payload, err := json.Marshal(events.SessionClosedEvent{
		EventType: events.EventTimeSessionClosed,
		RequestID: "req-1",
		OrgID:     "org-1",
		MemberID:  memberID,
		Date:      "2026-03-02",
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: payload}
}

func TestConsumeSessionClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		msgs: []kafkago.Message{
			sessionClosedMsg(t, 1, "m-1"),
			{Offset: 2, Value: []byte("not json")},
			sessionClosedMsg(t, 3, "m-2"),
			sessionClosedMsg(t, 4, "m-3"),
			sessionClosedMsg(t, 5, "m-4"),
		},
		cancel: cancel,
	}
	reset := errors.New("connection reset")
	applier := &fakeApplier{errs: []error{
		nil,
		apperror.New(apperror.CodeNotFound, "member not found", http.StatusNotFound),
		reset, reset, nil,
		reset, reset, reset,
	}}

	ConsumeSessionClosed(ctx, reader, applier, Retry{Attempts: 3}, zap.NewNop())

	var members []string
	for _, c := range applier.calls {
		members = append(members, c.memberID)
	}
	// precondition failures are not retried; store failures are, up to three tries
	assert.Equal(t, []string{"m-1", "m-2", "m-3", "m-3", "m-3", "m-4", "m-4", "m-4"}, members)
	assert.Equal(t, applyCall{"org-1", "m-1", "req-1", civildate.New(2026, 3, 2)}, applier.calls[0])

	var offsets []int64
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, offsets)
	assert.Empty(t, applier.errs)
}

// cancellingApplier always fails and stops the consumer on its first call.
type cancellingApplier struct {
	cancel context.CancelFunc
	calls  int
}

func (a *cancellingApplier) ApplyShiftRulesToDay(context.Context, string, string, time.Time) error {
	a.calls++
	a.cancel()
	return errors.New("connection reset")
}

func TestConsumeSessionClosed_StopsDuringBackoffWithoutCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{msgs: []kafkago.Message{sessionClosedMsg(t, 7, "m-1")}, cancel: cancel}
	applier := &cancellingApplier{cancel: cancel}

	done := make(chan struct{})
	go func() {
		ConsumeSessionClosed(ctx, reader, applier, Retry{Attempts: 5, Backoff: time.Hour}, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer kept waiting after cancel")
	}
	assert.Equal(t, 1, applier.calls)
	assert.Empty(t, reader.committed)
}
