package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := NewOutboxEvent("req-1", "payroll_period", "agg-1", "payroll.locked", "wf.payroll.locked.v1", map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OutboxStatusPending, ev.Status)

	var body map[string]string
	require.NoError(t, json.Unmarshal(ev.Payload, &body))
	assert.Equal(t, "v", body["k"])

	_, err = NewOutboxEvent("", "a", "b", "c", "", map[string]string{})
	assert.EqualError(t, err, "outbox topic is required")
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("id-1", "req-1", "time_session", "agg-1", "time.session_closed", "topic", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(context.Background(), OutboxEvent{
		ID: "id-1", RequestID: "req-1", AggregateType: "time_session", AggregateID: "agg-1",
		EventType: "time.session_closed", Topic: "topic", Payload: []byte(`{}`), Status: OutboxStatusPending,
	})
	assert.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimDueOrdersByCreation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	older := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "created_at"}).
		AddRow("ev-2", "", "payroll_period", "agg-2", "payroll.locked", "t", []byte(`{}`), OutboxStatusFailed, 2, older.Add(time.Minute)).
		AddRow("ev-1", "req-1", "payroll_period", "agg-1", "payroll.approved", "t", []byte(`{}`), OutboxStatusPending, 0, older)
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, float64(30), 10).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ClaimDue(context.Background(), 10, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-1", events[0].ID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedDeadLetters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("ev-1", "broker down", 5, OutboxStatusFailed, OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewOutboxRepository(db).MarkFailed(context.Background(), "ev-1", "broker down", 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
