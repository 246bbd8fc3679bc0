package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
)

// SummaryApplier recomputes the persisted daily summary for one member-day.
type SummaryApplier interface {
	ApplyShiftRulesToDay(ctx context.Context, orgID, memberID string, date time.Time) error
}

const maxRetryBackoff = 30 * time.Second

// Retry bounds how long one message is retried after store failures.
type Retry struct {
	Attempts int
	Backoff  time.Duration
}

// ConsumeSessionClosed keeps daily summaries in step with the clock ledger.
// Store failures are retried in place with doubling backoff, since the reader
// never hands back a message it has already fetched. Once retries run out the
// message is committed anyway and the nightly batch rebuilds that day.
// Precondition failures (member gone, org inactive) are committed and dropped.
func ConsumeSessionClosed(
	ctx context.Context,
	reader MessageReader,
	summaries SummaryApplier,
	retry Retry,
	logger *zap.Logger,
) {
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	log := logger.Named("kafka.consumer.session_closed")
	log.Info("session closed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("session closed consumer stopped")
				return
			}
			log.Error("fetch session closed message failed", zap.Error(err))
			continue
		}

		var event events.SessionClosedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode session closed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		date, err := civildate.Parse(event.Date)
		if err != nil {
			log.Error("session closed event has bad date",
				zap.String("session_id", event.SessionID),
				zap.String("date", event.Date),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		rid := event.RequestID
		if rid == "" {
			rid = header(msg, "request_id")
		}
		msgCtx := contextutil.WithRequestID(ctx, rid)

		err = applyWithRetry(msgCtx, summaries, retry, event.OrgID, event.MemberID, date, log)
		switch {
		case ctx.Err() != nil:
			log.Info("session closed consumer stopped")
			return
		case err != nil && apperror.KindOf(err) == apperror.KindIntegrity:
			log.Error("apply shift rules from session close gave up",
				zap.String("request_id", rid),
				zap.String("member_id", event.MemberID),
				zap.String("date", event.Date),
				zap.Int("attempts", retry.Attempts),
				zap.Error(err),
			)
		case err != nil:
			log.Warn("session close skipped",
				zap.String("request_id", rid),
				zap.String("member_id", event.MemberID),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit session closed message failed", zap.Error(err))
			continue
		}

		log.Debug("daily summary refreshed",
			zap.String("request_id", rid),
			zap.String("org_id", event.OrgID),
			zap.String("member_id", event.MemberID),
			zap.String("date", event.Date),
		)
	}
}

func applyWithRetry(
	ctx context.Context,
	summaries SummaryApplier,
	retry Retry,
	orgID, memberID string,
	date time.Time,
	log *zap.Logger,
) error {
	wait := retry.Backoff
	for attempt := 1; ; attempt++ {
		err := summaries.ApplyShiftRulesToDay(ctx, orgID, memberID, date)
		if err == nil || apperror.KindOf(err) != apperror.KindIntegrity || attempt >= retry.Attempts {
			return err
		}
		log.Warn("apply shift rules failed, retrying",
			zap.String("member_id", memberID),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}
