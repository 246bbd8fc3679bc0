package producer

import (
	"context"
	"errors"
	"time"

	"go-workforce/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type RelayOptions struct {
	PollInterval time.Duration
	BatchSize    int
	// ClaimLease hides claimed rows from other relays while a batch is in
	// flight. It must exceed the writer's worst-case write time.
	ClaimLease  time.Duration
	MaxAttempts int
}

func (o RelayOptions) withDefaults() RelayOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 50
	}
	if o.ClaimLease <= 0 {
		o.ClaimLease = 30 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 20
	}
	return o
}

// Relay moves outbox rows to kafka. Several relays may run against the same
// table; each claims a disjoint batch.
type Relay struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	opts   RelayOptions
	log    *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, opts RelayOptions, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.L()
	}
	return &Relay{
		repo:   repo,
		writer: writer,
		opts:   opts.withDefaults(),
		log:    logger.Named("kafka.producer.relay"),
	}
}

// Run flushes on every tick until ctx is done. A full batch is followed
// immediately by another flush instead of waiting for the next tick.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	r.log.Info("outbox relay started",
		zap.Duration("poll_interval", r.opts.PollInterval),
		zap.Int("batch_size", r.opts.BatchSize),
	)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			for {
				n, err := r.Flush(ctx)
				if err != nil {
					r.log.Error("outbox flush failed", zap.Error(err))
					break
				}
				if n < r.opts.BatchSize || ctx.Err() != nil {
					break
				}
			}
		}
	}
}

// Flush relays one claimed batch and returns how many rows it claimed.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	events, err := r.repo.ClaimDue(ctx, r.opts.BatchSize, r.opts.ClaimLease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]kafkago.Message, len(events))
	for i, e := range events {
		msgs[i] = toMessage(e)
	}
	failures := perMessage(r.writer.WriteMessages(ctx, msgs...), len(msgs))

	sent := 0
	for i, e := range events {
		if err := failures[i]; err != nil {
			r.log.Warn("outbox delivery failed",
				zap.String("outbox_id", e.ID),
				zap.String("event_type", e.EventType),
				zap.Int("attempt", e.RetryCount+1),
				zap.Error(err),
			)
			if e.RetryCount+1 >= r.opts.MaxAttempts {
				r.log.Error("outbox event dead-lettered", zap.String("outbox_id", e.ID), zap.String("topic", e.Topic))
			}
			if err := r.repo.MarkFailed(ctx, e.ID, err.Error(), r.opts.MaxAttempts); err != nil {
				r.log.Error("mark outbox failed", zap.String("outbox_id", e.ID), zap.Error(err))
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, e.ID); err != nil {
			// The lease expires and the event is sent again; consumers are idempotent.
			r.log.Error("mark outbox sent failed", zap.String("outbox_id", e.ID), zap.Error(err))
			continue
		}
		sent++
	}

	r.log.Debug("outbox batch relayed", zap.Int("claimed", len(events)), zap.Int("sent", sent))
	return len(events), nil
}

// perMessage spreads a WriteMessages error over the batch. kafka-go reports
// partial failures as WriteErrors aligned with the input.
func perMessage(err error, n int) []error {
	out := make([]error, n)
	if err == nil {
		return out
	}
	var werrs kafkago.WriteErrors
	if errors.As(err, &werrs) && len(werrs) == n {
		copy(out, werrs)
		return out
	}
	for i := range out {
		out[i] = err
	}
	return out
}
