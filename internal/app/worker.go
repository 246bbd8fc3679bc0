package app

import (
	"context"
	"errors"

	"go-workforce/internal/config"
	"go-workforce/internal/dailysummary"
	"go-workforce/internal/messaging/kafka/producer"
	"go-workforce/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunWorker relays the outbox to kafka and runs the nightly shift-rule batch
// until ctx is done.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Kafka.Broker == "" {
		return errors.New("kafka.broker is required")
	}

	st, err := openStores(cfg, false, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	m, err := st.modules(cfg, logger)
	if err != nil {
		return err
	}

	scheduler := cron.New(cron.WithLogger(cron.DiscardLogger))
	if _, err := dailysummary.ScheduleNightly(scheduler, m.summaries, cfg.Scheduler.NightlySpec, cfg.Scheduler.BatchLockTTL, logger); err != nil {
		return err
	}

	relay := producer.NewRelay(m.outbox, writer, producer.RelayOptions{
		PollInterval: cfg.Kafka.OutboxPollInterval,
		BatchSize:    cfg.Kafka.OutboxBatchSize,
		ClaimLease:   cfg.Kafka.OutboxClaimLease,
		MaxAttempts:  cfg.Kafka.OutboxMaxAttempts,
	}, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		relay.Run(gctx)
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	err = g.Wait()
	logger.Named("app.worker").Info("worker stopped")
	return err
}
