package app

import (
	"context"
	"errors"

	"go-workforce/internal/config"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer recomputes daily summaries as sessions close, until ctx is done.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Kafka.Broker == "" {
		return errors.New("kafka.broker is required")
	}

	st, err := openStores(cfg, false, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	m, err := st.modules(cfg, logger)
	if err != nil {
		return err
	}

	// Offsets are committed by the handler only after a summary is stored.
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.Kafka.Broker},
		Topic:       events.TimeSessionClosedTopic,
		GroupID:     cfg.Kafka.SessionClosedGroupID,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeSessionClosed(ctx, reader, m.summaries, consumer.Retry{
		Attempts: cfg.Kafka.ConsumerRetries,
		Backoff:  cfg.Kafka.ConsumerRetryBackoff,
	}, logger)
	logger.Named("app.consumer").Info("consumer stopped")
	return nil
}
