package dailysummary

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultNightlySpec runs shortly after midnight so late clock-outs land first.
const DefaultNightlySpec = "15 0 * * *"

// ScheduleNightly registers RunNightly for yesterday on the given cron.
// Each run gets its own timeout so a stuck store cannot pile up runs.
func ScheduleNightly(c *cron.Cron, svc Service, spec string, timeout time.Duration, logger *zap.Logger) (cron.EntryID, error) {
	if spec == "" {
		spec = DefaultNightlySpec
	}
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("dailysummary.nightly")

	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		started := time.Now()
		report, err := svc.RunNightly(ctx, time.Time{})
		if err != nil {
			log.Error("nightly reconciliation failed", zap.Error(err))
			return
		}
		log.Info("nightly reconciliation done",
			zap.Int("orgs", report.Orgs),
			zap.Int("applied", report.Applied),
			zap.Int("failed", report.Failed),
			zap.Strings("skipped", report.Skipped),
			zap.Duration("took", time.Since(started)),
		)
	})
}
