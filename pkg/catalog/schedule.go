package catalog

import (
	"context"
	"fmt"

	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/robfig/cron/v3"
)

// ScheduleReload reloads the dataset file on a cron schedule, either a
// five-field spec or a descriptor such as "@every 5m". It suits mounts where
// file events are not delivered. The returned function stops the schedule
// and waits for a running reload to finish.
func (c *Catalog) ScheduleReload(spec string) (observability.ShutdownFunc, error) {
	if c.source.Path == "" {
		return nil, ErrNotWatchable
	}

	sched := cron.New()
	_, err := sched.AddFunc(spec, func() {
		defer observability.RecoverPanic(c.logger, "scheduled dataset reload")
		// Reload logs its own failures and keeps the previous table.
		_ = c.Reload()
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}

	sched.Start()
	c.logger.WithField("schedule", spec).Info("Scheduled dataset reloads")

	return func(ctx context.Context) error {
		stopped := sched.Stop()
		select {
		case <-stopped.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, nil
}
