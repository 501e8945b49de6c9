package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/service"
)

// StartReportWatcher consumes the live report feed and hands each new pending
// report to the admin alert service. The subscription has no replay: reports
// filed while the watcher is down are simply missed, which is acceptable for
// a toast-style alert.
func StartReportWatcher(ctx context.Context, feed events.ReportFeed, alerts *service.AdminAlertService, logger *zap.Logger) error {
	if feed == nil || alerts == nil {
		return nil
	}

	reports, err := feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for report := range reports {
			alerts.Notify(ctx, report)
		}
		logger.Info("report watcher stopped")
	}()
	return nil
}
