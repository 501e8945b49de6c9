package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// AdminAlertService surfaces newly filed reports to administrators: a log
// line today, with the email dispatch left as an integration stub.
type AdminAlertService struct {
	logger     *zap.Logger
	alertEmail string
}

// NewAdminAlertService creates the service. An empty alertEmail disables the
// email stub entirely.
func NewAdminAlertService(logger *zap.Logger, alertEmail string) *AdminAlertService {
	return &AdminAlertService{logger: logger, alertEmail: alertEmail}
}

// Notify announces a new pending report.
func (a *AdminAlertService) Notify(_ context.Context, report domain.Report) {
	a.logger.Info("admin notification triggered",
		zap.String("report_id", report.ID),
		zap.String("reported_user", report.ReportedUserName),
		zap.String("reason", report.Reason),
	)
	a.sendEmailStub(report)
}

// sendEmailStub marks where outbound email delivery would go. Actual
// delivery stays out of scope; the stub only logs the would-be send.
func (a *AdminAlertService) sendEmailStub(report domain.Report) {
	if strings.TrimSpace(a.alertEmail) == "" {
		return
	}
	a.logger.Debug("sendEmailStub",
		zap.String("to", a.alertEmail),
		zap.String("subject", "[ALERT] New User Report: "+report.Reason),
		zap.String("report_id", report.ID),
	)
}
