package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodger-platform/admin-service/internal/domain"
	"github.com/lodger-platform/admin-service/internal/events"
	"github.com/lodger-platform/admin-service/internal/identity"
	"github.com/lodger-platform/admin-service/internal/repository"
	"github.com/lodger-platform/admin-service/internal/service"
)

type consoleResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newConsoleApp(t *testing.T) (*fiber.App, *repository.InMemoryUserRepository) {
	t.Helper()
	logger := zap.NewNop()

	users := repository.NewInMemoryUserRepository()
	accounts := service.NewAccountService(service.AccountDependencies{
		UserRepo:         users,
		MessageRepo:      repository.NewInMemoryMessageRepository(),
		NotificationRepo: repository.NewInMemoryNotificationRepository(),
		PropertyRepo:     repository.NewInMemoryPropertyRepository(),
		LeaseRepo:        repository.NewInMemoryLeaseRepository(),
		ReportRepo:       repository.NewInMemoryReportRepository(),
		Provider:         identity.NewInMemoryProvider(),
		Dispatcher:       events.NewInMemoryDispatcher(),
		Logger:           logger,
	})
	moderation := service.NewModerationService("SYSTEM_MODERATION", service.ModerationDependencies{
		ReportRepo:  repository.NewInMemoryReportRepository(),
		MessageRepo: repository.NewInMemoryMessageRepository(),
		Logger:      logger,
	})
	alerts := service.NewAdminAlertService(logger, "admin@lodger.com")

	usersHandler := NewUsersHandler(accounts)
	reportsHandler := NewReportsHandler(moderation, alerts)

	app := fiber.New()
	app.Post("/api/delete-user", usersHandler.DeleteUser)
	app.Post("/api/notify-admin", reportsHandler.NotifyAdmin)
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, consoleResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed consoleResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestDeleteUserEndpointSuccess(t *testing.T) {
	app, users := newConsoleApp(t)
	users.Put(domain.User{ID: "u1", Name: "Sam"})

	resp, body := postJSON(t, app, "/api/delete-user", fiber.Map{"userId": "u1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
	require.Empty(t, body.Error)

	_, err := users.GetByID(context.Background(), "u1")
	require.Error(t, err)
}

func TestDeleteUserEndpointMissingID(t *testing.T) {
	app, _ := newConsoleApp(t)

	resp, body := postJSON(t, app, "/api/delete-user", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.False(t, body.Success)
	require.Equal(t, "User ID is required", body.Error)
}

func TestNotifyAdminEndpointSuccess(t *testing.T) {
	app, _ := newConsoleApp(t)

	resp, body := postJSON(t, app, "/api/notify-admin", fiber.Map{
		"report": fiber.Map{
			"id":               "rep-1",
			"reportedUserName": "Bad Landlord",
			"reason":           "Spam",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
}

func TestNotifyAdminEndpointMissingReport(t *testing.T) {
	app, _ := newConsoleApp(t)

	resp, body := postJSON(t, app, "/api/notify-admin", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.False(t, body.Success)
	require.NotEmpty(t, body.Error)
}
