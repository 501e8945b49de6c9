package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	err := NewInvalidArgument("bad input", map[string]any{"field": "reason"})

	domainErr := ToDomainError(err)
	require.Equal(t, "INVALID_ARGUMENT", domainErr.Code)
	require.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	require.Equal(t, "reason", domainErr.Details["field"])
}

func TestToDomainErrorWrapsNoRows(t *testing.T) {
	domainErr := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	require.Equal(t, "NOT_FOUND", domainErr.Code)
	require.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("disk on fire"))
	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	require.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestIsCode(t *testing.T) {
	err := NewForbidden("nope")
	require.True(t, IsCode(err, "FORBIDDEN"))
	require.False(t, IsCode(err, "NOT_FOUND"))
	require.False(t, IsCode(errors.New("plain"), "FORBIDDEN"))
}

func TestExternalFailureUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalFailure("report store", cause)

	require.True(t, IsCode(err, "EXTERNAL_FAILURE"))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "report store unavailable")
}
