package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/axionlabs/axion-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func TestAppErrorError(t *testing.T) {
	withDetail := ValidationFailed("Invalid request body", "rating must be 1-5")
	assert.Equal(t, "VALIDATION_ERROR: Invalid request body (rating must be 1-5)", withDetail.Error())

	withoutDetail := AuthenticationFailed("Authentication credentials were not provided")
	assert.Equal(t, "AUTHENTICATION_ERROR: Authentication credentials were not provided", withoutDetail.Error())
}

func TestConstructorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("article", "a-1").GetHTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ValidationFailed("bad", "").GetHTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, AuthenticationFailed("no").GetHTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, RateLimitExceeded("slow down", 30).GetHTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewDatabaseError(stderrors.New("boom")).GetHTTPStatus())
}

func TestNotFoundCarriesID(t *testing.T) {
	err := NotFound("feedback", "f-1")
	assert.Equal(t, "feedback not found", err.Message)
	assert.Equal(t, "ID: f-1", err.Detail)
}

func TestNewExternalServiceError(t *testing.T) {
	raw := stderrors.New("smtp is down")
	err := NewExternalServiceError("resend", raw)

	assert.Equal(t, ExternalServiceError, err.Type)
	assert.Equal(t, "resend request failed", err.Message)
	assert.Equal(t, http.StatusBadGateway, err.GetHTTPStatus())
	assert.ErrorIs(t, err, raw)
}

func TestNewDatabaseErrorSanitizes(t *testing.T) {
	raw := stderrors.New("connection refused to 10.1.2.3")
	err := NewDatabaseError(raw)

	require.NotContains(t, err.Message, "10.1.2.3")
	require.NotContains(t, err.Detail, "10.1.2.3")
	assert.ErrorIs(t, err, raw)
}
