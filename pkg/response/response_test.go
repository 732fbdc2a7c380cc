package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/pkg/apperr"
	"github.com/webnexa/api/pkg/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"hello": "world"}, body["data"])
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusBadRequest, "Invalid request body")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestUnauthenticatedBodyIsFixed(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Unauthenticated(rec)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Please authenticate"}`, rec.Body.String())
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, map[string]string{"email": "The email field must be a valid email address."})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	assert.Contains(t, body["errors"], "email")
}

func TestFromErrorMapsAppErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.InvalidInput("Status must be one of: new, contacted, completed"), 400, "Status must be one of: new, contacted, completed"},
		{apperr.Conflict("Username already exists"), 400, "Username already exists"},
		{apperr.Unauthenticated(), 401, "Please authenticate"},
		{apperr.InvalidCredentials(), 401, "Invalid username or password"},
		{apperr.Server(errors.New("mongo: socket closed")), 500, "Something went wrong"},
		{errors.New("bare error"), 500, "Something went wrong"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		response.FromError(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, tc.message, body["message"])
	}
}

func TestServerErrorNeverLeaksCause(t *testing.T) {
	rec := httptest.NewRecorder()
	response.FromError(rec, apperr.Server(errors.New("dial tcp 10.0.0.3:27017: connection refused")))

	assert.NotContains(t, rec.Body.String(), "27017")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
