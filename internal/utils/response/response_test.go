package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-api/internal/service"
)

func fixClock(t *testing.T) time.Time {
	t.Helper()
	at := time.UnixMilli(1_700_000_000_123)
	prev := Now
	Now = func() time.Time { return at }
	t.Cleanup(func() { Now = prev })
	return at
}

func TestWriteErrorMapping(t *testing.T) {
	at := fixClock(t)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", fmt.Errorf("person 9: %w", service.ErrNotFound), http.StatusNotFound, MsgNotFound},
		{"not created", &service.NotCreatedError{Message: "age - Age should be greater than 0;"}, http.StatusBadRequest, "age - Age should be greater than 0;"},
		{"bad request", BadRequest(errors.New("request body is empty")), http.StatusBadRequest, "request body is empty"},
		{"storage failure", errors.New("FindAll: query: database is locked"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, at.UnixMilli(), body.Timestamp)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, http.StatusOK, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
