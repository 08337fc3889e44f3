package response_test

import (
	"corais/shared/failure"
	"corais/transport/http/response"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "failure keeps its code and message",
			err:      failure.Wrap(http.StatusConflict, errors.New("dup"), "já em andamento"),
			wantCode: http.StatusConflict,
			wantMsg:  "já em andamento",
		},
		{
			name:     "plain errors are not leaked",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Erro interno. Por favor, tente novamente.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decode(t, rec)["error"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]int{"nights": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"nights": float64(3)}, decode(t, rec)["data"])
}

func TestWithRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRetryAfter(rec, 0)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}
