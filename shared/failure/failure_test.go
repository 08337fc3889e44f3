package failure_test

import (
	"corais/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidPageParam.Code)
	assert.Equal(t, "invalid page parameter", failure.InvalidPageParam.Message)
	assert.Equal(t, http.StatusBadRequest, failure.InvalidLimitParam.Code)
	assert.Equal(t, "invalid limit parameter", failure.InvalidLimitParam.Message)
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				assert.NoError(t, result)
				return
			}

			var f *failure.Failure
			assert.True(t, errors.As(result, &f))
			assert.Equal(t, tt.expected.Code, f.Code)
			assert.Equal(t, tt.expected.Message, f.Message)
			assert.ErrorIs(t, result, tt.input)
		})
	}
}

func TestInternalError(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil, "Erro ao salvar"))

	cause := errors.New("database connection failed")
	err := failure.InternalError(cause, "Erro ao salvar")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.EqualError(t, err, "Erro ao salvar")
	assert.NotContains(t, err.Error(), "database")
	assert.ErrorIs(t, err, cause)
}

func TestConflict(t *testing.T) {
	sentinel := errors.New("submission in flight")
	err := failure.Conflict(sentinel, "Já existe uma reserva em andamento")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.EqualError(t, err, "Já existe uma reserva em andamento")
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, errors.Unwrap(failure.Conflict(nil, "x")))
}

func TestWrap(t *testing.T) {
	sentinel := errors.New("missing required field")
	err := failure.Wrap(http.StatusBadRequest, sentinel, "Por favor, preencha todos os campos obrigatórios")

	assert.EqualError(t, err, "Por favor, preencha todos os campos obrigatórios")
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	wrapped := fmt.Errorf("failed to submit booking: %w", err)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(wrapped))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("custom bad request"), code: http.StatusBadRequest, message: "custom bad request"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "unavailable", err: failure.Unavailable("catalog down"), code: http.StatusServiceUnavailable, message: "catalog down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(&failure.Failure{Code: http.StatusBadRequest}))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("regular error")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}
