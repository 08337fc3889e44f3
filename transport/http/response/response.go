package response

import (
	"corais/shared/constant"
	"corais/shared/failure"
	"corais/shared/logger"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

const messageInternalError = "Erro interno. Por favor, tente novamente."

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Only failures carry their
// message to the client; anything else is reported generically.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure

	errMsg := messageInternalError
	if errors.As(err, &fail) {
		errMsg = fail.Message
	}

	response(writer, failure.GetCode(err), Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithRetryAfter is WithRequestLimitExceeded plus a Retry-After hint.
func WithRetryAfter(writer http.ResponseWriter, seconds int) {
	writer.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(max(1, seconds)))
	WithRequestLimitExceeded(writer)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
