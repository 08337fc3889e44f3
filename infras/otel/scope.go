package otel

import (
	"corais/shared/constant"
	"corais/shared/failure"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	attrErrorCode    = "error.http_code"
	attrErrorMessage = "error.message"

	eventRejected = "request rejected"
)

type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError tags the span with the failure code. Rejections below 500, such
// as an incomplete reservation form or a duplicate submission, are recorded
// as an event and leave the span status untouched.
func (s *scopeImpl) TraceError(err error) {
	if err == nil {
		return
	}

	code := failure.GetCode(err)
	s.span.SetAttributes(attribute.Int(attrErrorCode, code))

	if code < http.StatusInternalServerError {
		s.span.AddEvent(eventRejected, oteltrace.WithAttributes(attribute.String(attrErrorMessage, err.Error())))

		return
	}

	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetAttribute maps value onto an attribute type. Stay dates are written as yyyy-MM-dd.
func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(constant.DateOnlyFormat))
	case *time.Time:
		if val == nil {
			return attribute.String(key, constant.Empty)
		}

		return attribute.String(key, val.Format(constant.DateOnlyFormat))
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))

	for key, value := range attributes {
		kvs = append(kvs, toAttribute(key, value))
	}

	s.span.SetAttributes(kvs...)
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
