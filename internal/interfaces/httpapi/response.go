package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "betting-analytics"

	msgInternalError = "internal server error"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// encodeFailureBody is sent when a payload cannot be encoded, e.g. a NaN float.
var encodeFailureBody = []byte(`{"apiVersion":"` + googleAPIVersion + `","success":false,"message":"` + msgInternalError +
	`","error":{"code":500,"message":"` + msgInternalError + `","status":"INTERNAL","errors":[{"domain":"` + errorDomain +
	`","reason":"internalError","message":"` + msgInternalError + `"}]}}`)

// writeJSON encodes before writing the header so an encode failure still
// produces a 500 instead of an empty body behind the original status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	body, err := sonic.ConfigDefault.Marshal(payload)
	if err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "status", status, "error", err)
		status = http.StatusInternalServerError
		body = encodeFailureBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Default().WarnContext(ctx, "write response failed", "status", status, "error", err)
	}
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, message string, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

// writeResult renders an action result. toDTO is applied to the payload of a
// successful result; failures keep only the action's public message.
func writeResult[T any](ctx context.Context, w http.ResponseWriter, status int, res usecase.Result[T], toDTO func(T) any) {
	if !res.Success {
		writeFailure(ctx, w, res.Err, res.Message)
		return
	}

	var data any
	if v, ok := res.Value(); ok {
		if toDTO != nil {
			data = toDTO(v)
		} else {
			data = v
		}
	}
	writeSuccess(ctx, w, status, res.Message, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeFailure(ctx, w, err, "")
}

func writeFailure(ctx context.Context, w http.ResponseWriter, err error, message string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	detail := msgInternalError
	if mapped.HTTPStatus < http.StatusInternalServerError && err != nil {
		detail = err.Error()
	}
	if message == "" {
		message = detail
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Message:    message,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: detail,
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeFailure(ctx, w, nil, msgInternalError)
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{
			HTTPStatus: http.StatusForbidden,
			Reason:     "forbidden",
			Status:     "PERMISSION_DENIED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
