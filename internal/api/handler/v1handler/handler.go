// Package v1handler implements the catalog's HTTP endpoints. Handlers decode
// requests, call the registry and render JSON with go-faster/jx.
package v1handler

import (
	"context"
	"errors"
	"heritage/internal/registry"
	"heritage/pkg/logger"
	"heritage/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

type Deps struct {
	Registry registry.Registry
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the rendered form of an error returned by the registry.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
	// Fields lists per-field messages of validation errors.
	Fields serrors.FieldErrors
}

func (e *ErrorResponse) encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Message) })
		if len(e.Fields) > 0 {
			enc.Field("fields", func(enc *jx.Encoder) { encodeFieldErrors(enc, e.Fields) })
		}
	})
}

type kindResponse struct {
	kind    serrors.Kind
	status  int
	message string
}

// kindResponses maps semantic error kinds to HTTP statuses and the message
// used when the error carries none. Order matters: the first match wins.
var kindResponses = []kindResponse{ //nolint: gochecknoglobals
	{serrors.ErrValidation, http.StatusUnprocessableEntity, "invalid input"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrReferentialIntegrity, http.StatusConflict, "resource is still referenced"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
}

// NewError converts err into the response sent to the client. Errors without
// a known kind are logged and reported as internal errors without details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	for _, kr := range kindResponses {
		if !errors.Is(err, kr.kind) {
			continue
		}

		res := &ErrorResponse{StatusCode: kr.status, Code: kr.kind.Error(), Message: kr.message}
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			res.Message = se.Message()
		}
		var fields serrors.FieldErrors
		if errors.As(err, &fields) {
			res.Fields = fields
		}

		return res
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.encode)
}

// NotFound renders unknown routes as JSON.
func (h Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s", r.URL.Path))
}

// MethodNotAllowed renders a 405 as JSON.
func (h Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, (&ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "method not allowed",
	}).encode)
}

// pathID reads the numeric {id} route parameter. Routes constrain it to
// digits, so a failure here means the value overflowed.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrNotFound, "invalid id %q", raw)
	}

	return id, nil
}
