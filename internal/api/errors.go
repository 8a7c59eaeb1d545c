package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dimensional/internal/expr"
	"dimensional/internal/sim"
	"dimensional/si"
	"dimensional/units"
)

// ErrInvalidRequest is wrapped by malformed or out-of-range request bodies.
var ErrInvalidRequest = errors.New("api: invalid request")

// statusFor maps an error to the HTTP status returned to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, si.ErrDimensionMismatch),
		errors.Is(err, si.ErrNotDimensionless):
		return http.StatusUnprocessableEntity

	case errors.Is(err, expr.ErrSyntax),
		errors.Is(err, units.ErrSyntax),
		errors.Is(err, units.ErrUnknownUnit),
		errors.Is(err, sim.ErrInvalidConfig),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	var de *si.DimensionError
	if errors.As(err, &de) {
		s.metrics.dimensionErrors.WithLabelValues(de.Op).Inc()
	}

	msg := err.Error()
	entry := s.requestLog(r).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
		msg = http.StatusText(status)
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, errorResponse{Error: msg, TraceID: traceID(r.Context())})
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json: %v", ErrInvalidRequest, err)
	}
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}
