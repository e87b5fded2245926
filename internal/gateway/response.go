package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskboard/pkg/helpers"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeGRPCError maps a calendar service error onto an HTTP response.
// InvalidArgument carrying encoded field errors becomes a 422 validation response.
func (h *CalendarHandler) writeGRPCError(w http.ResponseWriter, r *http.Request, err error) {
	st, ok := status.FromError(err)
	if !ok {
		h.log.FromContext(r.Context()).WithError(err).Error("Calendar service call failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch st.Code() {
	case codes.InvalidArgument:
		if fields, ok := helpers.DecodeValidationError(st.Message()); ok {
			helpers.WriteValidationErrorResponseFromMap(w, fields, helpers.LocaleFromRequest(r))
			return
		}
		writeError(w, http.StatusBadRequest, st.Message())
	case codes.Unauthenticated:
		writeError(w, http.StatusUnauthorized, st.Message())
	case codes.PermissionDenied:
		writeError(w, http.StatusForbidden, st.Message())
	case codes.NotFound:
		writeError(w, http.StatusNotFound, st.Message())
	case codes.DeadlineExceeded:
		writeError(w, http.StatusGatewayTimeout, st.Message())
	case codes.Unavailable:
		writeError(w, http.StatusServiceUnavailable, "calendar service unavailable")
	default:
		h.log.FromContext(r.Context()).WithField("code", st.Code().String()).Error(st.Message())
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSONBody returns io.EOF for a missing or empty body
func decodeJSONBody(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return io.EOF
	}
	return json.NewDecoder(r.Body).Decode(v)
}
