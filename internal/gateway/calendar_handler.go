package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/metadata"

	"taskboard/internal/calendarpb"
	"taskboard/pkg/helpers"
	"taskboard/pkg/logger"
	"taskboard/pkg/metrics"
)

// UserIDHeader carries the authenticated viewer, set by the upstream auth gateway
const UserIDHeader = "X-User-Id"

type CalendarHandler struct {
	calendarClient calendarpb.CalendarServiceClient
	validator      *helpers.CustomValidator
	log            *logger.Logger
}

func NewCalendarHandler(client calendarpb.CalendarServiceClient, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarClient: client,
		validator:      helpers.NewCustomValidator(),
		log:            log,
	}
}

// Routes registers the calendar endpoints on mux, each instrumented under its own name
func (h *CalendarHandler) Routes(mux *http.ServeMux, m *metrics.Metrics) {
	mux.Handle("/api/calendar/month", m.InstrumentHandler("calendar_month", http.HandlerFunc(h.GetMonth)))
	mux.Handle("/api/calendar/week", m.InstrumentHandler("calendar_week", http.HandlerFunc(h.GetWeek)))
	mux.Handle("/api/calendar/day", m.InstrumentHandler("calendar_day", http.HandlerFunc(h.GetDay)))
	mux.Handle("/api/calendar/projects/visibility", m.InstrumentHandler("calendar_project_visibility", http.HandlerFunc(h.SetProjectVisibility)))
	mux.Handle("/api/calendar/export.ics", m.InstrumentHandler("calendar_export", http.HandlerFunc(h.ExportICS)))
}

// viewQuery is the query string shared by the calendar views
type viewQuery struct {
	Date    string `json:"date" validate:"omitempty,calendar_date"`
	OwnerID string `json:"owner_id"`
	Search  string `json:"search" validate:"max=100"`
}

type visibilityRequest struct {
	ProjectID uint64 `json:"project_id" validate:"required"`
	Visible   *bool  `json:"visible" validate:"required"`
}

// GetMonth handles GET /api/calendar/month
// Query params: date (Jalali or Gregorian), owner_id, search
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	req, ctx, ok := h.viewRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.calendarClient.GetMonth(ctx, req)
	if err != nil {
		h.writeGRPCError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp})
}

// GetWeek handles GET /api/calendar/week
func (h *CalendarHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	req, ctx, ok := h.viewRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.calendarClient.GetWeek(ctx, req)
	if err != nil {
		h.writeGRPCError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp})
}

// GetDay handles GET /api/calendar/day
func (h *CalendarHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	req, ctx, ok := h.viewRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.calendarClient.GetDay(ctx, req)
	if err != nil {
		h.writeGRPCError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp})
}

// ExportICS handles GET /api/calendar/export.ics
// Responds with the month window as an iCalendar attachment
func (h *CalendarHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	req, ctx, ok := h.viewRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.calendarClient.ExportMonth(ctx, req)
	if err != nil {
		h.writeGRPCError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.Filename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, resp.Content)
}

// SetProjectVisibility handles PUT /api/calendar/projects/visibility
// Body: {"project_id": 3, "visible": false}
func (h *CalendarHandler) SetProjectVisibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	viewerID, ok := viewerFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req visibilityRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return
	}

	if !h.validate(w, r, &req) {
		return
	}

	resp, err := h.calendarClient.SetProjectVisibility(outgoingContext(r), &calendarpb.SetProjectVisibilityRequest{
		ViewerID:  viewerID,
		ProjectID: req.ProjectID,
		Visible:   *req.Visible,
	})
	if err != nil {
		h.writeGRPCError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp})
}

// viewRequest checks method and viewer, validates the query string and builds the gRPC request.
// It writes the error response itself and returns false when the request cannot proceed.
func (h *CalendarHandler) viewRequest(w http.ResponseWriter, r *http.Request) (*calendarpb.ViewRequest, context.Context, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, nil, false
	}

	viewerID, ok := viewerFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthenticated")
		return nil, nil, false
	}

	query := r.URL.Query()
	q := viewQuery{
		Date:    query.Get("date"),
		OwnerID: query.Get("owner_id"),
		Search:  query.Get("search"),
	}
	if !h.validate(w, r, &q) {
		return nil, nil, false
	}

	var ownerID uint64
	if q.OwnerID != "" {
		id, err := helpers.ParseInt(q.OwnerID)
		if err != nil || id <= 0 {
			locale := helpers.LocaleFromRequest(r)
			helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
				"owner_id": fmt.Sprintf(helpers.GetLocaleTranslations(locale).Invalid, "owner id"),
			}, locale)
			return nil, nil, false
		}
		ownerID = uint64(id)
	}

	return &calendarpb.ViewRequest{
		ViewerID: viewerID,
		OwnerID:  ownerID,
		Date:     q.Date,
		Search:   q.Search,
	}, outgoingContext(r), true
}

func (h *CalendarHandler) validate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := h.validator.Validate(v)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		helpers.WriteValidationErrorResponse(w, validationErrors, helpers.LocaleFromRequest(r))
		return false
	}

	h.log.FromContext(r.Context()).WithError(err).Error("Request validation failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
	return false
}

// viewerFromRequest reads the viewer id set by the auth gateway
func viewerFromRequest(r *http.Request) (uint64, bool) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return 0, false
	}
	id, err := helpers.ParseInt(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint64(id), true
}

// outgoingContext forwards the request id to the calendar service as gRPC metadata
func outgoingContext(r *http.Request) context.Context {
	ctx := r.Context()
	if id := logger.RequestIDFromContext(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", id)
	}
	return ctx
}
