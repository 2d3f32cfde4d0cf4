package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
	"github.com/zapponejosh/bengali-calendar-api/internal/config"
	"github.com/zapponejosh/bengali-calendar-api/internal/database"
	"github.com/zapponejosh/bengali-calendar-api/internal/logger"
)

// Store is the festival storage the handlers need. *database.DB implements it.
type Store interface {
	Health(ctx context.Context) error
	FestivalTable(ctx context.Context) (bangla.FestivalTable, error)
	ListFestivals(ctx context.Context) ([]database.Festival, error)
	UpsertFestival(ctx context.Context, key bangla.FestivalKey, name string) (*database.Festival, error)
	DeleteFestival(ctx context.Context, key bangla.FestivalKey) error
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     Store
	cfg    *config.Config
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance using the wall clock.
func NewHandlers(db Store, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		loc:    cfg.Location(),
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to decide today's date.
func (h *Handlers) WithClock(now func() time.Time) *Handlers {
	h.now = now
	return h
}

// today returns the current calendar date in the configured zone.
func (h *Handlers) today() time.Time {
	return bangla.CivilDate(h.now().In(h.loc))
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// =============================================================================
// Response types
// =============================================================================

// DateResponse describes one Gregorian date and its Bengali equivalent.
type DateResponse struct {
	GregorianDate string        `json:"gregorian_date"`
	Bengali       bangla.Date   `json:"bengali"`
	Display       string        `json:"display"`
	Cursor        bangla.Cursor `json:"cursor"`
}

// MonthResponse is a month grid plus navigation and festival context.
type MonthResponse struct {
	*bangla.MonthGrid
	Weekdays  [7]string         `json:"weekdays"`
	Prev      bangla.Cursor     `json:"prev"`
	Next      bangla.Cursor     `json:"next"`
	Festivals []bangla.Festival `json:"festivals"`
}

func newDateResponse(date time.Time) DateResponse {
	b := bangla.FromGregorian(date)
	return DateResponse{
		GregorianDate: date.Format(time.DateOnly),
		Bengali:       b,
		Display:       bangla.FormatToday(date),
		Cursor:        b.Cursor(),
	}
}

// =============================================================================
// Calendar handlers
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, newDateResponse(h.today()))
}

// Convert handles GET /api/v1/convert/{YYYY-MM-DD}
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	dateStr := param(r, "date")

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, newDateResponse(date))
}

// GetMonth handles GET /api/v1/months/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	cursor, ok := parseCursor(w, r)
	if !ok {
		return
	}
	h.writeMonth(w, r, cursor)
}

// NavigateMonth handles GET /api/v1/months/{year}/{month}/{prev|next}
func (h *Handlers) NavigateMonth(w http.ResponseWriter, r *http.Request) {
	cursor, ok := parseCursor(w, r)
	if !ok {
		return
	}

	switch direction := chi.URLParam(r, "direction"); direction {
	case "prev":
		cursor = cursor.Prev()
	case "next":
		cursor = cursor.Next()
	default:
		WriteNotFound(w, fmt.Sprintf("Unknown direction %q. Use prev or next", direction))
		return
	}

	h.writeMonth(w, r, cursor)
}

func (h *Handlers) writeMonth(w http.ResponseWriter, r *http.Request, cursor bangla.Cursor) {
	grid, festivals, ok := h.buildGrid(w, r, cursor)
	if !ok {
		return
	}

	WriteSuccess(w, MonthResponse{
		MonthGrid: grid,
		Weekdays:  bangla.WeekdayNames,
		Prev:      cursor.Prev(),
		Next:      cursor.Next(),
		Festivals: nonNil(festivals.InMonth(cursor.MonthIndex)),
	})
}

// buildGrid loads the festival table and lays out the month at cursor.
// It writes the error response itself and reports false on failure.
func (h *Handlers) buildGrid(w http.ResponseWriter, r *http.Request, cursor bangla.Cursor) (*bangla.MonthGrid, bangla.FestivalTable, bool) {
	festivals, err := h.db.FestivalTable(r.Context())
	if err != nil {
		h.log(r).Error("failed to load festivals", slog.Any("error", err))
		WriteInternalError(w, "Failed to load festivals")
		return nil, nil, false
	}

	grid, err := cursor.Grid(festivals, h.today())
	if err != nil {
		writeCalendarError(w, err)
		return nil, nil, false
	}

	return grid, festivals, true
}

// =============================================================================
// Festival handlers
// =============================================================================

// ListFestivals handles GET /api/v1/festivals
func (h *Handlers) ListFestivals(w http.ResponseWriter, r *http.Request) {
	festivals, err := h.db.ListFestivals(r.Context())
	if err != nil {
		h.log(r).Error("failed to list festivals", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve festivals")
		return
	}

	WriteSuccess(w, map[string]any{
		"festivals": festivals,
		"count":     len(festivals),
	})
}

// PutFestival handles PUT /api/v1/festivals/{month}/{day}
func (h *Handlers) PutFestival(w http.ResponseWriter, r *http.Request) {
	key, ok := parseFestivalKey(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteBadRequest(w, "name is required")
		return
	}

	festival, err := h.db.UpsertFestival(r.Context(), key, req.Name)
	if err != nil {
		h.log(r).Error("failed to store festival", slog.String("key", key.String()), slog.Any("error", err))
		WriteInternalError(w, "Failed to store festival")
		return
	}

	h.log(r).Info("festival stored",
		slog.String("key", key.String()),
		slog.String("name", festival.Name),
	)
	WriteSuccess(w, festival)
}

// DeleteFestival handles DELETE /api/v1/festivals/{month}/{day}
func (h *Handlers) DeleteFestival(w http.ResponseWriter, r *http.Request) {
	key, ok := parseFestivalKey(w, r)
	if !ok {
		return
	}

	if err := h.db.DeleteFestival(r.Context(), key); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Festival not found")
			return
		}
		h.log(r).Error("failed to delete festival", slog.String("key", key.String()), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete festival")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Festival deleted"})
}

// =============================================================================
// Helpers
// =============================================================================

// param returns a path parameter, percent-decoded when the client escaped
// non-ASCII numerals.
func param(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// parseCursor reads {year} and {month} (ASCII or Bengali numerals).
func parseCursor(w http.ResponseWriter, r *http.Request) (bangla.Cursor, bool) {
	year, err := bangla.ParseDigits(param(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", param(r, "year")))
		return bangla.Cursor{}, false
	}

	month, err := bangla.ParseDigits(param(r, "month"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", param(r, "month")))
		return bangla.Cursor{}, false
	}

	cursor := bangla.Cursor{Year: year, MonthIndex: month}
	if err := cursor.Validate(); err != nil {
		writeCalendarError(w, err)
		return bangla.Cursor{}, false
	}
	return cursor, true
}

// parseFestivalKey reads {month} and {day} and validates them together.
func parseFestivalKey(w http.ResponseWriter, r *http.Request) (bangla.FestivalKey, bool) {
	raw := param(r, "day") + "-" + param(r, "month")
	key, err := bangla.ParseFestivalKey(raw)
	if err != nil {
		writeCalendarError(w, err)
		return bangla.FestivalKey{}, false
	}
	return key, true
}

func writeCalendarError(w http.ResponseWriter, err error) {
	if errors.Is(err, bangla.ErrInvalidMonthIndex) {
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidMonthIndex)
		return
	}
	WriteBadRequest(w, err.Error())
}

func nonNil(festivals []bangla.Festival) []bangla.Festival {
	if festivals == nil {
		return []bangla.Festival{}
	}
	return festivals
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
