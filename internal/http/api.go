package http

import (
	"context"
	"net/http"
	"time"

	"foodlog/internal/core"
	applog "foodlog/internal/log"
)

type entryJSON struct {
	Food     string `json:"food"`
	Calories int64  `json:"calories"`
	Date     string `json:"date"`
}

type entriesResponse struct {
	Entries []entryJSON `json:"entries"`
	Count   int         `json:"count"`
	Total   int64       `json:"total"`
}

type totalsResponse struct {
	Date     string `json:"date"`
	Calories int64  `json:"calories"`
	Total    int64  `json:"total"`
}

type dayJSON struct {
	Date     string `json:"date"`
	Calories int64  `json:"calories"`
}

type calendarResponse struct {
	Days []dayJSON `json:"days"`
}

type errorJSON struct {
	Error string `json:"error"`
}

// handleAPIEntries lists the log in insertion order.
func (s *Server) handleAPIEntries(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}
	svc := s.session.Service()
	entries, err := svc.Entries(r.Context())
	if err != nil {
		s.failJSON(w, r, "Failed to list entries", err)
		return
	}

	out := entriesResponse{Entries: make([]entryJSON, 0, len(entries)), Count: len(entries)}
	for _, e := range entries {
		out.Entries = append(out.Entries, entryJSON{Food: e.Food, Calories: e.Calories, Date: e.Date.String()})
	}
	out.Total = core.TotalCalories(entries)
	writeJSON(w, http.StatusOK, out)
}

// handleAPITotals reports the total for ?date=Month+Day (default today) and
// the overall total.
func (s *Server) handleAPITotals(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}
	svc := s.session.Service()
	date, err := ParseDateParam(r.URL.Query(), svc.Today())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	day, err := svc.TotalCaloriesForDate(r.Context(), date)
	if err != nil {
		s.failJSON(w, r, "Failed to total date", err)
		return
	}
	total, err := svc.TotalCalories(r.Context())
	if err != nil {
		s.failJSON(w, r, "Failed to total log", err)
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{Date: date.String(), Calories: day, Total: total})
}

// handleAPICalendar returns all 372 month/day slots with their totals.
func (s *Server) handleAPICalendar(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}
	days, err := s.session.Service().Calendar(r.Context())
	if err != nil {
		s.failJSON(w, r, "Failed to build calendar", err)
		return
	}

	out := calendarResponse{Days: make([]dayJSON, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, dayJSON{Date: d.Date.String(), Calories: d.Calories})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

// handleReady checks that templates are loaded and the store answers.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if n, err := s.session.Service().Len(ctx); err != nil {
		checks["store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = map[string]any{"status": "ok", "entries": n}
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

func (s *Server) failJSON(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.ErrorContext(r.Context(), msg, applog.FieldError, err)
	writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "internal error"})
}
