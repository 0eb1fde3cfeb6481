// Package api provides the HTTP handlers for the commerce lake REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"commerce-lake/internal/domain"
	"commerce-lake/internal/service/analytics"
	"commerce-lake/internal/service/enrich"
)

// Handler exposes the enrichment and analytics services over HTTP.
type Handler struct {
	enrich    *enrich.Service
	analytics *analytics.Service
	runs      domain.RunRepository
	logger    *slog.Logger
}

// NewHandler creates a Handler with its service dependencies.
func NewHandler(enrichSvc *enrich.Service, analyticsSvc *analytics.Service, runs domain.RunRepository, logger *slog.Logger) *Handler {
	return &Handler{enrich: enrichSvc, analytics: analyticsSvc, runs: runs, logger: logger}
}

func parseDate(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrValidation("invalid date %q (want YYYY-MM-DD)", s)
	}
	return day, nil
}

// HandleEnrich enriches one date. An optional ?entity= query restricts the
// run to a single entity type.
func (h *Handler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	day, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, err)
		return
	}

	if raw := r.URL.Query().Get("entity"); raw != "" {
		entity, err := domain.ParseEntityType(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		t, err := h.enrich.Enrich(r.Context(), entity, day)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"entity":  entity,
			"date":    day.Format("2006-01-02"),
			"rows":    t.Len(),
			"columns": len(t.Columns()),
		})
		return
	}

	res, err := h.enrich.EnrichAll(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type stockRequest struct {
	InitialStock map[string]int64 `json:"initial_stock"`
}

// HandleStock computes the stock depletion report for one date, given the
// initial stock per product in the request body.
func (h *Handler) HandleStock(w http.ResponseWriter, r *http.Request) {
	day, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	initial := make(map[int64]int64, len(req.InitialStock))
	for k, v := range req.InitialStock {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			writeError(w, domain.ErrValidation("invalid product id %q", k))
			return
		}
		initial[id] = v
	}

	levels, err := h.analytics.StockDepletion(r.Context(), day, initial)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":   day.Format("2006-01-02"),
		"levels": levels,
	})
}

// HandleNewCustomers tracks first-time customers over ?start=..&end=..
func (h *Handler) HandleNewCustomers(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := h.analytics.NewCustomers(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleMonthlyRevenue computes the monthly revenue rollup.
func (h *Handler) HandleMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, domain.ErrValidation("invalid year %q", chi.URLParam(r, "year")))
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, domain.ErrValidation("invalid month %q", chi.URLParam(r, "month")))
		return
	}

	rollup, err := h.analytics.MonthlyRevenue(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollup)
}

// HandleDailySummary returns the daily summary, or 204 when no enriched
// order partition exists for the date.
func (h *Handler) HandleDailySummary(w http.ResponseWriter, r *http.Request) {
	day, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, err)
		return
	}

	var summary domain.DailySummary
	var found bool
	if r.Method == http.MethodPost {
		summary, found, err = h.analytics.WriteDailySummary(r.Context(), day)
	} else {
		summary, found, err = h.analytics.DailySummary(r.Context(), day)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleListRuns returns recent enrichment runs, newest first.
func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, domain.ErrValidation("invalid limit %q", v))
			return
		}
		limit = n
	}

	runs, err := h.runs.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// HandleHealth is the liveness probe.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
