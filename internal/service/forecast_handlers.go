package service

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/forecast"
	"github.com/bizpulse/backend/internal/ingest"
	"github.com/bizpulse/backend/internal/model"
)

const historyPageSize = 500

// loadHistory pages through the business's full revenue and expense history
// and returns it sanitized for the engines.
func (s *DashboardService) loadHistory(ctx context.Context, businessID string) (forecast.HistoricalData, error) {
	var hist forecast.HistoricalData

	var pageToken string
	for {
		revenues, nextToken, err := s.store.ListRevenues(ctx, businessID, nil, nil, historyPageSize, pageToken)
		if err != nil {
			return hist, err
		}
		for _, rev := range revenues {
			hist.Revenues = append(hist.Revenues, rev.Transaction())
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	pageToken = ""
	for {
		expenses, nextToken, err := s.store.ListExpenses(ctx, businessID, "", nil, nil, historyPageSize, pageToken)
		if err != nil {
			return hist, err
		}
		for _, exp := range expenses {
			hist.Expenses = append(hist.Expenses, exp.Transaction())
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	hist.Revenues = ingest.SanitizeTransactions(hist.Revenues)
	hist.Expenses = ingest.SanitizeTransactions(hist.Expenses)
	return hist, nil
}

// loadActiveRecurring pages through the business's active schedules.
func (s *DashboardService) loadActiveRecurring(ctx context.Context, businessID string) ([]model.RecurringTransaction, error) {
	var out []model.RecurringTransaction
	var pageToken string
	for {
		rts, nextToken, err := s.store.ListRecurringTransactions(ctx, businessID, true, historyPageSize, pageToken)
		if err != nil {
			return nil, err
		}
		for _, rt := range rts {
			out = append(out, *rt)
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}
	return out, nil
}

type generateForecastRequest struct {
	PeriodDays     int     `json:"periodDays"`
	CurrentBalance float64 `json:"currentBalance"`
}

// handleGenerateForecast builds a fresh cash-flow projection from the
// business's history and active schedules and persists it as the latest.
func (s *DashboardService) handleGenerateForecast(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req generateForecastRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PeriodDays <= 0 {
		req.PeriodDays = 30
	}
	if req.PeriodDays > 365 {
		writeError(w, http.StatusBadRequest, "periodDays must be at most 365")
		return
	}

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	recurring, err := s.loadActiveRecurring(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	fc := forecast.GenerateForecast(hist, recurring, req.PeriodDays, req.CurrentBalance, time.Now().UTC())
	fc.ID = uuid.New().String()
	fc.BusinessID = businessID
	fc.CreatedAt = time.Now().UTC()

	if err := s.store.SaveForecast(r.Context(), &fc); err != nil {
		// The projection is still valid; persistence is best effort.
		log.Printf("[Forecast] failed to save forecast for business %s: %v", businessID, err)
	}

	writeJSON(w, http.StatusOK, fc)
}

func (s *DashboardService) handleGetLatestForecast(w http.ResponseWriter, r *http.Request) {
	fc, err := s.store.GetLatestForecast(r.Context(), chi.URLParam(r, "businessId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

// handleSeasonalFactors reports month-of-year revenue multipliers from the
// business's revenue history.
func (s *DashboardService) handleSeasonalFactors(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	factors := forecast.CalculateSeasonalFactors(hist.Revenues)
	writeJSON(w, http.StatusOK, map[string]any{"seasonalFactors": factors})
}

// handleRevenueTrend reports the weekly revenue trend from an OLS fit over
// the business's revenue history.
func (s *DashboardService) handleRevenueTrend(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	trend := forecast.ApplyTrendAnalysis(hist.Revenues)
	writeJSON(w, http.StatusOK, trend)
}
