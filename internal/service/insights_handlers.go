package service

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/model"
)

// handleGenerateInsights runs the full analysis pass over the business's
// expense history and replaces the stored insight set with the fresh
// findings. Acknowledged state does not survive a regeneration.
func (s *DashboardService) handleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	threshold := 2.0
	if v := r.URL.Query().Get("threshold"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid threshold")
			return
		}
		threshold = parsed
	}

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var totalRevenue float64
	for _, rev := range hist.Revenues {
		totalRevenue += rev.Amount
	}

	var found []model.Insight
	found = append(found, s.analyzer.DetectAnomalies(hist.Expenses, threshold)...)
	found = append(found, s.analyzer.FindDuplicateExpenses(hist.Expenses)...)
	found = append(found, s.analyzer.CompareToBenchmarks(hist.Expenses, totalRevenue)...)

	if err := s.store.DeleteInsightsForBusiness(r.Context(), businessID); err != nil {
		writeStoreError(w, err)
		return
	}

	now := time.Now().UTC()
	insightsOut := make([]*model.Insight, 0, len(found))
	for i := range found {
		insight := found[i]
		insight.ID = uuid.New().String()
		insight.BusinessID = businessID
		insight.CreatedAt = now
		if err := s.store.CreateInsight(r.Context(), &insight); err != nil {
			log.Printf("[Insights] failed to persist insight for business %s: %v", businessID, err)
			continue
		}
		insightsOut = append(insightsOut, &insight)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"insights":       insightsOut,
		"generatedCount": len(insightsOut),
	})
}

func (s *DashboardService) handleListInsights(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	unacknowledgedOnly := q.Get("unacknowledgedOnly") == "true"
	pageSize := auth.NormalizePageSize(parseInt32(q.Get("pageSize")))

	list, nextToken, err := s.store.ListInsights(r.Context(), businessID, unacknowledgedOnly, pageSize, q.Get("pageToken"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if list == nil {
		list = []*model.Insight{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"insights":      list,
		"nextPageToken": nextToken,
	})
}

func (s *DashboardService) handleAcknowledgeInsight(w http.ResponseWriter, r *http.Request) {
	insightID := chi.URLParam(r, "insightId")
	if err := s.store.AcknowledgeInsight(r.Context(), insightID); err != nil {
		writeStoreError(w, err)
		return
	}
	insight, err := s.store.GetInsight(r.Context(), insightID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insight)
}

// handleCostSavings reports per-category spend reduction recommendations.
// Results are computed on demand and never persisted.
func (s *DashboardService) handleCostSavings(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	optimizations := s.analyzer.FindCostSavings(hist.Expenses)

	var totalSavings float64
	for _, opt := range optimizations {
		totalSavings += opt.PotentialSavings
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"optimizations":         optimizations,
		"totalPotentialSavings": totalSavings,
	})
}

// handleSpendingTrends reports per-category monthly spending patterns.
func (s *DashboardService) handleSpendingTrends(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	hist, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	patterns := s.analyzer.AnalyzeTrends(hist.Expenses)
	writeJSON(w, http.StatusOK, map[string]any{"patterns": patterns})
}
