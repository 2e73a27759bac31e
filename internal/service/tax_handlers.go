package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/model"
)

// defaultTaxRate applies when a business has no stored tax config.
const defaultTaxRate = 25.0

func (s *DashboardService) handleGetTaxConfig(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	cfg, err := s.store.GetTaxConfig(r.Context(), businessID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSON(w, http.StatusOK, &model.TaxConfig{BusinessID: businessID, Rate: defaultTaxRate})
			return
		}
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *DashboardService) handleUpdateTaxConfig(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req struct {
		Rate float64 `json:"rate"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Rate < 0 || req.Rate > 100 {
		writeError(w, http.StatusBadRequest, "rate must be between 0 and 100")
		return
	}

	cfg := &model.TaxConfig{BusinessID: businessID, Rate: req.Rate}
	if err := s.store.UpdateTaxConfig(r.Context(), businessID, cfg); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

type taxEstimateResponse struct {
	BusinessID    string    `json:"businessId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TotalRevenue  float64   `json:"totalRevenue"`
	TotalExpenses float64   `json:"totalExpenses"`
	NetProfit     float64   `json:"netProfit"`
	TaxRate       float64   `json:"taxRate"`
	EstimatedTax  float64   `json:"estimatedTax"`
}

// handleTaxEstimate computes a simple provision: net profit over the period
// times the configured flat rate. A loss estimates zero tax.
func (s *DashboardService) handleTaxEstimate(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	start, end, err := auth.ParseDateRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if start == nil || end == nil {
		qStart, qEnd := currentQuarter(time.Now().UTC())
		if start == nil {
			start = &qStart
		}
		if end == nil {
			end = &qEnd
		}
	}

	rate := defaultTaxRate
	if cfg, cfgErr := s.store.GetTaxConfig(r.Context(), businessID); cfgErr == nil {
		rate = cfg.Rate
	}

	var totalRevenue, totalExpenses float64

	var pageToken string
	for {
		revenues, nextToken, listErr := s.store.ListRevenues(r.Context(), businessID, start, end, historyPageSize, pageToken)
		if listErr != nil {
			writeStoreError(w, listErr)
			return
		}
		for _, rev := range revenues {
			totalRevenue += rev.Amount
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	pageToken = ""
	for {
		expenses, nextToken, listErr := s.store.ListExpenses(r.Context(), businessID, "", start, end, historyPageSize, pageToken)
		if listErr != nil {
			writeStoreError(w, listErr)
			return
		}
		for _, exp := range expenses {
			totalExpenses += exp.Amount
		}
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	netProfit := totalRevenue - totalExpenses
	estimatedTax := 0.0
	if netProfit > 0 {
		estimatedTax = netProfit * rate / 100
	}

	writeJSON(w, http.StatusOK, taxEstimateResponse{
		BusinessID:    businessID,
		StartDate:     *start,
		EndDate:       *end,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		TaxRate:       rate,
		EstimatedTax:  estimatedTax,
	})
}

// currentQuarter returns the UTC bounds of the calendar quarter containing t.
func currentQuarter(t time.Time) (time.Time, time.Time) {
	quarterStart := time.Month((int(t.Month())-1)/3*3 + 1)
	start := time.Date(t.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).Add(-time.Nanosecond)
	return start, end
}
