package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/search"
)

// handleSearch proxies a transaction query to the Algolia index, always
// scoped to the business in the URL.
func (s *DashboardService) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.searchClient == nil {
		writeError(w, http.StatusServiceUnavailable, "search is not configured")
		return
	}

	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	start, end, err := auth.ParseDateRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := search.Params{
		Query:      q.Get("q"),
		BusinessID: businessID,
		Category:   q.Get("category"),
		StartDate:  start,
		EndDate:    end,
		Page:       int(parseInt32(q.Get("page"))),
		PageSize:   int(parseInt32(q.Get("pageSize"))),
	}
	if v := q.Get("amountMin"); v != "" {
		if f, perr := strconv.ParseFloat(v, 64); perr == nil {
			params.AmountMin = f
		}
	}
	if v := q.Get("amountMax"); v != "" {
		if f, perr := strconv.ParseFloat(v, 64); perr == nil {
			params.AmountMax = f
		}
	}
	switch q.Get("kind") {
	case "revenue":
		params.Kind = model.KindRevenue
	case "expense":
		params.Kind = model.KindExpense
	case "":
	default:
		writeError(w, http.StatusBadRequest, "kind must be revenue or expense")
		return
	}

	resp, err := s.searchClient.Search(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
