package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/ingest"
	"github.com/bizpulse/backend/internal/model"
)

// Request amounts and dates use the ingest coercion types so client payload
// variants (string amounts, epoch seconds, {"seconds": n} timestamps) are
// normalized at the decoding boundary.
type createRevenueRequest struct {
	Amount      ingest.Amount `json:"amount"`
	Date        ingest.Date   `json:"date"`
	Source      string        `json:"source"`
	Description string        `json:"description"`
}

func (s *DashboardService) handleCreateRevenue(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req createRevenueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	revenue := &model.Revenue{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		UserID:      userID,
		Amount:      float64(req.Amount),
		Date:        req.Date.Time,
		Source:      req.Source,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if revenue.Source == "" {
		revenue.Source = "Other"
	}

	if err := s.store.CreateRevenue(r.Context(), revenue); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, revenue)
}

func (s *DashboardService) handleGetRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := s.store.GetRevenue(r.Context(), chi.URLParam(r, "revenueId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (s *DashboardService) handleUpdateRevenue(w http.ResponseWriter, r *http.Request) {
	revenueID := chi.URLParam(r, "revenueId")

	existing, err := s.store.GetRevenue(r.Context(), revenueID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req createRevenueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount > 0 {
		existing.Amount = float64(req.Amount)
	}
	if !req.Date.IsZero() {
		existing.Date = req.Date.Time
	}
	if req.Source != "" {
		existing.Source = req.Source
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateRevenue(r.Context(), existing); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (s *DashboardService) handleDeleteRevenue(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteRevenue(r.Context(), chi.URLParam(r, "revenueId")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *DashboardService) handleListRevenues(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	start, end, err := auth.ParseDateRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize := auth.NormalizePageSize(parseInt32(q.Get("pageSize")))

	revenues, nextToken, err := s.store.ListRevenues(r.Context(), businessID, start, end, pageSize, q.Get("pageToken"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if revenues == nil {
		revenues = []*model.Revenue{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"revenues":      revenues,
		"nextPageToken": nextToken,
	})
}

func (s *DashboardService) handleBatchCreateRevenues(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req struct {
		Revenues []createRevenueRequest `json:"revenues"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Revenues) == 0 {
		writeError(w, http.StatusBadRequest, "revenues must not be empty")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	revenues := make([]*model.Revenue, 0, len(req.Revenues))
	for _, item := range req.Revenues {
		if item.Amount <= 0 {
			continue
		}
		source := item.Source
		if source == "" {
			source = "Other"
		}
		revenues = append(revenues, &model.Revenue{
			ID:          uuid.New().String(),
			BusinessID:  businessID,
			UserID:      userID,
			Amount:      float64(item.Amount),
			Date:        item.Date.Time,
			Source:      source,
			Description: item.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if len(revenues) == 0 {
		writeError(w, http.StatusBadRequest, "no valid revenues in batch")
		return
	}

	if err := s.store.BatchCreateRevenues(r.Context(), revenues); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"revenues":     revenues,
		"createdCount": len(revenues),
	})
}

type createExpenseRequest struct {
	Amount      ingest.Amount `json:"amount"`
	Date        ingest.Date   `json:"date"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	ReceiptPath string        `json:"receiptPath"`
}

func (s *DashboardService) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req createExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	expense := &model.Expense{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		UserID:      userID,
		Amount:      float64(req.Amount),
		Date:        req.Date.Time,
		Category:    req.Category,
		Description: req.Description,
		ReceiptPath: req.ReceiptPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if expense.Category == "" {
		expense.Category = "Other"
	}

	if err := s.store.CreateExpense(r.Context(), expense); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *DashboardService) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := s.store.GetExpense(r.Context(), chi.URLParam(r, "expenseId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *DashboardService) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")

	existing, err := s.store.GetExpense(r.Context(), expenseID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req createExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount > 0 {
		existing.Amount = float64(req.Amount)
	}
	if !req.Date.IsZero() {
		existing.Date = req.Date.Time
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.ReceiptPath != "" {
		existing.ReceiptPath = req.ReceiptPath
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateExpense(r.Context(), existing); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (s *DashboardService) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteExpense(r.Context(), chi.URLParam(r, "expenseId")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *DashboardService) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	start, end, err := auth.ParseDateRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize := auth.NormalizePageSize(parseInt32(q.Get("pageSize")))

	expenses, nextToken, err := s.store.ListExpenses(r.Context(), businessID, q.Get("category"), start, end, pageSize, q.Get("pageToken"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*model.Expense{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses":      expenses,
		"nextPageToken": nextToken,
	})
}

func (s *DashboardService) handleBatchCreateExpenses(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req struct {
		Expenses []createExpenseRequest `json:"expenses"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Expenses) == 0 {
		writeError(w, http.StatusBadRequest, "expenses must not be empty")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	expenses := make([]*model.Expense, 0, len(req.Expenses))
	for _, item := range req.Expenses {
		if item.Amount <= 0 {
			continue
		}
		category := item.Category
		if category == "" {
			category = "Other"
		}
		expenses = append(expenses, &model.Expense{
			ID:          uuid.New().String(),
			BusinessID:  businessID,
			UserID:      userID,
			Amount:      float64(item.Amount),
			Date:        item.Date.Time,
			Category:    category,
			Description: item.Description,
			ReceiptPath: item.ReceiptPath,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if len(expenses) == 0 {
		writeError(w, http.StatusBadRequest, "no valid expenses in batch")
		return
	}

	if err := s.store.BatchCreateExpenses(r.Context(), expenses); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"expenses":     expenses,
		"createdCount": len(expenses),
	})
}

func parseInt32(s string) int32 {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return int32(n)
}
