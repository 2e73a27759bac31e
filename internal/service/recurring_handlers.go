package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/forecast"
	"github.com/bizpulse/backend/internal/model"
)

var validFrequencies = map[model.Frequency]bool{
	model.FrequencyDaily:     true,
	model.FrequencyWeekly:    true,
	model.FrequencyBiWeekly:  true,
	model.FrequencyMonthly:   true,
	model.FrequencyQuarterly: true,
	model.FrequencyAnnually:  true,
}

type recurringRequest struct {
	Type      model.TransactionKind `json:"type"`
	Name      string                `json:"name"`
	Amount    float64               `json:"amount"`
	Frequency model.Frequency       `json:"frequency"`
	StartDate time.Time             `json:"startDate"`
	EndDate   *time.Time            `json:"endDate"`
	Active    *bool                 `json:"active"`
}

func (s *DashboardService) handleCreateRecurring(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req recurringRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if req.Type != model.KindRevenue && req.Type != model.KindExpense {
		writeError(w, http.StatusBadRequest, "type must be revenue or expense")
		return
	}
	if !validFrequencies[req.Frequency] {
		writeError(w, http.StatusBadRequest, "invalid frequency")
		return
	}
	if req.StartDate.IsZero() {
		writeError(w, http.StatusBadRequest, "startDate is required")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	rt := &model.RecurringTransaction{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		UserID:     userID,
		Type:       req.Type,
		Name:       req.Name,
		Amount:     req.Amount,
		Frequency:  req.Frequency,
		StartDate:  model.Day(req.StartDate),
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.EndDate != nil {
		end := model.Day(*req.EndDate)
		rt.EndDate = &end
	}

	if err := s.store.CreateRecurringTransaction(r.Context(), rt); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (s *DashboardService) handleGetRecurring(w http.ResponseWriter, r *http.Request) {
	rt, err := s.store.GetRecurringTransaction(r.Context(), chi.URLParam(r, "recurringId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (s *DashboardService) handleUpdateRecurring(w http.ResponseWriter, r *http.Request) {
	rtID := chi.URLParam(r, "recurringId")

	existing, err := s.store.GetRecurringTransaction(r.Context(), rtID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req recurringRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Amount > 0 {
		existing.Amount = req.Amount
	}
	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Frequency != "" {
		if !validFrequencies[req.Frequency] {
			writeError(w, http.StatusBadRequest, "invalid frequency")
			return
		}
		existing.Frequency = req.Frequency
	}
	if !req.StartDate.IsZero() {
		existing.StartDate = model.Day(req.StartDate)
	}
	if req.EndDate != nil {
		end := model.Day(*req.EndDate)
		existing.EndDate = &end
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateRecurringTransaction(r.Context(), existing); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (s *DashboardService) handleDeleteRecurring(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteRecurringTransaction(r.Context(), chi.URLParam(r, "recurringId")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *DashboardService) handleListRecurring(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()

	activeOnly := q.Get("activeOnly") == "true"
	pageSize := auth.NormalizePageSize(parseInt32(q.Get("pageSize")))

	rts, nextToken, err := s.store.ListRecurringTransactions(r.Context(), businessID, activeOnly, pageSize, q.Get("pageToken"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if rts == nil {
		rts = []*model.RecurringTransaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"recurringTransactions": rts,
		"nextPageToken":         nextToken,
	})
}

// handleDetectRecurring scans the business's history for repeating
// transactions and reports each candidate with its projected next date.
// Nothing is persisted; the caller reviews the suggestions and creates the
// schedules it agrees with.
func (s *DashboardService) handleDetectRecurring(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	txns, err := s.loadHistory(r.Context(), businessID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	detected := forecast.DetectRecurringTransactions(append(txns.Revenues, txns.Expenses...))

	type suggestion struct {
		model.RecurringTransaction
		NextDate time.Time `json:"nextDate"`
	}
	today := model.Day(time.Now().UTC())
	suggestions := make([]suggestion, 0, len(detected))
	for _, rt := range detected {
		rt.BusinessID = businessID
		suggestions = append(suggestions, suggestion{
			RecurringTransaction: rt,
			NextDate:             forecast.NextOccurrence(rt, today),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

type inventoryRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Quantity     *int    `json:"quantity"`
	UnitCost     float64 `json:"unitCost"`
	ReorderLevel *int    `json:"reorderLevel"`
}

func (s *DashboardService) handleCreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	var req inventoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()
	item := &model.InventoryItem{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		UserID:     userID,
		Name:       req.Name,
		SKU:        req.SKU,
		UnitCost:   req.UnitCost,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}

	if err := s.store.CreateInventoryItem(r.Context(), item); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *DashboardService) handleGetInventoryItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.store.GetInventoryItem(r.Context(), chi.URLParam(r, "itemId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *DashboardService) handleUpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	existing, err := s.store.GetInventoryItem(r.Context(), itemID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req inventoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.SKU != "" {
		existing.SKU = req.SKU
	}
	if req.Quantity != nil {
		existing.Quantity = *req.Quantity
	}
	if req.UnitCost > 0 {
		existing.UnitCost = req.UnitCost
	}
	if req.ReorderLevel != nil {
		existing.ReorderLevel = *req.ReorderLevel
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateInventoryItem(r.Context(), existing); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (s *DashboardService) handleDeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteInventoryItem(r.Context(), chi.URLParam(r, "itemId")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *DashboardService) handleListInventoryItems(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")
	q := r.URL.Query()
	pageSize := auth.NormalizePageSize(parseInt32(q.Get("pageSize")))

	items, nextToken, err := s.store.ListInventoryItems(r.Context(), businessID, pageSize, q.Get("pageToken"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []*model.InventoryItem{}
	}

	// Low-stock flags help the dashboard surface reorder warnings without a
	// second endpoint.
	lowStock := make([]string, 0)
	for _, item := range items {
		if item.ReorderLevel > 0 && item.Quantity <= item.ReorderLevel {
			lowStock = append(lowStock, item.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":         items,
		"lowStockIds":   lowStock,
		"nextPageToken": nextToken,
	})
}
