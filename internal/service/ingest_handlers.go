package service

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/ingest"
	"github.com/bizpulse/backend/internal/model"
)

// maxStatementSize caps statement uploads at 20 MB.
const maxStatementSize = 20 << 20

// handleImportStatement parses an uploaded PDF bank statement and persists
// the recognized transactions. Debits become expenses categorized by vendor
// lookup; credits become revenues.
func (s *DashboardService) handleImportStatement(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	r.Body = http.MaxBytesReader(w, r.Body, maxStatementSize)
	if err := r.ParseMultipartForm(maxStatementSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("statement")
	if err != nil {
		writeError(w, http.StatusBadRequest, "statement file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read statement")
		return
	}

	txns, err := ingest.ImportStatement(data, businessID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	txns = ingest.FilterRecent(txns, time.Now().UTC())
	if len(txns) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no transactions recognized in statement")
		return
	}

	userID, _ := auth.GetUserID(r.Context())
	now := time.Now().UTC()

	var revenues []*model.Revenue
	var expenses []*model.Expense
	for _, tx := range txns {
		switch tx.Kind {
		case model.KindRevenue:
			revenues = append(revenues, &model.Revenue{
				ID:          uuid.New().String(),
				BusinessID:  businessID,
				UserID:      userID,
				Amount:      tx.Amount,
				Date:        tx.Date,
				Source:      tx.Label,
				Description: tx.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		case model.KindExpense:
			expenses = append(expenses, &model.Expense{
				ID:          uuid.New().String(),
				BusinessID:  businessID,
				UserID:      userID,
				Amount:      tx.Amount,
				Date:        tx.Date,
				Category:    tx.Label,
				Description: tx.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	if len(revenues) > 0 {
		if err := s.store.BatchCreateRevenues(r.Context(), revenues); err != nil {
			writeStoreError(w, err)
			return
		}
	}
	if len(expenses) > 0 {
		if err := s.store.BatchCreateExpenses(r.Context(), expenses); err != nil {
			writeStoreError(w, err)
			return
		}
	}

	log.Printf("[Ingest] imported %d revenues and %d expenses from %s for business %s",
		len(revenues), len(expenses), header.Filename, businessID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"revenueCount": len(revenues),
		"expenseCount": len(expenses),
	})
}
