package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/forecast"
	"github.com/bizpulse/backend/internal/model"
)

// ProcessRecurringResult summarizes one materialization pass.
type ProcessRecurringResult struct {
	ProcessedCount int `json:"processedCount"`
	SkippedCount   int `json:"skippedCount"`
	EndedCount     int `json:"endedCount"`
	ErrorCount     int `json:"errorCount"`
}

// handleProcessRecurring materializes the schedules due on the current day.
// It is designed to be called once daily by Cloud Scheduler.
func (s *DashboardService) handleProcessRecurring(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessId")

	result, err := s.ProcessRecurring(r.Context(), businessID, time.Now().UTC())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ProcessRecurring creates a revenue or expense record for every active
// schedule that occurs on asOf's day, and deactivates schedules with no
// future occurrence left.
func (s *DashboardService) ProcessRecurring(ctx context.Context, businessID string, asOf time.Time) (*ProcessRecurringResult, error) {
	today := model.Day(asOf)
	result := &ProcessRecurringResult{}

	// The full set is collected before anything is written. Deactivating a
	// schedule between pages shifts the activeOnly cursor and can skip an
	// entry on a page boundary.
	var schedules []*model.RecurringTransaction
	pageToken := ""
	for {
		rts, nextToken, err := s.store.ListRecurringTransactions(ctx, businessID, true, 1000, pageToken)
		if err != nil {
			return nil, fmt.Errorf("list recurring transactions: %w", err)
		}
		schedules = append(schedules, rts...)
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	for _, rt := range schedules {
		processed, ended, procErr := s.processOneRecurring(ctx, rt, today)
		if procErr != nil {
			log.Printf("[RecurringProcessor] error processing schedule %s (business %s): %v", rt.ID, rt.BusinessID, procErr)
			result.ErrorCount++
			continue
		}
		if ended {
			result.EndedCount++
		} else if processed {
			result.ProcessedCount++
		} else {
			result.SkippedCount++
		}
	}

	log.Printf("[RecurringProcessor] completed for business %s: processed=%d skipped=%d ended=%d errors=%d",
		businessID, result.ProcessedCount, result.SkippedCount, result.EndedCount, result.ErrorCount)

	return result, nil
}

// processOneRecurring handles a single schedule. Returns (processed, ended, error).
func (s *DashboardService) processOneRecurring(ctx context.Context, rt *model.RecurringTransaction, today time.Time) (bool, bool, error) {
	// Due today only if the day before today rolls forward onto today.
	due := forecast.NextOccurrence(*rt, today.AddDate(0, 0, -1))
	processed := due.Equal(today)
	if processed {
		if err := s.createFromRecurring(ctx, rt, today); err != nil {
			return false, false, err
		}
	}

	// No occurrence left within the search horizon means the end date has
	// passed; deactivate so later passes skip it.
	if forecast.NextOccurrence(*rt, today).IsZero() {
		rt.Active = false
		rt.UpdatedAt = time.Now().UTC()
		if err := s.store.UpdateRecurringTransaction(ctx, rt); err != nil {
			return processed, false, fmt.Errorf("deactivate ended schedule: %w", err)
		}
		return processed, true, nil
	}

	if !processed {
		return false, false, nil
	}
	return true, false, nil
}

// createFromRecurring records one occurrence of a schedule as a concrete
// revenue or expense.
func (s *DashboardService) createFromRecurring(ctx context.Context, rt *model.RecurringTransaction, date time.Time) error {
	now := time.Now().UTC()
	description := fmt.Sprintf("%s (auto-recurring)", rt.Name)

	switch rt.Type {
	case model.KindExpense:
		expense := &model.Expense{
			ID:          uuid.New().String(),
			BusinessID:  rt.BusinessID,
			UserID:      rt.UserID,
			Amount:      rt.Amount,
			Date:        date,
			Category:    rt.Name,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.CreateExpense(ctx, expense); err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
	case model.KindRevenue:
		revenue := &model.Revenue{
			ID:          uuid.New().String(),
			BusinessID:  rt.BusinessID,
			UserID:      rt.UserID,
			Amount:      rt.Amount,
			Date:        date,
			Source:      rt.Name,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.CreateRevenue(ctx, revenue); err != nil {
			return fmt.Errorf("create revenue: %w", err)
		}
	default:
		return fmt.Errorf("unknown schedule type %q", rt.Type)
	}
	return nil
}
