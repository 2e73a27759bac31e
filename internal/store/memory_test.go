package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/backend/internal/model"
)

func TestPageTokenRoundTrip(t *testing.T) {
	token := EncodePageToken("doc-123")
	assert.NotEmpty(t, token)

	id, err := DecodePageToken(token)
	require.NoError(t, err)
	assert.Equal(t, "doc-123", id)

	id, err = DecodePageToken("")
	require.NoError(t, err)
	assert.Empty(t, id)

	_, err = DecodePageToken("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestMemoryStoreExpenseCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	expense := &model.Expense{
		BusinessID: "biz-1",
		Amount:     120.50,
		Category:   "Supplies",
		Date:       time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateExpense(ctx, expense))
	require.NotEmpty(t, expense.ID, "create assigns an ID")

	got, err := s.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Supplies", got.Category)

	got.Amount = 99.99
	require.NoError(t, s.UpdateExpense(ctx, got))

	updated, err := s.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.InDelta(t, 99.99, updated.Amount, 1e-9)

	require.NoError(t, s.DeleteExpense(ctx, expense.ID))
	_, err = s.GetExpense(ctx, expense.ID)
	assert.Error(t, err)

	err = s.UpdateExpense(ctx, &model.Expense{ID: "missing"})
	assert.Error(t, err)
}

func TestMemoryStoreListExpensesFilters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		category := "Supplies"
		if i%2 == 1 {
			category = "Marketing"
		}
		require.NoError(t, s.CreateExpense(ctx, &model.Expense{
			ID:         fmt.Sprintf("e%d", i),
			BusinessID: "biz-1",
			Category:   category,
			Amount:     float64(10 * (i + 1)),
			Date:       base.AddDate(0, 0, i),
		}))
	}
	require.NoError(t, s.CreateExpense(ctx, &model.Expense{
		ID: "other", BusinessID: "biz-2", Category: "Supplies", Date: base,
	}))

	t.Run("by business", func(t *testing.T) {
		got, next, err := s.ListExpenses(ctx, "biz-1", "", nil, nil, 100, "")
		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.Empty(t, next)
	})

	t.Run("by category", func(t *testing.T) {
		got, _, err := s.ListExpenses(ctx, "biz-1", "Marketing", nil, nil, 100, "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("by date range", func(t *testing.T) {
		start := base.AddDate(0, 0, 1)
		end := base.AddDate(0, 0, 3)
		got, _, err := s.ListExpenses(ctx, "biz-1", "", &start, &end, 100, "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestMemoryStorePagination(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateRevenue(ctx, &model.Revenue{
			ID:         fmt.Sprintf("r%d", i),
			BusinessID: "biz-1",
			Amount:     100,
			Date:       time.Date(2024, time.March, 1+i, 0, 0, 0, 0, time.UTC),
		}))
	}

	page1, token, err := s.ListRevenues(ctx, "biz-1", nil, nil, 2, "")
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotEmpty(t, token)
	assert.Equal(t, "r0", page1[0].ID)
	assert.Equal(t, "r1", page1[1].ID)

	page2, token, err := s.ListRevenues(ctx, "biz-1", nil, nil, 2, token)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotEmpty(t, token)
	assert.Equal(t, "r2", page2[0].ID)

	page3, token, err := s.ListRevenues(ctx, "biz-1", nil, nil, 2, token)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "r4", page3[0].ID)
	assert.Empty(t, token)
}

func TestMemoryStoreInsights(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreateInsight(ctx, &model.Insight{ID: "i1", BusinessID: "biz-1", Type: model.InsightAnomaly}))
	require.NoError(t, s.CreateInsight(ctx, &model.Insight{ID: "i2", BusinessID: "biz-1", Type: model.InsightWarning}))
	require.NoError(t, s.CreateInsight(ctx, &model.Insight{ID: "i3", BusinessID: "biz-2", Type: model.InsightWarning}))

	require.NoError(t, s.AcknowledgeInsight(ctx, "i1"))
	assert.Error(t, s.AcknowledgeInsight(ctx, "missing"))

	all, _, err := s.ListInsights(ctx, "biz-1", false, 100, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, _, err := s.ListInsights(ctx, "biz-1", true, 100, "")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "i2", open[0].ID)

	require.NoError(t, s.DeleteInsightsForBusiness(ctx, "biz-1"))
	all, _, err = s.ListInsights(ctx, "biz-1", false, 100, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	remaining, _, err := s.ListInsights(ctx, "biz-2", false, 100, "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestMemoryStoreForecasts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetLatestForecast(ctx, "biz-1")
	assert.Error(t, err)

	first := &model.CashFlowForecast{BusinessID: "biz-1", ForecastPeriod: 30}
	require.NoError(t, s.SaveForecast(ctx, first))
	require.NotEmpty(t, first.ID)

	second := &model.CashFlowForecast{BusinessID: "biz-1", ForecastPeriod: 90}
	require.NoError(t, s.SaveForecast(ctx, second))

	latest, err := s.GetLatestForecast(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, 90, latest.ForecastPeriod)
}

func TestMemoryStoreTaxConfig(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetTaxConfig(ctx, "biz-1")
	assert.Error(t, err)

	require.NoError(t, s.UpdateTaxConfig(ctx, "biz-1", &model.TaxConfig{Rate: 25}))

	cfg, err := s.GetTaxConfig(ctx, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", cfg.BusinessID)
	assert.InDelta(t, 25.0, cfg.Rate, 1e-9)
}
