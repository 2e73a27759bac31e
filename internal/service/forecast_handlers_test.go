package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/store"
)

func TestGenerateForecastSaveIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	mockStore.EXPECT().
		ListRevenues(gomock.Any(), testBusiness, nil, nil, int32(historyPageSize), "").
		Return([]*model.Revenue{
			{ID: "r1", BusinessID: testBusiness, Amount: 500, Date: model.Day(time.Now().UTC().AddDate(0, 0, -5))},
		}, "", nil)
	mockStore.EXPECT().
		ListExpenses(gomock.Any(), testBusiness, "", nil, nil, int32(historyPageSize), "").
		Return(nil, "", nil)
	mockStore.EXPECT().
		ListRecurringTransactions(gomock.Any(), testBusiness, true, int32(historyPageSize), "").
		Return(nil, "", nil)
	mockStore.EXPECT().
		SaveForecast(gomock.Any(), gomock.Any()).
		Return(errors.New("firestore unavailable"))

	svc := NewDashboardService(mockStore)
	handler := auth.LocalDevMiddleware()(svc.Routes())

	rec := doJSON(t, handler, http.MethodPost, bizPath("/forecast/"), map[string]any{
		"periodDays":     7,
		"currentBalance": 1000.0,
	})
	// The projection is still returned even when persistence fails.
	require.Equal(t, http.StatusOK, rec.Code)

	var fc model.CashFlowForecast
	decodeResponse(t, rec, &fc)
	assert.Len(t, fc.DailyProjections, 7)
}

func TestLoadHistoryFollowsPageTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	page1 := []*model.Revenue{{ID: "r1", BusinessID: testBusiness, Amount: 100, Date: model.Day(time.Now().UTC())}}
	page2 := []*model.Revenue{{ID: "r2", BusinessID: testBusiness, Amount: 200, Date: model.Day(time.Now().UTC())}}

	gomock.InOrder(
		mockStore.EXPECT().
			ListRevenues(gomock.Any(), testBusiness, nil, nil, int32(historyPageSize), "").
			Return(page1, "next", nil),
		mockStore.EXPECT().
			ListRevenues(gomock.Any(), testBusiness, nil, nil, int32(historyPageSize), "next").
			Return(page2, "", nil),
	)
	mockStore.EXPECT().
		ListExpenses(gomock.Any(), testBusiness, "", nil, nil, int32(historyPageSize), "").
		Return(nil, "", nil)

	svc := NewDashboardService(mockStore)
	hist, err := svc.loadHistory(t.Context(), testBusiness)
	require.NoError(t, err)
	assert.Len(t, hist.Revenues, 2)
	assert.Empty(t, hist.Expenses)
}

func TestProcessRecurringMaterializesDueSchedules(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewDashboardService(st)
	ctx := t.Context()

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	// Monthly schedule anchored on the 15th occurs today.
	due := &model.RecurringTransaction{
		ID:         "rt-due",
		BusinessID: testBusiness,
		Type:       model.KindExpense,
		Name:       "Rent",
		Amount:     1800,
		Frequency:  model.FrequencyMonthly,
		StartDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}
	require.NoError(t, st.CreateRecurringTransaction(ctx, due))

	notDue := &model.RecurringTransaction{
		ID:         "rt-not-due",
		BusinessID: testBusiness,
		Type:       model.KindRevenue,
		Name:       "Retainer",
		Amount:     3000,
		Frequency:  model.FrequencyMonthly,
		StartDate:  time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}
	require.NoError(t, st.CreateRecurringTransaction(ctx, notDue))

	// End date already passed, so the schedule is deactivated.
	ended := &model.RecurringTransaction{
		ID:         "rt-ended",
		BusinessID: testBusiness,
		Type:       model.KindExpense,
		Name:       "Old lease",
		Amount:     900,
		Frequency:  model.FrequencyMonthly,
		StartDate:  time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
		Active:     true,
	}
	require.NoError(t, st.CreateRecurringTransaction(ctx, ended))

	result, err := svc.ProcessRecurring(ctx, testBusiness, today)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProcessedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 1, result.EndedCount)
	assert.Equal(t, 0, result.ErrorCount)

	expenses, _, err := st.ListExpenses(ctx, testBusiness, "", nil, nil, 100, "")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Rent", expenses[0].Category)
	assert.Equal(t, today, expenses[0].Date)

	updated, err := st.GetRecurringTransaction(ctx, "rt-ended")
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestProcessRecurringListsAllPagesBeforeDeactivating(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	pageOne := []*model.RecurringTransaction{{
		ID:         "rt-old",
		BusinessID: testBusiness,
		Type:       model.KindExpense,
		Name:       "Old lease",
		Amount:     900,
		Frequency:  model.FrequencyMonthly,
		StartDate:  time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
		Active:     true,
	}}
	pageTwo := []*model.RecurringTransaction{{
		ID:         "rt-live",
		BusinessID: testBusiness,
		Type:       model.KindRevenue,
		Name:       "Retainer",
		Amount:     3000,
		Frequency:  model.FrequencyMonthly,
		StartDate:  time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}}

	// Deactivating the ended schedule must not happen until every page has
	// been read, otherwise the activeOnly cursor shifts under the iteration.
	gomock.InOrder(
		mockStore.EXPECT().
			ListRecurringTransactions(gomock.Any(), testBusiness, true, int32(1000), "").
			Return(pageOne, "next", nil),
		mockStore.EXPECT().
			ListRecurringTransactions(gomock.Any(), testBusiness, true, int32(1000), "next").
			Return(pageTwo, "", nil),
		mockStore.EXPECT().
			UpdateRecurringTransaction(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	svc := NewDashboardService(mockStore)
	result, err := svc.ProcessRecurring(t.Context(), testBusiness, today)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ProcessedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 1, result.EndedCount)
	assert.Equal(t, 0, result.ErrorCount)
}
