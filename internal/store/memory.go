package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizpulse/backend/internal/model"
)

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	revenues       map[string]*model.Revenue
	expenses       map[string]*model.Expense
	recurring      map[string]*model.RecurringTransaction
	inventory      map[string]*model.InventoryItem
	insights       map[string]*model.Insight
	forecasts      map[string]*model.CashFlowForecast
	latestForecast map[string]string // businessID -> forecast ID
	taxConfigs     map[string]*model.TaxConfig
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revenues:       make(map[string]*model.Revenue),
		expenses:       make(map[string]*model.Expense),
		recurring:      make(map[string]*model.RecurringTransaction),
		inventory:      make(map[string]*model.InventoryItem),
		insights:       make(map[string]*model.Insight),
		forecasts:      make(map[string]*model.CashFlowForecast),
		latestForecast: make(map[string]string),
		taxConfigs:     make(map[string]*model.TaxConfig),
	}
}

// paginateIDs applies cursor-based pagination to a sorted slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = 100
	}

	sort.Strings(ids)

	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			for i, id := range ids {
				if id > cursorID {
					startIdx = i
					break
				}
				if i == len(ids)-1 {
					return nil, ""
				}
			}
		}
	}

	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

func inDateRange(t time.Time, startDate, endDate *time.Time) bool {
	if startDate != nil && t.Before(*startDate) {
		return false
	}
	if endDate != nil && t.After(*endDate) {
		return false
	}
	return true
}

// Revenue operations

func (m *MemoryStore) CreateRevenue(ctx context.Context, revenue *model.Revenue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if revenue.ID == "" {
		revenue.ID = uuid.New().String()
	}

	m.revenues[revenue.ID] = revenue
	return nil
}

func (m *MemoryStore) BatchCreateRevenues(ctx context.Context, revenues []*model.Revenue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, revenue := range revenues {
		if revenue.ID == "" {
			revenue.ID = uuid.New().String()
		}
		m.revenues[revenue.ID] = revenue
	}
	return nil
}

func (m *MemoryStore) GetRevenue(ctx context.Context, revenueID string) (*model.Revenue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	revenue, ok := m.revenues[revenueID]
	if !ok {
		return nil, fmt.Errorf("revenue not found: %s", revenueID)
	}
	return revenue, nil
}

func (m *MemoryStore) UpdateRevenue(ctx context.Context, revenue *model.Revenue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.revenues[revenue.ID]; !ok {
		return fmt.Errorf("revenue not found: %s", revenue.ID)
	}
	m.revenues[revenue.ID] = revenue
	return nil
}

func (m *MemoryStore) DeleteRevenue(ctx context.Context, revenueID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.revenues, revenueID)
	return nil
}

func (m *MemoryStore) ListRevenues(ctx context.Context, businessID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Revenue, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, revenue := range m.revenues {
		if businessID != "" && revenue.BusinessID != businessID {
			continue
		}
		if !inDateRange(revenue.Date, startDate, endDate) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.Revenue, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, m.revenues[id])
	}
	return result, nextToken, nil
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	m.expenses[expense.ID] = expense
	return nil
}

func (m *MemoryStore) BatchCreateExpenses(ctx context.Context, expenses []*model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		m.expenses[expense.ID] = expense
	}
	return nil
}

func (m *MemoryStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expense, ok := m.expenses[expenseID]
	if !ok {
		return nil, fmt.Errorf("expense not found: %s", expenseID)
	}
	return expense, nil
}

func (m *MemoryStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[expense.ID]; !ok {
		return fmt.Errorf("expense not found: %s", expense.ID)
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MemoryStore) DeleteExpense(ctx context.Context, expenseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.expenses, expenseID)
	return nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, businessID, category string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, expense := range m.expenses {
		if businessID != "" && expense.BusinessID != businessID {
			continue
		}
		if category != "" && expense.Category != category {
			continue
		}
		if !inDateRange(expense.Date, startDate, endDate) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.Expense, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, m.expenses[id])
	}
	return result, nextToken, nil
}

// Recurring transaction operations

func (m *MemoryStore) CreateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}

	m.recurring[rt.ID] = rt
	return nil
}

func (m *MemoryStore) GetRecurringTransaction(ctx context.Context, rtID string) (*model.RecurringTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rt, ok := m.recurring[rtID]
	if !ok {
		return nil, fmt.Errorf("recurring transaction not found: %s", rtID)
	}
	return rt, nil
}

func (m *MemoryStore) UpdateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recurring[rt.ID]; !ok {
		return fmt.Errorf("recurring transaction not found: %s", rt.ID)
	}
	m.recurring[rt.ID] = rt
	return nil
}

func (m *MemoryStore) DeleteRecurringTransaction(ctx context.Context, rtID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.recurring, rtID)
	return nil
}

func (m *MemoryStore) ListRecurringTransactions(ctx context.Context, businessID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTransaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, rt := range m.recurring {
		if businessID != "" && rt.BusinessID != businessID {
			continue
		}
		if activeOnly && !rt.Active {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.RecurringTransaction, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, m.recurring[id])
	}
	return result, nextToken, nil
}

// Inventory operations

func (m *MemoryStore) CreateInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	m.inventory[item.ID] = item
	return nil
}

func (m *MemoryStore) GetInventoryItem(ctx context.Context, itemID string) (*model.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.inventory[itemID]
	if !ok {
		return nil, fmt.Errorf("inventory item not found: %s", itemID)
	}
	return item, nil
}

func (m *MemoryStore) UpdateInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventory[item.ID]; !ok {
		return fmt.Errorf("inventory item not found: %s", item.ID)
	}
	m.inventory[item.ID] = item
	return nil
}

func (m *MemoryStore) DeleteInventoryItem(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.inventory, itemID)
	return nil
}

func (m *MemoryStore) ListInventoryItems(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*model.InventoryItem, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, item := range m.inventory {
		if businessID != "" && item.BusinessID != businessID {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.InventoryItem, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, m.inventory[id])
	}
	return result, nextToken, nil
}

// Insight operations

func (m *MemoryStore) CreateInsight(ctx context.Context, insight *model.Insight) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}

	m.insights[insight.ID] = insight
	return nil
}

func (m *MemoryStore) GetInsight(ctx context.Context, insightID string) (*model.Insight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	insight, ok := m.insights[insightID]
	if !ok {
		return nil, fmt.Errorf("insight not found: %s", insightID)
	}
	return insight, nil
}

func (m *MemoryStore) ListInsights(ctx context.Context, businessID string, unacknowledgedOnly bool, pageSize int32, pageToken string) ([]*model.Insight, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, insight := range m.insights {
		if businessID != "" && insight.BusinessID != businessID {
			continue
		}
		if unacknowledgedOnly && insight.Acknowledged {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	paginatedIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)
	result := make([]*model.Insight, 0, len(paginatedIDs))
	for _, id := range paginatedIDs {
		result = append(result, m.insights[id])
	}
	return result, nextToken, nil
}

func (m *MemoryStore) AcknowledgeInsight(ctx context.Context, insightID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	insight, ok := m.insights[insightID]
	if !ok {
		return fmt.Errorf("insight not found: %s", insightID)
	}
	insight.Acknowledged = true
	return nil
}

func (m *MemoryStore) DeleteInsightsForBusiness(ctx context.Context, businessID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, insight := range m.insights {
		if insight.BusinessID == businessID {
			delete(m.insights, id)
		}
	}
	return nil
}

// Forecast operations

func (m *MemoryStore) SaveForecast(ctx context.Context, forecast *model.CashFlowForecast) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if forecast.ID == "" {
		forecast.ID = uuid.New().String()
	}

	m.forecasts[forecast.ID] = forecast
	m.latestForecast[forecast.BusinessID] = forecast.ID
	return nil
}

func (m *MemoryStore) GetLatestForecast(ctx context.Context, businessID string) (*model.CashFlowForecast, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	forecastID, ok := m.latestForecast[businessID]
	if !ok {
		return nil, fmt.Errorf("forecast not found for business: %s", businessID)
	}
	return m.forecasts[forecastID], nil
}

// Tax config operations

func (m *MemoryStore) GetTaxConfig(ctx context.Context, businessID string) (*model.TaxConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	config, ok := m.taxConfigs[businessID]
	if !ok {
		return nil, fmt.Errorf("tax config not found: %s", businessID)
	}
	return config, nil
}

func (m *MemoryStore) UpdateTaxConfig(ctx context.Context, businessID string, config *model.TaxConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	config.BusinessID = businessID
	m.taxConfigs[businessID] = config
	return nil
}
