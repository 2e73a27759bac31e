package store

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/bizpulse/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// Store defines the interface for all database operations used by the service
type Store interface {
	// Revenue operations
	CreateRevenue(ctx context.Context, revenue *model.Revenue) error
	GetRevenue(ctx context.Context, revenueID string) (*model.Revenue, error)
	UpdateRevenue(ctx context.Context, revenue *model.Revenue) error
	DeleteRevenue(ctx context.Context, revenueID string) error
	ListRevenues(ctx context.Context, businessID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Revenue, string, error)
	BatchCreateRevenues(ctx context.Context, revenues []*model.Revenue) error

	// Expense operations
	CreateExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*model.Expense, error)
	UpdateExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
	ListExpenses(ctx context.Context, businessID, category string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error)
	BatchCreateExpenses(ctx context.Context, expenses []*model.Expense) error

	// Recurring transaction operations
	CreateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error
	GetRecurringTransaction(ctx context.Context, rtID string) (*model.RecurringTransaction, error)
	UpdateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error
	DeleteRecurringTransaction(ctx context.Context, rtID string) error
	ListRecurringTransactions(ctx context.Context, businessID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTransaction, string, error)

	// Inventory operations
	CreateInventoryItem(ctx context.Context, item *model.InventoryItem) error
	GetInventoryItem(ctx context.Context, itemID string) (*model.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item *model.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, itemID string) error
	ListInventoryItems(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*model.InventoryItem, string, error)

	// Insight operations
	CreateInsight(ctx context.Context, insight *model.Insight) error
	GetInsight(ctx context.Context, insightID string) (*model.Insight, error)
	ListInsights(ctx context.Context, businessID string, unacknowledgedOnly bool, pageSize int32, pageToken string) ([]*model.Insight, string, error)
	AcknowledgeInsight(ctx context.Context, insightID string) error
	DeleteInsightsForBusiness(ctx context.Context, businessID string) error

	// Forecast operations
	SaveForecast(ctx context.Context, forecast *model.CashFlowForecast) error
	GetLatestForecast(ctx context.Context, businessID string) (*model.CashFlowForecast, error)

	// Tax config operations
	GetTaxConfig(ctx context.Context, businessID string) (*model.TaxConfig, error)
	UpdateTaxConfig(ctx context.Context, businessID string, config *model.TaxConfig) error
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
