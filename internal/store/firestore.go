package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/bizpulse/backend/internal/model"
)

// Collection names. Field names in queries must match the Go struct field
// names (PascalCase) because that is how Firestore serializes the models.
const (
	colRevenues   = "revenues"
	colExpenses   = "expenses"
	colRecurring  = "recurringTransactions"
	colInventory  = "inventoryItems"
	colInsights   = "insights"
	colForecasts  = "forecasts"
	colTaxConfigs = "taxConfigs"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// applyDateAwarePagination handles pagination for queries with date range filters.
// Firestore requires OrderBy on inequality fields first, so we use OrderBy("Date") + OrderBy(__name__).
// The cursor must include both the Date value and the document ID.
func (s *FirestoreStore) applyDateAwarePagination(ctx context.Context, query firestore.Query, collection string, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy("Date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		cursorDoc, err := s.client.Collection(collection).Doc(docID).Get(ctx)
		if err != nil {
			return query, fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		dateVal := cursorDoc.Data()["Date"]
		query = query.StartAfter(dateVal, docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// trimPage drops the detection row and computes the next page token.
func trimPage(docs []*firestore.DocumentSnapshot, pageSize int32) ([]*firestore.DocumentSnapshot, string) {
	if pageSize <= 0 {
		pageSize = 100
	}
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		return docs, EncodePageToken(docs[pageSize-1].Ref.ID)
	}
	return docs, ""
}

// Revenue operations

func (s *FirestoreStore) CreateRevenue(ctx context.Context, revenue *model.Revenue) error {
	_, err := s.client.Collection(colRevenues).Doc(revenue.ID).Set(ctx, revenue)
	return err
}

func (s *FirestoreStore) BatchCreateRevenues(ctx context.Context, revenues []*model.Revenue) error {
	bw := s.client.BulkWriter(ctx)
	for _, revenue := range revenues {
		if _, err := bw.Set(s.client.Collection(colRevenues).Doc(revenue.ID), revenue); err != nil {
			return fmt.Errorf("failed to enqueue revenue %s: %w", revenue.ID, err)
		}
	}
	bw.End()
	return nil
}

func (s *FirestoreStore) GetRevenue(ctx context.Context, revenueID string) (*model.Revenue, error) {
	doc, err := s.client.Collection(colRevenues).Doc(revenueID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue not found: %w", err)
	}

	var revenue model.Revenue
	if err := doc.DataTo(&revenue); err != nil {
		return nil, fmt.Errorf("failed to parse revenue: %w", err)
	}
	return &revenue, nil
}

func (s *FirestoreStore) UpdateRevenue(ctx context.Context, revenue *model.Revenue) error {
	_, err := s.client.Collection(colRevenues).Doc(revenue.ID).Set(ctx, revenue)
	return err
}

func (s *FirestoreStore) DeleteRevenue(ctx context.Context, revenueID string) error {
	_, err := s.client.Collection(colRevenues).Doc(revenueID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListRevenues(ctx context.Context, businessID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Revenue, string, error) {
	query := s.client.Collection(colRevenues).Query
	if businessID != "" {
		query = query.Where("BusinessId", "==", businessID)
	}

	hasDateFilter := startDate != nil || endDate != nil
	if startDate != nil {
		query = query.Where("Date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("Date", "<=", *endDate)
	}

	var err error
	if hasDateFilter {
		query, err = s.applyDateAwarePagination(ctx, query, colRevenues, pageSize, pageToken)
	} else {
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list revenues: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize)
	revenues := make([]*model.Revenue, 0, len(docs))
	for _, doc := range docs {
		var revenue model.Revenue
		if err := doc.DataTo(&revenue); err != nil {
			return nil, "", fmt.Errorf("failed to parse revenue: %w", err)
		}
		revenues = append(revenues, &revenue)
	}
	return revenues, nextPageToken, nil
}

// Expense operations

func (s *FirestoreStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	_, err := s.client.Collection(colExpenses).Doc(expense.ID).Set(ctx, expense)
	return err
}

func (s *FirestoreStore) BatchCreateExpenses(ctx context.Context, expenses []*model.Expense) error {
	bw := s.client.BulkWriter(ctx)
	for _, expense := range expenses {
		if _, err := bw.Set(s.client.Collection(colExpenses).Doc(expense.ID), expense); err != nil {
			return fmt.Errorf("failed to enqueue expense %s: %w", expense.ID, err)
		}
	}
	bw.End()
	return nil
}

func (s *FirestoreStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	doc, err := s.client.Collection(colExpenses).Doc(expenseID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("expense not found: %w", err)
	}

	var expense model.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, fmt.Errorf("failed to parse expense: %w", err)
	}
	return &expense, nil
}

func (s *FirestoreStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	_, err := s.client.Collection(colExpenses).Doc(expense.ID).Set(ctx, expense)
	return err
}

func (s *FirestoreStore) DeleteExpense(ctx context.Context, expenseID string) error {
	_, err := s.client.Collection(colExpenses).Doc(expenseID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListExpenses(ctx context.Context, businessID, category string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error) {
	query := s.client.Collection(colExpenses).Query
	if businessID != "" {
		query = query.Where("BusinessId", "==", businessID)
	}
	if category != "" {
		query = query.Where("Category", "==", category)
	}

	hasDateFilter := startDate != nil || endDate != nil
	if startDate != nil {
		query = query.Where("Date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("Date", "<=", *endDate)
	}

	var err error
	if hasDateFilter {
		query, err = s.applyDateAwarePagination(ctx, query, colExpenses, pageSize, pageToken)
	} else {
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize)
	expenses := make([]*model.Expense, 0, len(docs))
	for _, doc := range docs {
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, "", fmt.Errorf("failed to parse expense: %w", err)
		}
		expenses = append(expenses, &expense)
	}
	return expenses, nextPageToken, nil
}

// Recurring transaction operations

func (s *FirestoreStore) CreateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error {
	_, err := s.client.Collection(colRecurring).Doc(rt.ID).Set(ctx, rt)
	return err
}

func (s *FirestoreStore) GetRecurringTransaction(ctx context.Context, rtID string) (*model.RecurringTransaction, error) {
	doc, err := s.client.Collection(colRecurring).Doc(rtID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("recurring transaction not found: %w", err)
	}

	var rt model.RecurringTransaction
	if err := doc.DataTo(&rt); err != nil {
		return nil, fmt.Errorf("failed to parse recurring transaction: %w", err)
	}
	return &rt, nil
}

func (s *FirestoreStore) UpdateRecurringTransaction(ctx context.Context, rt *model.RecurringTransaction) error {
	_, err := s.client.Collection(colRecurring).Doc(rt.ID).Set(ctx, rt)
	return err
}

func (s *FirestoreStore) DeleteRecurringTransaction(ctx context.Context, rtID string) error {
	_, err := s.client.Collection(colRecurring).Doc(rtID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListRecurringTransactions(ctx context.Context, businessID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTransaction, string, error) {
	query := s.client.Collection(colRecurring).Query
	if businessID != "" {
		query = query.Where("BusinessId", "==", businessID)
	}
	if activeOnly {
		query = query.Where("Active", "==", true)
	}

	query, err := s.applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize)
	rts := make([]*model.RecurringTransaction, 0, len(docs))
	for _, doc := range docs {
		var rt model.RecurringTransaction
		if err := doc.DataTo(&rt); err != nil {
			return nil, "", fmt.Errorf("failed to parse recurring transaction: %w", err)
		}
		rts = append(rts, &rt)
	}
	return rts, nextPageToken, nil
}

// Inventory operations

func (s *FirestoreStore) CreateInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := s.client.Collection(colInventory).Doc(item.ID).Set(ctx, item)
	return err
}

func (s *FirestoreStore) GetInventoryItem(ctx context.Context, itemID string) (*model.InventoryItem, error) {
	doc, err := s.client.Collection(colInventory).Doc(itemID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory item not found: %w", err)
	}

	var item model.InventoryItem
	if err := doc.DataTo(&item); err != nil {
		return nil, fmt.Errorf("failed to parse inventory item: %w", err)
	}
	return &item, nil
}

func (s *FirestoreStore) UpdateInventoryItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := s.client.Collection(colInventory).Doc(item.ID).Set(ctx, item)
	return err
}

func (s *FirestoreStore) DeleteInventoryItem(ctx context.Context, itemID string) error {
	_, err := s.client.Collection(colInventory).Doc(itemID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListInventoryItems(ctx context.Context, businessID string, pageSize int32, pageToken string) ([]*model.InventoryItem, string, error) {
	query := s.client.Collection(colInventory).Query
	if businessID != "" {
		query = query.Where("BusinessId", "==", businessID)
	}

	query, err := s.applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list inventory items: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize)
	items := make([]*model.InventoryItem, 0, len(docs))
	for _, doc := range docs {
		var item model.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, "", fmt.Errorf("failed to parse inventory item: %w", err)
		}
		items = append(items, &item)
	}
	return items, nextPageToken, nil
}

// Insight operations

func (s *FirestoreStore) CreateInsight(ctx context.Context, insight *model.Insight) error {
	_, err := s.client.Collection(colInsights).Doc(insight.ID).Set(ctx, insight)
	return err
}

func (s *FirestoreStore) GetInsight(ctx context.Context, insightID string) (*model.Insight, error) {
	doc, err := s.client.Collection(colInsights).Doc(insightID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("insight not found: %w", err)
	}

	var insight model.Insight
	if err := doc.DataTo(&insight); err != nil {
		return nil, fmt.Errorf("failed to parse insight: %w", err)
	}
	return &insight, nil
}

func (s *FirestoreStore) ListInsights(ctx context.Context, businessID string, unacknowledgedOnly bool, pageSize int32, pageToken string) ([]*model.Insight, string, error) {
	query := s.client.Collection(colInsights).Query
	if businessID != "" {
		query = query.Where("BusinessId", "==", businessID)
	}
	if unacknowledgedOnly {
		query = query.Where("Acknowledged", "==", false)
	}

	query, err := s.applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list insights: %w", err)
	}

	docs, nextPageToken := trimPage(docs, pageSize)
	insights := make([]*model.Insight, 0, len(docs))
	for _, doc := range docs {
		var insight model.Insight
		if err := doc.DataTo(&insight); err != nil {
			return nil, "", fmt.Errorf("failed to parse insight: %w", err)
		}
		insights = append(insights, &insight)
	}
	return insights, nextPageToken, nil
}

func (s *FirestoreStore) AcknowledgeInsight(ctx context.Context, insightID string) error {
	_, err := s.client.Collection(colInsights).Doc(insightID).Update(ctx, []firestore.Update{
		{Path: "Acknowledged", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge insight: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteInsightsForBusiness(ctx context.Context, businessID string) error {
	docs, err := s.client.Collection(colInsights).Where("BusinessId", "==", businessID).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("failed to list insights for delete: %w", err)
	}

	bw := s.client.BulkWriter(ctx)
	for _, doc := range docs {
		if _, err := bw.Delete(doc.Ref); err != nil {
			return fmt.Errorf("failed to enqueue insight delete: %w", err)
		}
	}
	bw.End()
	return nil
}

// Forecast operations

func (s *FirestoreStore) SaveForecast(ctx context.Context, forecast *model.CashFlowForecast) error {
	_, err := s.client.Collection(colForecasts).Doc(forecast.ID).Set(ctx, forecast)
	return err
}

func (s *FirestoreStore) GetLatestForecast(ctx context.Context, businessID string) (*model.CashFlowForecast, error) {
	docs, err := s.client.Collection(colForecasts).
		Where("BusinessId", "==", businessID).
		OrderBy("CreatedAt", firestore.Desc).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query forecasts: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("forecast not found for business: %s", businessID)
	}

	var forecast model.CashFlowForecast
	if err := docs[0].DataTo(&forecast); err != nil {
		return nil, fmt.Errorf("failed to parse forecast: %w", err)
	}
	return &forecast, nil
}

// Tax config operations

func (s *FirestoreStore) GetTaxConfig(ctx context.Context, businessID string) (*model.TaxConfig, error) {
	doc, err := s.client.Collection(colTaxConfigs).Doc(businessID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("tax config not found: %w", err)
	}

	var config model.TaxConfig
	if err := doc.DataTo(&config); err != nil {
		return nil, fmt.Errorf("failed to parse tax config: %w", err)
	}
	return &config, nil
}

func (s *FirestoreStore) UpdateTaxConfig(ctx context.Context, businessID string, config *model.TaxConfig) error {
	config.BusinessID = businessID
	_, err := s.client.Collection(colTaxConfigs).Doc(businessID).Set(ctx, config)
	return err
}
