// Package search provides full-text transaction search backed by Algolia.
// The index is populated by a sync pipeline outside this service; the
// backend only queries it.
package search

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"

	"github.com/bizpulse/backend/internal/model"
)

// Config holds Algolia configuration.
type Config struct {
	AppID     string
	APIKey    string // Search-only API key
	IndexName string
}

// Params defines the input for an Algolia search.
type Params struct {
	Query      string
	BusinessID string
	Category   string
	// Amount range (dollars)
	AmountMin float64
	AmountMax float64
	// Date range
	StartDate *time.Time
	EndDate   *time.Time
	// Optional kind filter; empty matches both revenues and expenses
	Kind model.TransactionKind
	// Pagination (offset-based)
	Page     int
	PageSize int
}

// Result is a single matching transaction from the index.
type Result struct {
	ID          string                `json:"id"`
	Kind        model.TransactionKind `json:"kind"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Amount      float64               `json:"amount"`
	Date        time.Time             `json:"date"`
}

// Response holds results from Algolia.
type Response struct {
	Results    []*Result `json:"results"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
}

// AlgoliaClient wraps the Algolia search API client.
type AlgoliaClient struct {
	client    *search.APIClient
	indexName string
}

// NewAlgoliaClient creates a new Algolia search client.
func NewAlgoliaClient(cfg Config) (*AlgoliaClient, error) {
	if cfg.AppID == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("algolia AppID and APIKey are required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "bizpulse"
	}

	client, err := search.NewClient(cfg.AppID, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating algolia client: %w", err)
	}

	return &AlgoliaClient{
		client:    client,
		indexName: cfg.IndexName,
	}, nil
}

// Search performs a full-text search via Algolia.
func (c *AlgoliaClient) Search(ctx context.Context, params Params) (*Response, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}
	if pageSize > 100 {
		pageSize = 100
	}

	page := params.Page
	if page < 0 {
		page = 0
	}

	filters := buildFilters(params)

	searchParams := search.SearchParamsObjectAsSearchParams(
		search.NewSearchParamsObject().
			SetQuery(params.Query).
			SetHitsPerPage(int32(pageSize)).
			SetPage(int32(page)).
			SetFilters(filters),
	)

	resp, err := c.client.SearchSingleIndex(c.client.NewApiSearchSingleIndexRequest(c.indexName).WithSearchParams(searchParams))
	if err != nil {
		return nil, fmt.Errorf("algolia search: %w", err)
	}

	results := make([]*Result, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if result := hitToResult(hit.AdditionalProperties); result != nil {
			results = append(results, result)
		}
	}

	totalCount := 0
	if resp.NbHits != nil {
		totalCount = int(*resp.NbHits)
	}
	totalPages := 0
	if resp.NbPages != nil {
		totalPages = int(*resp.NbPages)
	}

	return &Response{
		Results:    results,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
	}, nil
}

// buildFilters constructs Algolia filter string from search params.
// BusinessId is always enforced for security.
func buildFilters(params Params) string {
	var parts []string

	if params.BusinessID != "" {
		parts = append(parts, fmt.Sprintf("BusinessId:%q", params.BusinessID))
	}

	if params.Category != "" {
		parts = append(parts, fmt.Sprintf("Category:%q", params.Category))
	}

	switch params.Kind {
	case model.KindExpense:
		parts = append(parts, `Kind:"expense"`)
	case model.KindRevenue:
		parts = append(parts, `Kind:"revenue"`)
	}

	if params.AmountMin > 0 {
		parts = append(parts, fmt.Sprintf("Amount >= %f", params.AmountMin))
	}
	if params.AmountMax > 0 {
		parts = append(parts, fmt.Sprintf("Amount <= %f", params.AmountMax))
	}

	// Date range uses the DateUnix numeric field
	if params.StartDate != nil {
		parts = append(parts, fmt.Sprintf("DateUnix >= %d", params.StartDate.Unix()))
	}
	if params.EndDate != nil {
		parts = append(parts, fmt.Sprintf("DateUnix <= %d", params.EndDate.Unix()))
	}

	return strings.Join(parts, " AND ")
}

// hitToResult converts an Algolia hit to a Result.
func hitToResult(props map[string]any) *Result {
	result := &Result{}

	if v, ok := props["objectID"].(string); ok {
		result.ID = v
	}
	if v, ok := props["Description"].(string); ok {
		result.Description = v
	}
	if v, ok := props["Category"].(string); ok {
		result.Category = v
	}
	if v, ok := props["Amount"].(float64); ok {
		result.Amount = v
	}

	// Date — prefer DateUnix (unix timestamp)
	if v, ok := props["DateUnix"].(float64); ok && v > 0 {
		result.Date = time.Unix(int64(v), 0).UTC()
	} else if v, ok := props["Date"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			result.Date = t
		}
	}

	if v, ok := props["Kind"].(string); ok {
		switch strings.ToLower(v) {
		case "expense":
			result.Kind = model.KindExpense
		case "revenue":
			result.Kind = model.KindRevenue
		}
	}

	if result.ID == "" {
		log.Printf("algolia: skipping hit with no objectID")
		return nil
	}

	return result
}
