package service

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	gcsstorage "cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bizpulse/backend/internal/insights"
	"github.com/bizpulse/backend/internal/search"
	"github.com/bizpulse/backend/internal/store"
)

// DashboardService serves the business dashboard API: transaction CRUD,
// cash-flow forecasting, insights, tax estimation, receipts and search.
type DashboardService struct {
	store         store.Store
	analyzer      *insights.Analyzer
	searchClient  *search.AlgoliaClient
	storageBucket *gcsstorage.BucketHandle
}

func NewDashboardService(st store.Store) *DashboardService {
	return &DashboardService{
		store:    st,
		analyzer: insights.NewAnalyzer(insights.DefaultConfig()),
	}
}

// SetSearchClient enables the transaction search endpoint.
func (s *DashboardService) SetSearchClient(client *search.AlgoliaClient) {
	s.searchClient = client
}

// SetStorageClient sets the GCS bucket for receipt operations.
func (s *DashboardService) SetStorageClient(bucket *gcsstorage.BucketHandle) {
	s.storageBucket = bucket
}

// Routes mounts every dashboard endpoint on a fresh chi router. Auth
// middleware is applied by the caller so tests can exercise routes with
// pre-seeded claims.
func (s *DashboardService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/v1/businesses/{businessId}", func(r chi.Router) {
		r.Route("/revenues", func(r chi.Router) {
			r.Post("/", s.handleCreateRevenue)
			r.Get("/", s.handleListRevenues)
			r.Post("/batch", s.handleBatchCreateRevenues)
			r.Get("/{revenueId}", s.handleGetRevenue)
			r.Put("/{revenueId}", s.handleUpdateRevenue)
			r.Delete("/{revenueId}", s.handleDeleteRevenue)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", s.handleCreateExpense)
			r.Get("/", s.handleListExpenses)
			r.Post("/batch", s.handleBatchCreateExpenses)
			r.Get("/{expenseId}", s.handleGetExpense)
			r.Put("/{expenseId}", s.handleUpdateExpense)
			r.Delete("/{expenseId}", s.handleDeleteExpense)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Post("/", s.handleCreateRecurring)
			r.Get("/", s.handleListRecurring)
			r.Get("/{recurringId}", s.handleGetRecurring)
			r.Put("/{recurringId}", s.handleUpdateRecurring)
			r.Delete("/{recurringId}", s.handleDeleteRecurring)
			r.Post("/detect", s.handleDetectRecurring)
			r.Post("/process", s.handleProcessRecurring)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", s.handleCreateInventoryItem)
			r.Get("/", s.handleListInventoryItems)
			r.Get("/{itemId}", s.handleGetInventoryItem)
			r.Put("/{itemId}", s.handleUpdateInventoryItem)
			r.Delete("/{itemId}", s.handleDeleteInventoryItem)
		})

		r.Route("/forecast", func(r chi.Router) {
			r.Post("/", s.handleGenerateForecast)
			r.Get("/latest", s.handleGetLatestForecast)
			r.Get("/seasonal", s.handleSeasonalFactors)
			r.Get("/trend", s.handleRevenueTrend)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateInsights)
			r.Get("/", s.handleListInsights)
			r.Post("/{insightId}/acknowledge", s.handleAcknowledgeInsight)
			r.Get("/cost-savings", s.handleCostSavings)
			r.Get("/trends", s.handleSpendingTrends)
		})

		r.Route("/tax", func(r chi.Router) {
			r.Get("/config", s.handleGetTaxConfig)
			r.Put("/config", s.handleUpdateTaxConfig)
			r.Get("/estimate", s.handleTaxEstimate)
		})

		r.Post("/statements/import", s.handleImportStatement)
		r.Post("/receipts", s.handleUploadReceipt)
		r.Get("/receipts/download", s.handleDownloadReceipt)
		r.Get("/search", s.handleSearch)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[Service] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps store errors onto HTTP statuses. The store reports
// missing documents with a "not found" message rather than a sentinel type.
func writeStoreError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "not found") {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("[Service] store error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
