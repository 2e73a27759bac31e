package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	gcsstorage "cloud.google.com/go/storage"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/bizpulse/backend/internal/auth"
	"github.com/bizpulse/backend/internal/search"
	"github.com/bizpulse/backend/internal/service"
	"github.com/bizpulse/backend/internal/store"
)

func main() {
	// Get port from environment or use default
	// NOTE: Default is 8111 to avoid conflicts with other projects (not 8080)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()

	// Determine if we're running locally
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"
	skipAuth := os.Getenv("SKIP_AUTH") == "true"

	var storeImpl store.Store
	var firebaseAuth *auth.FirebaseAuth

	if useMemoryStore {
		log.Println("Using in-memory store for local development")
		storeImpl = store.NewMemoryStore()

		// For local development with memory store, always use mock
		// authentication so no Firebase setup is needed.
		log.Println("✅ Using mock authentication for local development")
		firebaseAuth = nil
	} else {
		// Production mode - use Firestore
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal("GOOGLE_CLOUD_PROJECT is required when not using the memory store")
		}

		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		// Initialize Firebase Auth (unless SKIP_AUTH is set for seeding/testing)
		if skipAuth {
			log.Println("⚠️  SKIP_AUTH enabled - using mock authentication with Firestore (for seeding/testing only)")
			firebaseAuth = nil
		} else {
			firebaseAuth, err = auth.NewFirebaseAuth(ctx)
			if err != nil {
				log.Fatalf("Failed to initialize Firebase Auth: %v", err)
			}
		}

		storeImpl = store.NewFirestoreStore(firestoreClient)
	}

	dashboardService := service.NewDashboardService(storeImpl)

	// Transaction search is optional; without Algolia credentials the search
	// endpoint reports unavailable.
	if appID := os.Getenv("ALGOLIA_APP_ID"); appID != "" {
		searchClient, err := search.NewAlgoliaClient(search.Config{
			AppID:     appID,
			APIKey:    os.Getenv("ALGOLIA_SEARCH_KEY"),
			IndexName: os.Getenv("ALGOLIA_INDEX_NAME"),
		})
		if err != nil {
			log.Fatalf("Failed to create Algolia client: %v", err)
		}
		dashboardService.SetSearchClient(searchClient)
		log.Println("✅ Algolia search enabled")
	}

	// Receipt storage is optional; without a bucket the receipt endpoints
	// report unavailable.
	if bucketName := os.Getenv("RECEIPTS_BUCKET"); bucketName != "" {
		storageClient, err := gcsstorage.NewClient(ctx)
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}
		defer storageClient.Close()
		dashboardService.SetStorageClient(storageClient.Bucket(bucketName))
		log.Printf("✅ Receipt storage enabled (bucket: %s)", bucketName)
	}

	var authMiddleware func(http.Handler) http.Handler
	if firebaseAuth != nil {
		authMiddleware = auth.Middleware(firebaseAuth)
	} else {
		authMiddleware = auth.LocalDevMiddleware()
	}

	mux := http.NewServeMux()
	mux.Handle("/", authMiddleware(dashboardService.Routes()))

	// Add health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Set up CORS
	// NOTE: Frontend runs on port 1234, not 3000
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:1234", // Local frontend
			"http://127.0.0.1:1234", // Alternative local
			"https://bizpulse.dev",
			"https://www.bizpulse.dev",
			"https://*.vercel.app", // Vercel preview deployments
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
			"X-Debug-Impersonate-User",
		},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	// h2c lets Cloud Run speak HTTP/2 to the container without TLS.
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	log.Printf("Starting server on port %s", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
