//go:build ignore
// +build ignore

// seed-data populates a running backend with demo revenues, expenses and
// recurring schedules for local development.
//
// Usage:
//
//	go run scripts/seed-data.go
//	API_URL=http://localhost:8111 BUSINESS_ID=demo-business go run scripts/seed-data.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8111"
	}
	businessID := os.Getenv("BUSINESS_ID")
	if businessID == "" {
		businessID = "demo-business"
	}
	authToken := os.Getenv("AUTH_TOKEN")

	log.Printf("🌱 Seeding data for business: %s", businessID)
	log.Printf("📡 API URL: %s", apiURL)
	if authToken == "" {
		log.Println("ℹ️  No auth token provided - backend must be running with SKIP_AUTH=true")
	}

	base := fmt.Sprintf("%s/v1/businesses/%s", apiURL, businessID)
	post := func(path string, body any) {
		data, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal %s: %v", path, err)
		}
		req, err := http.NewRequest(http.MethodPost, base+path, bytes.NewReader(data))
		if err != nil {
			log.Fatalf("request %s: %v", path, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if authToken != "" {
			req.Header.Set("Authorization", "Bearer "+authToken)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("POST %s: %v", path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			log.Fatalf("POST %s: status %d", path, resp.StatusCode)
		}
	}

	now := time.Now().UTC()
	day := func(daysAgo int) time.Time {
		return now.AddDate(0, 0, -daysAgo)
	}

	// Six months of revenue with a weekly sales rhythm.
	type revenue struct {
		Amount      float64   `json:"amount"`
		Date        time.Time `json:"date"`
		Source      string    `json:"source"`
		Description string    `json:"description"`
	}
	var revenues []revenue
	for d := 0; d < 180; d += 7 {
		revenues = append(revenues, revenue{
			Amount:      2400 + float64(d%28)*35,
			Date:        day(d),
			Source:      "Sales",
			Description: "Weekly sales batch",
		})
	}
	revenues = append(revenues,
		revenue{Amount: 5200, Date: day(10), Source: "Consulting", Description: "Project milestone"},
		revenue{Amount: 5200, Date: day(40), Source: "Consulting", Description: "Project milestone"},
	)
	post("/revenues/batch", map[string]any{"revenues": revenues})
	log.Printf("✅ seeded %d revenues", len(revenues))

	type expense struct {
		Amount      float64   `json:"amount"`
		Date        time.Time `json:"date"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
	}
	var expenses []expense
	for m := 0; m < 6; m++ {
		expenses = append(expenses,
			expense{Amount: 1800, Date: day(m*30 + 1), Category: "Rent", Description: "Office rent"},
			expense{Amount: 240 + float64(m)*15, Date: day(m*30 + 3), Category: "Utilities", Description: "Power and water"},
			expense{Amount: 650, Date: day(m*30 + 5), Category: "Marketing", Description: "Google Ads"},
			expense{Amount: 120, Date: day(m*30 + 8), Category: "Software", Description: "Xero subscription"},
			expense{Amount: 430 + float64(m)*22, Date: day(m*30 + 12), Category: "Supplies", Description: "Officeworks order"},
		)
	}
	// An outlier for the anomaly detector and a duplicate pair for dedupe.
	expenses = append(expenses,
		expense{Amount: 4800, Date: day(6), Category: "Supplies", Description: "Bulk stock purchase"},
		expense{Amount: 89.99, Date: day(14), Category: "Software", Description: "Adobe plan"},
		expense{Amount: 89.99, Date: day(15), Category: "Software", Description: "Adobe plan"},
	)
	post("/expenses/batch", map[string]any{"expenses": expenses})
	log.Printf("✅ seeded %d expenses", len(expenses))

	type recurring struct {
		Type      string    `json:"type"`
		Name      string    `json:"name"`
		Amount    float64   `json:"amount"`
		Frequency string    `json:"frequency"`
		StartDate time.Time `json:"startDate"`
	}
	for _, rt := range []recurring{
		{Type: "expense", Name: "Rent", Amount: 1800, Frequency: "monthly", StartDate: day(180)},
		{Type: "expense", Name: "Insurance", Amount: 210, Frequency: "monthly", StartDate: day(180)},
		{Type: "revenue", Name: "Retainer", Amount: 3000, Frequency: "monthly", StartDate: day(90)},
	} {
		post("/recurring/", rt)
	}
	log.Println("✅ seeded recurring schedules")

	post("/insights/generate", map[string]any{})
	log.Println("✅ generated insights")

	post("/forecast/", map[string]any{"periodDays": 90, "currentBalance": 15000})
	log.Println("✅ generated forecast")

	log.Println("🎉 Done.")
}
