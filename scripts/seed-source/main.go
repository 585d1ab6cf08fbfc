// seed-source writes a few sample user documents, with embedded child
// records, into the source Firestore project so the migration can be
// exercised end to end against real infrastructure.
//
// Usage:
//
//	export GOOGLE_APPLICATION_CREDENTIALS=/path/to/service-account.json
//	export FIREBASE_PROJECT_ID=your-project-id
//	go run ./scripts/seed-source/
package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
)

func main() {
	ctx := context.Background()

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID environment variable is required")
	}

	collection := os.Getenv("SOURCE_COLLECTION")
	if collection == "" {
		collection = "users"
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	now := time.Now()

	users := []struct {
		docID string
		data  map[string]any
	}{
		{
			docID: "seed-ana",
			data: map[string]any{
				"email":       "ana@seed.local",
				"name":        "Ana Seed",
				"accountType": "personal",
				"createdAt":   now,
				"products": []any{
					map[string]any{
						"name":          "Widget",
						"purchasePrice": 10,
						"sellingPrice":  20,
						"quantity":      2,
					},
					map[string]any{
						// String-encoded price and missing status, the way the
						// web app sometimes wrote them.
						"name":          "Gadget",
						"purchasePrice": "12.50",
					},
				},
				"revenues": []any{
					map[string]any{"description": "Venda Widget", "amount": 20, "date": now},
				},
				"expenses": []any{
					map[string]any{"description": "Frete", "amount": "5.90"},
				},
			},
		},
		{
			docID: "seed-bruno",
			data: map[string]any{
				// No email: exercises the empty-email identity path.
				"displayName": "Bruno Seed",
				"photoURL":    "https://seed.local/bruno.png",
				"transactions": []any{
					map[string]any{"description": "Compra teste", "amount": 33.3, "tags": []any{"seed"}},
				},
				"goals": []any{
					map[string]any{"name": "Reserva de emergência", "targetAmount": 1000},
				},
				"debts": []any{
					map[string]any{"creditorName": "Banco Seed", "originalAmount": 500},
				},
			},
		},
	}

	for _, u := range users {
		if _, err := client.Collection(collection).Doc(u.docID).Set(ctx, u.data); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.docID, err)
		}
		log.Printf("✓ Seeded %s", u.docID)
	}

	log.Println("Seed complete.")
}
