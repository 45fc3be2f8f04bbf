// Command seed loads a sample product catalogue into Firestore so a
// fresh environment has something to browse. It also prints a bcrypt
// hash for the admin key named in ADMIN_KEY, ready for ADMIN_KEY_HASH.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamour-aluminium/catalogue/internal/catalog"
	store "github.com/glamour-aluminium/catalogue/internal/store/firestore"
)

func main() {
	ctx := context.Background()

	projectID := getenv("FIRESTORE_PROJECT_ID", "glamour-aluminium-dev")
	collection := getenv("FIRESTORE_COLLECTION", "products")

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("connect firestore: %v", err)
	}
	defer client.Close()

	products := store.New(client, collection)

	fmt.Println("→ Seeding products...")
	for _, data := range sampleProducts() {
		id, err := products.CreateProduct(ctx, data)
		if err != nil {
			log.Fatalf("seed product %q: %v", data.Name, err)
		}
		fmt.Printf("  %s  %s\n", id, data.Name)
	}

	if key := os.Getenv("ADMIN_KEY"); key != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash admin key: %v", err)
		}
		fmt.Printf("→ ADMIN_KEY_HASH=%s\n", hash)
	}

	fmt.Println("✓ Done")
}

func sampleProducts() []catalog.ProductData {
	return []catalog.ProductData{
		{
			Name:        "Premium Sliding Window",
			Description: "Thermally broken aluminium sliding window with double glazing and a multi-point lock.",
			Model:       "GSW-2400",
			Category:    "windows",
			Badge:       "Best Seller",
			Rating:      4.8,
			Reviews:     124,
			Features:    []string{"Thermal break profile", "Double glazing up to 24mm", "Multi-point locking"},
			Applications: []string{
				"Residential towers",
				"Office fit-outs",
			},
			Specifications: map[string]string{
				"Frame depth":   "90mm",
				"Glass":         "6/12/6 insulated unit",
				"Max sash size": "1.6m x 2.4m",
			},
		},
		{
			Name:        "Casement Window Series 60",
			Description: "Outward-opening casement window with concealed hinges and EPDM gaskets.",
			Model:       "GCW-060",
			Category:    "windows",
			Rating:      4.5,
			Reviews:     58,
			Features:    []string{"Concealed friction hinges", "EPDM double gasket"},
			Specifications: map[string]string{
				"Frame depth": "60mm",
			},
		},
		{
			Name:        "Hinged Entrance Door",
			Description: "Heavy-duty aluminium entrance door with a flush threshold option.",
			Model:       "GDR-100",
			Category:    "doors",
			Badge:       "New",
			Rating:      4.6,
			Reviews:     41,
			Features:    []string{"Flush threshold", "Concealed closer"},
		},
		{
			Name:        "Bi-Fold Door System",
			Description: "Folding door system spanning openings up to six metres with top-hung rollers.",
			Model:       "GDR-300",
			Category:    "doors",
			Rating:      4.9,
			Reviews:     87,
			Features:    []string{"Top-hung rollers", "Up to 7 panels"},
		},
		{
			Name:        "Glass Balustrade Rail",
			Description: "Frameless glass balustrade channel for balconies and terraces.",
			Model:       "GRL-050",
			Category:    "railings",
			Rating:      4.4,
			Reviews:     23,
		},
		{
			Name:        "Unitised Curtain Wall",
			Description: "Factory-assembled curtain wall units for fast facade installation.",
			Model:       "GCWL-800",
			Category:    "curtain-walls",
			Rating:      4.7,
			Reviews:     12,
		},
		{
			Name:        "Standing Seam Roof Panel",
			Description: "Aluminium standing seam roofing panel with concealed fixings.",
			Model:       "GRF-210",
			Category:    "roofing",
			Rating:      4.3,
			Reviews:     9,
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
