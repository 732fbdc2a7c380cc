// Package seeders populates the store with demo data for local development.
package seeders

import (
	"context"
	"time"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/internal/store"
)

var demoClients = []models.PortfolioEntry{
	{
		Name:        "Aurora Threads",
		ProjectName: "E-commerce replatform",
		Category:    "E-commerce",
		Results:     "2.4x conversion rate after relaunch",
		Testimonial: "The new storefront paid for itself within a quarter.",
		Rating:      5,
	},
	{
		Name:        "Brightpath Clinic",
		ProjectName: "Patient booking portal",
		Category:    "Healthcare",
		Results:     "Phone bookings down 60%",
		Rating:      4.5,
	},
	{
		Name:        "Kestrel Logistics",
		ProjectName: "Fleet tracking dashboard",
		Category:    "Logistics",
		Results:     "Dispatch time cut from hours to minutes",
		Testimonial: "Our dispatchers finally trust the numbers on screen.",
		Rating:      5,
	},
}

// Portfolio inserts the demo client entries and returns how many were created.
func Portfolio(ctx context.Context, portfolio store.PortfolioStore) (int, error) {
	created := 0
	for i, entry := range demoClients {
		doc := entry.Doc()
		// Stagger timestamps so the newest-first listing has a stable order.
		doc["createdAt"] = time.Now().UTC().Add(time.Duration(i-len(demoClients)) * time.Minute)

		if _, err := portfolio.Insert(ctx, doc); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
