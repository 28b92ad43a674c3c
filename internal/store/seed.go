package store

import (
	"time"

	"commerce-intent/internal/models"
)

// SeedProducts returns the built-in catalog used when no products file
// is present. The set is fixed so tests can rely on it.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "P1", Title: "Midi Wrap Dress", Price: 119, Tags: []string{"wedding", "midi"}, Sizes: []string{"S", "M", "L"}, Color: "Charcoal"},
		{ID: "P2", Title: "Satin Slip Dress", Price: 99, Tags: []string{"wedding", "midi"}, Sizes: []string{"XS", "S", "M"}, Color: "Blush"},
		{ID: "P3", Title: "Knit Bodycon", Price: 89, Tags: []string{"midi"}, Sizes: []string{"M", "L"}, Color: "Navy"},
		{ID: "P4", Title: "A-Line Day Dress", Price: 75, Tags: []string{"daywear", "midi"}, Sizes: []string{"S", "M", "L"}, Color: "Olive"},
		{ID: "P5", Title: "Sequin Party Dress", Price: 149, Tags: []string{"party"}, Sizes: []string{"S", "M"}, Color: "Black"},
	}
}

// SeedOrders returns the built-in order book used when no orders file is
// present.
func SeedOrders() []models.Order {
	return []models.Order{
		{OrderID: "A1001", Email: "rehan@example.com", CreatedAt: mustUTC("2025-09-07T09:30:00Z"), Items: []models.OrderItem{{ProductID: "P1", Size: "M"}}},
		{OrderID: "A1002", Email: "alex@example.com", CreatedAt: mustUTC("2025-09-06T13:05:00Z"), Items: []models.OrderItem{{ProductID: "P2", Size: "S"}}},
		{OrderID: "A1003", Email: "mira@example.com", CreatedAt: mustUTC("2025-09-07T11:55:00Z"), Items: []models.OrderItem{{ProductID: "P3", Size: "L"}}},
	}
}

func mustUTC(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
