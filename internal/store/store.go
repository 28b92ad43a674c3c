package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"commerce-intent/internal/models"
)

// Store holds the product catalog and order book. It is loaded once at
// startup and read-only afterwards, so it is safe to share across
// concurrently processed requests without locking.
type Store struct {
	products []models.Product
	orders   []models.Order
}

// Load reads the two data files. A missing file falls back to the
// built-in seed set; an unreadable or unparseable file is a hard error.
func Load(productsPath, ordersPath string) (*Store, error) {
	products, err := loadProducts(productsPath)
	if err != nil {
		return nil, err
	}

	orders, err := loadOrders(ordersPath)
	if err != nil {
		return nil, err
	}

	return &Store{products: products, orders: orders}, nil
}

// NewFixture builds a store from explicit records, for tests.
func NewFixture(products []models.Product, orders []models.Order) *Store {
	return &Store{products: products, orders: orders}
}

func loadProducts(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return SeedProducts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products file %s: %w", path, err)
	}
	return products, nil
}

func loadOrders(path string) ([]models.Order, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return SeedOrders(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read orders file: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders file %s: %w", path, err)
	}
	return orders, nil
}

// SearchProducts filters the catalog by price ceiling (inclusive), tag
// overlap (at least one shared tag when tags are given) and query
// substring match against the title or any tag. Results come back sorted
// ascending by price and capped at 2.
func (s *Store) SearchProducts(query string, maxPrice int, tags []string) []models.Product {
	queryLower := strings.ToLower(query)

	var results []models.Product
	for _, product := range s.products {
		if product.Price > maxPrice {
			continue
		}
		if len(tags) > 0 && !sharesTag(product.Tags, tags) {
			continue
		}
		if queryLower != "" && !matchesQuery(product, queryLower) {
			continue
		}
		results = append(results, product)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	if len(results) > 2 {
		results = results[:2]
	}
	return results
}

func sharesTag(productTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range productTags {
			if t == w {
				return true
			}
		}
	}
	return false
}

func matchesQuery(product models.Product, queryLower string) bool {
	if strings.Contains(strings.ToLower(product.Title), queryLower) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), queryLower) {
			return true
		}
	}
	return false
}

// FindOrder looks up an order by id and owner email. Both fields must
// match exactly and case-sensitively; a correct id with the wrong email
// is indistinguishable from a nonexistent id.
func (s *Store) FindOrder(orderID, email string) (models.Order, bool) {
	for _, order := range s.orders {
		if order.OrderID == orderID && order.Email == email {
			return order, true
		}
	}
	return models.Order{}, false
}

// ProductCount reports the catalog size.
func (s *Store) ProductCount() int {
	return len(s.products)
}

// OrderCount reports the order book size.
func (s *Store) OrderCount() int {
	return len(s.orders)
}
