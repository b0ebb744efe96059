// Package analytics turns the order history fetched from the commerce
// API into the aggregates behind the admin dashboard charts.
package analytics

import (
	"sort"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
)

type ProductSales struct {
	ProductID string  `json:"id"`
	Title     string  `json:"title"`
	Units     int     `json:"units"`
	Revenue   float64 `json:"revenue"`
}

type Stats struct {
	TotalOrders       int                `json:"totalOrders"`
	TotalRevenue      float64            `json:"totalRevenue"`
	AverageOrderValue float64            `json:"averageOrderValue"`
	OrdersByStatus    map[string]int     `json:"ordersByStatus"`
	RevenueByCategory map[string]float64 `json:"revenueByCategory"`
	TopProducts       []ProductSales     `json:"topProducts"`
}

// TopProductsLimit caps the best-seller list on the dashboard.
const TopProductsLimit = 5

// Compute aggregates the given orders. It is a pure function of its
// input; callers fetch the orders through the admin orders client.
func Compute(orders []clients.Order) Stats {
	stats := Stats{
		OrdersByStatus:    make(map[string]int),
		RevenueByCategory: make(map[string]float64),
	}

	sales := make(map[string]*ProductSales)
	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.Total
		stats.OrdersByStatus[o.Status]++

		for _, it := range o.Items {
			revenue := float64(it.Quantity) * it.Price
			stats.RevenueByCategory[it.Category] += revenue

			ps, ok := sales[it.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: it.ProductID, Title: it.Title}
				sales[it.ProductID] = ps
			}
			ps.Units += it.Quantity
			ps.Revenue += revenue
		}
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	top := make([]ProductSales, 0, len(sales))
	for _, ps := range sales {
		top = append(top, *ps)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > TopProductsLimit {
		top = top[:TopProductsLimit]
	}
	stats.TopProducts = top

	return stats
}
