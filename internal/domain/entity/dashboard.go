package entity

import "github.com/shopspring/decimal"

// DashboardStats are the counters shown on the back-office landing page.
type DashboardStats struct {
	Products         int                 `json:"products"`
	LowStockProducts int                 `json:"lowStockProducts"`
	Categories       int                 `json:"categories"`
	Collections      int                 `json:"collections"`
	Reviews          int                 `json:"reviews"`
	ContactMessages  int                 `json:"contactMessages"`
	Customers        int                 `json:"customers"`
	OrdersByStatus   map[OrderStatus]int `json:"ordersByStatus"`
	Revenue          decimal.Decimal     `json:"revenue"` // Sum of totals of paid and later orders.
}
