package provider

import "github.com/shopspring/decimal"

type RegisterServiceRequest struct {
	SubcategoryID int64 `json:"subcategory_id" binding:"required"`
}

type RegisteredService struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
}

type ServiceEarningsItem struct {
	ServiceName string          `json:"service_name"`
	Bookings    int64           `json:"bookings"`
	Total       decimal.Decimal `json:"total"`
}

type EarningsResponse struct {
	Total     decimal.Decimal       `json:"total"`
	ThisMonth decimal.Decimal       `json:"this_month"`
	Last7Days decimal.Decimal       `json:"last_7_days"`
	ByService []ServiceEarningsItem `json:"by_service"`
}

type StatsResponse struct {
	Total     int64 `json:"total"`
	Accepted  int64 `json:"accepted"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
