package catalog

import "github.com/shopspring/decimal"

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
}

type SubcategoryResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
}

// CategoryWithSubcategories is the admin management view shape.
type CategoryWithSubcategories struct {
	CategoryResponse
	Subcategories []SubcategoryResponse `json:"subcategories"`
}
