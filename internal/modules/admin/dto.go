package admin

type AnalyticsResponse struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalProviders int64 `json:"totalProviders"`
	TotalServices  int64 `json:"totalServices"`
	TotalBookings  int64 `json:"totalBookings"`
}

type UserRow struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
