package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"user_type" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Access   string `json:"access"`
	UserType string `json:"user_type"`
	Role     string `json:"role"`
}

// UserPublic is the allow-listed user shape rendered to clients. The
// credential hash never appears here.
type UserPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
