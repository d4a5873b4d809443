package domain

import "time"

type UserType string

const (
	TypeEndUser          UserType = "End User"
	TypeServiceProvider  UserType = "Service Provider"
	TypePlatformProvider UserType = "Platform Provider"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	UserType     UserType  `json:"user_type"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the resolved caller, passed explicitly into every service
// call. Handlers never read the user from ambient state.
type Identity struct {
	UserID   int64
	Username string
	UserType UserType
	Role     string
}

func (i Identity) IsProvider() bool {
	return i.UserType == TypeServiceProvider
}

// RoleRegistry holds the fixed per-type role sets. Built once in config and
// injected into registration validation.
type RoleRegistry struct {
	roles map[UserType][]string
}

func NewRoleRegistry(roles map[UserType][]string) *RoleRegistry {
	cp := make(map[UserType][]string, len(roles))
	for t, rs := range roles {
		cp[t] = append([]string(nil), rs...)
	}
	return &RoleRegistry{roles: cp}
}

func (r *RoleRegistry) ValidUserType(t UserType) bool {
	_, ok := r.roles[t]
	return ok
}

func (r *RoleRegistry) ValidRole(t UserType, role string) bool {
	for _, candidate := range r.roles[t] {
		if candidate == role {
			return true
		}
	}
	return false
}

func (r *RoleRegistry) RolesFor(t UserType) []string {
	return append([]string(nil), r.roles[t]...)
}
