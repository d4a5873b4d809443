package auth

import (
	"context"
	"errors"
	"strings"

	"homeservices/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, userType, role string) (string, error)
}

// Service contains all business logic for authentication.
type Service struct {
	users UserRepository
	jwt   jwtService
	roles *domain.RoleRegistry
}

type LoginResult struct {
	AccessToken string
	UserType    domain.UserType
	Role        string
}

func NewService(users UserRepository, jwt jwtService, roles *domain.RoleRegistry) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		roles: roles,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	userType := domain.UserType(strings.TrimSpace(req.UserType))
	if !s.roles.ValidUserType(userType) {
		return nil, ErrInvalidUserType
	}
	if !s.roles.ValidRole(userType, req.Role) {
		return nil, ErrInvalidRole
	}

	username := strings.TrimSpace(req.Username)
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hashed,
		UserType:     userType,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// two registrations can race past the existence check; the unique
		// index is the backstop
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login reports the same error for unknown users and wrong passwords.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.UserType), user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		UserType:    user.UserType,
		Role:        user.Role,
	}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
