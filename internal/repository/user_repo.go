package repository

import (
	"context"
	"strings"
	"time"

	"homeservices/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	UserType     string    `gorm:"column:user_type"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type providerServiceModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex:idx_provider_service"`
	SubcategoryID int64     `gorm:"column:subcategory_id;uniqueIndex:idx_provider_service"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (providerServiceModel) TableName() string { return "provider_services" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		UserType:     domain.UserType(m.UserType),
		Role:         m.Role,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		PasswordHash: u.PasswordHash,
		UserType:     string(u.UserType),
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("username").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).Count(&n)
	return n, tx.Error
}

func (r *UserRepository) CountByUserType(ctx context.Context, t domain.UserType) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_type = ?", string(t)).
		Count(&n)
	return n, tx.Error
}

// AddProviderService registers a subcategory for the provider. The unique
// index surfaces duplicate adds as a constraint error to the caller.
func (r *UserRepository) AddProviderService(ctx context.Context, userID, subcategoryID int64) error {
	m := providerServiceModel{
		UserID:        userID,
		SubcategoryID: subcategoryID,
		CreatedAt:     time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// RemoveProviderService unregisters a subcategory; reports whether a
// registration actually existed.
func (r *UserRepository) RemoveProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND subcategory_id = ?", userID, subcategoryID).
		Delete(&providerServiceModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *UserRepository) HasProviderService(ctx context.Context, userID, subcategoryID int64) (bool, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&providerServiceModel{}).
		Where("user_id = ? AND subcategory_id = ?", userID, subcategoryID).
		Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

func (r *UserRepository) ListProviderServiceIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&providerServiceModel{}).
		Where("user_id = ?", userID).
		Order("subcategory_id").
		Pluck("subcategory_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}
