package repository

import (
	"context"

	"homeservices/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type serviceCategoryModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	Icon        string `gorm:"column:icon"`
	Gradient    string `gorm:"column:gradient"`
}

func (serviceCategoryModel) TableName() string { return "service_categories" }

type serviceSubcategoryModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	CategoryID  int64           `gorm:"column:category_id;index"`
}

func (serviceSubcategoryModel) TableName() string { return "service_subcategories" }

func toDomainCategory(m serviceCategoryModel) domain.ServiceCategory {
	return domain.ServiceCategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Gradient:    m.Gradient,
	}
}

func toDomainSubcategory(m serviceSubcategoryModel) domain.ServiceSubcategory {
	return domain.ServiceSubcategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CategoryID:  m.CategoryID,
	}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domain.ServiceCategory) error {
	m := serviceCategoryModel{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Gradient:    c.Gradient,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

func (r *CatalogRepository) CreateSubcategory(ctx context.Context, s *domain.ServiceSubcategory) error {
	m := serviceSubcategoryModel{
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CategoryID:  s.CategoryID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	var models []serviceCategoryModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceCategory, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

// ListSubcategories returns all subcategories, or only those of one
// category when categoryID is non-nil.
func (r *CatalogRepository) ListSubcategories(ctx context.Context, categoryID *int64) ([]domain.ServiceSubcategory, error) {
	q := r.db.WithContext(ctx).Order("id")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var models []serviceSubcategoryModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ServiceSubcategory, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainSubcategory(m))
	}
	return out, nil
}

func (r *CatalogRepository) GetSubcategoryByID(ctx context.Context, id int64) (*domain.ServiceSubcategory, error) {
	var m serviceSubcategoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainSubcategory(m)
	return &s, nil
}

func (r *CatalogRepository) ListSubcategoriesByIDs(ctx context.Context, ids []int64) ([]domain.ServiceSubcategory, error) {
	if len(ids) == 0 {
		return []domain.ServiceSubcategory{}, nil
	}

	var models []serviceSubcategoryModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceSubcategory, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainSubcategory(m))
	}
	return out, nil
}

func (r *CatalogRepository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&serviceCategoryModel{}).Count(&n)
	return n, tx.Error
}
