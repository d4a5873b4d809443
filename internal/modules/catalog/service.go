package catalog

import (
	"context"

	"homeservices/internal/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	ListSubcategories(ctx context.Context, categoryID *int64) ([]domain.ServiceSubcategory, error)
}

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

func (s *Service) ListSubcategories(ctx context.Context, categoryID *int64) ([]SubcategoryResponse, error) {
	subs, err := s.catalog.ListSubcategories(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]SubcategoryResponse, 0, len(subs))
	for _, sc := range subs {
		out = append(out, toSubcategoryResponse(sc))
	}
	return out, nil
}

// ListCatalog nests subcategories under their categories for the admin
// services-management view.
func (s *Service) ListCatalog(ctx context.Context) ([]CategoryWithSubcategories, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.catalog.ListSubcategories(ctx, nil)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]SubcategoryResponse)
	for _, sc := range subs {
		byCategory[sc.CategoryID] = append(byCategory[sc.CategoryID], toSubcategoryResponse(sc))
	}

	out := make([]CategoryWithSubcategories, 0, len(categories))
	for _, c := range categories {
		nested := byCategory[c.ID]
		if nested == nil {
			nested = []SubcategoryResponse{}
		}
		out = append(out, CategoryWithSubcategories{
			CategoryResponse: toCategoryResponse(c),
			Subcategories:    nested,
		})
	}
	return out, nil
}

func toCategoryResponse(c domain.ServiceCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Gradient:    c.Gradient,
	}
}

func toSubcategoryResponse(sc domain.ServiceSubcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:          sc.ID,
		Name:        sc.Name,
		Description: sc.Description,
		Price:       sc.Price,
		CategoryID:  sc.CategoryID,
	}
}
