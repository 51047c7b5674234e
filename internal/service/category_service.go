package service

import (
	"context"
	"errors"
	"fmt"
	"waste-sorting-app/internal/data"
	"waste-sorting-app/internal/dto"
)

const categoryDeletedMessage = "Waste category deleted successfully"

// CategoryServicer defines the interface for interacting with waste categories.
type CategoryServicer interface {
	List(ctx context.Context, p dto.Projection) ([]interface{}, error)
	Get(ctx context.Context, id int64, p dto.Projection) (interface{}, error)
	Create(ctx context.Context, req dto.WasteCategoryRequest) (dto.WasteCategorySummary, error)
	Update(ctx context.Context, id int64, req dto.WasteCategoryRequest) (dto.WasteCategoryDetail, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// CategoryService provides business logic for managing waste categories.
// It reads the child repositories to build the detailed projection.
type CategoryService struct {
	categories CategoryRepository
	tips       RecyclingTipRepository
	guidelines DisposalGuidelineRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories CategoryRepository, tips RecyclingTipRepository, guidelines DisposalGuidelineRepository) *CategoryService {
	return &CategoryService{
		categories: categories,
		tips:       tips,
		guidelines: guidelines,
	}
}

// List returns every category in the requested projection. The detailed
// projection loads all tips and guidelines once and groups them by category.
func (s *CategoryService) List(ctx context.Context, p dto.Projection) ([]interface{}, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if p == dto.Detailed && len(categories) > 0 {
		byID := make(map[int64]*data.WasteCategory, len(categories))
		for _, c := range categories {
			byID[c.ID] = c
		}
		tips, err := s.tips.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, tip := range tips {
			if c, ok := byID[tip.CategoryID]; ok {
				c.RecyclingTips = append(c.RecyclingTips, tip)
			}
		}
		guidelines, err := s.guidelines.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range guidelines {
			if c, ok := byID[g.CategoryID]; ok {
				c.DisposalGuidelines = append(c.DisposalGuidelines, g)
			}
		}
	}

	responses := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, dto.ToWasteCategoryResponse(c, p))
	}
	return responses, nil
}

// Get returns a single category in the requested projection.
func (s *CategoryService) Get(ctx context.Context, id int64, p dto.Projection) (interface{}, error) {
	category, err := resolveCategory(ctx, s.categories, id)
	if err != nil {
		return nil, err
	}
	if p == dto.Detailed {
		if err := s.loadChildren(ctx, category); err != nil {
			return nil, err
		}
	}
	return dto.ToWasteCategoryResponse(category, p), nil
}

// Create validates and stores a new category. A name already in use is
// reported as ErrDuplicateCategory.
func (s *CategoryService) Create(ctx context.Context, req dto.WasteCategoryRequest) (dto.WasteCategorySummary, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.WasteCategorySummary{}, err
	}

	category := dto.ToWasteCategory(req)
	if _, err := s.categories.Save(ctx, category); err != nil {
		if errors.Is(err, data.ErrDuplicate) {
			return dto.WasteCategorySummary{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, category.Name)
		}
		return dto.WasteCategorySummary{}, err
	}
	return dto.ToWasteCategorySummary(category), nil
}

// Update renames an existing category and returns it with its children.
func (s *CategoryService) Update(ctx context.Context, id int64, req dto.WasteCategoryRequest) (dto.WasteCategoryDetail, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.WasteCategoryDetail{}, err
	}

	category, err := resolveCategory(ctx, s.categories, id)
	if err != nil {
		return dto.WasteCategoryDetail{}, err
	}
	category.Name = req.CategoryName
	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, data.ErrDuplicate) {
			return dto.WasteCategoryDetail{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, category.Name)
		}
		return dto.WasteCategoryDetail{}, err
	}

	if err := s.loadChildren(ctx, category); err != nil {
		return dto.WasteCategoryDetail{}, err
	}
	return dto.ToWasteCategoryDetail(category), nil
}

// Delete removes a category together with its tips and guidelines.
func (s *CategoryService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return "", fmt.Errorf("category %d: %w", id, ErrCategoryNotFound)
		}
		return "", err
	}
	return categoryDeletedMessage, nil
}

func (s *CategoryService) loadChildren(ctx context.Context, category *data.WasteCategory) error {
	tips, err := s.tips.GetByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}
	guidelines, err := s.guidelines.GetByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}
	category.RecyclingTips = tips
	category.DisposalGuidelines = guidelines
	return nil
}

// resolveCategory looks up a category, reporting a missing one as
// ErrCategoryNotFound. The child services use it for parent references.
func resolveCategory(ctx context.Context, categories CategoryRepository, id int64) (*data.WasteCategory, error) {
	category, err := categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrCategoryNotFound)
		}
		return nil, err
	}
	return category, nil
}
