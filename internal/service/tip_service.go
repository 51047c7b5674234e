package service

import (
	"context"
	"errors"
	"fmt"
	"waste-sorting-app/internal/data"
	"waste-sorting-app/internal/dto"
)

const recyclingTipDeletedMessage = "Recycling tip deleted successfully"

// RecyclingTipServicer defines the interface for interacting with recycling tips.
type RecyclingTipServicer interface {
	List(ctx context.Context) ([]dto.RecyclingTipResponse, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]dto.RecyclingTipResponse, error)
	Get(ctx context.Context, id int64) (dto.RecyclingTipResponse, error)
	Create(ctx context.Context, req dto.RecyclingTipRequest) (dto.RecyclingTipResponse, error)
	Update(ctx context.Context, id int64, req dto.RecyclingTipRequest) (dto.RecyclingTipResponse, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// RecyclingTipService provides business logic for managing recycling tips.
type RecyclingTipService struct {
	tips       RecyclingTipRepository
	categories CategoryRepository
}

// NewRecyclingTipService creates a new RecyclingTipService.
func NewRecyclingTipService(tips RecyclingTipRepository, categories CategoryRepository) *RecyclingTipService {
	return &RecyclingTipService{
		tips:       tips,
		categories: categories,
	}
}

// List returns every recycling tip.
func (s *RecyclingTipService) List(ctx context.Context) ([]dto.RecyclingTipResponse, error) {
	tips, err := s.tips.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToRecyclingTipResponses(tips), nil
}

// ListByCategory resolves the category first, then returns its tips.
func (s *RecyclingTipService) ListByCategory(ctx context.Context, categoryID int64) ([]dto.RecyclingTipResponse, error) {
	if _, err := resolveCategory(ctx, s.categories, categoryID); err != nil {
		return nil, err
	}
	tips, err := s.tips.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.ToRecyclingTipResponses(tips), nil
}

// Get returns a single recycling tip.
func (s *RecyclingTipService) Get(ctx context.Context, id int64) (dto.RecyclingTipResponse, error) {
	tip, err := s.findTip(ctx, id)
	if err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	return dto.ToRecyclingTipResponse(tip), nil
}

// Create stores a new tip under an existing category.
func (s *RecyclingTipService) Create(ctx context.Context, req dto.RecyclingTipRequest) (dto.RecyclingTipResponse, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	category, err := resolveCategory(ctx, s.categories, *req.WasteCategoryID)
	if err != nil {
		return dto.RecyclingTipResponse{}, err
	}

	tip := dto.ToRecyclingTip(req, category)
	if _, err := s.tips.Save(ctx, tip); err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	return dto.ToRecyclingTipResponse(tip), nil
}

// Update replaces the text and category of an existing tip.
func (s *RecyclingTipService) Update(ctx context.Context, id int64, req dto.RecyclingTipRequest) (dto.RecyclingTipResponse, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	tip, err := s.findTip(ctx, id)
	if err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	category, err := resolveCategory(ctx, s.categories, *req.WasteCategoryID)
	if err != nil {
		return dto.RecyclingTipResponse{}, err
	}

	dto.UpdateRecyclingTip(tip, req, category)
	if err := s.tips.Update(ctx, tip); err != nil {
		return dto.RecyclingTipResponse{}, err
	}
	return dto.ToRecyclingTipResponse(tip), nil
}

// Delete removes a single recycling tip.
func (s *RecyclingTipService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.tips.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return "", fmt.Errorf("recycling tip %d: %w", id, ErrRecyclingTipNotFound)
		}
		return "", err
	}
	return recyclingTipDeletedMessage, nil
}

func (s *RecyclingTipService) findTip(ctx context.Context, id int64) (*data.RecyclingTip, error) {
	tip, err := s.tips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, fmt.Errorf("recycling tip %d: %w", id, ErrRecyclingTipNotFound)
		}
		return nil, err
	}
	return tip, nil
}
