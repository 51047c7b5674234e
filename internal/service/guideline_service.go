package service

import (
	"context"
	"errors"
	"fmt"
	"waste-sorting-app/internal/data"
	"waste-sorting-app/internal/dto"
)

const disposalGuidelineDeletedMessage = "Disposal guideline deleted successfully"

// DisposalGuidelineServicer defines the interface for interacting with disposal guidelines.
type DisposalGuidelineServicer interface {
	List(ctx context.Context) ([]dto.DisposalGuidelineResponse, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]dto.DisposalGuidelineResponse, error)
	Get(ctx context.Context, id int64) (dto.DisposalGuidelineResponse, error)
	Create(ctx context.Context, req dto.DisposalGuidelineRequest) (dto.DisposalGuidelineResponse, error)
	Update(ctx context.Context, id int64, req dto.DisposalGuidelineRequest) (dto.DisposalGuidelineResponse, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// DisposalGuidelineService provides business logic for managing disposal guidelines.
type DisposalGuidelineService struct {
	guidelines DisposalGuidelineRepository
	categories CategoryRepository
}

// NewDisposalGuidelineService creates a new DisposalGuidelineService.
func NewDisposalGuidelineService(guidelines DisposalGuidelineRepository, categories CategoryRepository) *DisposalGuidelineService {
	return &DisposalGuidelineService{
		guidelines: guidelines,
		categories: categories,
	}
}

// List returns every disposal guideline.
func (s *DisposalGuidelineService) List(ctx context.Context) ([]dto.DisposalGuidelineResponse, error) {
	guidelines, err := s.guidelines.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToDisposalGuidelineResponses(guidelines), nil
}

// ListByCategory resolves the category first, then returns its guidelines.
func (s *DisposalGuidelineService) ListByCategory(ctx context.Context, categoryID int64) ([]dto.DisposalGuidelineResponse, error) {
	if _, err := resolveCategory(ctx, s.categories, categoryID); err != nil {
		return nil, err
	}
	guidelines, err := s.guidelines.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return dto.ToDisposalGuidelineResponses(guidelines), nil
}

// Get returns a single disposal guideline.
func (s *DisposalGuidelineService) Get(ctx context.Context, id int64) (dto.DisposalGuidelineResponse, error) {
	guideline, err := s.findGuideline(ctx, id)
	if err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	return dto.ToDisposalGuidelineResponse(guideline), nil
}

// Create stores a new guideline under an existing category.
func (s *DisposalGuidelineService) Create(ctx context.Context, req dto.DisposalGuidelineRequest) (dto.DisposalGuidelineResponse, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	category, err := resolveCategory(ctx, s.categories, *req.WasteCategoryID)
	if err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}

	guideline := dto.ToDisposalGuideline(req, category)
	if _, err := s.guidelines.Save(ctx, guideline); err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	return dto.ToDisposalGuidelineResponse(guideline), nil
}

// Update replaces the text and category of an existing guideline.
func (s *DisposalGuidelineService) Update(ctx context.Context, id int64, req dto.DisposalGuidelineRequest) (dto.DisposalGuidelineResponse, error) {
	if err := dto.Validate(&req); err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	guideline, err := s.findGuideline(ctx, id)
	if err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	category, err := resolveCategory(ctx, s.categories, *req.WasteCategoryID)
	if err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}

	dto.UpdateDisposalGuideline(guideline, req, category)
	if err := s.guidelines.Update(ctx, guideline); err != nil {
		return dto.DisposalGuidelineResponse{}, err
	}
	return dto.ToDisposalGuidelineResponse(guideline), nil
}

// Delete removes a single disposal guideline.
func (s *DisposalGuidelineService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.guidelines.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return "", fmt.Errorf("disposal guideline %d: %w", id, ErrDisposalGuidelineNotFound)
		}
		return "", err
	}
	return disposalGuidelineDeletedMessage, nil
}

func (s *DisposalGuidelineService) findGuideline(ctx context.Context, id int64) (*data.DisposalGuideline, error) {
	guideline, err := s.guidelines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, fmt.Errorf("disposal guideline %d: %w", id, ErrDisposalGuidelineNotFound)
		}
		return nil, err
	}
	return guideline, nil
}
