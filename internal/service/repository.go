package service

import (
	"context"
	"waste-sorting-app/internal/data"
)

// CategoryRepository defines the interface for database operations on waste categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*data.WasteCategory, error)
	GetByID(ctx context.Context, id int64) (*data.WasteCategory, error)
	FindByName(ctx context.Context, name string) (*data.WasteCategory, error)
	Save(ctx context.Context, category *data.WasteCategory) (int64, error)
	Update(ctx context.Context, category *data.WasteCategory) error
	Delete(ctx context.Context, id int64) error
}

// RecyclingTipRepository defines the interface for database operations on recycling tips.
type RecyclingTipRepository interface {
	GetAll(ctx context.Context) ([]*data.RecyclingTip, error)
	GetByID(ctx context.Context, id int64) (*data.RecyclingTip, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*data.RecyclingTip, error)
	Save(ctx context.Context, tip *data.RecyclingTip) (int64, error)
	Update(ctx context.Context, tip *data.RecyclingTip) error
	Delete(ctx context.Context, id int64) error
}

// DisposalGuidelineRepository defines the interface for database operations on disposal guidelines.
type DisposalGuidelineRepository interface {
	GetAll(ctx context.Context) ([]*data.DisposalGuideline, error)
	GetByID(ctx context.Context, id int64) (*data.DisposalGuideline, error)
	GetByCategoryID(ctx context.Context, categoryID int64) ([]*data.DisposalGuideline, error)
	Save(ctx context.Context, guideline *data.DisposalGuideline) (int64, error)
	Update(ctx context.Context, guideline *data.DisposalGuideline) error
	Delete(ctx context.Context, id int64) error
}

var (
	_ CategoryRepository          = (*data.CategoryRepository)(nil)
	_ RecyclingTipRepository      = (*data.RecyclingTipRepository)(nil)
	_ DisposalGuidelineRepository = (*data.DisposalGuidelineRepository)(nil)
)
