//go:build unit

package service

import (
	"context"
	"fmt"
	"waste-sorting-app/internal/data"
)

// mockCategoryRepository is a mock implementation of the CategoryRepository interface.
type mockCategoryRepository struct {
	getAllFunc     func() ([]*data.WasteCategory, error)
	getByIDFunc    func(id int64) (*data.WasteCategory, error)
	findByNameFunc func(name string) (*data.WasteCategory, error)
	saveFunc       func(category *data.WasteCategory) (int64, error)
	updateFunc     func(category *data.WasteCategory) error
	deleteFunc     func(id int64) error

	saveCalled        int
	updateCalled      int
	deleteCalled      int
	lastSavedCategory *data.WasteCategory
}

var _ CategoryRepository = (*mockCategoryRepository)(nil)

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*data.WasteCategory, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc()
	}
	return []*data.WasteCategory{}, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*data.WasteCategory, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, fmt.Errorf("category %d: %w", id, data.ErrNotFound)
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, name string) (*data.WasteCategory, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(name)
	}
	return nil, fmt.Errorf("category %q: %w", name, data.ErrNotFound)
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *data.WasteCategory) (int64, error) {
	m.saveCalled++
	m.lastSavedCategory = category
	if m.saveFunc != nil {
		return m.saveFunc(category)
	}
	category.ID = int64(m.saveCalled)
	return category.ID, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *data.WasteCategory) error {
	m.updateCalled++
	if m.updateFunc != nil {
		return m.updateFunc(category)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalled++
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// mockRecyclingTipRepository is a mock implementation of the RecyclingTipRepository interface.
type mockRecyclingTipRepository struct {
	tips        []*data.RecyclingTip
	errToReturn error

	saveCalled   int
	updateCalled int
	deleteCalled int
	lastSavedTip *data.RecyclingTip
}

var _ RecyclingTipRepository = (*mockRecyclingTipRepository)(nil)

func (m *mockRecyclingTipRepository) GetAll(ctx context.Context) ([]*data.RecyclingTip, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.tips, nil
}

func (m *mockRecyclingTipRepository) GetByID(ctx context.Context, id int64) (*data.RecyclingTip, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	for _, tip := range m.tips {
		if tip.ID == id {
			return tip, nil
		}
	}
	return nil, fmt.Errorf("recycling tip %d: %w", id, data.ErrNotFound)
}

func (m *mockRecyclingTipRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*data.RecyclingTip, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	tips := []*data.RecyclingTip{}
	for _, tip := range m.tips {
		if tip.CategoryID == categoryID {
			tips = append(tips, tip)
		}
	}
	return tips, nil
}

func (m *mockRecyclingTipRepository) Save(ctx context.Context, tip *data.RecyclingTip) (int64, error) {
	m.saveCalled++
	m.lastSavedTip = tip
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	tip.ID = int64(len(m.tips) + 1)
	m.tips = append(m.tips, tip)
	return tip.ID, nil
}

func (m *mockRecyclingTipRepository) Update(ctx context.Context, tip *data.RecyclingTip) error {
	m.updateCalled++
	return m.errToReturn
}

func (m *mockRecyclingTipRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalled++
	if m.errToReturn != nil {
		return m.errToReturn
	}
	for i, tip := range m.tips {
		if tip.ID == id {
			m.tips = append(m.tips[:i], m.tips[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("recycling tip %d: %w", id, data.ErrNotFound)
}

// mockDisposalGuidelineRepository is a mock implementation of the DisposalGuidelineRepository interface.
type mockDisposalGuidelineRepository struct {
	guidelines  []*data.DisposalGuideline
	errToReturn error

	saveCalled   int
	updateCalled int
	deleteCalled int
}

var _ DisposalGuidelineRepository = (*mockDisposalGuidelineRepository)(nil)

func (m *mockDisposalGuidelineRepository) GetAll(ctx context.Context) ([]*data.DisposalGuideline, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.guidelines, nil
}

func (m *mockDisposalGuidelineRepository) GetByID(ctx context.Context, id int64) (*data.DisposalGuideline, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	for _, g := range m.guidelines {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("disposal guideline %d: %w", id, data.ErrNotFound)
}

func (m *mockDisposalGuidelineRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*data.DisposalGuideline, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	guidelines := []*data.DisposalGuideline{}
	for _, g := range m.guidelines {
		if g.CategoryID == categoryID {
			guidelines = append(guidelines, g)
		}
	}
	return guidelines, nil
}

func (m *mockDisposalGuidelineRepository) Save(ctx context.Context, guideline *data.DisposalGuideline) (int64, error) {
	m.saveCalled++
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	guideline.ID = int64(len(m.guidelines) + 1)
	m.guidelines = append(m.guidelines, guideline)
	return guideline.ID, nil
}

func (m *mockDisposalGuidelineRepository) Update(ctx context.Context, guideline *data.DisposalGuideline) error {
	m.updateCalled++
	return m.errToReturn
}

func (m *mockDisposalGuidelineRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalled++
	if m.errToReturn != nil {
		return m.errToReturn
	}
	for i, g := range m.guidelines {
		if g.ID == id {
			m.guidelines = append(m.guidelines[:i], m.guidelines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("disposal guideline %d: %w", id, data.ErrNotFound)
}

// categoriesByID returns a getByIDFunc serving the given categories.
func categoriesByID(categories ...*data.WasteCategory) func(id int64) (*data.WasteCategory, error) {
	return func(id int64) (*data.WasteCategory, error) {
		for _, c := range categories {
			if c.ID == id {
				copied := *c
				return &copied, nil
			}
		}
		return nil, fmt.Errorf("category %d: %w", id, data.ErrNotFound)
	}
}

func int64Ptr(v int64) *int64 { return &v }
