package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository handles database operations for waste categories.
type CategoryRepository struct {
	DB *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GetAll retrieves all categories in insertion order.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*WasteCategory, error) {
	var categories []*WasteCategory
	err := r.DB.SelectContext(ctx, &categories, "SELECT id, category_name FROM waste_categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID finds a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*WasteCategory, error) {
	var category WasteCategory
	err := r.DB.GetContext(ctx, &category, "SELECT id, category_name FROM waste_categories WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return &category, nil
}

// FindByName finds a category by its exact name.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*WasteCategory, error) {
	var category WasteCategory
	err := r.DB.GetContext(ctx, &category, "SELECT id, category_name FROM waste_categories WHERE category_name = ?", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

// Save creates a new category, stores the generated ID on it and returns the ID.
func (r *CategoryRepository) Save(ctx context.Context, category *WasteCategory) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, "INSERT INTO waste_categories (category_name) VALUES (:category_name)", category)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	category.ID = id
	return id, nil
}

// Update writes the category's name. The caller is expected to have loaded
// the row first: MySQL reports zero affected rows for an unchanged name.
func (r *CategoryRepository) Update(ctx context.Context, category *WasteCategory) error {
	_, err := r.DB.NamedExecContext(ctx, "UPDATE waste_categories SET category_name = :category_name WHERE id = :id", category)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category together with every tip and guideline that
// references it, in a single transaction.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM recycling_tips WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete recycling tips: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM disposal_guidelines WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete disposal guidelines: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM waste_categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}
	return nil
}
