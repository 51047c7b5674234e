package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const selectDisposalGuidelines = `SELECT g.id, g.disposal_guideline, g.category_id, c.category_name
	FROM disposal_guidelines g JOIN waste_categories c ON c.id = g.category_id`

// DisposalGuidelineRepository handles database operations for disposal guidelines.
type DisposalGuidelineRepository struct {
	db *sqlx.DB
}

// NewDisposalGuidelineRepository creates a new DisposalGuidelineRepository.
func NewDisposalGuidelineRepository(db *sqlx.DB) *DisposalGuidelineRepository {
	return &DisposalGuidelineRepository{db: db}
}

// GetAll retrieves all disposal guidelines in insertion order.
func (r *DisposalGuidelineRepository) GetAll(ctx context.Context) ([]*DisposalGuideline, error) {
	var guidelines []*DisposalGuideline
	if err := r.db.SelectContext(ctx, &guidelines, selectDisposalGuidelines+" ORDER BY g.id"); err != nil {
		return nil, fmt.Errorf("failed to get all disposal guidelines: %w", err)
	}
	return guidelines, nil
}

// GetByID finds a disposal guideline by its ID, joined with its category name.
func (r *DisposalGuidelineRepository) GetByID(ctx context.Context, id int64) (*DisposalGuideline, error) {
	var guideline DisposalGuideline
	if err := r.db.GetContext(ctx, &guideline, selectDisposalGuidelines+" WHERE g.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("disposal guideline %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get disposal guideline by id: %w", err)
	}
	return &guideline, nil
}

// GetByCategoryID retrieves the guidelines referencing a category. It does not
// check that the category exists.
func (r *DisposalGuidelineRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*DisposalGuideline, error) {
	var guidelines []*DisposalGuideline
	if err := r.db.SelectContext(ctx, &guidelines, selectDisposalGuidelines+" WHERE g.category_id = ? ORDER BY g.id", categoryID); err != nil {
		return nil, fmt.Errorf("failed to get disposal guidelines by category id: %w", err)
	}
	return guidelines, nil
}

// Save creates a new guideline, stores the generated ID on it and returns the ID.
func (r *DisposalGuidelineRepository) Save(ctx context.Context, guideline *DisposalGuideline) (int64, error) {
	query := `INSERT INTO disposal_guidelines (disposal_guideline, category_id) VALUES (:disposal_guideline, :category_id)`
	res, err := r.db.NamedExecContext(ctx, query, guideline)
	if err != nil {
		return 0, fmt.Errorf("failed to insert disposal guideline: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	guideline.ID = id
	return id, nil
}

// Update overwrites the text and category of an existing guideline.
func (r *DisposalGuidelineRepository) Update(ctx context.Context, guideline *DisposalGuideline) error {
	query := `UPDATE disposal_guidelines SET disposal_guideline = :disposal_guideline, category_id = :category_id WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, guideline); err != nil {
		return fmt.Errorf("failed to update disposal guideline: %w", err)
	}
	return nil
}

// Delete removes a single guideline, returning ErrNotFound if it does not exist.
func (r *DisposalGuidelineRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM disposal_guidelines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete disposal guideline: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("disposal guideline %d: %w", id, ErrNotFound)
	}
	return nil
}
