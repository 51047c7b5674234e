package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const selectRecyclingTips = `SELECT t.id, t.recycling_tip, t.category_id, c.category_name
	FROM recycling_tips t JOIN waste_categories c ON c.id = t.category_id`

// RecyclingTipRepository handles database operations for recycling tips.
type RecyclingTipRepository struct {
	db *sqlx.DB
}

// NewRecyclingTipRepository creates a new RecyclingTipRepository.
func NewRecyclingTipRepository(db *sqlx.DB) *RecyclingTipRepository {
	return &RecyclingTipRepository{db: db}
}

// GetAll retrieves all recycling tips in insertion order.
func (r *RecyclingTipRepository) GetAll(ctx context.Context) ([]*RecyclingTip, error) {
	var tips []*RecyclingTip
	if err := r.db.SelectContext(ctx, &tips, selectRecyclingTips+" ORDER BY t.id"); err != nil {
		return nil, fmt.Errorf("failed to get all recycling tips: %w", err)
	}
	return tips, nil
}

// GetByID retrieves a single recycling tip.
func (r *RecyclingTipRepository) GetByID(ctx context.Context, id int64) (*RecyclingTip, error) {
	var tip RecyclingTip
	if err := r.db.GetContext(ctx, &tip, selectRecyclingTips+" WHERE t.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recycling tip %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recycling tip by id: %w", err)
	}
	return &tip, nil
}

// GetByCategoryID retrieves every recycling tip referencing the given category.
func (r *RecyclingTipRepository) GetByCategoryID(ctx context.Context, categoryID int64) ([]*RecyclingTip, error) {
	var tips []*RecyclingTip
	if err := r.db.SelectContext(ctx, &tips, selectRecyclingTips+" WHERE t.category_id = ? ORDER BY t.id", categoryID); err != nil {
		return nil, fmt.Errorf("failed to get recycling tips by category id: %w", err)
	}
	return tips, nil
}

// Save inserts a new recycling tip and stores the generated ID on it.
func (r *RecyclingTipRepository) Save(ctx context.Context, tip *RecyclingTip) (int64, error) {
	query := `INSERT INTO recycling_tips (recycling_tip, category_id) VALUES (:recycling_tip, :category_id)`
	res, err := r.db.NamedExecContext(ctx, query, tip)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recycling tip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	tip.ID = id
	return id, nil
}

// Update writes the tip's text and category reference.
func (r *RecyclingTipRepository) Update(ctx context.Context, tip *RecyclingTip) error {
	query := `UPDATE recycling_tips SET recycling_tip = :recycling_tip, category_id = :category_id WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, tip); err != nil {
		return fmt.Errorf("failed to update recycling tip: %w", err)
	}
	return nil
}

// Delete removes a recycling tip by its ID.
func (r *RecyclingTipRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recycling_tips WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recycling tip: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("recycling tip %d: %w", id, ErrNotFound)
	}
	return nil
}
