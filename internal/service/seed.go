package service

import (
	"context"
	"errors"
	"fmt"
	"waste-sorting-app/internal/data"
	"waste-sorting-app/internal/logger"
)

type seedCategory struct {
	name      string
	tip       string
	guideline string
}

var defaultSeed = []seedCategory{
	{
		name:      "Plastic",
		tip:       "Rinse plastic containers before recycling.",
		guideline: "Flatten plastic bottles before disposal.",
	},
	{
		name:      "Glass",
		tip:       "Recycle glass bottles by washing and drying them.",
		guideline: "Remove bottle caps before recycling glass.",
	},
}

// Seed inserts the example categories with one tip and one guideline each.
// Categories that already exist by name are left untouched, so running it
// on every start is safe.
func Seed(ctx context.Context, categories CategoryRepository, tips RecyclingTipRepository, guidelines DisposalGuidelineRepository, log logger.Logger) error {
	for _, s := range defaultSeed {
		_, err := categories.FindByName(ctx, s.name)
		if err == nil {
			log.Debug(fmt.Sprintf("Seed category %q already present, skipping", s.name))
			continue
		}
		if !errors.Is(err, data.ErrNotFound) {
			return fmt.Errorf("seed: %w", err)
		}

		category := &data.WasteCategory{Name: s.name}
		if _, err := categories.Save(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", s.name, err)
		}
		tip := &data.RecyclingTip{Text: s.tip, CategoryID: category.ID, CategoryName: category.Name}
		if _, err := tips.Save(ctx, tip); err != nil {
			return fmt.Errorf("seed tip for %q: %w", s.name, err)
		}
		guideline := &data.DisposalGuideline{Text: s.guideline, CategoryID: category.ID, CategoryName: category.Name}
		if _, err := guidelines.Save(ctx, guideline); err != nil {
			return fmt.Errorf("seed guideline for %q: %w", s.name, err)
		}
		log.With(map[string]interface{}{"category_id": category.ID}).Info(fmt.Sprintf("Seeded category %q", s.name))
	}
	return nil
}
