package data

// WasteCategory is the parent entity; its name is unique.
// The child slices are only populated when a caller loads them explicitly.
type WasteCategory struct {
	ID                 int64                `db:"id"`
	Name               string               `db:"category_name"`
	RecyclingTips      []*RecyclingTip      `db:"-"`
	DisposalGuidelines []*DisposalGuideline `db:"-"`
}

// RecyclingTip is advisory text owned by exactly one WasteCategory.
type RecyclingTip struct {
	ID           int64  `db:"id"`
	Text         string `db:"recycling_tip"`
	CategoryID   int64  `db:"category_id"`
	CategoryName string `db:"category_name"` // joined from waste_categories
}

// DisposalGuideline is advisory text (at most 255 characters) owned by exactly one WasteCategory.
type DisposalGuideline struct {
	ID           int64  `db:"id"`
	Text         string `db:"disposal_guideline"`
	CategoryID   int64  `db:"category_id"`
	CategoryName string `db:"category_name"` // joined from waste_categories
}
