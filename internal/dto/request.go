package dto

// WasteCategoryRequest is the payload for creating or renaming a category.
type WasteCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"notblank"`
}

// RecyclingTipRequest is the payload for creating or updating a recycling tip.
type RecyclingTipRequest struct {
	RecyclingTip    string `json:"recyclingTip" validate:"notblank"`
	WasteCategoryID *int64 `json:"wasteCategoryId" validate:"required"`
}

// DisposalGuidelineRequest is the payload for creating or updating a disposal guideline.
type DisposalGuidelineRequest struct {
	DisposalGuideline string `json:"disposalGuideline" validate:"notblank,max=255"`
	WasteCategoryID   *int64 `json:"wasteCategoryId" validate:"required"`
}
