package dto

import "waste-sorting-app/internal/data"

// ToWasteCategory builds a new, unsaved category from a request.
func ToWasteCategory(req WasteCategoryRequest) *data.WasteCategory {
	return &data.WasteCategory{Name: req.CategoryName}
}

func ToWasteCategorySummary(c *data.WasteCategory) WasteCategorySummary {
	return WasteCategorySummary{ID: c.ID, WasteCategory: c.Name}
}

// ToWasteCategoryDetail converts a category and whatever children are loaded
// on it. Missing children yield empty lists, never null.
func ToWasteCategoryDetail(c *data.WasteCategory) WasteCategoryDetail {
	detail := WasteCategoryDetail{
		WasteCategorySummary: ToWasteCategorySummary(c),
		RecyclingTips:        make([]RecyclingTipResponse, 0, len(c.RecyclingTips)),
		DisposalGuidelines:   make([]DisposalGuidelineResponse, 0, len(c.DisposalGuidelines)),
	}
	for _, tip := range c.RecyclingTips {
		resp := ToRecyclingTipResponse(tip)
		resp.WasteCategoryName = c.Name
		detail.RecyclingTips = append(detail.RecyclingTips, resp)
	}
	for _, guideline := range c.DisposalGuidelines {
		resp := ToDisposalGuidelineResponse(guideline)
		resp.WasteCategoryName = c.Name
		detail.DisposalGuidelines = append(detail.DisposalGuidelines, resp)
	}
	return detail
}

// ToWasteCategoryResponse returns a WasteCategorySummary or a
// WasteCategoryDetail depending on p.
func ToWasteCategoryResponse(c *data.WasteCategory, p Projection) interface{} {
	if p == Detailed {
		return ToWasteCategoryDetail(c)
	}
	return ToWasteCategorySummary(c)
}

// ToRecyclingTip builds a new tip bound to an already resolved category.
func ToRecyclingTip(req RecyclingTipRequest, category *data.WasteCategory) *data.RecyclingTip {
	return &data.RecyclingTip{
		Text:         req.RecyclingTip,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
}

// UpdateRecyclingTip overwrites the tip's text and parent in place.
func UpdateRecyclingTip(tip *data.RecyclingTip, req RecyclingTipRequest, category *data.WasteCategory) {
	tip.Text = req.RecyclingTip
	tip.CategoryID = category.ID
	tip.CategoryName = category.Name
}

func ToRecyclingTipResponse(tip *data.RecyclingTip) RecyclingTipResponse {
	return RecyclingTipResponse{
		ID:                tip.ID,
		RecyclingTip:      tip.Text,
		WasteCategoryName: tip.CategoryName,
	}
}

func ToRecyclingTipResponses(tips []*data.RecyclingTip) []RecyclingTipResponse {
	responses := make([]RecyclingTipResponse, 0, len(tips))
	for _, tip := range tips {
		responses = append(responses, ToRecyclingTipResponse(tip))
	}
	return responses
}

// ToDisposalGuideline builds a new guideline bound to an already resolved category.
func ToDisposalGuideline(req DisposalGuidelineRequest, category *data.WasteCategory) *data.DisposalGuideline {
	return &data.DisposalGuideline{
		Text:         req.DisposalGuideline,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
}

// UpdateDisposalGuideline overwrites the guideline's text and parent in place.
func UpdateDisposalGuideline(guideline *data.DisposalGuideline, req DisposalGuidelineRequest, category *data.WasteCategory) {
	guideline.Text = req.DisposalGuideline
	guideline.CategoryID = category.ID
	guideline.CategoryName = category.Name
}

func ToDisposalGuidelineResponse(guideline *data.DisposalGuideline) DisposalGuidelineResponse {
	return DisposalGuidelineResponse{
		ID:                guideline.ID,
		DisposalGuideline: guideline.Text,
		WasteCategoryName: guideline.CategoryName,
	}
}

func ToDisposalGuidelineResponses(guidelines []*data.DisposalGuideline) []DisposalGuidelineResponse {
	responses := make([]DisposalGuidelineResponse, 0, len(guidelines))
	for _, guideline := range guidelines {
		responses = append(responses, ToDisposalGuidelineResponse(guideline))
	}
	return responses
}
