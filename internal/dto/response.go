package dto

// ServiceResponse is the envelope of every response body: the payload and
// the URI of the resource or collection it concerns.
type ServiceResponse struct {
	Response interface{} `json:"response"`
	Location *string     `json:"location"`
}

// ErrorResponse is the payload of a failed request.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type RecyclingTipResponse struct {
	ID                int64  `json:"id"`
	RecyclingTip      string `json:"recyclingTip"`
	WasteCategoryName string `json:"wasteCategoryName"`
}

type DisposalGuidelineResponse struct {
	ID                int64  `json:"id"`
	DisposalGuideline string `json:"disposalGuideline"`
	WasteCategoryName string `json:"wasteCategoryName"`
}

// WasteCategorySummary is the Summary projection of a category.
type WasteCategorySummary struct {
	ID            int64  `json:"id"`
	WasteCategory string `json:"wasteCategory"`
}

// WasteCategoryDetail is the Detailed projection: the summary plus the
// category's tips and guidelines.
type WasteCategoryDetail struct {
	WasteCategorySummary
	RecyclingTips      []RecyclingTipResponse      `json:"recyclingTips"`
	DisposalGuidelines []DisposalGuidelineResponse `json:"disposalGuidelines"`
}
