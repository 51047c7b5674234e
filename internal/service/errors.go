package service

import "errors"

// Domain errors returned by the services. Handlers match them with errors.Is.
var (
	ErrCategoryNotFound          = errors.New("waste category not found")
	ErrRecyclingTipNotFound      = errors.New("recycling tip not found")
	ErrDisposalGuidelineNotFound = errors.New("disposal guideline not found")
	ErrDuplicateCategory         = errors.New("waste category already exists")
)
