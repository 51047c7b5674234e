package handler

import (
	"net/http"
	"waste-sorting-app/internal/dto"
	"waste-sorting-app/internal/middleware"
	"waste-sorting-app/internal/service"
)

// DisposalGuidelineHandler holds the dependencies for the disposal guideline handlers.
type DisposalGuidelineHandler struct {
	guidelines service.DisposalGuidelineServicer
	locator    Locator
}

// NewDisposalGuidelineHandler creates a new DisposalGuidelineHandler with the given dependencies.
func NewDisposalGuidelineHandler(gs service.DisposalGuidelineServicer, loc Locator) *DisposalGuidelineHandler {
	return &DisposalGuidelineHandler{
		guidelines: gs,
		locator:    loc,
	}
}

func (h *DisposalGuidelineHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	guidelines, err := h.guidelines.List(r.Context())
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, guidelines, h.locator.Current(r))
}

func (h *DisposalGuidelineHandler) listByCategoryHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	categoryID, appErr := parseID(r, "categoryId")
	if appErr != nil {
		return appErr
	}
	guidelines, err := h.guidelines.ListByCategory(r.Context(), categoryID)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, guidelines, h.locator.Current(r))
}

func (h *DisposalGuidelineHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	guideline, err := h.guidelines.Get(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, guideline, h.locator.Current(r))
}

func (h *DisposalGuidelineHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req dto.DisposalGuidelineRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	guideline, err := h.guidelines.Create(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusCreated, guideline, h.locator.Created(r, guideline.ID))
}

func (h *DisposalGuidelineHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req dto.DisposalGuidelineRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	guideline, err := h.guidelines.Update(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, guideline, h.locator.Current(r))
}

func (h *DisposalGuidelineHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	msg, err := h.guidelines.Delete(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, msg, h.locator.Current(r))
}
