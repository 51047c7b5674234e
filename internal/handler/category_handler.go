package handler

import (
	"net/http"
	"waste-sorting-app/internal/dto"
	"waste-sorting-app/internal/middleware"
	"waste-sorting-app/internal/service"
)

// CategoryHandler holds the dependencies for the waste category handlers.
type CategoryHandler struct {
	categories service.CategoryServicer
	locator    Locator
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(cs service.CategoryServicer, loc Locator) *CategoryHandler {
	return &CategoryHandler{
		categories: cs,
		locator:    loc,
	}
}

// listHandler returns every category, detailed unless ?projection=summary.
func (h *CategoryHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	p, appErr := parseProjection(r)
	if appErr != nil {
		return appErr
	}
	categories, err := h.categories.List(r.Context(), p)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, categories, h.locator.Current(r))
}

func (h *CategoryHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	p, appErr := parseProjection(r)
	if appErr != nil {
		return appErr
	}
	category, err := h.categories.Get(r.Context(), id, p)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, category, h.locator.Current(r))
}

// createHandler stores a new category and answers 201 with its summary.
func (h *CategoryHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req dto.WasteCategoryRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	category, err := h.categories.Create(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusCreated, category, h.locator.Created(r, category.ID))
}

func (h *CategoryHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req dto.WasteCategoryRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	category, err := h.categories.Update(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, category, h.locator.Current(r))
}

// deleteHandler removes a category with all its tips and guidelines.
func (h *CategoryHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	msg, err := h.categories.Delete(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, msg, h.locator.Current(r))
}
