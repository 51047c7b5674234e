package handler

import (
	"net/http"
	"waste-sorting-app/internal/dto"
	"waste-sorting-app/internal/middleware"
	"waste-sorting-app/internal/service"
)

// RecyclingTipHandler holds the dependencies for the recycling tip handlers.
type RecyclingTipHandler struct {
	tips    service.RecyclingTipServicer
	locator Locator
}

// NewRecyclingTipHandler creates a new RecyclingTipHandler with the given dependencies.
func NewRecyclingTipHandler(ts service.RecyclingTipServicer, loc Locator) *RecyclingTipHandler {
	return &RecyclingTipHandler{
		tips:    ts,
		locator: loc,
	}
}

func (h *RecyclingTipHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	tips, err := h.tips.List(r.Context())
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, tips, h.locator.Current(r))
}

// listByCategoryHandler answers 404 when the category itself does not exist.
func (h *RecyclingTipHandler) listByCategoryHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	categoryID, appErr := parseID(r, "categoryId")
	if appErr != nil {
		return appErr
	}
	tips, err := h.tips.ListByCategory(r.Context(), categoryID)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, tips, h.locator.Current(r))
}

func (h *RecyclingTipHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	tip, err := h.tips.Get(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, tip, h.locator.Current(r))
}

func (h *RecyclingTipHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req dto.RecyclingTipRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	tip, err := h.tips.Create(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusCreated, tip, h.locator.Created(r, tip.ID))
}

func (h *RecyclingTipHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req dto.RecyclingTipRequest
	if appErr := decodeJSON(w, r, &req); appErr != nil {
		return appErr
	}
	tip, err := h.tips.Update(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, tip, h.locator.Current(r))
}

func (h *RecyclingTipHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, appErr := parseID(r, "id")
	if appErr != nil {
		return appErr
	}
	msg, err := h.tips.Delete(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return writeJSON(w, http.StatusOK, msg, h.locator.Current(r))
}
