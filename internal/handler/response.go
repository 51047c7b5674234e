package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"waste-sorting-app/internal/dto"
	"waste-sorting-app/internal/middleware"
	"waste-sorting-app/internal/service"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; every payload is a single short text.
const maxBodyBytes = 1 << 20

// Locator builds the absolute URIs returned as resource locations. When
// BaseURL is empty the scheme and host of the request are used.
type Locator struct {
	BaseURL string
}

func (l Locator) origin(r *http.Request) string {
	if l.BaseURL != "" {
		return strings.TrimRight(l.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// Current is the URI of the requested resource or collection.
func (l Locator) Current(r *http.Request) string {
	return l.origin(r) + r.URL.Path
}

// Created is the URI of a resource created by a POST to the current collection.
func (l Locator) Created(r *http.Request, id int64) string {
	return strings.TrimRight(l.Current(r), "/") + "/" + strconv.FormatInt(id, 10)
}

// writeJSON writes payload inside the response envelope and mirrors the
// location in the Location header.
func writeJSON(w http.ResponseWriter, status int, payload interface{}, location string) *middleware.AppError {
	body, err := json.Marshal(dto.ServiceResponse{Response: payload, Location: &location})
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Internal server error", Code: http.StatusInternalServerError}
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", location)
	w.WriteHeader(status)
	w.Write(body)
	return nil
}

// serviceError maps a service failure onto an HTTP error.
func serviceError(err error) *middleware.AppError {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return &middleware.AppError{Error: err, Message: verr.Message, Code: http.StatusBadRequest, Fields: verr.Fields}
	case errors.Is(err, service.ErrCategoryNotFound):
		return &middleware.AppError{Error: err, Message: "Waste category not found", Code: http.StatusNotFound}
	case errors.Is(err, service.ErrRecyclingTipNotFound):
		return &middleware.AppError{Error: err, Message: "Recycling tip not found", Code: http.StatusNotFound}
	case errors.Is(err, service.ErrDisposalGuidelineNotFound):
		return &middleware.AppError{Error: err, Message: "Disposal guideline not found", Code: http.StatusNotFound}
	case errors.Is(err, service.ErrDuplicateCategory):
		return &middleware.AppError{Error: err, Message: "Waste category name already exists", Code: http.StatusConflict}
	default:
		return &middleware.AppError{Error: err, Message: "Internal server error", Code: http.StatusInternalServerError}
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) *middleware.AppError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &middleware.AppError{Error: err, Message: "Malformed request body", Code: http.StatusBadRequest}
	}
	return nil
}

// parseID reads an integer path parameter. Ids that parse but match no row
// are left to the services, which report them as not found.
func parseID(r *http.Request, param string) (int64, *middleware.AppError) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &middleware.AppError{Error: err, Message: fmt.Sprintf("Invalid %s: %q", param, raw), Code: http.StatusBadRequest}
	}
	return id, nil
}

func parseProjection(r *http.Request) (dto.Projection, *middleware.AppError) {
	p, err := dto.ParseProjection(r.URL.Query().Get("projection"), dto.Detailed)
	if err != nil {
		return p, &middleware.AppError{Error: err, Message: "projection must be 'summary' or 'detailed'", Code: http.StatusBadRequest}
	}
	return p, nil
}
