package handler

import (
	"errors"
	"net/http"
	"waste-sorting-app/internal/logger"
	appmw "waste-sorting-app/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures a new chi router.
func NewRouter(categoryHandler *CategoryHandler, tipHandler *RecyclingTipHandler, guidelineHandler *DisposalGuidelineHandler, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	errMW := appmw.Error(log)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(appmw.RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(errMW(func(w http.ResponseWriter, r *http.Request) *appmw.AppError {
		return &appmw.AppError{Error: errors.New("no route"), Message: "Resource not found", Code: http.StatusNotFound}
	}).ServeHTTP)
	r.MethodNotAllowed(errMW(func(w http.ResponseWriter, r *http.Request) *appmw.AppError {
		return &appmw.AppError{Error: errors.New("method not allowed"), Message: "Method not allowed", Code: http.StatusMethodNotAllowed}
	}).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/waste-categories", func(r chi.Router) {
			r.Method(http.MethodGet, "/", errMW(categoryHandler.listHandler))
			r.Method(http.MethodPost, "/", errMW(categoryHandler.createHandler))
			r.Method(http.MethodGet, "/{id}", errMW(categoryHandler.getHandler))
			r.Method(http.MethodPut, "/{id}", errMW(categoryHandler.updateHandler))
			r.Method(http.MethodDelete, "/{id}", errMW(categoryHandler.deleteHandler))
		})

		r.Route("/recycling-tips", func(r chi.Router) {
			r.Method(http.MethodGet, "/", errMW(tipHandler.listHandler))
			r.Method(http.MethodPost, "/", errMW(tipHandler.createHandler))
			r.Method(http.MethodGet, "/category/{categoryId}", errMW(tipHandler.listByCategoryHandler))
			r.Method(http.MethodGet, "/{id}", errMW(tipHandler.getHandler))
			r.Method(http.MethodPut, "/{id}", errMW(tipHandler.updateHandler))
			r.Method(http.MethodDelete, "/{id}", errMW(tipHandler.deleteHandler))
		})

		r.Route("/disposal-guidelines", func(r chi.Router) {
			r.Method(http.MethodGet, "/", errMW(guidelineHandler.listHandler))
			r.Method(http.MethodPost, "/", errMW(guidelineHandler.createHandler))
			r.Method(http.MethodGet, "/category/{categoryId}", errMW(guidelineHandler.listByCategoryHandler))
			r.Method(http.MethodGet, "/{id}", errMW(guidelineHandler.getHandler))
			r.Method(http.MethodPut, "/{id}", errMW(guidelineHandler.updateHandler))
			r.Method(http.MethodDelete, "/{id}", errMW(guidelineHandler.deleteHandler))
		})
	})

	return r
}
