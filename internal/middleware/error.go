package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"waste-sorting-app/internal/dto"
	"waste-sorting-app/internal/logger"
)

// AppError represents a custom error type for the application.
type AppError struct {
	Error   error
	Message string
	Code    int
	Fields  map[string]string
}

// AppHandler is a custom handler function type that returns an AppError.
type AppHandler func(http.ResponseWriter, *http.Request) *AppError

// Error is a middleware that converts handler errors into JSON error envelopes.
// Panics are recovered and reported as 500.
func Error(log logger.Logger) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := LoggerFrom(r.Context(), log)
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					reqLog.Error(err, "Panic recovered")
					WriteError(w, &AppError{Error: err, Message: "Internal server error", Code: http.StatusInternalServerError})
				}
			}()

			appErr := next(w, r)
			if appErr == nil {
				return
			}
			if appErr.Code >= http.StatusInternalServerError {
				reqLog.Error(appErr.Error, appErr.Message)
			} else {
				reqLog.With(map[string]interface{}{
					"status": appErr.Code,
					"error":  fmt.Sprint(appErr.Error),
				}).Warn(appErr.Message)
			}
			WriteError(w, appErr)
		})
	}
}

// WriteError writes appErr as a JSON envelope with a null location.
func WriteError(w http.ResponseWriter, appErr *AppError) {
	body := dto.ServiceResponse{
		Response: dto.ErrorResponse{
			Status:  appErr.Code,
			Error:   http.StatusText(appErr.Code),
			Message: appErr.Message,
			Fields:  appErr.Fields,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Code)
	_ = json.NewEncoder(w).Encode(body)
}
