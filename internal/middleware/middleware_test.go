//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"waste-sorting-app/internal/config"
	"waste-sorting-app/internal/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type errorEnvelope struct {
	Response struct {
		Status  int               `json:"status"`
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"response"`
	Location *string `json:"location"`
}

func TestError(t *testing.T) {
	testCases := []struct {
		name        string
		handler     AppHandler
		wantCode    int
		wantMessage string
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) *AppError {
				return &AppError{Error: errors.New("missing"), Message: "Waste category not found", Code: http.StatusNotFound}
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "Waste category not found",
		},
		{
			name: "panic",
			handler: func(w http.ResponseWriter, r *http.Request) *AppError {
				panic("boom")
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := Error(logger.Nop())(tc.handler)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/waste-categories/1", nil))

			if rr.Code != tc.wantCode {
				t.Errorf("expected status %d, got %d", tc.wantCode, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}
			var body errorEnvelope
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Response.Message != tc.wantMessage || body.Response.Status != tc.wantCode {
				t.Errorf("unexpected body %+v", body.Response)
			}
			if body.Location != nil {
				t.Errorf("expected null location, got %q", *body.Location)
			}
		})
	}
}

func TestError_PassesThroughSuccess(t *testing.T) {
	h := Error(logger.Nop())(func(w http.ResponseWriter, r *http.Request) *AppError {
		w.WriteHeader(http.StatusCreated)
		return nil
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	var ctxLog logger.Logger
	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLog = LoggerFrom(r.Context(), nil)
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if ctxLog == nil {
		t.Fatal("expected a logger in the request context")
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("expected status 418 in log, got %v", entry["status"])
	}
	if entry["path"] != "/ping" {
		t.Errorf("expected path /ping in log, got %v", entry["path"])
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Error("expected a request id in log")
	}
}
