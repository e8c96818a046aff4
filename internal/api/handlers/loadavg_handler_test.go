package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "loadprobe/internal/api/application"
	"loadprobe/internal/infrastructure/logger"
	loadavgdomain "loadprobe/internal/loadavg/domain"
)

// mockReader is a mock implementation of loadavgdomain.Reader
type mockReader struct {
	avg loadavgdomain.LoadAverage
	err error
}

func (m *mockReader) Read(ctx context.Context) (loadavgdomain.LoadAverage, error) {
	return m.avg, m.err
}

func TestLoadAverageHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		avg            loadavgdomain.LoadAverage
		readErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "snapshot",
			avg:            loadavgdomain.NewLoadAverage(0.5, 0.75, 1.2),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"last":0.5,"last5":0.75,"last15":1.2}`,
		},
		{
			name:           "idle host",
			avg:            loadavgdomain.NewLoadAverage(0, 0, 0),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"last":0,"last5":0,"last15":0}`,
		},
		{
			name:           "missing samples",
			avg:            loadavgdomain.NewLoadAverage(1.5),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"last":1.5,"last5":0,"last15":0}`,
		},
		{
			name:           "unsupported platform",
			readErr:        fmt.Errorf("%w: not implemented yet", loadavgdomain.ErrUnsupportedPlatform),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "other reader error",
			readErr:        context.Canceled,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := api.NewLoadAverageService(&mockReader{avg: tt.avg, err: tt.readErr})
			handler := NewLoadAverageHandler(service, logger.DefaultLogger())

			req := httptest.NewRequest(http.MethodGet, "/loadavg", nil)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}

			if tt.expectedStatus == http.StatusOK {
				if body := strings.TrimSpace(w.Body.String()); body != tt.expectedBody {
					t.Errorf("expected body %s, got %s", tt.expectedBody, body)
				}
				return
			}

			var errResp api.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error == "" {
				t.Error("expected error message")
			}
			if errors.Is(tt.readErr, loadavgdomain.ErrUnsupportedPlatform) && !strings.Contains(errResp.Error, "not available") {
				t.Errorf("unexpected error message %q", errResp.Error)
			}
		})
	}
}
