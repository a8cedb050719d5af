package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/hazyfin/family-finance-backend/internal/api/middleware"
)

// serveWithAuthHeaders runs the middleware against a request carrying the
// given headers and reports the recorder plus whether the wrapped handler
// ran.
func serveWithAuthHeaders(headers map[string]string) (*httptest.ResponseRecorder, bool) {
	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/snapshot", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	middleware.APIKeyMiddleware(next).ServeHTTP(w, req)

	return w, handlerCalled
}

func errorDetails(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response map[string]string
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&response)
	return response["details"]
}

func TestAPIKeyMiddleware(t *testing.T) {
	testAPIKey := "test-api-key-12345"
	os.Setenv("INTERNAL_API_KEY", testAPIKey)
	defer os.Unsetenv("INTERNAL_API_KEY")

	rejections := []struct {
		name        string
		headers     map[string]string
		wantDetails string
	}{
		{
			name:        "rejects request without API key",
			headers:     nil,
			wantDetails: "Missing API key",
		},
		{
			name:        "rejects request with invalid API key",
			headers:     map[string]string{"X-API-Key": "invalid"},
			wantDetails: "Invalid API key",
		},
		{
			name:        "rejects request without time token",
			headers:     map[string]string{"X-API-Key": testAPIKey},
			wantDetails: "Missing Time token",
		},
		{
			name: "rejects request with invalid time token",
			headers: map[string]string{
				"X-API-Key":    testAPIKey,
				"X-Time-Token": "invalid",
			},
			wantDetails: "Time token is invalid or expired",
		},
		{
			name: "rejects time token signed with a different key",
			headers: map[string]string{
				"X-API-Key":    testAPIKey,
				"X-Time-Token": middleware.GenerateTimeToken("some-other-key"),
			},
			wantDetails: "Time token is invalid or expired",
		},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			w, handlerCalled := serveWithAuthHeaders(tt.headers)

			if handlerCalled {
				t.Error("Expected request not to complete.")
			}
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
			if details := errorDetails(t, w); details != tt.wantDetails {
				t.Errorf("Expected '%s' error, got '%s'", tt.wantDetails, details)
			}
		})
	}

	t.Run("allows request with valid API key and time token", func(t *testing.T) {
		w, handlerCalled := serveWithAuthHeaders(map[string]string{
			"X-API-Key":    testAPIKey,
			"X-Time-Token": middleware.GenerateTimeToken(testAPIKey),
		})

		if !handlerCalled {
			t.Error("Expected handler to complete.")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("fails closed when INTERNAL_API_KEY is not set", func(t *testing.T) {
		os.Unsetenv("INTERNAL_API_KEY")
		defer os.Setenv("INTERNAL_API_KEY", testAPIKey)

		w, handlerCalled := serveWithAuthHeaders(nil)

		if handlerCalled {
			t.Error("Expected request not to complete.")
		}
		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
		if details := errorDetails(t, w); details != "Authentication not loaded" {
			t.Errorf("Expected 'Authentication not loaded' error, got '%s'", details)
		}
	})
}
