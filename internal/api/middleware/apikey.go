package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hazyfin/family-finance-backend/internal/api/response"
)

// timeTokenTTL bounds how long a generated time token stays valid. Clients
// generate a fresh token per request, so the window only needs to absorb
// clock skew.
const timeTokenTTL = 5 * time.Minute

// APIKeyMiddleware protects internal endpoints with a shared secret. The
// caller must send the key in X-API-Key and a fresh HMAC time token in
// X-Time-Token; the token prevents replaying a captured request outside
// its validity window.
//
// The key is read from INTERNAL_API_KEY on each request so tests and
// reloads can swap it without restarting the server.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := os.Getenv("INTERNAL_API_KEY")
		if apiKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal configuration error", "Authentication not loaded")
			return
		}

		providedKey := r.Header.Get("X-API-Key")
		if providedKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}
		if !validateTimeToken(apiKey, timeToken) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateTimeToken builds a time token for the given API key: the current
// unix timestamp signed with an HMAC keyed by the API key.
func GenerateTimeToken(key string) string {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	return timestamp + "." + signTimestamp(key, timestamp)
}

// validateTimeToken checks the token's signature and that its timestamp is
// within the validity window on either side of now.
func validateTimeToken(key, token string) bool {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return false
	}

	unix, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}

	expected := signTimestamp(key, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return false
	}

	age := time.Since(time.Unix(unix, 0))
	return age >= -timeTokenTTL && age <= timeTokenTTL
}

func signTimestamp(key, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}
