package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api/response"
)

// timeTokenTTL bounds how long a generated time token stays valid.
const timeTokenTTL = 60 * time.Second

// keyFor derives the fernet signing key from the shared API key.
func keyFor(apiKey string) *fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	var key fernet.Key
	copy(key[:], sum[:])
	return &key
}

// GenerateTimeToken creates a short-lived fernet token proving the caller
// holds the shared API key at this moment. Internal callers attach it as
// the X-Time-Token header so a captured header pair cannot be replayed
// after the TTL.
func GenerateTimeToken(apiKey string) string {
	token, err := fernet.EncryptAndSign(
		[]byte(time.Now().UTC().Format(time.RFC3339)),
		keyFor(apiKey),
	)
	if err != nil {
		return ""
	}
	return string(token)
}

// APIKeyMiddleware protects internal endpoints with the shared API key
// plus a fernet time token. Both the X-API-Key and X-Time-Token headers
// must be present and valid; the API key comes from the INTERNAL_API_KEY
// environment variable.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}
		if msg := fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, []*fernet.Key{keyFor(expected)}); msg == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
