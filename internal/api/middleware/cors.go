package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS builds the CORS policy for browser clients. X-API-Key and
// X-Time-Token are allowed so the snapshot-refresh endpoint can be
// driven from an admin frontend; origins come from configuration.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-API-Key",
			"X-Time-Token",
		},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
