package handler

import (
	"net/http"

	"resume-parser/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// RouterOptions configures cross-cutting HTTP behavior
type RouterOptions struct {
	AllowedOrigins []string
	// RateLimiter throttles the parse routes; nil disables throttling.
	RateLimiter *rate.Limiter
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(parseHandler *ParseHandler, logger domain.Logger, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestID, RequestLogger(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "resume-parser"})
	}).Methods(http.MethodGet)

	parse := RateLimit(opts.RateLimiter, logger)(http.HandlerFunc(parseHandler.ParseResume))
	router.Handle("/parse", parse).Methods(http.MethodPost)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Handle("/parse", parse).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			requestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
