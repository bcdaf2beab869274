// Package api configures the HTTP API surface: the huma instance, the chi
// router, CORS, and the request-logging and rate-limiting middleware.
package api
