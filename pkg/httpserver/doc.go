// Package httpserver runs the API's http.Server and shuts it down gracefully
// when the context is cancelled or the process receives SIGINT or SIGTERM.
//
// It also provides the liveness and readiness probes mounted at
// /health/live and /health/ready.
package httpserver
