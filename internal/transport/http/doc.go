// Package http contains the chi HTTP handlers: the analysis upload endpoint,
// liveness and the Prometheus metrics mount. Handlers render JSON through
// go-chi/render and report failures with the shared API error envelope.
package http
