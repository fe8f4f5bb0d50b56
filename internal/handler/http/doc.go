// Package http implements the REST transport of the posts API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, per-request
// database sessions and bearer authentication are handled in this package
// before requests are delegated to the service layer. Every error response
// is a JSON {"detail": ...} body.
package http
