// Package http is the REST transport of the task service.
//
// Routes live in routes.go. Every request gets a trace id and an access log
// line; everything except registration, login and version requires a bearer
// token. Service and store errors are mapped to status codes in
// errors_mapper.go.
package http
