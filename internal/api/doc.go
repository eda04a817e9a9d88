// Package api contains the HTTP handlers exposing the advisor's three
// operations: single-entity recommendations, batch start, and batch status.
// Handlers translate between the wire format and the internal services and
// map typed errors to HTTP status codes; they hold no business logic.
package api
