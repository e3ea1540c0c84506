// Package api provides the HTTP handlers for the WordVault API: word
// registration and lookup, review recording, practice-session selection,
// and streak reporting. Handlers translate service-level sentinel errors
// into HTTP status codes and never expose raw internal errors to clients.
package api
