// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Each domain area gets its own service: word management lives in this
// package, review scheduling in service/review, session assembly in
// service/practice, streak derivation in service/streak, and token handling
// in service/auth. Services receive their dependencies through constructor
// injection and return sentinel errors for expected failure conditions so
// the API layer can map them to status codes with errors.Is.
package service
