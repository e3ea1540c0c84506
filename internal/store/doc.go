// Package store defines the persistence interfaces the scheduling core
// depends on: word CRUD and the memory-state storage collaborator. The
// interfaces keep the core independent of the concrete database; the pgx
// implementations live in internal/platform/postgres.
package store
