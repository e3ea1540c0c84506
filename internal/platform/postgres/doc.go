// Package postgres implements the store interfaces on PostgreSQL using
// pgx. It owns the connection pool, the SQL for the words and
// memory_states tables, and the mapping from driver errors to the
// store-level sentinel errors.
package postgres
