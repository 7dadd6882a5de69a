// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in internal/store, together with connection setup and
// the embedded goose migrations that create the schema.
package postgres
