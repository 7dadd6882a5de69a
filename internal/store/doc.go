// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. The PostgreSQL implementations live in
// internal/platform/postgres and the in-memory ones in internal/store/memory.
package store
