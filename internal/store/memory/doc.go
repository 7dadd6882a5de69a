// Package memory provides in-process implementations of the store
// interfaces. They back the server when no database is configured and
// serve as fakes in tests. Data is lost when the process exits.
package memory
