// Package curriculum provides the course content: the 30-day schedule and
// each day's lesson and practice challenge.
//
// The catalog ships embedded in the binary as YAML. A different catalog
// file can be loaded with LoadFile, which is how content is previewed
// without rebuilding. A Catalog is read-only once loaded and safe for
// concurrent use.
package curriculum
