// Package api contains the HTTP handlers, request and response models and
// the error-to-status mapping for the dax-daily JSON API.
package api
