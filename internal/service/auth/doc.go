// Package auth issues and validates the JWTs that identify learners, and
// verifies their passwords.
package auth
