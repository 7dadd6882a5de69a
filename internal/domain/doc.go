// Package domain contains the core entities of the course: learners, the
// curriculum's days and challenges, the rules a submission is checked
// against, and completion records. It has no knowledge of storage or
// transport.
//
// The answer validation engine lives in the validation subpackage.
package domain
