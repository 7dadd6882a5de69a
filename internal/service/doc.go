// Package service contains the application use cases. It coordinates the
// curriculum, the validation engine and the stores (defined in
// internal/store) without depending on any concrete infrastructure.
//
// PracticeService serves lessons and grades submissions, recording a pass
// in the learner's progress. LearnerService registers and authenticates
// learner accounts.
package service
