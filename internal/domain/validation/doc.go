// Package validation scores a learner's DAX submission against a day's
// reference solution and required patterns.
//
// Scoring is purely textual. Nothing is parsed or executed: a submission is
// credited for each required pattern it contains and for how many of the
// solution's keywords it mentions. The two sub-scores are blended into a
// single 0-100 score, a pass/fail verdict and learner-facing feedback.
//
// Evaluation is a pure function of its inputs. An Engine holds only
// immutable parameters and may be shared between goroutines.
package validation
