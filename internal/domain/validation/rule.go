package validation

import (
	"strings"

	"github.com/phrazzld/dax-daily/internal/domain"
)

// RuleKind is the interpreted form of a rule's type tag.
type RuleKind int

const (
	// KindUnknown is any tag this engine does not understand. Such rules
	// always pass, so a ruleset authored against a newer vocabulary still
	// grades with the checks it can perform.
	KindUnknown RuleKind = iota

	// KindContains requires the submission to contain the rule value,
	// ignoring case.
	KindContains
)

// ParseRuleKind maps a rule type tag to its kind. Tags match exactly, so
// "CONTAINS" or " contains " is an unknown kind and passes.
func ParseRuleKind(tag string) RuleKind {
	switch tag {
	case "contains":
		return KindContains
	default:
		return KindUnknown
	}
}

// String returns the canonical tag for the kind.
func (k RuleKind) String() string {
	switch k {
	case KindContains:
		return "contains"
	default:
		return "unknown"
	}
}

// check reports whether a submission satisfies a rule of this kind.
// lowerSubmission must already be lowercased.
func (k RuleKind) check(lowerSubmission, value string) bool {
	switch k {
	case KindContains:
		return strings.Contains(lowerSubmission, strings.ToLower(value))
	default:
		return true
	}
}

// RuleDetail is the outcome of one rule. Pattern is the rule's value.
type RuleDetail struct {
	Pattern string `json:"pattern"`
	Passed  bool   `json:"passed"`
}

// checkRules evaluates rules in order and returns one detail per rule.
func checkRules(lowerSubmission string, rules []domain.Rule) []RuleDetail {
	details := make([]RuleDetail, 0, len(rules))
	for _, rule := range rules {
		details = append(details, RuleDetail{
			Pattern: rule.Value,
			Passed:  ParseRuleKind(rule.Type).check(lowerSubmission, rule.Value),
		})
	}
	return details
}
