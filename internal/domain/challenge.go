package domain

import "fmt"

// Tier groups days of the curriculum by difficulty.
type Tier string

// Known tiers, in course order.
const (
	TierFoundation Tier = "foundation"
	TierBuilder    Tier = "builder"
	TierArchitect  Tier = "architect"
)

// Tiers lists every tier in course order.
var Tiers = []Tier{TierFoundation, TierBuilder, TierArchitect}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFoundation, TierBuilder, TierArchitect:
		return true
	default:
		return false
	}
}

// Label returns the display name of the tier.
func (t Tier) Label() string {
	switch t {
	case TierFoundation:
		return "Foundation"
	case TierBuilder:
		return "Builder"
	case TierArchitect:
		return "Architect"
	default:
		return string(t)
	}
}

// Rule is a required surface pattern for a challenge, as authored in the
// curriculum. Type is an open tag; see validation.ParseRuleKind for how
// it is interpreted.
type Rule struct {
	Type  string `yaml:"type"  json:"type"`
	Value string `yaml:"value" json:"value"`
}

// DayInfo is the curriculum entry for a single day.
type DayInfo struct {
	Day          int      `yaml:"day"           json:"day"`
	Tier         Tier     `yaml:"tier"          json:"tier"`
	Title        string   `yaml:"title"         json:"title"`
	ConceptTopic string   `yaml:"concept_topic" json:"concept_topic"`
	DAXFocus     string   `yaml:"dax_focus"     json:"dax_focus"`
	Concepts     []string `yaml:"concepts"      json:"concepts"`
}

// Challenge is the lesson and practice exercise for a day. Solution and
// ValidationRules are what a submission is scored against.
type Challenge struct {
	Day             int      `yaml:"day"`
	Tier            Tier     `yaml:"tier"`
	Title           string   `yaml:"title"`
	ConceptLesson   string   `yaml:"concept_lesson"`
	KeyTakeaways    []string `yaml:"key_takeaways"`
	Scenario        string   `yaml:"scenario"`
	Instructions    string   `yaml:"instructions"`
	StarterCode     string   `yaml:"starter_code"`
	Solution        string   `yaml:"solution"`
	ValidationRules []Rule   `yaml:"validation_rules"`
	ExpectedOutput  string   `yaml:"expected_output"`
	Hints           []string `yaml:"hints"`
	SampleModel     string   `yaml:"sample_model"`
	PowerBINotes    string   `yaml:"power_bi_notes"`
}

// ValidateDay checks that day is a usable day number.
func ValidateDay(day int) error {
	if day < 1 {
		return NewValidationError("day", fmt.Sprintf("must be positive, got %d", day), ErrInvalidDay)
	}
	return nil
}
