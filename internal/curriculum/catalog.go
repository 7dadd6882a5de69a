package curriculum

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/phrazzld/dax-daily/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Common curriculum errors
var (
	// ErrDayNotFound is returned when a day is not part of the course.
	ErrDayNotFound = errors.New("day not found")

	// ErrInvalidCatalog is returned when a catalog document fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// catalogFile is the on-disk layout of a catalog.
type catalogFile struct {
	Version    string             `yaml:"version"`
	Title      string             `yaml:"title"`
	Days       []domain.DayInfo   `yaml:"days"`
	Challenges []domain.Challenge `yaml:"challenges"`
}

// Catalog is a loaded, validated course.
type Catalog struct {
	title      string
	version    string
	days       []domain.DayInfo
	dayIndex   map[int]int
	challenges map[int]domain.Challenge
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	catalog, err := Parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return catalog, nil
}

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}

	days := make([]domain.DayInfo, len(file.Days))
	copy(days, file.Days)
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	catalog := &Catalog{
		title:      file.Title,
		version:    file.Version,
		days:       days,
		dayIndex:   make(map[int]int, len(days)),
		challenges: make(map[int]domain.Challenge, len(file.Challenges)),
	}
	for i, d := range days {
		catalog.dayIndex[d.Day] = i
	}
	for _, c := range file.Challenges {
		catalog.challenges[c.Day] = c
	}

	return catalog, nil
}

// validate collects every problem in the document so an author can fix
// them in one pass.
func (f *catalogFile) validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(f.Days) == 0 {
		addf("no days defined")
	}

	known := make(map[int]bool, len(f.Days))
	for i, d := range f.Days {
		switch {
		case d.Day < 1:
			addf("days[%d]: day must be positive, got %d", i, d.Day)
		case known[d.Day]:
			addf("days[%d]: duplicate day %d", i, d.Day)
		}
		known[d.Day] = true

		if strings.TrimSpace(d.Title) == "" {
			addf("days[%d]: title is required", i)
		}
		if !d.Tier.Valid() {
			addf("days[%d]: unknown tier %q", i, d.Tier)
		}
	}

	seen := make(map[int]bool, len(f.Challenges))
	for i, c := range f.Challenges {
		if !known[c.Day] {
			addf("challenges[%d]: day %d has no curriculum entry", i, c.Day)
		}
		if seen[c.Day] {
			addf("challenges[%d]: duplicate challenge for day %d", i, c.Day)
		}
		seen[c.Day] = true

		if strings.TrimSpace(c.Solution) == "" {
			addf("challenges[%d]: solution is required", i)
		}
		for j, r := range c.ValidationRules {
			if strings.TrimSpace(r.Type) == "" {
				addf("challenges[%d].validation_rules[%d]: type is required", i, j)
			}
			if r.Value == "" {
				addf("challenges[%d].validation_rules[%d]: value is required", i, j)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
}

// Title returns the course title.
func (c *Catalog) Title() string { return c.title }

// Version returns the catalog format version.
func (c *Catalog) Version() string { return c.version }

// TotalDays returns the number of days in the course.
func (c *Catalog) TotalDays() int { return len(c.days) }

// Days returns every day in course order.
func (c *Catalog) Days() []domain.DayInfo {
	result := make([]domain.DayInfo, len(c.days))
	copy(result, c.days)
	return result
}

// Day returns the curriculum entry for day.
func (c *Catalog) Day(day int) (domain.DayInfo, error) {
	i, ok := c.dayIndex[day]
	if !ok {
		return domain.DayInfo{}, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}
	return c.days[i], nil
}

// Challenge returns the practice challenge for day.
func (c *Catalog) Challenge(day int) (domain.Challenge, error) {
	challenge, ok := c.challenges[day]
	if !ok {
		return domain.Challenge{}, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}
	return challenge, nil
}

// ByTier returns the days of one tier in course order.
func (c *Catalog) ByTier(tier domain.Tier) []domain.DayInfo {
	var result []domain.DayInfo
	for _, d := range c.days {
		if d.Tier == tier {
			result = append(result, d)
		}
	}
	return result
}
