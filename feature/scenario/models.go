package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// ErrInvalidScenario is returned for scenarios that cannot be replayed.
var ErrInvalidScenario = errors.New("invalid scenario")

// Step actions.
const (
	ActionReload              = "reload"
	ActionReloadGroup         = "reload_group"
	ActionPerformGroupUpdates = "perform_group_updates"
	ActionReloadSection       = "reload_section"
	ActionPerformUpdates      = "perform_updates"
	ActionSetGroup            = "set_group"
	ActionSetItems            = "set_items"
	ActionFlush               = "flush"
	ActionFailNext            = "fail_next"
	ActionHide                = "hide"
	ActionShow                = "show"
)

// Scenario is a scripted sequence of layout changes.
type Scenario struct {
	Name   string      `yaml:"name" json:"name"`
	View   ViewSpec    `yaml:"view" json:"view"`
	Groups []GroupSpec `yaml:"groups" json:"groups"`
	Steps  []Step      `yaml:"steps" json:"steps"`
}

// ViewSpec configures the headless widget.
type ViewSpec struct {
	Width    float64 `yaml:"width" json:"width,omitempty"`
	Height   float64 `yaml:"height" json:"height,omitempty"`
	Hidden   bool    `yaml:"hidden" json:"hidden,omitempty"`
	Deferred bool    `yaml:"deferred" json:"deferred,omitempty"`
}

// GroupSpec declares a group and its initial sections.
type GroupSpec struct {
	ID       string        `yaml:"id" json:"id"`
	Sections []SectionSpec `yaml:"sections" json:"sections"`
}

// SectionSpec declares a static section.
type SectionSpec struct {
	ID     string  `yaml:"id" json:"id"`
	Items  int     `yaml:"items" json:"items"`
	Header bool    `yaml:"header" json:"header,omitempty"`
	Footer bool    `yaml:"footer" json:"footer,omitempty"`
	Height float64 `yaml:"height" json:"height,omitempty"`
}

// Step is one scripted action. Which fields apply depends on Action.
type Step struct {
	Action   string   `yaml:"action" json:"action"`
	Label    string   `yaml:"label" json:"label,omitempty"`
	Group    string   `yaml:"group" json:"group,omitempty"`
	Section  string   `yaml:"section" json:"section,omitempty"`
	Animated bool     `yaml:"animated" json:"animated,omitempty"`
	Ignore   []string `yaml:"ignore" json:"ignore,omitempty"`

	// Sections replaces the sections of Group for set_group.
	Sections []SectionSpec `yaml:"sections" json:"sections,omitempty"`
	// Items is the new item count of Section for set_items.
	Items int `yaml:"items" json:"items,omitempty"`

	Updates     batch.Updates        `yaml:"updates" json:"updates,omitempty"`
	ItemUpdates batch.SectionUpdates `yaml:"item_updates" json:"item_updates,omitempty"`
}

// name returns the label completions of the step are recorded under.
func (s Step) name(index int) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("%s#%d", s.Action, index)
}

func (s Step) ignored() []section.ID {
	ids := make([]section.ID, len(s.Ignore))
	for i, id := range s.Ignore {
		ids[i] = section.ID(id)
	}
	return ids
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScenario)
}

// ValidateSections checks section declarations.
func ValidateSections(specs []SectionSpec) error {
	for _, s := range specs {
		if s.ID == "" {
			return invalid("section without id")
		}
		if s.Items < 0 {
			return invalid("section %s has %d items", s.ID, s.Items)
		}
	}
	return nil
}

// Validate checks that every step refers to declared groups and sections.
func (sc *Scenario) Validate() error {
	groups := make(map[string]bool, len(sc.Groups))
	sections := make(map[string]bool)
	declare := func(specs []SectionSpec) error {
		if err := ValidateSections(specs); err != nil {
			return err
		}
		for _, s := range specs {
			sections[s.ID] = true
		}
		return nil
	}

	seen := make(map[string]bool)
	for _, g := range sc.Groups {
		if g.ID == "" {
			return invalid("group without id")
		}
		if groups[g.ID] {
			return invalid("duplicate group %s", g.ID)
		}
		groups[g.ID] = true
		for _, s := range g.Sections {
			if seen[s.ID] {
				return invalid("section %s declared twice", s.ID)
			}
			seen[s.ID] = true
		}
		if err := declare(g.Sections); err != nil {
			return err
		}
	}
	for _, step := range sc.Steps {
		if step.Action == ActionSetGroup {
			if err := declare(step.Sections); err != nil {
				return err
			}
		}
	}

	for i, step := range sc.Steps {
		switch step.Action {
		case ActionReload, ActionFlush, ActionFailNext, ActionHide, ActionShow:
		case ActionReloadGroup, ActionSetGroup:
			if !groups[step.Group] {
				return invalid("step %d: unknown group %q", i, step.Group)
			}
		case ActionPerformGroupUpdates:
			if !groups[step.Group] {
				return invalid("step %d: unknown group %q", i, step.Group)
			}
			if err := step.Updates.Validate(); err != nil {
				return invalid("step %d: %v", i, err)
			}
		case ActionReloadSection, ActionPerformUpdates, ActionSetItems:
			if !sections[step.Section] {
				return invalid("step %d: unknown section %q", i, step.Section)
			}
			if step.Action == ActionSetItems && step.Items < 0 {
				return invalid("step %d: negative item count", i)
			}
			if step.Action == ActionPerformUpdates {
				if err := batch.Lift(step.ItemUpdates, 0).Validate(); err != nil {
					return invalid("step %d: %v", i, err)
				}
			}
		default:
			return invalid("step %d: unknown action %q", i, step.Action)
		}
	}
	return nil
}
