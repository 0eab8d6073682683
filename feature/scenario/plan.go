package scenario

import (
	"fmt"

	"sectionkit/core/batch"
	"sectionkit/core/diff"
	"sectionkit/core/section"
)

// Plan is the section batch between the initial and the final model of a scenario.
type Plan struct {
	Before  []section.ID  `json:"before"`
	After   []section.ID  `json:"after"`
	Counts  []int         `json:"counts"`
	Updates batch.Updates `json:"updates"`
}

// NewPlan applies the model steps of sc (set_group and set_items) without rendering and
// diffs the resulting sections by identity. Every surviving section is reloaded.
func NewPlan(sc *Scenario) (*Plan, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	m := NewModel(sc.Groups)
	before := m.Snapshot().Sections()
	for _, step := range sc.Steps {
		m.Apply(step)
	}
	final := m.Snapshot()
	after := final.Sections()

	u, err := diff.Sections(before, after)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", sc.Name, err)
	}
	return &Plan{
		Before:  section.IDs(before),
		After:   section.IDs(after),
		Counts:  final.Counts(),
		Updates: u,
	}, nil
}
