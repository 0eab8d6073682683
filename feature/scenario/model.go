package scenario

import (
	"sectionkit/core/section"
	"sectionkit/core/snapshot"
)

var (
	headerType = section.Code("Header")
	footerType = section.Code("Footer")
)

// Model holds live groups of static sections. Sections are reused by identity: a
// section declared again keeps its instance and takes the new declaration. It is not
// safe for concurrent use.
type Model struct {
	groups   section.Groups
	byID     map[string]*section.SectionGroup
	sections map[string]*section.Static
}

// NewModel builds the groups declared by specs.
func NewModel(specs []GroupSpec) *Model {
	m := &Model{
		byID:     make(map[string]*section.SectionGroup, len(specs)),
		sections: make(map[string]*section.Static),
	}
	for _, gs := range specs {
		m.SetGroup(gs.ID, gs.Sections)
	}
	return m
}

func (m *Model) resolve(specs []SectionSpec) []section.Section {
	out := make([]section.Section, len(specs))
	for i, spec := range specs {
		out[i] = m.section(spec)
	}
	return out
}

func (m *Model) section(spec SectionSpec) *section.Static {
	s, ok := m.sections[spec.ID]
	if !ok {
		s = section.NewStatic(section.ID(spec.ID), spec.Items)
		m.sections[spec.ID] = s
	}
	s.Items = spec.Items
	s.ItemHeight = spec.Height
	s.HeaderType, s.FooterType = nil, nil
	if spec.Header {
		s.WithHeader(headerType)
	}
	if spec.Footer {
		s.WithFooter(footerType)
	}
	return s
}

// SetGroup replaces the sections of the group id, appending the group when it does not
// exist yet. The second result reports whether the group was created.
func (m *Model) SetGroup(id string, specs []SectionSpec) (*section.SectionGroup, bool) {
	sections := m.resolve(specs)
	if g, ok := m.byID[id]; ok {
		g.SetSections(sections...)
		return g, false
	}
	g := section.NewGroup(section.ID(id), sections...)
	m.groups = append(m.groups, g)
	m.byID[id] = g
	return g, true
}

// SetItems changes the item count of a known section.
func (m *Model) SetItems(id string, items int) bool {
	s, ok := m.sections[id]
	if ok {
		s.Items = items
	}
	return ok
}

// Apply performs the model mutations of step and reports whether it had any.
func (m *Model) Apply(step Step) bool {
	switch step.Action {
	case ActionSetGroup:
		m.SetGroup(step.Group, step.Sections)
	case ActionSetItems:
		m.SetItems(step.Section, step.Items)
	default:
		return false
	}
	return true
}

// Groups returns the groups in order, as a data source.
func (m *Model) Groups() section.Groups {
	return m.groups
}

func (m *Model) Group(id string) (*section.SectionGroup, bool) {
	g, ok := m.byID[id]
	return g, ok
}

func (m *Model) Section(id string) (*section.Static, bool) {
	s, ok := m.sections[id]
	return s, ok
}

// Specs describes the current groups.
func (m *Model) Specs() []GroupSpec {
	specs := make([]GroupSpec, 0, len(m.groups))
	for _, g := range m.groups {
		gs := GroupSpec{ID: string(g.ID()), Sections: []SectionSpec{}}
		for _, sec := range g.Sections() {
			s, ok := sec.(*section.Static)
			if !ok {
				continue
			}
			gs.Sections = append(gs.Sections, SectionSpec{
				ID:     string(s.ID()),
				Items:  s.Items,
				Header: s.HeaderType != nil,
				Footer: s.FooterType != nil,
				Height: s.ItemHeight,
			})
		}
		specs = append(specs, gs)
	}
	return specs
}

func (m *Model) Snapshot() *snapshot.Snapshot {
	return snapshot.New(m.groups)
}
