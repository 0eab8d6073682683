package section

import "slices"

// FlatGroupID identifies the implicit group wrapping a flat section data source.
const FlatGroupID ID = "sections"

// Group is an ordered bag of sections replaced as a unit.
type Group interface {
	ID() ID
	Sections() []Section

	// Context returns the adapter displaying the group, nil when detached.
	Context() GroupDisplayable
	Attach(link *Link)
	Detach()
	AttachedTo(link *Link) bool
}

// GroupBase carries identity and the adapter back-reference of a group.
type GroupBase struct {
	anchor
}

// NewGroupBase returns a GroupBase with the given identity. An empty id is generated
// lazily.
func NewGroupBase(id ID) GroupBase {
	return GroupBase{anchor: anchor{id: id}}
}

func (g *GroupBase) ID() ID {
	return g.identity("group")
}

func (g *GroupBase) Context() GroupDisplayable {
	return g.target()
}

// SectionGroup is a Group holding a mutable list of sections.
type SectionGroup struct {
	GroupBase
	sections []Section
}

// NewGroup creates a group with the given identity and sections.
func NewGroup(id ID, sections ...Section) *SectionGroup {
	return &SectionGroup{GroupBase: NewGroupBase(id), sections: sections}
}

// Sections returns a copy of the group sections.
func (g *SectionGroup) Sections() []Section {
	return slices.Clone(g.sections)
}

// SetSections replaces the sections of the group. The change becomes visible on the
// next reload of the group.
func (g *SectionGroup) SetSections(sections ...Section) {
	g.sections = sections
}

// Append adds sections at the end of the group.
func (g *SectionGroup) Append(sections ...Section) {
	g.sections = append(g.sections, sections...)
}
