package archive

import (
	"time"

	"sectionkit/core/section"
	"sectionkit/core/snapshot"
)

// HeaderType and FooterType are the view types of rebuilt headers and footers.
var (
	HeaderType = section.Code("Header")
	FooterType = section.Code("Footer")
)

// Manifest is the stored description of a snapshot.
type Manifest struct {
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Groups    []GroupManifest `json:"groups"`
}

// GroupManifest describes one group.
type GroupManifest struct {
	ID       string            `json:"id"`
	Sections []SectionManifest `json:"sections"`
}

// SectionManifest describes one section.
type SectionManifest struct {
	ID     string `json:"id"`
	Items  int    `json:"items"`
	Cell   string `json:"cell,omitempty"`
	Header bool   `json:"header,omitempty"`
	Footer bool   `json:"footer,omitempty"`
}

// NewManifest describes snap.
func NewManifest(name string, snap *snapshot.Snapshot) Manifest {
	m := Manifest{Name: name, CreatedAt: time.Now().UTC()}
	for _, g := range snap.Groups() {
		gm := GroupManifest{ID: string(g.ID())}
		for _, s := range snap.GroupSections(g.ID()) {
			sm := SectionManifest{ID: string(s.ID()), Items: s.NumberOfItems()}
			if sm.Items > 0 {
				sm.Cell = s.CellType(0).Name
			}
			_, sm.Header = s.SupplementaryType(section.Header)
			_, sm.Footer = s.SupplementaryType(section.Footer)
			gm.Sections = append(gm.Sections, sm)
		}
		m.Groups = append(m.Groups, gm)
	}
	return m
}

// Sections returns the number of sections described.
func (m Manifest) Sections() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Sections)
	}
	return n
}

// Build rebuilds the described layout out of static sections.
func (m Manifest) Build() []*section.SectionGroup {
	groups := make([]*section.SectionGroup, 0, len(m.Groups))
	for _, gm := range m.Groups {
		g := section.NewGroup(section.ID(gm.ID))
		for _, sm := range gm.Sections {
			g.Append(sm.Static())
		}
		groups = append(groups, g)
	}
	return groups
}

// Static builds the static section described by sm.
func (sm SectionManifest) Static() *section.Static {
	s := section.NewStatic(section.ID(sm.ID), sm.Items)
	if sm.Cell != "" {
		s.Cell = section.Code(sm.Cell)
	}
	if sm.Header {
		s.WithHeader(HeaderType)
	}
	if sm.Footer {
		s.WithFooter(FooterType)
	}
	return s
}
