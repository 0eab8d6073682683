package snapshot

import (
	"errors"
	"fmt"
	"slices"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

var (
	// ErrInvalidRange is returned when a group range does not match its sections.
	ErrInvalidRange = errors.New("group range does not match flattened sections")
	// ErrDuplicateID is returned when two sections or two groups share an identity.
	ErrDuplicateID = errors.New("duplicate identity")
)

// Range is the half-open span [Lower, Upper) of a group in the flattened sections.
type Range struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Len returns the number of sections in the range.
func (r Range) Len() int {
	return r.Upper - r.Lower
}

// Contains reports whether index falls into the range.
func (r Range) Contains(index int) bool {
	return index >= r.Lower && index < r.Upper
}

// Snapshot is an immutable flattened view of groups and their sections.
type Snapshot struct {
	groups   []section.Group
	members  [][]section.Section
	sections []section.Section

	groupIndex   map[section.ID]int
	groupRanges  map[section.ID]Range
	sectionIndex map[section.ID]int

	duplicates []section.ID
}

// Empty returns a snapshot without groups.
func Empty() *Snapshot {
	return New(nil)
}

// New flattens groups into a snapshot. The sections of every group are read once.
func New(groups []section.Group) *Snapshot {
	members := make([][]section.Section, len(groups))
	for i, g := range groups {
		members[i] = g.Sections()
	}
	return build(slices.Clone(groups), members)
}

func build(groups []section.Group, members [][]section.Section) *Snapshot {
	total := 0
	for _, m := range members {
		total += len(m)
	}

	s := &Snapshot{
		groups:       groups,
		members:      members,
		sections:     make([]section.Section, 0, total),
		groupIndex:   make(map[section.ID]int, len(groups)),
		groupRanges:  make(map[section.ID]Range, len(groups)),
		sectionIndex: make(map[section.ID]int, total),
	}

	for i, g := range groups {
		id := g.ID()
		if _, exists := s.groupIndex[id]; exists {
			s.duplicates = append(s.duplicates, id)
		}
		s.groupIndex[id] = i

		lower := len(s.sections)
		for _, sec := range members[i] {
			sid := sec.ID()
			if _, exists := s.sectionIndex[sid]; exists {
				s.duplicates = append(s.duplicates, sid)
			} else {
				s.sectionIndex[sid] = len(s.sections)
			}
			s.sections = append(s.sections, sec)
		}
		s.groupRanges[id] = Range{Lower: lower, Upper: len(s.sections)}
	}

	return s
}

// Update returns a new snapshot where the sections of group are re-read. The second
// result is false when the group is not part of the snapshot.
func (s *Snapshot) Update(group section.Group) (*Snapshot, bool) {
	index, ok := s.groupIndex[group.ID()]
	if !ok {
		return s, false
	}

	groups := slices.Clone(s.groups)
	groups[index] = group
	members := slices.Clone(s.members)
	members[index] = group.Sections()

	return build(groups, members), true
}

// Groups returns the groups in display order.
func (s *Snapshot) Groups() []section.Group {
	return slices.Clone(s.groups)
}

// Sections returns the flattened sections in display order.
func (s *Snapshot) Sections() []section.Section {
	return slices.Clone(s.sections)
}

// GroupSections returns the sections captured for the group with the given id.
func (s *Snapshot) GroupSections(id section.ID) []section.Section {
	index, ok := s.groupIndex[id]
	if !ok {
		return nil
	}
	return slices.Clone(s.members[index])
}

// Len returns the number of flattened sections.
func (s *Snapshot) Len() int {
	return len(s.sections)
}

// Section returns the section at a flattened index.
func (s *Snapshot) Section(index int) (section.Section, error) {
	if index < 0 || index >= len(s.sections) {
		return nil, fmt.Errorf("section %d of %d: %w", index, len(s.sections), batch.ErrIndexOutOfRange)
	}
	return s.sections[index], nil
}

// At returns the section at a flattened index and panics when it is out of range.
func (s *Snapshot) At(index int) section.Section {
	sec, err := s.Section(index)
	if err != nil {
		panic(err)
	}
	return sec
}

// SectionIndex returns the flattened index of the section with the given id.
func (s *Snapshot) SectionIndex(id section.ID) (int, bool) {
	index, ok := s.sectionIndex[id]
	return index, ok
}

// GroupIndex returns the position of the group with the given id.
func (s *Snapshot) GroupIndex(id section.ID) (int, bool) {
	index, ok := s.groupIndex[id]
	return index, ok
}

// GroupRange returns the flattened range of the group with the given id.
func (s *Snapshot) GroupRange(id section.ID) (Range, bool) {
	r, ok := s.groupRanges[id]
	return r, ok
}

// HasGroup reports whether a group with the given id is part of the snapshot.
func (s *Snapshot) HasGroup(id section.ID) bool {
	_, ok := s.groupIndex[id]
	return ok
}

// HasSection reports whether a section with the given id is part of the snapshot.
func (s *Snapshot) HasSection(id section.ID) bool {
	_, ok := s.sectionIndex[id]
	return ok
}

// Unique reports whether every group id and every section id appears once.
func (s *Snapshot) Unique() bool {
	return len(s.duplicates) == 0
}

// Duplicates returns the identities seen more than once.
func (s *Snapshot) Duplicates() []section.ID {
	return slices.Clone(s.duplicates)
}

// Validate checks that every group range spans exactly the sections of the group and
// that ranges partition the flattened sections in group order.
func (s *Snapshot) Validate() error {
	if len(s.duplicates) > 0 {
		return fmt.Errorf("%v: %w", s.duplicates, ErrDuplicateID)
	}

	next := 0
	for i, g := range s.groups {
		r := s.groupRanges[g.ID()]
		if r.Lower != next || r.Len() != len(s.members[i]) {
			return fmt.Errorf("group %s range [%d,%d): %w", g.ID(), r.Lower, r.Upper, ErrInvalidRange)
		}
		for j, sec := range s.members[i] {
			if s.sections[r.Lower+j].ID() != sec.ID() {
				return fmt.Errorf("group %s position %d: %w", g.ID(), j, ErrInvalidRange)
			}
		}
		next = r.Upper
	}
	if next != len(s.sections) {
		return fmt.Errorf("ranges cover %d of %d sections: %w", next, len(s.sections), ErrInvalidRange)
	}
	return nil
}

// Counts returns the item count of every flattened section.
func (s *Snapshot) Counts() []int {
	counts := make([]int, len(s.sections))
	for i, sec := range s.sections {
		counts[i] = sec.NumberOfItems()
	}
	return counts
}
