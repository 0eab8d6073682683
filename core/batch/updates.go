package batch

import (
	"fmt"
	"strings"
)

// SectionUpdates lists item changes inside a single section.
type SectionUpdates struct {
	Inserts IndexSet `json:"inserts,omitempty" yaml:"inserts"`
	Deletes IndexSet `json:"deletes,omitempty" yaml:"deletes"`
	Reloads IndexSet `json:"reloads,omitempty" yaml:"reloads"`
	Moves   []Move   `json:"moves,omitempty" yaml:"moves"`

	ReloadHeader bool `json:"reload_header,omitempty" yaml:"reload_header"`
	ReloadFooter bool `json:"reload_footer,omitempty" yaml:"reload_footer"`
}

// IsEmpty reports whether the updates change nothing.
func (u SectionUpdates) IsEmpty() bool {
	return len(u.Inserts) == 0 && len(u.Deletes) == 0 && len(u.Reloads) == 0 &&
		len(u.Moves) == 0 && !u.ReloadHeader && !u.ReloadFooter
}

// Merge unions two sets of item changes for the same section.
func (u SectionUpdates) Merge(other SectionUpdates) SectionUpdates {
	return SectionUpdates{
		Inserts:      u.Inserts.Union(other.Inserts),
		Deletes:      u.Deletes.Union(other.Deletes),
		Reloads:      u.Reloads.Union(other.Reloads),
		Moves:        normalizeMoves(append(append([]Move(nil), u.Moves...), other.Moves...)),
		ReloadHeader: u.ReloadHeader || other.ReloadHeader,
		ReloadFooter: u.ReloadFooter || other.ReloadFooter,
	}
}

// Updates lists collection level changes in one shared index space.
type Updates struct {
	InsertSections IndexSet `json:"insert_sections,omitempty" yaml:"insert_sections"`
	DeleteSections IndexSet `json:"delete_sections,omitempty" yaml:"delete_sections"`
	ReloadSections IndexSet `json:"reload_sections,omitempty" yaml:"reload_sections"`
	MoveSections   []Move   `json:"move_sections,omitempty" yaml:"move_sections"`

	InsertItems []IndexPath `json:"insert_items,omitempty" yaml:"insert_items"`
	DeleteItems []IndexPath `json:"delete_items,omitempty" yaml:"delete_items"`
	ReloadItems []IndexPath `json:"reload_items,omitempty" yaml:"reload_items"`
	MoveItems   []PathMove  `json:"move_items,omitempty" yaml:"move_items"`

	// ReloadHeaders and ReloadFooters hold the sections whose boundary
	// supplementary views must be refreshed.
	ReloadHeaders IndexSet `json:"reload_headers,omitempty" yaml:"reload_headers"`
	ReloadFooters IndexSet `json:"reload_footers,omitempty" yaml:"reload_footers"`
}

// Lift places item changes of one section at the given section index.
func Lift(updates SectionUpdates, section int) Updates {
	var out Updates
	for _, i := range updates.Inserts {
		out.InsertItems = append(out.InsertItems, IndexPath{Section: section, Item: i})
	}
	for _, i := range updates.Deletes {
		out.DeleteItems = append(out.DeleteItems, IndexPath{Section: section, Item: i})
	}
	for _, i := range updates.Reloads {
		out.ReloadItems = append(out.ReloadItems, IndexPath{Section: section, Item: i})
	}
	for _, m := range updates.Moves {
		out.MoveItems = append(out.MoveItems, PathMove{
			From: IndexPath{Section: section, Item: m.From},
			To:   IndexPath{Section: section, Item: m.To},
		})
	}
	if updates.ReloadHeader {
		out.ReloadHeaders = NewIndexSet(section)
	}
	if updates.ReloadFooter {
		out.ReloadFooters = NewIndexSet(section)
	}
	return out.normalized()
}

// IsEmpty reports whether the updates change nothing.
func (u Updates) IsEmpty() bool {
	return u.Count() == 0
}

// Count returns the number of individual operations.
func (u Updates) Count() int {
	return len(u.InsertSections) + len(u.DeleteSections) + len(u.ReloadSections) + len(u.MoveSections) +
		len(u.InsertItems) + len(u.DeleteItems) + len(u.ReloadItems) + len(u.MoveItems) +
		len(u.ReloadHeaders) + len(u.ReloadFooters)
}

// Merge unions two sets of changes. Both sides must already be expressed in the
// same index space.
func (u Updates) Merge(other Updates) Updates {
	return Updates{
		InsertSections: u.InsertSections.Union(other.InsertSections),
		DeleteSections: u.DeleteSections.Union(other.DeleteSections),
		ReloadSections: u.ReloadSections.Union(other.ReloadSections),
		MoveSections:   normalizeMoves(append(append([]Move(nil), u.MoveSections...), other.MoveSections...)),
		InsertItems:    normalizePaths(append(append([]IndexPath(nil), u.InsertItems...), other.InsertItems...)),
		DeleteItems:    normalizePaths(append(append([]IndexPath(nil), u.DeleteItems...), other.DeleteItems...)),
		ReloadItems:    normalizePaths(append(append([]IndexPath(nil), u.ReloadItems...), other.ReloadItems...)),
		MoveItems:      normalizePathMoves(append(append([]PathMove(nil), u.MoveItems...), other.MoveItems...)),
		ReloadHeaders:  u.ReloadHeaders.Union(other.ReloadHeaders),
		ReloadFooters:  u.ReloadFooters.Union(other.ReloadFooters),
	}
}

// Shift translates every section index by offset, including the section part of
// index paths.
func (u Updates) Shift(offset int) Updates {
	if offset == 0 {
		return u.normalized()
	}
	out := Updates{
		InsertSections: u.InsertSections.Shift(offset),
		DeleteSections: u.DeleteSections.Shift(offset),
		ReloadSections: u.ReloadSections.Shift(offset),
		ReloadHeaders:  u.ReloadHeaders.Shift(offset),
		ReloadFooters:  u.ReloadFooters.Shift(offset),
	}
	for _, m := range u.MoveSections {
		out.MoveSections = append(out.MoveSections, Move{From: m.From + offset, To: m.To + offset})
	}
	out.InsertItems = shiftPaths(u.InsertItems, offset)
	out.DeleteItems = shiftPaths(u.DeleteItems, offset)
	out.ReloadItems = shiftPaths(u.ReloadItems, offset)
	for _, m := range u.MoveItems {
		out.MoveItems = append(out.MoveItems, PathMove{
			From: IndexPath{Section: m.From.Section + offset, Item: m.From.Item},
			To:   IndexPath{Section: m.To.Section + offset, Item: m.To.Item},
		})
	}
	return out.normalized()
}

func shiftPaths(paths []IndexPath, offset int) []IndexPath {
	if len(paths) == 0 {
		return nil
	}
	out := make([]IndexPath, len(paths))
	for i, p := range paths {
		out[i] = IndexPath{Section: p.Section + offset, Item: p.Item}
	}
	return out
}

// Validate fails fast on negative positions. Upper bounds depend on the widget state
// and are checked by the widget itself.
func (u Updates) Validate() error {
	for _, set := range []IndexSet{u.InsertSections, u.DeleteSections, u.ReloadSections, u.ReloadHeaders, u.ReloadFooters} {
		for _, i := range set {
			if i < 0 {
				return fmt.Errorf("section %d: %w", i, ErrIndexOutOfRange)
			}
		}
	}
	for _, m := range u.MoveSections {
		if m.From < 0 || m.To < 0 {
			return fmt.Errorf("section move %d->%d: %w", m.From, m.To, ErrIndexOutOfRange)
		}
	}
	for _, paths := range [][]IndexPath{u.InsertItems, u.DeleteItems, u.ReloadItems} {
		for _, p := range paths {
			if p.Section < 0 || p.Item < 0 {
				return fmt.Errorf("item %s: %w", p, ErrIndexOutOfRange)
			}
		}
	}
	for _, m := range u.MoveItems {
		if m.From.Section < 0 || m.From.Item < 0 || m.To.Section < 0 || m.To.Item < 0 {
			return fmt.Errorf("item move %s->%s: %w", m.From, m.To, ErrIndexOutOfRange)
		}
	}
	return nil
}

func (u Updates) normalized() Updates {
	return Updates{}.Merge(u)
}

// String renders a compact, deterministic description used in logs and reports.
func (u Updates) String() string {
	if u.IsEmpty() {
		return "no changes"
	}
	var parts []string
	add := func(label string, n int, values any) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s%v", label, values))
		}
	}
	add("+s", len(u.InsertSections), []int(u.InsertSections))
	add("-s", len(u.DeleteSections), []int(u.DeleteSections))
	add("~s", len(u.ReloadSections), []int(u.ReloadSections))
	add(">s", len(u.MoveSections), u.MoveSections)
	add("+i", len(u.InsertItems), u.InsertItems)
	add("-i", len(u.DeleteItems), u.DeleteItems)
	add("~i", len(u.ReloadItems), u.ReloadItems)
	add(">i", len(u.MoveItems), u.MoveItems)
	add("~h", len(u.ReloadHeaders), []int(u.ReloadHeaders))
	add("~f", len(u.ReloadFooters), []int(u.ReloadFooters))
	return strings.Join(parts, " ")
}
