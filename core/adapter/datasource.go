package adapter

import (
	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// registry remembers the reuse identifiers registered on the current widget.
type registry struct {
	cells   map[string]struct{}
	headers map[string]struct{}
	footers map[string]struct{}
}

func newRegistry() registry {
	return registry{
		cells:   make(map[string]struct{}),
		headers: make(map[string]struct{}),
		footers: make(map[string]struct{}),
	}
}

func (r registry) supplementary(kind section.SupplementaryKind) map[string]struct{} {
	if kind == section.Footer {
		return r.footers
	}
	return r.headers
}

// Registered returns the reuse identifiers registered for cells, headers and footers.
func (a *Adapter) Registered() (cells, headers, footers int) {
	return len(a.registered.cells), len(a.registered.headers), len(a.registered.footers)
}

// SectionCount returns the number of committed sections.
func (a *Adapter) SectionCount() int {
	return a.data.Len()
}

// ItemCount returns the number of items of the committed section at index, zero when
// index is out of range.
func (a *Adapter) ItemCount(index int) int {
	s, err := a.data.Section(index)
	if err != nil {
		return 0
	}
	return s.NumberOfItems()
}

// Cell dequeues and configures the cell at path, registering its type on first use.
func (a *Adapter) Cell(path batch.IndexPath) section.Cell {
	s := a.data.At(path.Section)
	t := s.CellType(path.Item)
	id := t.ReuseID()

	if _, ok := a.registered.cells[id]; !ok {
		a.view.RegisterCell(t)
		a.registered.cells[id] = struct{}{}
	}

	cell := a.view.DequeueCell(id, path)
	s.ConfigureCell(cell, path.Item)
	return cell
}

// Supplementary dequeues and configures a header or footer. Sections without a view of
// that kind get a plain view.
func (a *Adapter) Supplementary(kind section.SupplementaryKind, path batch.IndexPath) section.ReusableView {
	s := a.data.At(path.Section)
	t, ok := s.SupplementaryType(kind)
	if !ok {
		t = section.PlainView
	}
	id := t.ReuseID()

	registered := a.registered.supplementary(kind)
	if _, ok := registered[id]; !ok {
		a.view.RegisterSupplementary(t, kind)
		registered[id] = struct{}{}
	}

	view := a.view.DequeueSupplementary(kind, id, path)
	s.ConfigureSupplementary(view, kind, path.Item)
	return view
}

func (a *Adapter) WillDisplayItem(_ section.Cell, path batch.IndexPath) {
	a.data.At(path.Section).WillDisplayCell(path.Item)
}

func (a *Adapter) WillDisplaySupplementaryView(view section.ReusableView, kind section.SupplementaryKind, path batch.IndexPath) {
	a.data.At(path.Section).WillDisplaySupplementary(view, kind, path.Item)
}

func (a *Adapter) DidSelectItem(path batch.IndexPath) {
	a.data.At(path.Section).Select(path.Item)
}
