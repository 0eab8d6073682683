package headless

import (
	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// Cell is the reusable view handed out by the headless widget, for items and
// supplementary views alike.
type Cell struct {
	Type  section.ViewType
	Path  batch.IndexPath
	Kind  string
	Label string
	// Reuses counts how many times the view was prepared for reuse.
	Reuses int
}

var _ section.Cell = (*Cell)(nil)

func newCell(t section.ViewType, path batch.IndexPath, kind string) *Cell {
	return &Cell{Type: t, Path: path, Kind: kind}
}

func (c *Cell) ReuseID() string {
	return c.Type.ReuseID()
}

func (c *Cell) PrepareForReuse() {
	c.Label = ""
	c.Reuses++
}

func (c *Cell) SetLabel(text string) {
	c.Label = text
}
