package headless

import (
	"fmt"
	"sort"
	"strings"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

func (v *View) resetLayout() {
	v.frames = make(map[batch.IndexPath]section.Rect)
	v.suppFrames = map[section.SupplementaryKind]map[int]section.Rect{
		section.Header: {},
		section.Footer: {},
	}
	v.supps = map[section.SupplementaryKind]map[int]*Cell{
		section.Header: {},
		section.Footer: {},
	}
	if v.cells == nil {
		v.cells = make(map[batch.IndexPath]*Cell)
	}
	v.height = 0
}

// LayoutIfNeeded lays out every section in one column when the layout is dirty: header,
// top inset, items separated by the line spacing, bottom inset, footer. Every laid out
// element is dequeued from the delegate and announced as displayed.
func (v *View) LayoutIfNeeded() {
	if !v.dirty {
		return
	}
	v.dirty = false
	v.layouts++

	previous := v.cells
	v.cells = make(map[batch.IndexPath]*Cell)
	v.resetLayout()
	if v.delegate == nil {
		return
	}

	y := 0.0
	for s := 0; s < len(v.counts); s++ {
		insets := v.delegate.SectionInsets(s)
		spacing := v.delegate.LineSpacing(s)

		y = v.placeSupplementary(section.Header, s, y)
		y += insets.Top
		for i := 0; i < v.counts[s]; i++ {
			path := batch.IndexPath{Section: s, Item: i}
			size := v.delegate.ItemSize(path)
			v.frames[path] = section.NewRect(insets.Left, y, size.Width, size.Height)
			y += size.Height
			if i < v.counts[s]-1 {
				y += spacing
			}

			if old, ok := previous[path]; ok {
				v.cells[path] = old
			}
			cell := v.delegate.Cell(path)
			if c, ok := cell.(*Cell); ok {
				c.Path = path
				v.cells[path] = c
			}
			v.delegate.WillDisplayItem(cell, path)
		}
		y += insets.Bottom
		y = v.placeSupplementary(section.Footer, s, y)
	}
	v.height = y
}

func (v *View) placeSupplementary(kind section.SupplementaryKind, s int, y float64) float64 {
	size := v.delegate.ReferenceSize(kind, s)
	if size.IsZero() {
		return y
	}
	path := batch.IndexPath{Section: s}
	v.suppFrames[kind][s] = section.NewRect(0, y, size.Width, size.Height)

	view := v.delegate.Supplementary(kind, path)
	if c, ok := view.(*Cell); ok {
		v.supps[kind][s] = c
	}
	v.delegate.WillDisplaySupplementaryView(view, kind, path)
	return y + size.Height
}

// Layouts returns how many layout passes ran.
func (v *View) Layouts() int {
	return v.layouts
}

// ContentHeight returns the height of the laid out content.
func (v *View) ContentHeight() float64 {
	return v.height
}

// Dump renders the current layout as one line per element, for reports and diffs.
func (v *View) Dump() string {
	v.LayoutIfNeeded()

	var b strings.Builder
	for s := 0; s < len(v.counts); s++ {
		if r, ok := v.suppFrames[section.Header][s]; ok {
			fmt.Fprintf(&b, "%d header %s %s\n", s, labelOf(v.supps[section.Header][s]), formatRect(r))
		}

		paths := make([]batch.IndexPath, 0, v.counts[s])
		for p := range v.frames {
			if p.Section == s {
				paths = append(paths, p)
			}
		}
		sort.Slice(paths, func(i, j int) bool { return paths[i].Item < paths[j].Item })
		for _, p := range paths {
			fmt.Fprintf(&b, "%s %s %s\n", p, labelOf(v.cells[p]), formatRect(v.frames[p]))
		}

		if r, ok := v.suppFrames[section.Footer][s]; ok {
			fmt.Fprintf(&b, "%d footer %s %s\n", s, labelOf(v.supps[section.Footer][s]), formatRect(r))
		}
	}
	return b.String()
}

func labelOf(c *Cell) string {
	if c == nil || c.Label == "" {
		return "-"
	}
	return c.Label
}

func formatRect(r section.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.MinX(), r.MinY(), r.Size.Width, r.Size.Height)
}
