package adapter

import (
	"math"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// StartPoint returns the origin of the header of s.
func (a *Adapter) StartPoint(s section.Section) (section.Point, bool) {
	index, ok := a.data.SectionIndex(s.ID())
	if !ok || a.view == nil {
		return section.Point{}, false
	}
	rect, ok := a.view.FrameForSupplementary(section.Header, batch.IndexPath{Section: index})
	if !ok {
		return section.Point{}, false
	}
	return rect.Origin, true
}

// CellForItem returns the displayed cell of the item at index of s.
func (a *Adapter) CellForItem(index int, s section.Section) (section.Cell, bool) {
	sectionIndex, ok := a.data.SectionIndex(s.ID())
	if !ok || a.view == nil {
		return nil, false
	}
	return a.view.CellForItem(batch.IndexPath{Section: sectionIndex, Item: index})
}

// IndexForCell returns the item index of a displayed cell.
func (a *Adapter) IndexForCell(cell section.Cell, _ section.Section) (int, bool) {
	if a.view == nil {
		return 0, false
	}
	path, ok := a.view.IndexPathForCell(cell)
	if !ok {
		return 0, false
	}
	return path.Item, true
}

// UpdateLayout invalidates the layout of the given items of s, or of the whole widget
// when indexes is nil.
func (a *Adapter) UpdateLayout(s section.Section, indexes []int) {
	index, ok := a.sectionIndex(s, "update_layout")
	if !ok || a.view == nil {
		return
	}
	if indexes == nil {
		a.view.InvalidateLayout(nil)
		return
	}
	paths := make([]batch.IndexPath, len(indexes))
	for i, item := range indexes {
		paths[i] = batch.IndexPath{Section: index, Item: item}
	}
	a.view.InvalidateLayout(paths)
}

// ScrollToItem scrolls to the item at index of s.
func (a *Adapter) ScrollToItem(s section.Section, index int, position section.ScrollPosition, animated bool) {
	sectionIndex, ok := a.sectionIndex(s, "scroll_to_item")
	if !ok || a.view == nil {
		return
	}
	a.view.ScrollToItem(batch.IndexPath{Section: sectionIndex, Item: index}, position, animated)
}

// ScrollToSupplementary scrolls a header or footer of s to the given position of the
// visible bounds, net of the adjusted content insets.
func (a *Adapter) ScrollToSupplementary(s section.Section, kind section.SupplementaryKind, index int, position section.ScrollPosition, animated bool) {
	sectionIndex, ok := a.sectionIndex(s, "scroll_to_supplementary")
	if !ok || a.view == nil {
		return
	}
	rect, ok := a.view.FrameForSupplementary(kind, batch.IndexPath{Section: sectionIndex, Item: index})
	if !ok {
		return
	}
	a.view.ScrollRectToVisible(alignRect(rect, a.visibleHeight(), position), animated)
}

func (a *Adapter) visibleHeight() float64 {
	insets := a.view.AdjustedContentInset()
	return a.view.Bounds().Size.Height - insets.Top - insets.Bottom
}

// alignRect stretches rect to the visible height so that scrolling it into view puts
// the original rect at the requested position.
func alignRect(rect section.Rect, height float64, position section.ScrollPosition) section.Rect {
	out := rect
	switch position {
	case section.ScrollBottom:
		out.Origin.Y = rect.MinY() - height + rect.Size.Height
		out.Size.Height = height
	case section.ScrollTop:
		out.Size.Height = height
	case section.ScrollCenteredVertically:
		offset := math.Max((height-rect.Size.Height)/2, 0)
		out.Origin.Y = rect.MinY() - offset
		out.Size.Height = height
	}
	return out
}

// RectForCell returns the frame of the item at index of s.
func (a *Adapter) RectForCell(index int, s section.Section) (section.Rect, bool) {
	sectionIndex, ok := a.data.SectionIndex(s.ID())
	if !ok || a.view == nil {
		return section.Rect{}, false
	}
	return a.view.FrameForItem(batch.IndexPath{Section: sectionIndex, Item: index})
}

// RectForSupplementary returns the frame of a header or footer of s.
func (a *Adapter) RectForSupplementary(kind section.SupplementaryKind, index int, s section.Section) (section.Rect, bool) {
	sectionIndex, ok := a.data.SectionIndex(s.ID())
	if !ok || a.view == nil {
		return section.Rect{}, false
	}
	return a.view.FrameForSupplementary(kind, batch.IndexPath{Section: sectionIndex, Item: index})
}

// RectForSection returns the frame covering the visible elements of s.
func (a *Adapter) RectForSection(s section.Section) (section.Rect, bool) {
	return section.RectForSection(a, s)
}

// GenerateCell builds and configures a standalone cell for the item at index of s.
func (a *Adapter) GenerateCell(s section.Section, index int) (section.Cell, bool) {
	if a.factory == nil || index >= s.NumberOfItems() {
		return nil, false
	}
	cell := a.factory.NewCell(s.CellType(index))
	s.ConfigureCell(cell, index)
	return cell, true
}
