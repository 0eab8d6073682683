package section

import "sectionkit/core/batch"

// Completion receives whether the render that carried a request finished.
type Completion func(finished bool)

// Displayable is what a section sees of the adapter displaying it.
type Displayable interface {
	CellForItem(index int, s Section) (Cell, bool)
	IndexForCell(cell Cell, s Section) (int, bool)
	PerformUpdates(updates batch.SectionUpdates, s Section, completion Completion)
	Reload(s Section, animated bool, completion Completion)
	UpdateLayout(s Section, indexes []int)
	ScrollToItem(s Section, index int, position ScrollPosition, animated bool)
	ScrollToSupplementary(s Section, kind SupplementaryKind, index int, position ScrollPosition, animated bool)
	RectForCell(index int, s Section) (Rect, bool)
	RectForSupplementary(kind SupplementaryKind, index int, s Section) (Rect, bool)
}

// GroupDisplayable is what a group sees of the adapter displaying it.
type GroupDisplayable interface {
	Displayable
	ReloadGroup(g Group, ignore []ID, animated bool, completion Completion)
	PerformGroupUpdates(g Group, updates batch.Updates, completion Completion)
}

// RectForSection returns the union of the first and last visible element of s, expanded
// by the section insets. The first element is the header when it has a size, else the
// first cell. The last element is the footer or else the last cell.
func RectForSection(d Displayable, s Section) (Rect, bool) {
	count := s.NumberOfItems()

	first, ok := visibleRect(d.RectForSupplementary(Header, 0, s))
	if !ok && count > 0 {
		first, ok = visibleRect(d.RectForCell(0, s))
	}
	if !ok {
		return Rect{}, false
	}

	last, ok := visibleRect(d.RectForSupplementary(Footer, 0, s))
	if !ok && count > 0 {
		last, ok = visibleRect(d.RectForCell(count-1, s))
	}
	if !ok {
		return Rect{}, false
	}

	return first.Union(last).Inset(s.Insets().Negated()), true
}

func visibleRect(r Rect, ok bool) (Rect, bool) {
	if !ok || r.Size.IsZero() {
		return Rect{}, false
	}
	return r, true
}
