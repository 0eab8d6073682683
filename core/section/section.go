package section

import "weak"

// Section is one homogeneous run of items displayed by the adapter.
type Section interface {
	ID() ID

	// NumberOfItems returns the number of cells in the section.
	NumberOfItems() int
	// CellType returns the view type of the cell at index.
	CellType(index int) ViewType
	// ConfigureCell binds the item at index to a dequeued or calculation cell.
	ConfigureCell(cell Cell, index int)
	// Select handles a tap on the item at index.
	Select(index int)
	// SizeForCell returns the size policy of the item at index.
	SizeForCell(index int, contentWidth float64) SizeCalculation

	Insets() Insets
	// MinimumLineSpacing is the space between two rows of cells.
	MinimumLineSpacing() float64
	// MinimumInteritemSpacing is the space between two cells on the same row.
	MinimumInteritemSpacing() float64

	// SupplementaryType returns the view type of the header or footer. The second
	// result is false when the section has no view of that kind.
	SupplementaryType(kind SupplementaryKind) (ViewType, bool)
	ConfigureSupplementary(view ReusableView, kind SupplementaryKind, index int)
	SizeForSupplementary(kind SupplementaryKind, contentWidth float64) SizeCalculation

	WillDisplayCell(index int)
	WillDisplaySupplementary(view ReusableView, kind SupplementaryKind, index int)

	// CompositionalGroup returns a custom item group for compositional layouts.
	CompositionalGroup(env LayoutEnvironment) (LayoutGroup, bool)
	// CompositionalSection returns a custom section layout, replacing the derived one.
	CompositionalSection(env LayoutEnvironment) (LayoutSection, bool)
	OrthogonalScrolling() OrthogonalScrolling

	// Context returns the adapter displaying the section, nil when detached.
	Context() Displayable
	Attach(link *Link)
	Detach()
	AttachedTo(link *Link) bool
}

// Link is the handle an adapter hands to the sections and groups it displays. The
// adapter owns the link. Sections only hold a weak pointer to it.
type Link struct {
	target GroupDisplayable
}

// NewLink creates a link pointing at target.
func NewLink(target GroupDisplayable) *Link {
	return &Link{target: target}
}

// Target returns the adapter behind the link.
func (l *Link) Target() GroupDisplayable {
	return l.target
}

type anchor struct {
	id   ID
	link weak.Pointer[Link]
}

func (a *anchor) identity(prefix string) ID {
	if a.id == "" {
		a.id = NextID(prefix)
	}
	return a.id
}

// Attach stores a weak reference to link.
func (a *anchor) Attach(link *Link) {
	a.link = weak.Make(link)
}

// Detach clears the back-reference.
func (a *anchor) Detach() {
	a.link = weak.Pointer[Link]{}
}

// AttachedTo reports whether the back-reference currently points at link.
func (a *anchor) AttachedTo(link *Link) bool {
	return link != nil && a.link.Value() == link
}

func (a *anchor) target() GroupDisplayable {
	if l := a.link.Value(); l != nil {
		return l.target
	}
	return nil
}

// Base carries identity, the adapter back-reference and a default for every optional
// Section method. Embed it in concrete sections.
type Base struct {
	anchor
}

// NewBase returns a Base with the given identity. An empty id is generated lazily.
func NewBase(id ID) Base {
	return Base{anchor: anchor{id: id}}
}

func (b *Base) ID() ID {
	return b.identity("section")
}

func (b *Base) Context() Displayable {
	return b.target()
}

func (b *Base) Insets() Insets                   { return Insets{} }
func (b *Base) MinimumLineSpacing() float64      { return 0 }
func (b *Base) MinimumInteritemSpacing() float64 { return 0 }

func (b *Base) SupplementaryType(SupplementaryKind) (ViewType, bool) {
	return ViewType{}, false
}

func (b *Base) ConfigureSupplementary(ReusableView, SupplementaryKind, int) {}

func (b *Base) SizeForSupplementary(SupplementaryKind, float64) SizeCalculation {
	return AutomaticHeight()
}

func (b *Base) WillDisplayCell(int) {}

func (b *Base) WillDisplaySupplementary(ReusableView, SupplementaryKind, int) {}

func (b *Base) CompositionalGroup(LayoutEnvironment) (LayoutGroup, bool) {
	return LayoutGroup{}, false
}

func (b *Base) CompositionalSection(LayoutEnvironment) (LayoutSection, bool) {
	return LayoutSection{}, false
}

func (b *Base) OrthogonalScrolling() OrthogonalScrolling {
	return OrthogonalNone
}
