package section

import "fmt"

// Labeler is implemented by views that display a text label.
type Labeler interface {
	SetLabel(text string)
}

// Static is a data driven section: a fixed number of items of one view type with
// optional header and footer. Scenarios and the playground build their layouts from it.
type Static struct {
	Base

	Items      int
	Cell       ViewType
	HeaderType *ViewType
	FooterType *ViewType
	// ItemHeight is the fixed item height. Zero measures items automatically.
	ItemHeight  float64
	Inset       Insets
	LineSpacing float64

	// OnSelect is invoked when an item is selected.
	OnSelect func(index int)

	displayed int
}

// NewStatic creates a static section of count code built cells.
func NewStatic(id ID, count int) *Static {
	return &Static{Base: NewBase(id), Items: count, Cell: Code("Cell")}
}

// WithHeader adds a header of the given view type.
func (s *Static) WithHeader(t ViewType) *Static {
	s.HeaderType = &t
	return s
}

// WithFooter adds a footer of the given view type.
func (s *Static) WithFooter(t ViewType) *Static {
	s.FooterType = &t
	return s
}

func (s *Static) NumberOfItems() int {
	return s.Items
}

func (s *Static) CellType(int) ViewType {
	return s.Cell
}

func (s *Static) ConfigureCell(cell Cell, index int) {
	if l, ok := cell.(Labeler); ok {
		l.SetLabel(fmt.Sprintf("%s#%d", s.ID(), index))
	}
}

func (s *Static) Select(index int) {
	if s.OnSelect != nil {
		s.OnSelect(index)
	}
}

func (s *Static) SizeForCell(_ int, contentWidth float64) SizeCalculation {
	if s.ItemHeight > 0 {
		return Specific(Size{Width: contentWidth, Height: s.ItemHeight})
	}
	return AutomaticHeight()
}

func (s *Static) Insets() Insets {
	return s.Inset
}

func (s *Static) MinimumLineSpacing() float64 {
	return s.LineSpacing
}

func (s *Static) SupplementaryType(kind SupplementaryKind) (ViewType, bool) {
	t := s.HeaderType
	if kind == Footer {
		t = s.FooterType
	}
	if t == nil {
		return ViewType{}, false
	}
	return *t, true
}

func (s *Static) ConfigureSupplementary(view ReusableView, kind SupplementaryKind, _ int) {
	if l, ok := view.(Labeler); ok {
		l.SetLabel(fmt.Sprintf("%s/%s", s.ID(), kind))
	}
}

func (s *Static) WillDisplayCell(int) {
	s.displayed++
}

// Displayed returns how many times a cell of the section was about to be displayed.
func (s *Static) Displayed() int {
	return s.displayed
}

// String describes the section for logs and reports.
func (s *Static) String() string {
	return fmt.Sprintf("%s(%d)", s.ID(), s.Items)
}
