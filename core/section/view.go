package section

import "fmt"

// ViewSource tells the widget how a reusable view type is instantiated.
type ViewSource int

const (
	// SourceCode views are built programmatically.
	SourceCode ViewSource = iota
	// SourceNib views are built from a markup file named after the type.
	SourceNib
)

// String returns "code" or "nib".
func (s ViewSource) String() string {
	if s == SourceNib {
		return "nib"
	}
	return "code"
}

// ViewType names a reusable view class and how it is constructed.
type ViewType struct {
	Name   string     `json:"name" yaml:"name"`
	Source ViewSource `json:"source" yaml:"source"`
}

// Code returns a programmatically built view type.
func Code(name string) ViewType {
	return ViewType{Name: name, Source: SourceCode}
}

// Nib returns a markup built view type.
func Nib(name string) ViewType {
	return ViewType{Name: name, Source: SourceNib}
}

// PlainView is dequeued for a supplementary element of a section that declares none.
var PlainView = Code("ReusableView")

// ReuseID is the identifier the view type is registered and dequeued under.
func (t ViewType) ReuseID() string {
	return t.Name
}

// String renders the type as "name(source)".
func (t ViewType) String() string {
	return fmt.Sprintf("%s(%s)", t.Name, t.Source)
}

// ReusableView is a view handed out by the widget recycling pool.
type ReusableView interface {
	ReuseID() string
	PrepareForReuse()
}

// Cell is a reusable view displaying one item.
type Cell interface {
	ReusableView
}

// SupplementaryKind identifies a boundary view of a section.
type SupplementaryKind int

const (
	Header SupplementaryKind = iota
	Footer
)

// SupplementaryKinds lists every kind in display order.
var SupplementaryKinds = []SupplementaryKind{Header, Footer}

// String returns the element kind name used by the widget.
func (k SupplementaryKind) String() string {
	if k == Footer {
		return "footer"
	}
	return "header"
}

// ParseSupplementaryKind maps a widget element kind name back to a kind.
func ParseSupplementaryKind(value string) (SupplementaryKind, bool) {
	switch value {
	case "header":
		return Header, true
	case "footer":
		return Footer, true
	default:
		return 0, false
	}
}

// SizeMode selects how an item or supplementary view is measured.
type SizeMode int

const (
	// SizeSpecific uses the given size verbatim.
	SizeSpecific SizeMode = iota
	// SizeAutomaticHeight fits the height for the content width (or a fixed width).
	SizeAutomaticHeight
	// SizeAutomaticWidth fits the width for a fixed height.
	SizeAutomaticWidth
)

// SizeCalculation is the size policy of one view.
type SizeCalculation struct {
	Mode SizeMode
	Size Size
	// Fixed is the width for SizeAutomaticHeight (zero means content width) and the
	// height for SizeAutomaticWidth.
	Fixed float64
}

// Specific returns a policy that always answers size.
func Specific(size Size) SizeCalculation {
	return SizeCalculation{Mode: SizeSpecific, Size: size}
}

// ZeroSize hides the view.
var ZeroSize = Specific(Size{})

// AutomaticHeight fits the height of the view. An optional width replaces the section
// content width.
func AutomaticHeight(width ...float64) SizeCalculation {
	calc := SizeCalculation{Mode: SizeAutomaticHeight}
	if len(width) > 0 {
		calc.Fixed = width[0]
	}
	return calc
}

// AutomaticWidth fits the width of the view for the given height.
func AutomaticWidth(height float64) SizeCalculation {
	return SizeCalculation{Mode: SizeAutomaticWidth, Fixed: height}
}
