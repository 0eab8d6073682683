package section

// DimensionKind is the unit of a compositional layout dimension.
type DimensionKind string

const (
	DimensionAbsolute        DimensionKind = "absolute"
	DimensionEstimated       DimensionKind = "estimated"
	DimensionFractionalWidth DimensionKind = "fractional_width"
)

// Dimension is one axis of a compositional layout size.
type Dimension struct {
	Kind  DimensionKind `json:"kind"`
	Value float64       `json:"value"`
}

func Absolute(v float64) Dimension        { return Dimension{Kind: DimensionAbsolute, Value: v} }
func Estimated(v float64) Dimension       { return Dimension{Kind: DimensionEstimated, Value: v} }
func FractionalWidth(v float64) Dimension { return Dimension{Kind: DimensionFractionalWidth, Value: v} }

// LayoutSize pairs the width and height dimensions of a layout element.
type LayoutSize struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
}

// LayoutEnvironment describes the container a section is laid out in.
type LayoutEnvironment struct {
	ContentSize Size `json:"content_size"`
}

// OrthogonalScrolling controls whether a section scrolls across the main axis.
type OrthogonalScrolling string

const (
	OrthogonalNone                  OrthogonalScrolling = "none"
	OrthogonalContinuous            OrthogonalScrolling = "continuous"
	OrthogonalPaging                OrthogonalScrolling = "paging"
	OrthogonalGroupPaging           OrthogonalScrolling = "group_paging"
	OrthogonalGroupPagingCentered   OrthogonalScrolling = "group_paging_centered"
	OrthogonalContinuousGroupLeader OrthogonalScrolling = "continuous_group_leading_boundary"
)

// LayoutItem is one item slot of a layout group.
type LayoutItem struct {
	Size LayoutSize `json:"size"`
}

// LayoutGroup is a horizontal run of items repeated along the section.
type LayoutGroup struct {
	Size  LayoutSize   `json:"size"`
	Items []LayoutItem `json:"items"`
	// FlexibleSpacing is the minimum inter item spacing.
	FlexibleSpacing float64 `json:"flexible_spacing"`
}

// Alignment places a boundary supplementary item.
type Alignment string

const (
	AlignTop    Alignment = "top"
	AlignBottom Alignment = "bottom"
)

// BoundaryItem is a header or footer pinned to a section boundary.
type BoundaryItem struct {
	Kind      SupplementaryKind `json:"kind"`
	Size      LayoutSize        `json:"size"`
	Alignment Alignment         `json:"alignment"`
}

// LayoutSection describes how a compositional layout arranges one section.
type LayoutSection struct {
	Group             LayoutGroup         `json:"group"`
	InterGroupSpacing float64             `json:"inter_group_spacing"`
	ContentInsets     Insets              `json:"content_insets"`
	Orthogonal        OrthogonalScrolling `json:"orthogonal"`
	Boundaries        []BoundaryItem      `json:"boundaries,omitempty"`
}
