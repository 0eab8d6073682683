// Package widget declares the narrow interfaces of the rendering widget driven by the
// adapter: the collection view itself, the delegate it queries for content and layout,
// and the factory measuring calculation views.
//
// The widget owns geometry, recycling and animation. The adapter never reimplements
// them; it only answers the delegate queries and issues structural updates.
package widget

import (
	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// CollectionView is the scrolling grid the adapter renders into.
type CollectionView interface {
	// SetDelegate binds the content and layout provider. A nil delegate unbinds it.
	SetDelegate(d Delegate)

	NumberOfSections() int
	NumberOfItems(section int) int

	// PerformBatchUpdates applies a structural batch. completion is invoked exactly once,
	// possibly before PerformBatchUpdates returns, with false when the batch was
	// interrupted or rejected.
	PerformBatchUpdates(updates batch.Updates, animated bool, completion func(finished bool))
	ReloadData()
	// InvalidateLayout recomputes the layout of the given items, or of everything when
	// paths is nil.
	InvalidateLayout(paths []batch.IndexPath)
	LayoutIfNeeded()
	// IsVisible reports whether the widget is part of a visible rendering surface.
	IsVisible() bool

	RegisterCell(t section.ViewType)
	RegisterSupplementary(t section.ViewType, kind section.SupplementaryKind)
	DequeueCell(reuseID string, path batch.IndexPath) section.Cell
	DequeueSupplementary(kind section.SupplementaryKind, reuseID string, path batch.IndexPath) section.ReusableView

	CellForItem(path batch.IndexPath) (section.Cell, bool)
	IndexPathForCell(cell section.Cell) (batch.IndexPath, bool)
	FrameForItem(path batch.IndexPath) (section.Rect, bool)
	FrameForSupplementary(kind section.SupplementaryKind, path batch.IndexPath) (section.Rect, bool)

	ScrollToItem(path batch.IndexPath, position section.ScrollPosition, animated bool)
	ScrollRectToVisible(rect section.Rect, animated bool)
	Bounds() section.Rect
	AdjustedContentInset() section.Insets
	EndRefreshing()
}

// Delegate answers the content and flow layout queries of a CollectionView.
type Delegate interface {
	SectionCount() int
	ItemCount(section int) int
	Cell(path batch.IndexPath) section.Cell
	Supplementary(kind section.SupplementaryKind, path batch.IndexPath) section.ReusableView

	ItemSize(path batch.IndexPath) section.Size
	SectionInsets(section int) section.Insets
	LineSpacing(section int) float64
	InteritemSpacing(section int) float64
	// ReferenceSize is the header or footer size of a section, zero when it has none.
	ReferenceSize(kind section.SupplementaryKind, section int) section.Size

	WillDisplayItem(cell section.Cell, path batch.IndexPath)
	WillDisplaySupplementaryView(view section.ReusableView, kind section.SupplementaryKind, path batch.IndexPath)
	DidSelectItem(path batch.IndexPath)
}

// ViewFactory builds views outside of the recycling pool and measures them.
type ViewFactory interface {
	// NewCell instantiates a cell of the given type.
	NewCell(t section.ViewType) section.Cell
	// NewView instantiates a supplementary view of the given type.
	NewView(t section.ViewType) section.ReusableView
	// Fit returns the compressed size of view for target. With fixedWidth the width of
	// target is kept and the height is fitted, otherwise the height is kept.
	Fit(view section.ReusableView, target section.Size, fixedWidth bool) section.Size
}
