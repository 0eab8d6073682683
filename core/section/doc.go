// Package section defines the data contracts bound to a collection view: sections,
// groups of sections and the data sources that provide them.
//
// A Section describes one homogeneous run of items. It owns its item count, the view
// type of every item, sizing rules, supplementary (header/footer) views and layout
// hints. A Group is an ordered bag of sections with a stable identity and is the unit of
// partial replacement.
//
// # Optional Behaviour
//
// The Section interface is wide on purpose. Embedding Base provides defaults for every
// optional method (no insets, no spacing, no supplementary views, no compositional
// layout) together with identity and back-reference handling, so a concrete section
// only implements the item related methods:
//
//	type Banner struct {
//	    section.Base
//	}
//
//	func (b *Banner) NumberOfItems() int                       { return 1 }
//	func (b *Banner) CellType(int) section.ViewType            { return section.Code("BannerCell") }
//	func (b *Banner) ConfigureCell(section.Cell, int)          {}
//	func (b *Banner) Select(int)                               {}
//	func (b *Banner) SizeForCell(int, float64) section.SizeCalculation {
//	    return section.AutomaticHeight()
//	}
//
// # Identity
//
// Identities are explicit values generated at construction (NextID) or supplied by the
// caller. They are never derived from memory addresses, so they stay comparable across
// runs and survive serialization.
//
// # Back-references
//
// The adapter displaying a section is reachable from the section through a Link. The
// section only keeps a weak pointer to it: attaching a section never keeps the adapter
// alive, and the adapter clears the reference when the section leaves its snapshot.
package section
