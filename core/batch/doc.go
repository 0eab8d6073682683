// Package batch describes structural changes to a collection view as plain values.
//
// Two levels are modelled:
//
//   - SectionUpdates: item level changes inside one section (insert, delete, reload,
//     move of items plus header/footer reloads). Indexes are relative to that section.
//   - Updates: collection level changes (section inserts, deletes, reloads and moves,
//     item changes addressed by IndexPath, boundary supplementary reloads).
//
// # Index Spaces
//
// Deletes, reloads and move sources are expressed in the index space before the change,
// inserts and move targets in the index space after it. Updates built for one group or
// one section must be translated into the flattened collection space with Shift or Lift
// before they are merged with anything else.
//
// # Normalization
//
// Every constructor and combinator keeps index sets sorted and free of duplicates, and
// empty sets are nil. Two Updates describing the same changes are therefore equal with
// reflect.DeepEqual, which makes Merge associative and easy to assert in tests.
//
// # Usage
//
//	local := batch.Updates{InsertSections: batch.NewIndexSet(0)}
//	global := local.Shift(groupRange.Lower)
//	merged := global.Merge(batch.Lift(batch.SectionUpdates{Reloads: batch.NewIndexSet(2)}, 4))
package batch
