// Package snapshot provides the immutable flattened view of the groups and sections
// displayed by an adapter.
//
// A Snapshot captures the section list of every group at construction and derives the
// lookup maps used to translate identities into positions:
//
//   - group id to group position
//   - group id to the half-open range of its sections in the flattened list
//   - section id to flattened position
//
// Flattening order is the concatenation of each group's sections in group order, so the
// range of a group always spans exactly its sections. Snapshots are never mutated: Update
// returns a new snapshot with one group re-read, leaving the receiver untouched.
//
// Duplicate identities do not fail construction. They are recorded and reported by
// Unique, since identity based diffing is unavailable for such snapshots and callers
// fall back to a full reload.
package snapshot
