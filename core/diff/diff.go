// Package diff computes structural updates between two ordered section lists.
//
// The comparison is identity based: two sections are the same when their IDs are equal,
// regardless of content. Compute runs a Myers shortest edit script over the identities
// and pairs every removed element with the inserted element of equal identity into a
// move. Deletes refer to positions in the old list, inserts to positions in the new list
// and moves carry both.
//
// Sections builds on Compute and applies the reload policy of the adapter: every old
// section that survives in place is reloaded unless its identity is ignored.
//
//	u, err := diff.Sections(old, new, ignored...)
//	if errors.Is(err, diff.ErrDuplicateIdentity) {
//	    // fall back to a full reload
//	}
package diff

import (
	"errors"
	"fmt"
	"slices"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// ErrDuplicateIdentity is returned when an identity appears twice in one list.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// Change is the edit script between two sequences.
type Change struct {
	Deletes batch.IndexSet
	Inserts batch.IndexSet
	Moves   []batch.Move
}

// IsEmpty reports whether both sequences are equal.
func (c Change) IsEmpty() bool {
	return len(c.Deletes) == 0 && len(c.Inserts) == 0 && len(c.Moves) == 0
}

// Compute returns the edit script turning old into new, comparing elements by key.
// Keys must be unique within each sequence.
func Compute[T any, K comparable](old, new []T, key func(T) K) (Change, error) {
	a, err := keys(old, key)
	if err != nil {
		return Change{}, fmt.Errorf("old: %w", err)
	}
	b, err := keys(new, key)
	if err != nil {
		return Change{}, fmt.Errorf("new: %w", err)
	}

	var deletes, inserts []int
	for _, e := range script(a, b) {
		switch e.op {
		case opDelete:
			deletes = append(deletes, e.index)
		case opInsert:
			inserts = append(inserts, e.index)
		}
	}

	// A removal and an insertion of the same identity is a move.
	inserted := make(map[K]int, len(inserts))
	for _, i := range inserts {
		inserted[b[i]] = i
	}
	var change Change
	moved := make(map[int]bool)
	for _, i := range deletes {
		if to, ok := inserted[a[i]]; ok {
			change.Moves = append(change.Moves, batch.Move{From: i, To: to})
			moved[to] = true
			continue
		}
		change.Deletes = append(change.Deletes, i)
	}
	for _, i := range inserts {
		if !moved[i] {
			change.Inserts = append(change.Inserts, i)
		}
	}

	change.Deletes = batch.NewIndexSet(change.Deletes...)
	change.Inserts = batch.NewIndexSet(change.Inserts...)
	return change, nil
}

func keys[T any, K comparable](items []T, key func(T) K) ([]K, error) {
	out := make([]K, len(items))
	seen := make(map[K]struct{}, len(items))
	for i, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%v: %w", k, ErrDuplicateIdentity)
		}
		seen[k] = struct{}{}
		out[i] = k
	}
	return out, nil
}

// Sections diffs two section lists by identity. Deletes, inserts and moves come from
// Compute. Every old section that is neither deleted nor moved is reloaded unless its
// identity is listed in ignore: omitting ignore reloads everything that survives.
func Sections(old, new []section.Section, ignore ...section.ID) (batch.Updates, error) {
	change, err := Compute(old, new, section.Section.ID)
	if err != nil {
		return batch.Updates{}, err
	}

	skip := make(map[section.ID]bool, len(ignore))
	for _, id := range ignore {
		skip[id] = true
	}
	gone := slices.Clone([]int(change.Deletes))
	for _, m := range change.Moves {
		gone = append(gone, m.From)
	}
	removed := batch.NewIndexSet(gone...)

	var reloads []int
	for i, s := range old {
		if !removed.Contains(i) && !skip[s.ID()] {
			reloads = append(reloads, i)
		}
	}

	return batch.Updates{
		InsertSections: change.Inserts,
		DeleteSections: change.Deletes,
		MoveSections:   change.Moves,
		ReloadSections: batch.NewIndexSet(reloads...),
	}.Merge(batch.Updates{}), nil
}

// IgnoreOutside returns the identities of the old sections that are not part of keep.
// Group reloads use it to restrict the reload policy to one group.
func IgnoreOutside(old []section.Section, keep []section.Section) []section.ID {
	kept := make(map[section.ID]bool, len(keep))
	for _, s := range keep {
		kept[s.ID()] = true
	}
	var out []section.ID
	for _, s := range old {
		if !kept[s.ID()] {
			out = append(out, s.ID())
		}
	}
	return out
}
