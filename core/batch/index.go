package batch

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned when an update addresses a negative position.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexSet is a sorted set of non-repeating indexes.
type IndexSet []int

// NewIndexSet builds a normalized set from arbitrary indexes.
func NewIndexSet(indexes ...int) IndexSet {
	if len(indexes) == 0 {
		return nil
	}
	set := slices.Clone(indexes)
	slices.Sort(set)
	return IndexSet(slices.Compact(set))
}

// Range returns the set [lower, upper).
func Range(lower, upper int) IndexSet {
	if upper <= lower {
		return nil
	}
	set := make(IndexSet, 0, upper-lower)
	for i := lower; i < upper; i++ {
		set = append(set, i)
	}
	return set
}

// Len returns the number of indexes in the set.
func (s IndexSet) Len() int {
	return len(s)
}

// Contains reports whether index is part of the set.
func (s IndexSet) Contains(index int) bool {
	_, found := slices.BinarySearch(s, index)
	return found
}

// Union returns the indexes present in either set.
func (s IndexSet) Union(other IndexSet) IndexSet {
	return NewIndexSet(append(slices.Clone(s), other...)...)
}

// Subtract returns the indexes of s that are not in other.
func (s IndexSet) Subtract(other IndexSet) IndexSet {
	var out []int
	for _, i := range s {
		if !other.Contains(i) {
			out = append(out, i)
		}
	}
	return NewIndexSet(out...)
}

// Shift translates every index by offset.
func (s IndexSet) Shift(offset int) IndexSet {
	if len(s) == 0 || offset == 0 {
		return s
	}
	out := make(IndexSet, len(s))
	for i, index := range s {
		out[i] = index + offset
	}
	return out
}

// IndexPath addresses an item (or a supplementary view) inside a section.
type IndexPath struct {
	Section int `json:"section" yaml:"section"`
	Item    int `json:"item" yaml:"item"`
}

// String renders the path as "section.item".
func (p IndexPath) String() string {
	return fmt.Sprintf("%d.%d", p.Section, p.Item)
}

func comparePaths(a, b IndexPath) int {
	if c := cmp.Compare(a.Section, b.Section); c != 0 {
		return c
	}
	return cmp.Compare(a.Item, b.Item)
}

func normalizePaths(paths []IndexPath) []IndexPath {
	if len(paths) == 0 {
		return nil
	}
	out := slices.Clone(paths)
	slices.SortFunc(out, comparePaths)
	return slices.Compact(out)
}

// Move relocates one index.
type Move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String renders the move as "from->to".
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

func normalizeMoves(moves []Move) []Move {
	if len(moves) == 0 {
		return nil
	}
	out := slices.Clone(moves)
	slices.SortFunc(out, func(a, b Move) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return slices.Compact(out)
}

// PathMove relocates one item, possibly across sections.
type PathMove struct {
	From IndexPath `json:"from" yaml:"from"`
	To   IndexPath `json:"to" yaml:"to"`
}

// String renders the move as "from->to".
func (m PathMove) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

func normalizePathMoves(moves []PathMove) []PathMove {
	if len(moves) == 0 {
		return nil
	}
	out := slices.Clone(moves)
	slices.SortFunc(out, func(a, b PathMove) int {
		if c := comparePaths(a.From, b.From); c != 0 {
			return c
		}
		return comparePaths(a.To, b.To)
	})
	return slices.Compact(out)
}
