// Package update provides the descriptor of one pending reload and its merge algebra.
//
// A Descriptor carries the structural operations of a reload, a full reload escape
// flag, an optional replacement snapshot and an animation preference. Descriptors
// queued while a render is in flight are folded with Merge in arrival order:
//
//	pending = pending.Merge(next)
//
// Merge is associative. A full reload, once merged in, is never cleared by a later
// partial update. Operations must share one index space before merging: group local
// operations are translated with Shift first.
package update

import (
	"fmt"

	"sectionkit/core/batch"
	"sectionkit/core/snapshot"
)

// Descriptor describes one pending reload.
type Descriptor struct {
	Updates    batch.Updates
	FullReload bool
	// Snapshot replaces the current snapshot when the descriptor is committed. Nil keeps
	// the current one.
	Snapshot *snapshot.Snapshot
	Animated bool
}

// Batch returns a descriptor applying the given operations.
func Batch(u batch.Updates, animated bool) Descriptor {
	return Descriptor{Updates: u.Merge(batch.Updates{}), Animated: animated}
}

// Full returns a full reload descriptor.
func Full() Descriptor {
	return Descriptor{FullReload: true}
}

// WithSnapshot returns a copy of d committing snap.
func (d Descriptor) WithSnapshot(snap *snapshot.Snapshot) Descriptor {
	d.Snapshot = snap
	return d
}

// AsFullReload returns a copy of d turned into a full reload. The snapshot is kept.
func (d Descriptor) AsFullReload() Descriptor {
	return Descriptor{FullReload: true, Snapshot: d.Snapshot}
}

// Shift translates every section index of the operations by offset.
func (d Descriptor) Shift(offset int) Descriptor {
	d.Updates = d.Updates.Shift(offset)
	return d
}

// IsEmpty reports whether committing d has no visible effect.
func (d Descriptor) IsEmpty() bool {
	return !d.FullReload && d.Snapshot == nil && d.Updates.IsEmpty()
}

// Merge folds b, issued after d, into one descriptor.
func (d Descriptor) Merge(b Descriptor) Descriptor {
	snap := b.Snapshot
	if snap == nil {
		snap = d.Snapshot
	}

	if d.FullReload || b.FullReload {
		return Descriptor{FullReload: true, Snapshot: snap}
	}

	return Descriptor{
		Updates:  d.Updates.Merge(b.Updates),
		Snapshot: snap,
		Animated: d.Animated && b.Animated,
	}
}

// Merge folds descriptors in arrival order. It returns false when there is none.
func Merge(descriptors ...Descriptor) (Descriptor, bool) {
	if len(descriptors) == 0 {
		return Descriptor{}, false
	}
	out := descriptors[0]
	for _, d := range descriptors[1:] {
		out = out.Merge(d)
	}
	return out, true
}

// Mode names the render path of the descriptor.
func (d Descriptor) Mode() string {
	if d.FullReload {
		return "full"
	}
	return "batch"
}

// String describes the descriptor for logs.
func (d Descriptor) String() string {
	if d.FullReload {
		return "full reload"
	}
	return fmt.Sprintf("%s animated=%t", d.Updates, d.Animated)
}
