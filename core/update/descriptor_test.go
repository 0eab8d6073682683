package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionkit/core/batch"
	"sectionkit/core/section"
	"sectionkit/core/snapshot"
)

func snap(ids ...section.ID) *snapshot.Snapshot {
	sections := make([]section.Section, len(ids))
	for i, id := range ids {
		sections[i] = section.NewStatic(id, 1)
	}
	return snapshot.New([]section.Group{section.NewGroup("g", sections...)})
}

func descriptors() []Descriptor {
	s1, s2 := snap("a"), snap("b")
	return []Descriptor{
		{},
		Batch(batch.Updates{InsertSections: batch.NewIndexSet(0)}, true),
		Batch(batch.Updates{DeleteSections: batch.NewIndexSet(2), ReloadSections: batch.NewIndexSet(1)}, false),
		Batch(batch.Updates{MoveSections: []batch.Move{{From: 0, To: 3}}}, true).WithSnapshot(s1),
		Full(),
		Full().WithSnapshot(s2),
		Batch(batch.Lift(batch.SectionUpdates{Inserts: batch.NewIndexSet(4)}, 2), true),
	}
}

func TestMerge_Associative(t *testing.T) {
	all := descriptors()
	for i, a := range all {
		for j, b := range all {
			for k, c := range all {
				left := a.Merge(b).Merge(c)
				right := a.Merge(b.Merge(c))
				require.Equal(t, left, right, "a=%d b=%d c=%d", i, j, k)
			}
		}
	}
}

func TestMerge_FullReloadDominates(t *testing.T) {
	all := descriptors()
	for _, a := range all {
		for _, b := range all {
			m := a.Merge(b)
			assert.Equal(t, a.FullReload || b.FullReload, m.FullReload)
			if m.FullReload {
				assert.True(t, m.Updates.IsEmpty())
				assert.False(t, m.Animated)
			}
		}
	}
}

func TestMerge_Snapshot(t *testing.T) {
	s1, s2 := snap("a"), snap("b")

	assert.Same(t, s2, Full().WithSnapshot(s1).Merge(Batch(batch.Updates{}, true).WithSnapshot(s2)).Snapshot)
	assert.Same(t, s1, Batch(batch.Updates{}, true).WithSnapshot(s1).Merge(Full()).Snapshot)
	assert.Nil(t, Full().Merge(Full()).Snapshot)
}

func TestMerge_Animation(t *testing.T) {
	on := Batch(batch.Updates{InsertSections: batch.NewIndexSet(0)}, true)
	off := Batch(batch.Updates{InsertSections: batch.NewIndexSet(1)}, false)

	assert.True(t, on.Merge(on).Animated)
	assert.False(t, on.Merge(off).Animated)
	assert.Equal(t, batch.IndexSet{0, 1}, on.Merge(off).Updates.InsertSections)
}

func TestMergeFold(t *testing.T) {
	_, ok := Merge()
	assert.False(t, ok)

	d, ok := Merge(Batch(batch.Updates{ReloadSections: batch.NewIndexSet(0)}, true), Full())
	assert.True(t, ok)
	assert.True(t, d.FullReload)
}

func TestDescriptor_Shift(t *testing.T) {
	local := Batch(batch.Lift(batch.SectionUpdates{Deletes: batch.NewIndexSet(1)}, 0), true)

	shifted := local.Shift(3)

	assert.Equal(t, []batch.IndexPath{{Section: 3, Item: 1}}, shifted.Updates.DeleteItems)
	assert.True(t, shifted.Animated)
}

func TestDescriptor_AsFullReload(t *testing.T) {
	s := snap("a")
	d := Batch(batch.Updates{InsertSections: batch.NewIndexSet(0)}, true).WithSnapshot(s).AsFullReload()

	assert.True(t, d.FullReload)
	assert.True(t, d.Updates.IsEmpty())
	assert.Same(t, s, d.Snapshot)
	assert.Equal(t, "full", d.Mode())
}

func TestDescriptor_IsEmpty(t *testing.T) {
	assert.True(t, Descriptor{}.IsEmpty())
	assert.False(t, Full().IsEmpty())
	assert.False(t, Descriptor{Snapshot: snap()}.IsEmpty())
	assert.False(t, Batch(batch.Updates{ReloadFooters: batch.NewIndexSet(0)}, true).IsEmpty())
}
