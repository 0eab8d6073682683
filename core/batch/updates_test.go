package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexSet(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want IndexSet
	}{
		{"Empty", nil, nil},
		{"Sorted", []int{1, 2, 3}, IndexSet{1, 2, 3}},
		{"Unsorted", []int{3, 1, 2}, IndexSet{1, 2, 3}},
		{"Duplicates", []int{2, 2, 0, 2}, IndexSet{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewIndexSet(tt.in...))
		})
	}
}

func TestIndexSet_Operations(t *testing.T) {
	set := NewIndexSet(1, 3, 5)

	assert.True(t, set.Contains(3))
	assert.False(t, set.Contains(4))
	assert.Equal(t, IndexSet{1, 2, 3, 5}, set.Union(NewIndexSet(2, 3)))
	assert.Equal(t, IndexSet{1, 5}, set.Subtract(NewIndexSet(3)))
	assert.Equal(t, IndexSet{11, 13, 15}, set.Shift(10))
	assert.Equal(t, IndexSet{0, 1, 2}, Range(0, 3))
	assert.Nil(t, Range(2, 2))
	assert.Nil(t, IndexSet(nil).Union(nil))
}

func TestLift(t *testing.T) {
	local := SectionUpdates{
		Inserts:      NewIndexSet(0, 1),
		Deletes:      NewIndexSet(4),
		Moves:        []Move{{From: 2, To: 3}},
		ReloadHeader: true,
	}

	got := Lift(local, 7)

	assert.Equal(t, []IndexPath{{7, 0}, {7, 1}}, got.InsertItems)
	assert.Equal(t, []IndexPath{{7, 4}}, got.DeleteItems)
	assert.Equal(t, []PathMove{{From: IndexPath{7, 2}, To: IndexPath{7, 3}}}, got.MoveItems)
	assert.Equal(t, IndexSet{7}, got.ReloadHeaders)
	assert.Nil(t, got.ReloadFooters)
	assert.Equal(t, 5, got.Count())
}

func TestUpdates_Shift(t *testing.T) {
	local := Updates{
		InsertSections: NewIndexSet(0),
		DeleteSections: NewIndexSet(1),
		MoveSections:   []Move{{From: 0, To: 2}},
		ReloadItems:    []IndexPath{{Section: 1, Item: 3}},
		ReloadFooters:  NewIndexSet(2),
	}

	shifted := local.Shift(3)

	assert.Equal(t, IndexSet{3}, shifted.InsertSections)
	assert.Equal(t, IndexSet{4}, shifted.DeleteSections)
	assert.Equal(t, []Move{{From: 3, To: 5}}, shifted.MoveSections)
	assert.Equal(t, []IndexPath{{Section: 4, Item: 3}}, shifted.ReloadItems)
	assert.Equal(t, IndexSet{5}, shifted.ReloadFooters)

	// Shifting back restores the original values.
	assert.Equal(t, local, shifted.Shift(-3))
}

func TestUpdates_MergeIsAssociative(t *testing.T) {
	a := Updates{InsertSections: NewIndexSet(0, 2), MoveItems: []PathMove{{From: IndexPath{1, 1}, To: IndexPath{1, 0}}}}
	b := Updates{DeleteSections: NewIndexSet(3), InsertSections: NewIndexSet(2, 5)}
	c := Lift(SectionUpdates{Reloads: NewIndexSet(0), ReloadFooter: true}, 1)

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))

	assert.Equal(t, left, right)
	assert.Equal(t, IndexSet{0, 2, 5}, left.InsertSections)
	assert.Equal(t, IndexSet{1}, left.ReloadFooters)
}

func TestUpdates_MergeWithEmptyIsIdentity(t *testing.T) {
	u := Updates{ReloadSections: NewIndexSet(4, 1)}

	assert.Equal(t, IndexSet{1, 4}, u.Merge(Updates{}).ReloadSections)
	assert.Equal(t, u.Merge(Updates{}), Updates{}.Merge(u))
	assert.True(t, Updates{}.Merge(Updates{}).IsEmpty())
}

func TestUpdates_Validate(t *testing.T) {
	require.NoError(t, Updates{InsertSections: NewIndexSet(0)}.Validate())

	err := Updates{DeleteItems: []IndexPath{{Section: 0, Item: -1}}}.Validate()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = Updates{MoveSections: []Move{{From: -2, To: 0}}}.Validate()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdates_String(t *testing.T) {
	assert.Equal(t, "no changes", Updates{}.String())

	u := Updates{
		InsertSections: NewIndexSet(2),
		DeleteSections: NewIndexSet(1),
		MoveSections:   []Move{{From: 0, To: 3}},
	}
	assert.Equal(t, "+s[2] -s[1] >s[0->3]", u.String())
}

func TestSectionUpdates_IsEmpty(t *testing.T) {
	assert.True(t, SectionUpdates{}.IsEmpty())
	assert.False(t, SectionUpdates{ReloadHeader: true}.IsEmpty())
	assert.False(t, SectionUpdates{}.Merge(SectionUpdates{Inserts: NewIndexSet(1)}).IsEmpty())
}
