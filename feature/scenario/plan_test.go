package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionkit/core/batch"
	"sectionkit/core/diff"
	"sectionkit/core/section"
)

func TestNewPlan(t *testing.T) {
	sc, err := Parse([]byte(`
name: plan
groups:
  - id: g
    sections: [{id: a, items: 1}, {id: b, items: 2}, {id: c, items: 3}]
steps:
  - action: reload
  - action: set_group
    group: g
    sections: [{id: a, items: 1}, {id: c, items: 3}, {id: d, items: 4}]
  - action: set_items
    section: a
    items: 5
`))
	require.NoError(t, err)

	plan, err := NewPlan(sc)
	require.NoError(t, err)

	assert.Equal(t, []section.ID{"a", "b", "c"}, plan.Before)
	assert.Equal(t, []section.ID{"a", "c", "d"}, plan.After)
	assert.Equal(t, []int{5, 3, 4}, plan.Counts)
	assert.Equal(t, batch.IndexSet{1}, plan.Updates.DeleteSections)
	assert.Equal(t, batch.IndexSet{2}, plan.Updates.InsertSections)
	assert.Equal(t, batch.IndexSet{0, 2}, plan.Updates.ReloadSections)
	assert.Empty(t, plan.Updates.MoveSections)
}

func TestNewPlan_DuplicateIdentities(t *testing.T) {
	sc, err := Parse([]byte(`
groups:
  - id: g
    sections: [{id: a, items: 1}]
  - id: h
    sections: [{id: b, items: 1}]
steps:
  - action: set_group
    group: h
    sections: [{id: a, items: 1}]
`))
	require.NoError(t, err)

	_, err = NewPlan(sc)
	assert.ErrorIs(t, err, diff.ErrDuplicateIdentity)
}
