package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionkit/core/section"
)

func TestModel_SetGroupReusesSections(t *testing.T) {
	m := NewModel([]GroupSpec{{ID: "g", Sections: []SectionSpec{{ID: "a", Items: 1, Header: true}}}})
	a, ok := m.Section("a")
	require.True(t, ok)

	g, created := m.SetGroup("g", []SectionSpec{{ID: "a", Items: 3}, {ID: "b", Items: 1, Footer: true}})
	assert.False(t, created)
	assert.Same(t, a, g.Sections()[0])
	assert.Equal(t, 3, a.Items)
	assert.Nil(t, a.HeaderType)

	_, created = m.SetGroup("h", nil)
	assert.True(t, created)
	assert.Len(t, m.Groups(), 2)
	assert.Equal(t, []section.ID{"a", "b"}, section.IDs(m.Snapshot().Sections()))
}

func TestModel_Specs(t *testing.T) {
	specs := []GroupSpec{
		{ID: "g", Sections: []SectionSpec{{ID: "a", Items: 1, Header: true, Height: 60}}},
		{ID: "h", Sections: []SectionSpec{}},
	}
	m := NewModel(specs)

	assert.True(t, m.SetItems("a", 7))
	assert.False(t, m.SetItems("missing", 1))

	specs[0].Sections[0].Items = 7
	assert.Equal(t, specs, m.Specs())
}

func TestValidateSections(t *testing.T) {
	assert.NoError(t, ValidateSections([]SectionSpec{{ID: "a"}}))
	assert.ErrorIs(t, ValidateSections([]SectionSpec{{Items: 1}}), ErrInvalidScenario)
	assert.ErrorIs(t, ValidateSections([]SectionSpec{{ID: "a", Items: -1}}), ErrInvalidScenario)
}
