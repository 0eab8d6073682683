package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionkit/core/batch"
)

const s0 = `
name: s0
view:
  deferred: true
groups:
  - id: g1
    sections:
      - {id: a, items: 1, header: true}
      - {id: b, items: 2}
      - {id: c, items: 3}
  - id: g2
    sections:
      - {id: d, items: 1}
      - {id: e, items: 2, footer: true}
steps:
  - action: reload
    label: initial
  - action: reload
    label: reload
    animated: true
  - action: set_group
    group: g1
    sections:
      - {id: a, items: 1, header: true}
      - {id: f, items: 4}
  - action: reload_group
    label: group
    group: g1
    animated: true
  - action: flush
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(s0))
	require.NoError(t, err)

	assert.Equal(t, "s0", sc.Name)
	assert.True(t, sc.View.Deferred)
	require.Len(t, sc.Groups, 2)
	assert.Equal(t, SectionSpec{ID: "a", Items: 1, Header: true}, sc.Groups[0].Sections[0])
	require.Len(t, sc.Steps, 5)
	assert.Equal(t, ActionSetGroup, sc.Steps[2].Action)
	assert.Len(t, sc.Steps[2].Sections, 2)
	assert.Equal(t, "reload_group#3", Step{Action: ActionReloadGroup}.name(3))
	assert.Equal(t, "group", sc.Steps[3].name(3))
}

func TestParse_Updates(t *testing.T) {
	sc, err := Parse([]byte(`
groups:
  - id: g
    sections: [{id: a, items: 2}]
steps:
  - action: perform_group_updates
    group: g
    updates:
      insert_sections: [1]
      reload_items: [{section: 0, item: 1}]
  - action: perform_updates
    section: a
    item_updates:
      inserts: [2]
      reload_header: true
`))
	require.NoError(t, err)

	assert.Equal(t, batch.IndexSet{1}, sc.Steps[0].Updates.InsertSections)
	assert.Equal(t, []batch.IndexPath{{Section: 0, Item: 1}}, sc.Steps[0].Updates.ReloadItems)
	assert.Equal(t, batch.IndexSet{2}, sc.Steps[1].ItemUpdates.Inserts)
	assert.True(t, sc.Steps[1].ItemUpdates.ReloadHeader)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Malformed", "groups: ["},
		{"GroupWithoutID", "groups: [{sections: []}]"},
		{"DuplicateGroup", "groups: [{id: g}, {id: g}]"},
		{"DuplicateSection", "groups: [{id: g, sections: [{id: a}]}, {id: h, sections: [{id: a}]}]"},
		{"NegativeItems", "groups: [{id: g, sections: [{id: a, items: -1}]}]"},
		{"UnknownAction", "steps: [{action: explode}]"},
		{"UnknownGroup", "steps: [{action: reload_group, group: missing}]"},
		{"UnknownSection", "groups: [{id: g}]\nsteps: [{action: reload_section, section: missing}]"},
		{"NegativeSetItems", "groups: [{id: g, sections: [{id: a}]}]\nsteps: [{action: set_items, section: a, items: -2}]"},
		{"NegativeGroupUpdate", "groups: [{id: g}]\nsteps: [{action: perform_group_updates, group: g, updates: {delete_sections: [-1]}}]"},
		{"NegativeItemUpdate", "groups: [{id: g, sections: [{id: a}]}]\nsteps: [{action: perform_updates, section: a, item_updates: {deletes: [-1]}}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestParse_SetGroupDeclaresSections(t *testing.T) {
	_, err := Parse([]byte(`
groups: [{id: g, sections: [{id: a, items: 1}]}]
steps:
  - {action: set_group, group: g, sections: [{id: z, items: 1}]}
  - {action: reload_section, section: z, animated: true}
`))
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.ErrorContains(t, err, "failed to read scenario")
}
