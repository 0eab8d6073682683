package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sectionkit/core/adapter"
)

func newRunner(observers ...adapter.Observer) *Runner {
	return NewRunner(adapter.Config{StrictThread: true, CalculationWidth: 375}, zap.NewNop(), observers...)
}

func run(t *testing.T, yaml string) *Report {
	t.Helper()
	sc, err := Parse([]byte(yaml))
	require.NoError(t, err)
	report, err := newRunner().Run(sc)
	require.NoError(t, err)
	return report
}

func TestRun_GroupReloadDuringRender(t *testing.T) {
	report := run(t, s0)

	assert.Equal(t, []string{"initial=true", "reload=true", "group=true"}, report.Completions)

	require.Len(t, report.Renders, 3)
	assert.Equal(t, adapter.ModeFull, report.Renders[0].Mode)
	assert.Equal(t, adapter.ModeBatch, report.Renders[1].Mode)
	assert.Zero(t, report.Renders[1].Completions)
	assert.Equal(t, adapter.ModeFull, report.Renders[2].Mode)
	assert.Equal(t, 2, report.Renders[2].Completions)
	for _, r := range report.Renders {
		assert.True(t, r.Finished)
	}
	assert.Len(t, report.Widget, 3)

	require.Len(t, report.Steps, 5)
	assert.Equal(t, "updating", report.Steps[1].State)
	assert.True(t, report.Steps[3].Pending)
	assert.Equal(t, StepResult{Action: ActionFlush, Label: "flush#4", State: "idle", Renders: 3}, report.Steps[4])
	assert.Zero(t, report.Flushed)

	assert.Contains(t, report.Before, "1.1 b#1")
	assert.Contains(t, report.After, "1.3 f#3")
	assert.Contains(t, report.Diff, "--- before")
	assert.Contains(t, report.Diff, "+++ after")
	assert.Contains(t, report.Diff, "-1.0 b#0")
	assert.Contains(t, report.Diff, "+1.0 f#0")
}

func TestRun_ItemUpdates(t *testing.T) {
	report := run(t, `
name: items
groups:
  - id: g
    sections: [{id: a, items: 1}, {id: b, items: 2}]
steps:
  - action: reload
  - action: set_items
    section: b
    items: 3
  - action: perform_updates
    label: insert
    section: b
    item_updates: {inserts: [2]}
  - action: perform_updates
    label: nothing
    section: b
`)

	assert.Equal(t, []string{"reload#0=true", "insert=true", "nothing=true"}, report.Completions)
	require.Len(t, report.Renders, 2)
	assert.Equal(t, "+i[1.2]", report.Renders[1].Operations)
	assert.True(t, report.Renders[1].Animated)
	assert.Contains(t, report.Diff, "+1.2 b#2")
}

func TestRun_InconsistentBatchReportsUnfinished(t *testing.T) {
	report := run(t, `
groups:
  - id: g
    sections: [{id: a, items: 1}]
steps:
  - action: reload
  - action: set_items
    section: a
    items: 2
  - action: reload_section
    label: section
    section: a
    animated: true
  - action: perform_updates
    label: wrong
    section: a
    item_updates: {deletes: [0]}
`)

	// The section reload is consistent. Deleting an item while the model grew is not.
	assert.Equal(t, []string{"reload#0=true", "section=true", "wrong=false"}, report.Completions)
	require.Len(t, report.Widget, 3)
	assert.Contains(t, report.Widget[2], "error=")
}

func TestRun_HiddenViewFallsBackToFullReload(t *testing.T) {
	report := run(t, `
view: {hidden: true}
groups:
  - id: g
    sections: [{id: a, items: 1}]
steps:
  - action: reload
  - action: reload_section
    section: a
    animated: true
  - action: show
  - action: reload_section
    section: a
    animated: true
`)

	require.Len(t, report.Renders, 3)
	assert.Equal(t, adapter.ModeFull, report.Renders[1].Mode)
	assert.False(t, report.Renders[1].Animated)
	assert.Equal(t, adapter.ModeBatch, report.Renders[2].Mode)
}

func TestRun_FailNextAndDeferredLeftovers(t *testing.T) {
	report := run(t, `
view: {deferred: true}
groups:
  - id: g
    sections: [{id: a, items: 1}, {id: b, items: 1}]
steps:
  - action: reload
  - action: fail_next
  - action: reload
    label: animated
    animated: true
    ignore: [b]
`)

	assert.Equal(t, 1, report.Flushed)
	assert.Equal(t, []string{"reload#0=true", "animated=false"}, report.Completions)
	require.Len(t, report.Renders, 2)
	assert.Equal(t, "~s[0]", report.Renders[1].Operations)
	assert.False(t, report.Renders[1].Finished)
	assert.Empty(t, report.Diff)
}

func TestRun_StaleGroupIsIgnored(t *testing.T) {
	report := run(t, `
groups:
  - id: g
    sections: [{id: a, items: 1}]
steps:
  - action: reload_group
    label: early
    group: g
  - action: reload
    label: first
`)

	// Nothing is rendered yet, so the group is unknown to the adapter.
	assert.Equal(t, []string{"first=true"}, report.Completions)
	assert.Len(t, report.Renders, 1)
}

func TestRun_ObserversSeeEveryRender(t *testing.T) {
	var seen []adapter.Transaction
	sc, err := Parse([]byte(s0))
	require.NoError(t, err)

	_, err = newRunner(adapter.ObserverFunc(func(tx adapter.Transaction, _ bool) {
		seen = append(seen, tx)
	})).Run(sc)
	require.NoError(t, err)

	assert.Len(t, seen, 3)
}

func TestRun_WithoutSteps(t *testing.T) {
	report := run(t, "groups: [{id: g, sections: [{id: a, items: 1}]}]")

	assert.Empty(t, report.Renders)
	assert.Empty(t, report.Diff)
	assert.Equal(t, report.Before, report.After)
}

func TestLayoutDiff(t *testing.T) {
	diff, err := LayoutDiff("a\nb\n", "a\nc\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")

	same, err := LayoutDiff("a\n", "a\n")
	require.NoError(t, err)
	assert.Empty(t, same)
}
