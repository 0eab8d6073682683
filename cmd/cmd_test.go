package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
name: cli
view: {deferred: true}
groups:
  - id: g
    sections: [{id: a, items: 1}, {id: b, items: 2}]
steps:
  - action: reload
  - action: set_group
    group: g
    sections: [{id: a, items: 1}, {id: c, items: 1}]
  - action: reload_group
    group: g
    animated: true
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestDiffCommand(t *testing.T) {
	out := execute(t, "diff", writeScenario(t))

	assert.Contains(t, out, "before: [a b]")
	assert.Contains(t, out, "after:  [a c]")
	assert.Contains(t, out, "batch:  +s[1] -s[1] ~s[0]")
}

func TestSimulateCommand(t *testing.T) {
	out := execute(t, "simulate", writeScenario(t))

	assert.Contains(t, out, "scenario cli: 3 steps, 2 renders")
	assert.Contains(t, out, "reload#0=true")
	assert.Contains(t, out, "reload_group#2=true")
	assert.Contains(t, out, "flushed 1 deferred frames")
	assert.Contains(t, out, "+1.0 c#0")
}
