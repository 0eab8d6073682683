package playground

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sectionkit/core/adapter"
	"sectionkit/core/headless"
	"sectionkit/core/mainloop"
	"sectionkit/core/section"
	"sectionkit/feature/archive"
	"sectionkit/feature/scenario"
)

func setupService(t *testing.T, opts headless.Options, observers ...adapter.Observer) (*Service, *mainloop.Loop) {
	t.Helper()
	loop := mainloop.New(zap.NewNop())
	t.Cleanup(loop.Close)

	cfg := adapter.Config{StrictThread: true, CalculationWidth: 375}
	svc, err := NewService(context.Background(), loop, cfg, opts, DefaultLayout(), zap.NewNop(), observers...)
	require.NoError(t, err)
	return svc, loop
}

func TestService_InitialLayout(t *testing.T) {
	svc, _ := setupService(t, headless.Options{})

	layout, err := svc.Layout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultLayout(), layout.Groups)
	assert.Equal(t, []int{1, 5, 3}, layout.Counts)
	assert.Equal(t, "idle", layout.State)
	assert.Equal(t, 1, layout.Renders)
	assert.Equal(t, []string{"initial=true"}, layout.Completions)
	assert.Contains(t, layout.Dump, "0 header hero/header")
}

func TestService_RequestsDuringRenderAreQueued(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, headless.Options{Deferred: true})

	layout, err := svc.SetGroup(ctx, "feed", []scenario.SectionSpec{
		{ID: "hero", Items: 1, Header: true},
		{ID: "list", Items: 2},
		{ID: "promo", Items: 1},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "updating", layout.State)
	assert.Equal(t, 1, layout.Pending)
	assert.Equal(t, []int{1, 2, 1, 3}, layout.Counts)

	layout, err = svc.Reload(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, layout.Renders)
	assert.Equal(t, []string{"initial=true"}, layout.Completions)

	n, err := svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	layout, err = svc.Layout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, layout.Renders)
	assert.Equal(t, "idle", layout.State)
	assert.Equal(t, []string{"initial=true", "group feed=true", "reload=true"}, layout.Completions)
}

func TestService_SetGroupAppendsUnknownGroup(t *testing.T) {
	var renders []adapter.Transaction
	svc, _ := setupService(t, headless.Options{}, adapter.ObserverFunc(func(tx adapter.Transaction, _ bool) {
		renders = append(renders, tx)
	}))

	layout, err := svc.SetGroup(context.Background(), "extra", []scenario.SectionSpec{{ID: "x", Items: 2}}, false)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 3, 2}, layout.Counts)
	assert.Len(t, layout.Groups, 3)
	require.Len(t, renders, 2)
	assert.Equal(t, adapter.ModeFull, renders[1].Mode)
}

func TestService_SetGroupValidation(t *testing.T) {
	svc, _ := setupService(t, headless.Options{})

	_, err := svc.SetGroup(context.Background(), "", nil, true)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = svc.SetGroup(context.Background(), "feed", []scenario.SectionSpec{{ID: "a", Items: -1}}, true)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestService_SnapshotIsDetached(t *testing.T) {
	svc, _ := setupService(t, headless.Options{})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []section.ID{"hero", "list", "links"}, section.IDs(snap.Sections()))
	assert.Equal(t, []int{1, 5, 3}, snap.Counts())
	assert.Nil(t, snap.At(0).Context())
	_, hasHeader := snap.At(0).SupplementaryType(section.Header)
	assert.True(t, hasHeader)
}

func TestService_Restore(t *testing.T) {
	svc, _ := setupService(t, headless.Options{})
	m := &archive.Manifest{
		Name: "saved",
		Groups: []archive.GroupManifest{
			{ID: "g", Sections: []archive.SectionManifest{{ID: "a", Items: 2, Header: true}}},
		},
	}

	layout, err := svc.Restore(context.Background(), m, false)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, layout.Counts)
	assert.Equal(t, []scenario.GroupSpec{{ID: "g", Sections: []scenario.SectionSpec{{ID: "a", Items: 2, Header: true}}}}, layout.Groups)
	assert.Equal(t, "restore saved=true", layout.Completions[len(layout.Completions)-1])
}

func TestService_ClosedLoop(t *testing.T) {
	svc, loop := setupService(t, headless.Options{})
	loop.Close()

	_, err := svc.Layout(context.Background())
	assert.ErrorIs(t, err, mainloop.ErrClosed)
}

func TestService_CompletionHistoryIsBounded(t *testing.T) {
	svc, _ := setupService(t, headless.Options{})

	for i := 0; i < historySize+10; i++ {
		_, err := svc.Reload(context.Background(), false)
		require.NoError(t, err)
	}

	layout, err := svc.Layout(context.Background())
	require.NoError(t, err)
	assert.Len(t, layout.Completions, historySize)
	assert.Equal(t, "reload=true", layout.Completions[0])
}
