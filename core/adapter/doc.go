// Package adapter binds sections to a collection view and schedules structural updates.
//
// The Adapter owns the committed snapshot and a two state scheduler (idle, updating)
// built on looplab/fsm. Every reload request becomes an update descriptor:
//
//   - ReloadData and ReloadAnimated re-read the data source and diff all sections
//   - ReloadGroup re-reads one group and reloads only its sections
//   - PerformGroupUpdates and PerformUpdates apply caller provided operations
//   - Reload refreshes a single section
//
// When the scheduler is idle the descriptor snapshot is committed right away, back
// references are updated and the render starts. Requests arriving while a render is in
// flight are merged into one pending descriptor, folded as a full reload, and started
// when the render finishes. At most one render is in flight; completions fire exactly
// once, in request order, and every completion folded into a render receives the same
// finished value.
//
// # Fallbacks
//
// The widget is fully reloaded instead of batch updated when the caller asks for no
// animation, when section identities are not unique, and when the widget is not
// visible (unless Config.AnimateInvisible is set).
//
// # Goroutines
//
// The adapter performs no locking. It records its creating goroutine and, with
// Config.StrictThread, panics with ErrWrongGoroutine when used elsewhere. Work from
// other goroutines is marshalled through mainloop.Loop.
//
// # Usage
//
//	a := adapter.New(view, factory, cfg.Adapter, log)
//	a.SetDataSource(section.Groups{feed, footer})
//	a.ReloadData(true, func(finished bool) {
//	    log.Info("rendered", zap.Bool("finished", finished))
//	})
package adapter
