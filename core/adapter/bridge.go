package adapter

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sectionkit/core/batch"
	"sectionkit/core/update"
)

const (
	ModeBatch = "batch"
	ModeFull  = "full"
)

// Transaction describes one render driven by the adapter.
type Transaction struct {
	TraceID  uuid.UUID
	Mode     string
	Animated bool
	Updates  batch.Updates
	// Sections is the number of sections of the committed snapshot.
	Sections int
	// Completions is the number of completions fired by the render. Renders followed by
	// pending work fire none.
	Completions int
	StartedAt   time.Time
	FinishedAt  time.Time
	Finished    bool
}

// Operations returns the number of structural operations of the render.
func (t Transaction) Operations() int {
	return t.Updates.Count()
}

// Duration returns how long the render took.
func (t Transaction) Duration() time.Duration {
	return t.FinishedAt.Sub(t.StartedAt)
}

// Observer is notified of every render.
type Observer interface {
	RenderStarted(tx Transaction)
	RenderFinished(tx Transaction, finished bool)
}

// ObserverFunc adapts a function receiving finished renders to an Observer.
type ObserverFunc func(tx Transaction, finished bool)

func (f ObserverFunc) RenderStarted(Transaction) {}

func (f ObserverFunc) RenderFinished(tx Transaction, finished bool) {
	f(tx, finished)
}

// render drives the widget for d. The full reload path is taken when requested and
// whenever the widget is not visible.
func (a *Adapter) render(d update.Descriptor) {
	full := d.FullReload
	if !full && a.view != nil && !a.view.IsVisible() && !a.cfg.AnimateInvisible {
		a.log.Debug("widget not visible, falling back to full reload")
		full = true
	}

	tx := a.openTransaction(d, full)

	if full || a.view == nil {
		if a.view != nil {
			a.view.ReloadData()
			a.view.InvalidateLayout(nil)
			a.view.LayoutIfNeeded()
		}
		a.finish(tx, true)
		return
	}

	done := false
	a.view.PerformBatchUpdates(d.Updates, d.Animated, func(finished bool) {
		if done {
			a.log.Warn("widget completed a render twice", zap.String("trace_id", tx.TraceID.String()))
			return
		}
		done = true
		a.guard()
		a.finish(tx, finished)
	})
}

func (a *Adapter) openTransaction(d update.Descriptor, full bool) *Transaction {
	a.renders++
	tx := &Transaction{
		TraceID:   uuid.New(),
		Mode:      ModeBatch,
		Animated:  d.Animated && !full,
		Sections:  a.data.Len(),
		StartedAt: time.Now(),
	}
	if full {
		tx.Mode = ModeFull
	} else {
		tx.Updates = d.Updates
	}
	a.current = tx

	a.log.Debug("render started",
		zap.String("trace_id", tx.TraceID.String()),
		zap.String("mode", tx.Mode),
		zap.Bool("animated", tx.Animated),
		zap.Stringer("updates", tx.Updates),
	)
	for _, o := range a.observers {
		o.RenderStarted(*tx)
	}
	return tx
}

func (a *Adapter) closeTransaction(tx *Transaction, finished bool, completions int) {
	tx.FinishedAt = time.Now()
	tx.Finished = finished
	tx.Completions = completions
	if a.current == tx {
		a.current = nil
	}

	fields := []zap.Field{
		zap.String("trace_id", tx.TraceID.String()),
		zap.Bool("finished", finished),
		zap.Int("completions", completions),
		zap.Duration("duration", tx.Duration()),
	}
	if finished {
		a.log.Debug("render finished", fields...)
	} else {
		a.log.Warn("render interrupted", fields...)
	}
	for _, o := range a.observers {
		o.RenderFinished(*tx, finished)
	}
}
