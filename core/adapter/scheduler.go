package adapter

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"sectionkit/core/section"
	"sectionkit/core/snapshot"
	"sectionkit/core/update"
)

const (
	stateIdle     = "idle"
	stateUpdating = "updating"

	eventBegin  = "begin"
	eventFinish = "finish"
)

func newMachine(log *zap.Logger) *fsm.FSM {
	return fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventBegin, Src: []string{stateIdle}, Dst: stateUpdating},
			{Name: eventFinish, Src: []string{stateUpdating}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Debug("scheduler transition", zap.String("from", e.Src), zap.String("to", e.Dst))
			},
		},
	)
}

// addUpdate schedules d. While a render is in flight d is folded into the pending
// descriptor as a full reload, since its indexes target a snapshot that is being
// replaced. completion joins the queue fired by the render that commits d.
func (a *Adapter) addUpdate(d update.Descriptor, completion section.Completion) {
	if completion != nil {
		a.completions = append(a.completions, completion)
	}

	if a.InFlight() {
		folded := d.AsFullReload()
		if a.pending != nil {
			folded = a.pending.Merge(folded)
		}
		a.pending = &folded
		a.log.Debug("update queued behind in-flight render", zap.Int("completions", len(a.completions)))
		return
	}

	if a.pending != nil {
		d = a.pending.Merge(d)
	}
	a.pending = &d
	a.drain()
}

// skip answers a request without structural effect. Its completion still waits for
// the in-flight render, if any, to preserve ordering.
func (a *Adapter) skip(completion section.Completion) {
	if completion == nil {
		return
	}
	if a.InFlight() || a.pending != nil {
		a.completions = append(a.completions, completion)
		return
	}
	completion(true)
}

// drain starts pending renders until one stays in flight. Renders completing
// synchronously and requests issued from completions are picked up by the same loop.
func (a *Adapter) drain() {
	if a.draining {
		return
	}
	a.draining = true
	defer func() { a.draining = false }()

	for a.pending != nil && !a.InFlight() {
		d := *a.pending
		a.pending = nil
		a.begin(d)
	}
}

func (a *Adapter) begin(d update.Descriptor) {
	if err := a.machine.Event(context.Background(), eventBegin); err != nil {
		a.log.Error("scheduler refused to begin render", zap.Error(err))
		return
	}
	if d.Snapshot != nil {
		a.commit(d.Snapshot)
	}
	a.render(d)
}

// finish closes the render of tx. Without pending work every queued completion fires
// with finished. Otherwise the completions are carried to the next render.
func (a *Adapter) finish(tx *Transaction, finished bool) {
	if err := a.machine.Event(context.Background(), eventFinish); err != nil {
		a.log.Error("scheduler refused to finish render", zap.Error(err))
		return
	}

	var done []section.Completion
	if a.pending == nil {
		done = a.completions
		a.completions = nil
	}
	a.closeTransaction(tx, finished, len(done))

	for _, c := range done {
		c(finished)
	}
	a.drain()
}

// commit makes next the current snapshot. Sections and groups that left are detached
// before the swap and the newly present ones are attached after it.
func (a *Adapter) commit(next *snapshot.Snapshot) {
	prev := a.data
	for _, s := range prev.Sections() {
		if !next.HasSection(s.ID()) {
			s.Detach()
		}
	}
	for _, g := range prev.Groups() {
		if !next.HasGroup(g.ID()) {
			g.Detach()
		}
	}

	a.data = next

	for _, g := range next.Groups() {
		if !g.AttachedTo(a.link) {
			g.Attach(a.link)
		}
	}
	for _, s := range next.Sections() {
		if !s.AttachedTo(a.link) {
			s.Attach(a.link)
		}
	}
}
