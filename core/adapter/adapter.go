package adapter

import (
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/petermattis/goid"
	"go.uber.org/zap"

	"sectionkit/core/section"
	"sectionkit/core/snapshot"
	"sectionkit/core/update"
	"sectionkit/core/widget"
)

// ErrWrongGoroutine is the panic value raised when a strict adapter is used off its
// owning goroutine.
var ErrWrongGoroutine = errors.New("adapter used from a goroutine other than its owner")

var (
	_ section.GroupDisplayable = (*Adapter)(nil)
	_ widget.Delegate          = (*Adapter)(nil)
)

type (
	// CollectionView is the widget driven by the adapter.
	CollectionView = widget.CollectionView
	// ViewFactory builds and measures calculation views.
	ViewFactory = widget.ViewFactory
)

// Adapter binds the sections of a data source to a collection view and schedules the
// structural updates between them. It is not safe for concurrent use: every method
// must be called on the goroutine that created the adapter.
type Adapter struct {
	cfg     Config
	log     *zap.Logger
	view    CollectionView
	factory ViewFactory

	source any
	flat   *section.SectionGroup
	link   *section.Link
	data   *snapshot.Snapshot

	machine     *fsm.FSM
	pending     *update.Descriptor
	completions []section.Completion
	draining    bool
	renders     int
	current     *Transaction
	observers   []Observer

	registered registry
	calcCells  map[string]section.Cell
	calcViews  map[string]section.ReusableView
	owner      int64
}

// New creates an adapter rendering into view. view and factory may be nil; without a
// view every update completes immediately.
func New(view CollectionView, factory ViewFactory, cfg Config, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		cfg:        cfg,
		log:        log.Named("adapter"),
		factory:    factory,
		flat:       section.NewGroup(section.FlatGroupID),
		data:       snapshot.Empty(),
		registered: newRegistry(),
		calcCells:  make(map[string]section.Cell),
		calcViews:  make(map[string]section.ReusableView),
		owner:      goid.Get(),
	}
	a.link = section.NewLink(a)
	a.machine = newMachine(a.log)

	if view != nil {
		a.UpdateCollectionView(view)
	}
	return a
}

// SetDataSource sets the provider of sections. source implements
// section.GroupDataSource or section.DataSource; the group form wins.
func (a *Adapter) SetDataSource(source any) {
	a.guard()
	a.source = source
}

// UpdateCollectionView moves the adapter to another widget. The previous widget is
// unbound.
func (a *Adapter) UpdateCollectionView(view CollectionView) {
	a.guard()
	if a.view != nil {
		a.view.SetDelegate(nil)
	}
	a.view = view
	a.registered = newRegistry()
	if view != nil {
		view.SetDelegate(a)
	}
}

// AddObserver registers o to receive render transactions.
func (a *Adapter) AddObserver(o Observer) {
	a.observers = append(a.observers, o)
}

// Snapshot returns the committed snapshot.
func (a *Adapter) Snapshot() *snapshot.Snapshot {
	return a.data
}

// InFlight reports whether a render is running.
func (a *Adapter) InFlight() bool {
	return a.machine.Is(stateUpdating)
}

// HasPending reports whether an update waits for the in-flight render.
func (a *Adapter) HasPending() bool {
	return a.pending != nil
}

// Renders returns the number of renders started so far.
func (a *Adapter) Renders() int {
	return a.renders
}

// State returns the scheduler state name.
func (a *Adapter) State() string {
	return a.machine.Current()
}

func (a *Adapter) guard() {
	if !a.cfg.StrictThread {
		return
	}
	if id := goid.Get(); id != a.owner {
		panic(fmt.Errorf("goroutine %d, owner %d: %w", id, a.owner, ErrWrongGoroutine))
	}
}

// sectionIndex resolves a section to its committed position, logging stale requests.
// latest returns the snapshot the next render will commit: the queued one when a
// pending update carries a snapshot, the current one otherwise.
func (a *Adapter) latest() *snapshot.Snapshot {
	if a.pending != nil && a.pending.Snapshot != nil {
		return a.pending.Snapshot
	}
	return a.data
}

func (a *Adapter) sectionIndex(s section.Section, op string) (int, bool) {
	index, ok := a.latest().SectionIndex(s.ID())
	if !ok {
		a.log.Debug("ignoring request for unknown section",
			zap.String("op", op),
			zap.String("section", string(s.ID())),
		)
	}
	return index, ok
}
