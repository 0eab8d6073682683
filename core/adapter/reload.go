package adapter

import (
	"go.uber.org/zap"

	"sectionkit/core/batch"
	"sectionkit/core/diff"
	"sectionkit/core/section"
	"sectionkit/core/snapshot"
	"sectionkit/core/update"
)

// ReloadData re-reads the data source and renders the result. Animated reloads diff
// the sections by identity and reload every surviving section.
func (a *Adapter) ReloadData(animated bool, completion section.Completion) {
	a.performReload(animated, nil, completion)
}

// ReloadAnimated re-reads the data source and renders the difference, without
// reloading the sections listed in ignore.
func (a *Adapter) ReloadAnimated(ignore []section.ID, completion section.Completion) {
	a.performReload(true, ignore, completion)
}

func (a *Adapter) performReload(animated bool, ignore []section.ID, completion section.Completion) {
	a.guard()

	groups, ok := section.Resolve(a.source, a.flat)
	if !ok {
		a.log.Warn("reload without data source")
		if completion != nil {
			completion(false)
		}
		return
	}

	next := snapshot.New(groups)
	d := update.Full()
	if animated {
		d = a.diffed(a.latest().Sections(), next, ignore, true)
	}
	a.addUpdate(d.WithSnapshot(next), completion)
}

// diffed returns the batch turning old into the sections of next, or a full reload
// when the identities do not allow diffing.
func (a *Adapter) diffed(old []section.Section, next *snapshot.Snapshot, ignore []section.ID, animated bool) update.Descriptor {
	u, err := diff.Sections(old, next.Sections(), ignore...)
	if err != nil {
		a.log.Warn("identity diff unavailable, falling back to full reload", zap.Error(err))
		return update.Full()
	}
	return update.Batch(u, animated)
}

// ReloadGroup re-reads the sections of g and renders the difference. Only sections
// of g are reloaded, minus the ones listed in ignore. Non animated reloads keep the
// same scope and only disable animation. Unknown groups are ignored and completion
// is not called.
func (a *Adapter) ReloadGroup(g section.Group, ignore []section.ID, animated bool, completion section.Completion) {
	a.guard()

	base := a.latest()
	next, ok := base.Update(g)
	if !ok {
		a.log.Debug("ignoring reload of unknown group", zap.String("group", string(g.ID())))
		return
	}

	old := base.Sections()
	skip := append(diff.IgnoreOutside(old, next.GroupSections(g.ID())), ignore...)
	d := a.diffed(old, next, skip, animated)
	a.addUpdate(d.WithSnapshot(next), completion)
}

// PerformGroupUpdates applies operations expressed relative to the first section of g
// and commits the current sections of g. Unknown groups are ignored and completion is
// not called. Empty operations complete with true without rendering.
func (a *Adapter) PerformGroupUpdates(g section.Group, updates batch.Updates, completion section.Completion) {
	a.guard()

	base := a.latest()
	r, ok := base.GroupRange(g.ID())
	if !ok {
		a.log.Debug("ignoring updates of unknown group", zap.String("group", string(g.ID())))
		return
	}
	if updates.IsEmpty() {
		a.skip(completion)
		return
	}
	if err := updates.Validate(); err != nil {
		panic(err)
	}

	next, _ := base.Update(g)
	d := update.Batch(updates, true).Shift(r.Lower).WithSnapshot(next)
	a.addUpdate(d, completion)
}

// Reload refreshes one section. Non animated reloads re-render everything.
func (a *Adapter) Reload(s section.Section, animated bool, completion section.Completion) {
	a.guard()

	index, ok := a.sectionIndex(s, "reload")
	if !ok {
		return
	}

	d := update.Full()
	if animated {
		d = update.Batch(batch.Updates{ReloadSections: batch.NewIndexSet(index)}, true)
	}
	a.addUpdate(d, completion)
}

// PerformUpdates applies item operations local to s.
func (a *Adapter) PerformUpdates(updates batch.SectionUpdates, s section.Section, completion section.Completion) {
	a.guard()

	index, ok := a.sectionIndex(s, "perform_updates")
	if !ok {
		return
	}
	if updates.IsEmpty() {
		a.skip(completion)
		return
	}

	lifted := batch.Lift(updates, index)
	if err := lifted.Validate(); err != nil {
		panic(err)
	}
	a.addUpdate(update.Batch(lifted, true), completion)
}

// EndRefreshing stops the pull to refresh indicator of the widget.
func (a *Adapter) EndRefreshing() {
	if a.view != nil {
		a.view.EndRefreshing()
	}
}
