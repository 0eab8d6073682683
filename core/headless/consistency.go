package headless

import (
	"errors"
	"fmt"

	"sectionkit/core/batch"
)

// ErrInconsistentUpdate is reported when a batch does not turn the rendered model into
// the model announced by the delegate.
var ErrInconsistentUpdate = errors.New("inconsistent batch update")

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInconsistentUpdate)
}

// check validates u against the rendered item counts before and the counts announced
// after, following the rules of a collection view batch: deletes, reloads and move
// sources address the old model, inserts and move targets the new one.
func check(before, after []int, u batch.Updates) error {
	if err := u.Validate(); err != nil {
		return inconsistent("%v", err)
	}

	oldCount, newCount := len(before), len(after)
	deleted := make(map[int]bool)
	reloaded := make(map[int]bool)
	moveFrom := make(map[int]int)
	inserted := make(map[int]bool)
	moveTo := make(map[int]int)

	for _, i := range u.DeleteSections {
		if i >= oldCount {
			return inconsistent("delete of section %d, %d rendered", i, oldCount)
		}
		deleted[i] = true
	}
	for _, i := range u.ReloadSections {
		if i >= oldCount {
			return inconsistent("reload of section %d, %d rendered", i, oldCount)
		}
		if deleted[i] {
			return inconsistent("section %d deleted and reloaded", i)
		}
		reloaded[i] = true
	}
	for _, i := range u.InsertSections {
		if i >= newCount {
			return inconsistent("insert of section %d, %d announced", i, newCount)
		}
		inserted[i] = true
	}
	for _, m := range u.MoveSections {
		if m.From >= oldCount || m.To >= newCount {
			return inconsistent("move of section %s out of range", m)
		}
		if deleted[m.From] || reloaded[m.From] {
			return inconsistent("section %d moved and deleted or reloaded", m.From)
		}
		if _, dup := moveFrom[m.From]; dup {
			return inconsistent("section %d moved twice", m.From)
		}
		if inserted[m.To] {
			return inconsistent("section %d inserted and moved into", m.To)
		}
		if _, dup := moveTo[m.To]; dup {
			return inconsistent("two sections moved to %d", m.To)
		}
		moveFrom[m.From] = m.To
		moveTo[m.To] = m.From
	}

	if expected := oldCount - len(deleted) + len(inserted); expected != newCount {
		return inconsistent("%d sections after update, expected %d (%d - %d + %d)",
			newCount, expected, oldCount, len(deleted), len(inserted))
	}

	// Map every old section to its new position.
	oldToNew := make(map[int]int, oldCount)
	var survivors, slots []int
	for i := 0; i < oldCount; i++ {
		if to, ok := moveFrom[i]; ok {
			oldToNew[i] = to
		} else if !deleted[i] {
			survivors = append(survivors, i)
		}
	}
	for i := 0; i < newCount; i++ {
		if _, ok := moveTo[i]; !ok && !inserted[i] {
			slots = append(slots, i)
		}
	}
	for k, i := range survivors {
		oldToNew[i] = slots[k]
	}

	delta := make(map[int]int)
	for _, p := range u.DeleteItems {
		if p.Section >= oldCount || p.Item >= before[p.Section] {
			return inconsistent("delete of item %s out of range", p)
		}
		if deleted[p.Section] {
			continue
		}
		delta[oldToNew[p.Section]]--
	}
	for _, p := range u.ReloadItems {
		if p.Section >= oldCount || p.Item >= before[p.Section] {
			return inconsistent("reload of item %s out of range", p)
		}
	}
	for _, p := range u.InsertItems {
		if p.Section >= newCount || p.Item >= after[p.Section] {
			return inconsistent("insert of item %s out of range", p)
		}
		if inserted[p.Section] {
			continue
		}
		delta[p.Section]++
	}
	for _, m := range u.MoveItems {
		if m.From.Section >= oldCount || m.From.Item >= before[m.From.Section] {
			return inconsistent("move of item %s out of range", m)
		}
		if m.To.Section >= newCount || m.To.Item >= after[m.To.Section] {
			return inconsistent("move of item %s out of range", m)
		}
		if deleted[m.From.Section] || inserted[m.To.Section] {
			return inconsistent("move of item %s across a deleted or inserted section", m)
		}
		delta[oldToNew[m.From.Section]]--
		delta[m.To.Section]++
	}
	for _, i := range u.ReloadHeaders.Union(u.ReloadFooters) {
		if i >= oldCount {
			return inconsistent("reload of supplementary view of section %d out of range", i)
		}
	}

	for old, next := range oldToNew {
		if reloaded[old] {
			continue
		}
		if want := before[old] + delta[next]; after[next] != want {
			return inconsistent("section %d has %d items after update, expected %d", next, after[next], want)
		}
	}
	return nil
}
