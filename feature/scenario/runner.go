package scenario

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"sectionkit/core/adapter"
	"sectionkit/core/headless"
	"sectionkit/core/section"
)

// Render is one render as driven by the adapter.
type Render struct {
	Mode        string `json:"mode"`
	Animated    bool   `json:"animated"`
	Operations  string `json:"operations"`
	Sections    int    `json:"sections"`
	Completions int    `json:"completions"`
	Finished    bool   `json:"finished"`
}

// StepResult is the adapter state after one step.
type StepResult struct {
	Action  string `json:"action"`
	Label   string `json:"label"`
	State   string `json:"state"`
	Renders int    `json:"renders"`
	Pending bool   `json:"pending"`
}

// Report is the outcome of a replayed scenario.
type Report struct {
	Name    string       `json:"name"`
	Steps   []StepResult `json:"steps"`
	Renders []Render     `json:"renders"`
	// Widget lists the renders as applied by the headless widget.
	Widget []string `json:"widget"`
	// Completions lists "label=finished" in the order completions fired.
	Completions []string `json:"completions"`
	// Flushed is the number of deferred completions released after the last step.
	Flushed int `json:"flushed"`
	// Before is the layout after the first step and After the final layout.
	Before string `json:"before"`
	After  string `json:"after"`
	Diff   string `json:"diff"`
}

func (r *Report) completion(label string) section.Completion {
	return func(finished bool) {
		r.Completions = append(r.Completions, fmt.Sprintf("%s=%t", label, finished))
	}
}

// Runner replays scenarios.
type Runner struct {
	cfg       adapter.Config
	logger    *zap.Logger
	observers []adapter.Observer
}

// NewRunner creates a runner building adapters with cfg. observers receive the renders
// of every replayed scenario.
func NewRunner(cfg adapter.Config, logger *zap.Logger, observers ...adapter.Observer) *Runner {
	return &Runner{cfg: cfg, logger: logger, observers: observers}
}

// Run replays sc on the calling goroutine, which owns the adapter for the duration of
// the call.
func (r *Runner) Run(sc *Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	m := NewModel(sc.Groups)
	view := headless.New(headless.Options{
		Width:    sc.View.Width,
		Height:   sc.View.Height,
		Hidden:   sc.View.Hidden,
		Deferred: sc.View.Deferred,
	})
	a := adapter.New(view, view, r.cfg, r.logger.With(zap.String("scenario", sc.Name)))
	a.SetDataSource(m.Groups())

	report := &Report{
		Name:        sc.Name,
		Steps:       []StepResult{},
		Renders:     []Render{},
		Widget:      []string{},
		Completions: []string{},
	}
	a.AddObserver(adapter.ObserverFunc(func(tx adapter.Transaction, finished bool) {
		report.Renders = append(report.Renders, Render{
			Mode:        tx.Mode,
			Animated:    tx.Animated,
			Operations:  tx.Updates.String(),
			Sections:    tx.Sections,
			Completions: tx.Completions,
			Finished:    finished,
		})
	}))
	for _, o := range r.observers {
		a.AddObserver(o)
	}

	for i, step := range sc.Steps {
		label := step.name(i)
		r.step(a, view, m, step, report.completion(label))
		if i == 0 {
			report.Before = view.Dump()
		}
		report.Steps = append(report.Steps, StepResult{
			Action:  step.Action,
			Label:   label,
			State:   a.State(),
			Renders: a.Renders(),
			Pending: a.HasPending(),
		})
	}

	report.Flushed = view.Flush()
	report.After = view.Dump()
	if len(sc.Steps) == 0 {
		report.Before = report.After
	}
	for _, rd := range view.Renders() {
		report.Widget = append(report.Widget, rd.String())
	}

	diff, err := LayoutDiff(report.Before, report.After)
	if err != nil {
		return nil, err
	}
	report.Diff = diff

	r.logger.Info("Scenario replayed",
		zap.String("name", sc.Name),
		zap.Int("steps", len(sc.Steps)),
		zap.Int("renders", len(report.Renders)),
		zap.Int("completions", len(report.Completions)),
	)
	return report, nil
}

func (r *Runner) step(a *adapter.Adapter, view *headless.View, m *Model, step Step, done section.Completion) {
	if m.Apply(step) {
		return
	}
	switch step.Action {
	case ActionReload:
		if step.Animated && len(step.Ignore) > 0 {
			a.ReloadAnimated(step.ignored(), done)
			return
		}
		a.ReloadData(step.Animated, done)
	case ActionReloadGroup:
		g, _ := m.Group(step.Group)
		a.ReloadGroup(g, step.ignored(), step.Animated, done)
	case ActionPerformGroupUpdates:
		g, _ := m.Group(step.Group)
		a.PerformGroupUpdates(g, step.Updates, done)
	case ActionReloadSection:
		s, _ := m.Section(step.Section)
		a.Reload(s, step.Animated, done)
	case ActionPerformUpdates:
		s, _ := m.Section(step.Section)
		a.PerformUpdates(step.ItemUpdates, s, done)
	case ActionFlush:
		view.Flush()
	case ActionFailNext:
		view.FailNext()
	case ActionHide:
		view.SetVisible(false)
	case ActionShow:
		view.SetVisible(true)
	}
}

// LayoutDiff returns the unified diff between two layout dumps, empty when they match.
func LayoutDiff(before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff layouts: %w", err)
	}
	return diff, nil
}
