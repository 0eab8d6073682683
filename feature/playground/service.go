package playground

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sectionkit/core/adapter"
	"sectionkit/core/headless"
	"sectionkit/core/mainloop"
	"sectionkit/core/section"
	"sectionkit/core/snapshot"
	"sectionkit/feature/archive"
	"sectionkit/feature/scenario"
)

// ErrInvalidLayout is returned for group updates that cannot be applied.
var ErrInvalidLayout = errors.New("invalid layout")

// historySize bounds the recorded completions.
const historySize = 100

var _ archive.Source = (*Service)(nil)

// DefaultLayout is the layout served before any change.
func DefaultLayout() []scenario.GroupSpec {
	return []scenario.GroupSpec{
		{ID: "feed", Sections: []scenario.SectionSpec{
			{ID: "hero", Items: 1, Header: true},
			{ID: "list", Items: 5},
		}},
		{ID: "footer", Sections: []scenario.SectionSpec{
			{ID: "links", Items: 3, Footer: true},
		}},
	}
}

// Layout describes the live layout.
type Layout struct {
	Groups  []scenario.GroupSpec `json:"groups"`
	Counts  []int                `json:"counts"`
	Dump    string               `json:"dump"`
	State   string               `json:"state"`
	Renders int                  `json:"renders"`
	// Pending is the number of rendered frames waiting for a flush.
	Pending int `json:"pending"`
	// Completions lists the most recent "label=finished" results, oldest first.
	Completions []string `json:"completions"`
}

// Service owns the live adapter. Its fields are only touched on the loop goroutine.
type Service struct {
	loop   *mainloop.Loop
	logger *zap.Logger

	model       *scenario.Model
	view        *headless.View
	adapter     *adapter.Adapter
	completions []string
}

// NewService creates the adapter and its view on loop and renders seed.
func NewService(ctx context.Context, loop *mainloop.Loop, cfg adapter.Config, opts headless.Options, seed []scenario.GroupSpec, logger *zap.Logger, observers ...adapter.Observer) (*Service, error) {
	s := &Service{
		loop:        loop,
		logger:      logger,
		model:       scenario.NewModel(seed),
		completions: []string{},
	}
	err := loop.Do(ctx, func() {
		s.view = headless.New(opts)
		s.adapter = adapter.New(s.view, s.view, cfg, logger.Named("playground"))
		for _, o := range observers {
			s.adapter.AddObserver(o)
		}
		s.adapter.SetDataSource(s.model.Groups())
		s.adapter.ReloadData(false, s.completion("initial"))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start playground: %w", err)
	}
	return s, nil
}

func (s *Service) completion(label string) func(bool) {
	return func(finished bool) {
		s.completions = append(s.completions, fmt.Sprintf("%s=%t", label, finished))
		if len(s.completions) > historySize {
			s.completions = s.completions[len(s.completions)-historySize:]
		}
		s.logger.Debug("Playground render completed", zap.String("label", label), zap.Bool("finished", finished))
	}
}

func (s *Service) layout() *Layout {
	return &Layout{
		Groups:      s.model.Specs(),
		Counts:      s.view.Counts(),
		Dump:        s.view.Dump(),
		State:       s.adapter.State(),
		Renders:     s.adapter.Renders(),
		Pending:     s.view.Pending(),
		Completions: append([]string(nil), s.completions...),
	}
}

// read runs fn on the loop and returns the layout it leaves.
func (s *Service) read(ctx context.Context, fn func()) (*Layout, error) {
	var out *Layout
	err := s.loop.Do(ctx, func() {
		if fn != nil {
			fn()
		}
		out = s.layout()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Layout returns the live layout.
func (s *Service) Layout(ctx context.Context) (*Layout, error) {
	return s.read(ctx, nil)
}

// SetGroup replaces the sections of the group id and asks the adapter to render the
// change. Unknown groups are appended and trigger a reload of the whole data source.
func (s *Service) SetGroup(ctx context.Context, id string, sections []scenario.SectionSpec, animated bool) (*Layout, error) {
	if id == "" {
		return nil, fmt.Errorf("group without id: %w", ErrInvalidLayout)
	}
	if err := scenario.ValidateSections(sections); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	return s.read(ctx, func() {
		g, created := s.model.SetGroup(id, sections)
		done := s.completion("group " + id)
		if created {
			s.adapter.ReloadData(animated, done)
			return
		}
		s.adapter.ReloadGroup(g, nil, animated, done)
	})
}

// Reload asks the adapter to reload the whole data source.
func (s *Service) Reload(ctx context.Context, animated bool) (*Layout, error) {
	return s.read(ctx, func() {
		s.adapter.ReloadData(animated, s.completion("reload"))
	})
}

// Restore replaces the live layout with an archived manifest.
func (s *Service) Restore(ctx context.Context, m *archive.Manifest, animated bool) (*Layout, error) {
	specs := make([]scenario.GroupSpec, 0, len(m.Groups))
	for _, g := range m.Groups {
		gs := scenario.GroupSpec{ID: g.ID}
		for _, sm := range g.Sections {
			gs.Sections = append(gs.Sections, scenario.SectionSpec{ID: sm.ID, Items: sm.Items, Header: sm.Header, Footer: sm.Footer})
		}
		specs = append(specs, gs)
	}

	return s.read(ctx, func() {
		s.model = scenario.NewModel(specs)
		s.adapter.SetDataSource(s.model.Groups())
		s.adapter.ReloadData(animated, s.completion("restore "+m.Name))
	})
}

// Flush releases every frame waiting for completion and returns how many were released.
func (s *Service) Flush(ctx context.Context) (int, error) {
	var n int
	err := s.loop.Do(ctx, func() {
		n = s.view.Flush()
	})
	return n, err
}

// Snapshot returns a detached copy of the snapshot committed by the adapter, safe to
// read off the loop.
func (s *Service) Snapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	var snap *snapshot.Snapshot
	err := s.loop.Do(ctx, func() {
		built := archive.NewManifest("live", s.adapter.Snapshot()).Build()
		groups := make([]section.Group, len(built))
		for i, g := range built {
			groups[i] = g
		}
		snap = snapshot.New(groups)
	})
	return snap, err
}
