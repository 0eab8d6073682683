package headless

import (
	"fmt"
	"slices"

	"sectionkit/core/batch"
	"sectionkit/core/section"
	"sectionkit/core/widget"
)

var (
	_ widget.CollectionView = (*View)(nil)
	_ widget.ViewFactory    = (*View)(nil)
)

// Options configures a headless view. Zero values select the defaults.
type Options struct {
	// Width and Height are the bounds of the view. Defaults to 375x667.
	Width  float64
	Height float64
	// Hidden starts the view outside of any visible surface.
	Hidden bool
	// Deferred holds batch completions until Flush, modelling multi-frame renders.
	Deferred bool
	// LineHeight is the fitted height of a measured view. Defaults to 44.
	LineHeight float64
	// CharWidth is the fitted width of one label character. Defaults to 8.
	CharWidth float64
}

// Render records one structural render applied to the view.
type Render struct {
	Full     bool
	Animated bool
	Updates  batch.Updates
	Finished bool
	Err      error
	// Counts are the item counts of every section after the render.
	Counts []int
}

// String describes the render for reports.
func (r Render) String() string {
	if r.Full {
		return fmt.Sprintf("reload counts=%v", r.Counts)
	}
	out := fmt.Sprintf("batch %s animated=%t finished=%t counts=%v", r.Updates, r.Animated, r.Finished, r.Counts)
	if r.Err != nil {
		out += " error=" + r.Err.Error()
	}
	return out
}

// Scroll records one scroll request.
type Scroll struct {
	Path     *batch.IndexPath
	Position section.ScrollPosition
	Rect     section.Rect
	Animated bool
}

// View is an in-memory collection view. It keeps its own model of rendered item
// counts, validates batches against the counts announced by its delegate and lays
// items out in a single column. It is not safe for concurrent use.
type View struct {
	opts     Options
	delegate widget.Delegate
	visible  bool

	counts   []int
	renders  []Render
	queue    []func()
	failNext bool

	cellTypes map[string]section.ViewType
	suppTypes map[section.SupplementaryKind]map[string]section.ViewType

	dirty       bool
	layouts     int
	invalidated []batch.IndexPath
	frames      map[batch.IndexPath]section.Rect
	suppFrames  map[section.SupplementaryKind]map[int]section.Rect
	cells       map[batch.IndexPath]*Cell
	supps       map[section.SupplementaryKind]map[int]*Cell
	height      float64

	offset     float64
	scrolls    []Scroll
	refreshing bool
}

// New creates a headless view.
func New(opts Options) *View {
	if opts.Width <= 0 {
		opts.Width = 375
	}
	if opts.Height <= 0 {
		opts.Height = 667
	}
	if opts.LineHeight <= 0 {
		opts.LineHeight = 44
	}
	if opts.CharWidth <= 0 {
		opts.CharWidth = 8
	}
	v := &View{
		opts:      opts,
		visible:   !opts.Hidden,
		cellTypes: make(map[string]section.ViewType),
		suppTypes: map[section.SupplementaryKind]map[string]section.ViewType{
			section.Header: {},
			section.Footer: {},
		},
	}
	v.resetLayout()
	return v
}

func (v *View) SetDelegate(d widget.Delegate) {
	v.delegate = d
	v.counts = nil
	v.resetLayout()
}

// SetVisible moves the view in or out of a visible surface.
func (v *View) SetVisible(visible bool) {
	v.visible = visible
}

func (v *View) IsVisible() bool {
	return v.visible
}

// SetRefreshing starts the pull to refresh indicator.
func (v *View) SetRefreshing() {
	v.refreshing = true
}

// Refreshing reports whether the pull to refresh indicator is running.
func (v *View) Refreshing() bool {
	return v.refreshing
}

func (v *View) EndRefreshing() {
	v.refreshing = false
}

// FailNext makes the next batch report finished=false, as when a competing layout pass
// interrupts it.
func (v *View) FailNext() {
	v.failNext = true
}

func (v *View) NumberOfSections() int {
	return len(v.counts)
}

func (v *View) NumberOfItems(section int) int {
	if section < 0 || section >= len(v.counts) {
		return 0
	}
	return v.counts[section]
}

// announced returns the item counts the delegate answers now.
func (v *View) announced() []int {
	if v.delegate == nil {
		return nil
	}
	counts := make([]int, v.delegate.SectionCount())
	for i := range counts {
		counts[i] = v.delegate.ItemCount(i)
	}
	return counts
}

func (v *View) PerformBatchUpdates(updates batch.Updates, animated bool, completion func(bool)) {
	after := v.announced()
	err := check(v.counts, after, updates)
	finished := err == nil && !v.failNext
	v.failNext = false

	// The rendered model follows the delegate even when the batch was rejected, the
	// way a widget resynchronizes by reloading.
	v.counts = after
	v.dirty = true
	v.LayoutIfNeeded()

	v.renders = append(v.renders, Render{
		Animated: animated,
		Updates:  updates,
		Finished: finished,
		Err:      err,
		Counts:   slices.Clone(after),
	})

	if completion == nil {
		return
	}
	if v.opts.Deferred {
		v.queue = append(v.queue, func() { completion(finished) })
		return
	}
	completion(finished)
}

func (v *View) ReloadData() {
	v.counts = v.announced()
	v.dirty = true
	v.renders = append(v.renders, Render{Full: true, Finished: true, Counts: slices.Clone(v.counts)})
}

func (v *View) InvalidateLayout(paths []batch.IndexPath) {
	v.invalidated = append(v.invalidated, paths...)
	v.dirty = true
}

// Invalidated returns the item paths invalidated so far.
func (v *View) Invalidated() []batch.IndexPath {
	return slices.Clone(v.invalidated)
}

// Flush completes every deferred batch in order and returns how many completed.
// Completions may queue new batches; those are flushed too.
func (v *View) Flush() int {
	n := 0
	for len(v.queue) > 0 {
		next := v.queue[0]
		v.queue = v.queue[1:]
		next()
		n++
	}
	return n
}

// Pending returns the number of batches waiting for Flush.
func (v *View) Pending() int {
	return len(v.queue)
}

// Renders returns every render applied so far.
func (v *View) Renders() []Render {
	return slices.Clone(v.renders)
}

// Counts returns the rendered item count of every section.
func (v *View) Counts() []int {
	return slices.Clone(v.counts)
}

func (v *View) RegisterCell(t section.ViewType) {
	v.cellTypes[t.ReuseID()] = t
}

func (v *View) RegisterSupplementary(t section.ViewType, kind section.SupplementaryKind) {
	v.suppTypes[kind][t.ReuseID()] = t
}

// Registered reports whether a reuse identifier was registered for cells.
func (v *View) Registered(reuseID string) bool {
	_, ok := v.cellTypes[reuseID]
	return ok
}

func (v *View) DequeueCell(reuseID string, path batch.IndexPath) section.Cell {
	t, ok := v.cellTypes[reuseID]
	if !ok {
		panic(fmt.Sprintf("cell %q dequeued before registration", reuseID))
	}
	if c, ok := v.cells[path]; ok && c.ReuseID() == reuseID {
		c.PrepareForReuse()
		return c
	}
	return newCell(t, path, "cell")
}

func (v *View) DequeueSupplementary(kind section.SupplementaryKind, reuseID string, path batch.IndexPath) section.ReusableView {
	t, ok := v.suppTypes[kind][reuseID]
	if !ok {
		panic(fmt.Sprintf("%s %q dequeued before registration", kind, reuseID))
	}
	return newCell(t, path, kind.String())
}

func (v *View) CellForItem(path batch.IndexPath) (section.Cell, bool) {
	c, ok := v.cells[path]
	if !ok {
		return nil, false
	}
	return c, true
}

func (v *View) IndexPathForCell(cell section.Cell) (batch.IndexPath, bool) {
	c, ok := cell.(*Cell)
	if !ok {
		return batch.IndexPath{}, false
	}
	if current, ok := v.cells[c.Path]; ok && current == c {
		return c.Path, true
	}
	return batch.IndexPath{}, false
}

func (v *View) FrameForItem(path batch.IndexPath) (section.Rect, bool) {
	r, ok := v.frames[path]
	return r, ok
}

func (v *View) FrameForSupplementary(kind section.SupplementaryKind, path batch.IndexPath) (section.Rect, bool) {
	r, ok := v.suppFrames[kind][path.Section]
	return r, ok
}

func (v *View) ScrollToItem(path batch.IndexPath, position section.ScrollPosition, animated bool) {
	r, ok := v.frames[path]
	if !ok {
		return
	}
	p := path
	v.scrolls = append(v.scrolls, Scroll{Path: &p, Position: position, Rect: r, Animated: animated})
	v.scrollTo(r)
}

func (v *View) ScrollRectToVisible(rect section.Rect, animated bool) {
	v.scrolls = append(v.scrolls, Scroll{Rect: rect, Animated: animated})
	v.scrollTo(rect)
}

func (v *View) scrollTo(r section.Rect) {
	visible := v.opts.Height
	switch {
	case r.MinY() < v.offset:
		v.offset = r.MinY()
	case r.MaxY() > v.offset+visible:
		v.offset = r.MaxY() - visible
	}
	v.offset = max(0, min(v.offset, max(0, v.height-visible)))
}

// Scrolls returns every scroll request received.
func (v *View) Scrolls() []Scroll {
	return slices.Clone(v.scrolls)
}

func (v *View) Bounds() section.Rect {
	return section.NewRect(0, v.offset, v.opts.Width, v.opts.Height)
}

func (v *View) AdjustedContentInset() section.Insets {
	return section.Insets{}
}

func (v *View) NewCell(t section.ViewType) section.Cell {
	return newCell(t, batch.IndexPath{}, "calculation")
}

func (v *View) NewView(t section.ViewType) section.ReusableView {
	return newCell(t, batch.IndexPath{}, "calculation")
}

// Fit measures a view: one line of LineHeight, and CharWidth per label character. The
// fitted dimension is half a point off so that callers have to round it.
func (v *View) Fit(view section.ReusableView, target section.Size, fixedWidth bool) section.Size {
	label := ""
	if c, ok := view.(*Cell); ok {
		label = c.Label
	}
	if fixedWidth {
		return section.Size{Width: target.Width, Height: v.opts.LineHeight - 0.5}
	}
	return section.Size{Width: float64(len(label))*v.opts.CharWidth + 0.5, Height: target.Height}
}
