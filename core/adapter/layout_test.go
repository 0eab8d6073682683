package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sectionkit/core/batch"
	"sectionkit/core/headless"
	"sectionkit/core/section"
)

func render(t *testing.T, opts headless.Options, sections ...section.Section) (*Adapter, *headless.View) {
	t.Helper()
	v := headless.New(opts)
	a := New(v, v, defaultConfig(), zap.NewNop())
	a.SetDataSource(section.Sections(sections))
	a.ReloadData(false, nil)
	require.False(t, a.InFlight())
	return a, v
}

func TestAdapter_ItemSize(t *testing.T) {
	tests := []struct {
		name string
		make func() *section.Static
		want section.Size
	}{
		{
			name: "AutomaticHeightRoundsUp",
			make: func() *section.Static { return section.NewStatic("a", 1) },
			want: section.Size{Width: 375, Height: 44},
		},
		{
			name: "InsetsNarrowContentWidth",
			make: func() *section.Static {
				s := section.NewStatic("a", 1)
				s.Inset = section.Insets{Left: 10, Right: 15}
				return s
			},
			want: section.Size{Width: 350, Height: 44},
		},
		{
			name: "FixedHeight",
			make: func() *section.Static {
				s := section.NewStatic("a", 1)
				s.ItemHeight = 60
				return s
			},
			want: section.Size{Width: 375, Height: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.make()
			a, _ := render(t, headless.Options{}, s)

			assert.Equal(t, tt.want, a.ItemSize(batch.IndexPath{Section: 0, Item: 0}))
			rect, ok := a.RectForCell(0, s)
			require.True(t, ok)
			assert.Equal(t, tt.want, rect.Size)
		})
	}
}

// widthSection sizes its items horizontally.
type widthSection struct {
	*section.Static
}

func (w widthSection) SizeForCell(int, float64) section.SizeCalculation {
	return section.AutomaticWidth(30)
}

func TestAdapter_ItemSizeAutomaticWidth(t *testing.T) {
	s := widthSection{section.NewStatic("wide", 1)}
	a, _ := render(t, headless.Options{}, s)

	// "wide#0" is six characters of 8 points, plus the half point of the fit.
	assert.Equal(t, section.Size{Width: 49, Height: 30}, a.ItemSize(batch.IndexPath{}))
}

func TestAdapter_ReferenceSize(t *testing.T) {
	s := section.NewStatic("a", 1).WithHeader(section.Code("Title"))
	a, _ := render(t, headless.Options{}, s)

	assert.Equal(t, section.Size{Width: 375, Height: 44}, a.ReferenceSize(section.Header, 0))
	assert.Equal(t, section.Size{}, a.ReferenceSize(section.Footer, 0))
}

func TestAdapter_RegistrationAndCalculationCaches(t *testing.T) {
	a, v := render(t, headless.Options{},
		section.NewStatic("a", 2).WithHeader(section.Code("Title")),
		section.NewStatic("b", 3).WithHeader(section.Code("Title")),
		section.NewStatic("c", 1).WithFooter(section.Nib("Footer")),
	)

	cells, headers, footers := a.Registered()
	assert.Equal(t, []int{1, 1, 1}, []int{cells, headers, footers})
	assert.True(t, v.Registered("Cell"))

	calcCells, calcViews := a.CalculationViews()
	assert.Equal(t, 1, calcCells)
	assert.Equal(t, 2, calcViews)

	v.InvalidateLayout(nil)
	v.LayoutIfNeeded()
	calcCells, calcViews = a.CalculationViews()
	assert.Equal(t, []int{1, 2}, []int{calcCells, calcViews})
}

func TestAdapter_CellConfiguration(t *testing.T) {
	s := section.NewStatic("a", 2).WithHeader(section.Code("Title"))
	a, v := render(t, headless.Options{}, s)

	cell, ok := a.CellForItem(1, s)
	require.True(t, ok)
	assert.Equal(t, "a#1", cell.(*headless.Cell).Label)

	index, ok := a.IndexForCell(cell, s)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, 2, s.Displayed())
	assert.Contains(t, v.Dump(), "0 header a/header (0,0 375x44)")

	generated, ok := a.GenerateCell(s, 0)
	require.True(t, ok)
	assert.Equal(t, "a#0", generated.(*headless.Cell).Label)
	_, ok = a.GenerateCell(s, 5)
	assert.False(t, ok)
}

func TestAdapter_DidSelectItem(t *testing.T) {
	var selected []int
	s := section.NewStatic("a", 3)
	s.OnSelect = func(index int) { selected = append(selected, index) }
	a, _ := render(t, headless.Options{}, section.NewStatic("first", 1), s)

	a.DidSelectItem(batch.IndexPath{Section: 1, Item: 2})

	assert.Equal(t, []int{2}, selected)
}

func TestAdapter_RectForSection(t *testing.T) {
	withHeader := section.NewStatic("a", 3).WithHeader(section.Code("Title"))
	inset := section.NewStatic("b", 1)
	inset.Inset = section.Insets{Top: 4, Left: 8, Bottom: 6, Right: 8}
	empty := section.NewStatic("c", 0)
	a, _ := render(t, headless.Options{}, withHeader, inset, empty)

	rect, ok := a.RectForSection(withHeader)
	require.True(t, ok)
	assert.Equal(t, section.NewRect(0, 0, 375, 176), rect)

	rect, ok = a.RectForSection(inset)
	require.True(t, ok)
	assert.Equal(t, section.NewRect(0, 176, 375, 54), rect)

	_, ok = a.RectForSection(empty)
	assert.False(t, ok)

	point, ok := a.StartPoint(withHeader)
	assert.True(t, ok)
	assert.Equal(t, section.Point{}, point)
}

func TestAdapter_ScrollToSupplementary(t *testing.T) {
	tests := []struct {
		name     string
		position section.ScrollPosition
		want     float64
	}{
		{"Top", section.ScrollTop, 220},
		{"Bottom", section.ScrollBottom, 164},
		{"Centered", section.ScrollCenteredVertically, 192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := section.NewStatic("b", 5).WithHeader(section.Code("Title"))
			a, v := render(t, headless.Options{Height: 100}, section.NewStatic("a", 5), target)

			a.ScrollToSupplementary(target, section.Header, 0, tt.position, true)

			assert.Equal(t, tt.want, v.Bounds().MinY())
			scrolls := v.Scrolls()
			require.Len(t, scrolls, 1)
			assert.True(t, scrolls[0].Animated)
			assert.Equal(t, 100.0, scrolls[0].Rect.Size.Height)
		})
	}
}

func TestAdapter_ScrollToItemAndUpdateLayout(t *testing.T) {
	s := section.NewStatic("b", 2)
	a, v := render(t, headless.Options{}, section.NewStatic("a", 1), s)

	a.ScrollToItem(s, 1, section.ScrollTop, false)
	scrolls := v.Scrolls()
	require.Len(t, scrolls, 1)
	assert.Equal(t, batch.IndexPath{Section: 1, Item: 1}, *scrolls[0].Path)
	assert.Equal(t, section.ScrollTop, scrolls[0].Position)

	a.UpdateLayout(s, []int{0, 1})
	assert.Equal(t, []batch.IndexPath{{Section: 1, Item: 0}, {Section: 1, Item: 1}}, v.Invalidated())
}

func TestAdapter_EndRefreshing(t *testing.T) {
	a, v := render(t, headless.Options{}, section.NewStatic("a", 1))
	v.SetRefreshing()

	a.EndRefreshing()

	assert.False(t, v.Refreshing())
}

// customLayout provides its own compositional group.
type customLayout struct {
	*section.Static
}

func (c customLayout) CompositionalGroup(section.LayoutEnvironment) (section.LayoutGroup, bool) {
	size := section.LayoutSize{Width: section.FractionalWidth(0.5), Height: section.Absolute(80)}
	return section.LayoutGroup{Size: size, Items: []section.LayoutItem{{Size: size}, {Size: size}}}, true
}

func (c customLayout) OrthogonalScrolling() section.OrthogonalScrolling {
	return section.OrthogonalContinuous
}

func TestAdapter_LayoutSections(t *testing.T) {
	fixed := section.NewStatic("fixed", 2)
	fixed.ItemHeight = 50
	fixed.LineSpacing = 8
	automatic := section.NewStatic("auto", 1).WithHeader(section.Code("Title")).WithFooter(section.Code("Note"))
	custom := customLayout{section.NewStatic("custom", 4)}
	a, _ := render(t, headless.Options{}, fixed, automatic, custom)

	env := section.LayoutEnvironment{ContentSize: section.Size{Width: 320, Height: 480}}
	layouts := a.LayoutSections(env)
	require.Len(t, layouts, 3)

	assert.Equal(t, section.LayoutSize{Width: section.Absolute(320), Height: section.Absolute(50)}, layouts[0].Group.Size)
	assert.Equal(t, 8.0, layouts[0].InterGroupSpacing)
	assert.Empty(t, layouts[0].Boundaries)

	assert.Equal(t, section.LayoutSize{Width: section.FractionalWidth(1), Height: section.Estimated(1)}, layouts[1].Group.Size)
	require.Len(t, layouts[1].Boundaries, 2)
	assert.Equal(t, section.Header, layouts[1].Boundaries[0].Kind)
	assert.Equal(t, section.AlignTop, layouts[1].Boundaries[0].Alignment)
	assert.Equal(t, section.AlignBottom, layouts[1].Boundaries[1].Alignment)

	assert.Len(t, layouts[2].Group.Items, 2)
	assert.Equal(t, section.OrthogonalContinuous, layouts[2].Orthogonal)
}
