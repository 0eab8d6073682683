package section

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sectionkit/core/batch"
)

// fakeDisplay answers rect queries from fixed maps.
type fakeDisplay struct {
	cells map[int]Rect
	supps map[SupplementaryKind]Rect
}

func (f *fakeDisplay) CellForItem(int, Section) (Cell, bool) { return nil, false }

func (f *fakeDisplay) IndexForCell(Cell, Section) (int, bool) { return 0, false }

func (f *fakeDisplay) Reload(Section, bool, Completion) {}

func (f *fakeDisplay) UpdateLayout(Section, []int) {}

func (f *fakeDisplay) ScrollToItem(Section, int, ScrollPosition, bool) {}

func (f *fakeDisplay) PerformUpdates(batch.SectionUpdates, Section, Completion) {}

func (f *fakeDisplay) ScrollToSupplementary(Section, SupplementaryKind, int, ScrollPosition, bool) {}

func (f *fakeDisplay) ReloadGroup(Group, []ID, bool, Completion) {}

func (f *fakeDisplay) PerformGroupUpdates(Group, batch.Updates, Completion) {}

func (f *fakeDisplay) RectForCell(index int, _ Section) (Rect, bool) {
	r, ok := f.cells[index]
	return r, ok
}

func (f *fakeDisplay) RectForSupplementary(kind SupplementaryKind, _ int, _ Section) (Rect, bool) {
	r, ok := f.supps[kind]
	return r, ok
}

func TestNextID(t *testing.T) {
	a := NextID("s")
	b := NextID("s")

	assert.NotEqual(t, a, b)
	assert.Contains(t, string(a), "s-")
	assert.Contains(t, string(NextID("")), "id-")
}

func TestBase_LazyIdentity(t *testing.T) {
	s := NewStatic("", 1)

	first := s.ID()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, s.ID())

	assert.Equal(t, ID("fixed"), NewStatic("fixed", 0).ID())
}

func TestBase_Defaults(t *testing.T) {
	var b Base

	assert.Equal(t, Insets{}, b.Insets())
	assert.Zero(t, b.MinimumLineSpacing())
	assert.Equal(t, OrthogonalNone, b.OrthogonalScrolling())
	assert.Equal(t, SizeAutomaticHeight, b.SizeForSupplementary(Header, 100).Mode)

	_, ok := b.SupplementaryType(Footer)
	assert.False(t, ok)
	_, ok = b.CompositionalSection(LayoutEnvironment{})
	assert.False(t, ok)
}

func TestLink_AttachDetach(t *testing.T) {
	display := &fakeDisplay{}
	link := NewLink(display)
	s := NewStatic("a", 2)

	assert.Nil(t, s.Context())

	s.Attach(link)
	assert.True(t, s.AttachedTo(link))
	assert.False(t, s.AttachedTo(NewLink(display)))
	assert.Same(t, display, s.Context())

	s.Detach()
	assert.False(t, s.AttachedTo(link))
	assert.Nil(t, s.Context())
	runtime.KeepAlive(link)
}

func attachTemporary(s Section) {
	s.Attach(NewLink(&fakeDisplay{}))
}

func TestLink_IsWeak(t *testing.T) {
	s := NewStatic("weak", 1)
	attachTemporary(s)

	for i := 0; i < 5 && s.Context() != nil; i++ {
		runtime.GC()
	}

	assert.Nil(t, s.Context())
}

func TestResolve(t *testing.T) {
	a, b := NewStatic("a", 1), NewStatic("b", 1)

	t.Run("Flat", func(t *testing.T) {
		wrapper := NewGroup(FlatGroupID)
		groups, ok := Resolve(Sections{a, b}, wrapper)

		require.True(t, ok)
		require.Len(t, groups, 1)
		assert.Equal(t, FlatGroupID, groups[0].ID())
		assert.Equal(t, []ID{"a", "b"}, IDs(groups[0].Sections()))
		assert.Same(t, wrapper, groups[0])
	})

	t.Run("Groups", func(t *testing.T) {
		g := NewGroup("g", b)
		groups, ok := Resolve(Groups{g}, nil)

		require.True(t, ok)
		assert.Equal(t, ID("g"), groups[0].ID())
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, ok := Resolve(42, nil)
		assert.False(t, ok)
	})
}

func TestRectForSection(t *testing.T) {
	s := NewStatic("a", 3)
	s.Inset = Insets{Top: 5, Left: 10, Bottom: 5, Right: 10}

	tests := []struct {
		name    string
		display *fakeDisplay
		want    Rect
		found   bool
	}{
		{
			name: "CellsOnly",
			display: &fakeDisplay{cells: map[int]Rect{
				0: NewRect(10, 5, 100, 20),
				2: NewRect(10, 45, 100, 20),
			}},
			want:  NewRect(0, 0, 120, 70),
			found: true,
		},
		{
			name: "HeaderAndFooter",
			display: &fakeDisplay{
				cells: map[int]Rect{0: NewRect(10, 35, 100, 20), 2: NewRect(10, 75, 100, 20)},
				supps: map[SupplementaryKind]Rect{
					Header: NewRect(10, 5, 100, 30),
					Footer: NewRect(10, 95, 100, 10),
				},
			},
			want:  NewRect(0, 0, 120, 110),
			found: true,
		},
		{
			name:    "ZeroSizedHeaderFallsBackToCell",
			display: &fakeDisplay{cells: map[int]Rect{0: NewRect(10, 5, 100, 20), 2: NewRect(10, 45, 100, 20)}, supps: map[SupplementaryKind]Rect{Header: NewRect(0, 0, 0, 0)}},
			want:    NewRect(0, 0, 120, 70),
			found:   true,
		},
		{
			name:    "NothingVisible",
			display: &fakeDisplay{},
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RectForSection(tt.display, s)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatic_Supplementary(t *testing.T) {
	s := NewStatic("a", 1).WithHeader(Code("Title"))

	typ, ok := s.SupplementaryType(Header)
	assert.True(t, ok)
	assert.Equal(t, "Title", typ.ReuseID())

	_, ok = s.SupplementaryType(Footer)
	assert.False(t, ok)

	kind, ok := ParseSupplementaryKind("footer")
	assert.True(t, ok)
	assert.Equal(t, Footer, kind)
}
