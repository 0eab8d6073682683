package adapter

import (
	"math"

	"sectionkit/core/batch"
	"sectionkit/core/section"
)

// contentWidth is the widget width minus the horizontal insets of s.
func (a *Adapter) contentWidth(s section.Section) float64 {
	width := a.cfg.CalculationWidth
	if a.view != nil {
		if w := a.view.Bounds().Size.Width; w > 0 {
			width = w
		}
	}
	insets := s.Insets()
	return width - insets.Left - insets.Right
}

// ItemSize measures the item at path according to its size policy.
func (a *Adapter) ItemSize(path batch.IndexPath) section.Size {
	s := a.data.At(path.Section)
	width := a.contentWidth(s)
	calc := s.SizeForCell(path.Item, width)

	return a.measure(calc, width, func() section.ReusableView {
		cell := a.calculationCell(s.CellType(path.Item))
		if cell == nil {
			return nil
		}
		cell.PrepareForReuse()
		s.ConfigureCell(cell, path.Item)
		return cell
	})
}

// ReferenceSize measures the header or footer of the section at index. Sections without
// a view of that kind answer zero.
func (a *Adapter) ReferenceSize(kind section.SupplementaryKind, index int) section.Size {
	s := a.data.At(index)
	t, ok := s.SupplementaryType(kind)
	if !ok {
		return section.Size{}
	}
	width := a.contentWidth(s)
	calc := s.SizeForSupplementary(kind, width)

	return a.measure(calc, width, func() section.ReusableView {
		view := a.calculationView(t)
		if view == nil {
			return nil
		}
		view.PrepareForReuse()
		s.ConfigureSupplementary(view, kind, 0)
		return view
	})
}

func (a *Adapter) SectionInsets(index int) section.Insets {
	return a.data.At(index).Insets()
}

func (a *Adapter) LineSpacing(index int) float64 {
	return a.data.At(index).MinimumLineSpacing()
}

func (a *Adapter) InteritemSpacing(index int) float64 {
	return a.data.At(index).MinimumInteritemSpacing()
}

// measure resolves a size policy. Automatic policies fit a configured calculation view
// and round the fitted dimension up.
func (a *Adapter) measure(calc section.SizeCalculation, contentWidth float64, prepare func() section.ReusableView) section.Size {
	switch calc.Mode {
	case section.SizeAutomaticHeight:
		view := prepare()
		if view == nil {
			return section.Size{Width: contentWidth}
		}
		width := contentWidth
		if calc.Fixed > 0 {
			width = calc.Fixed
		}
		fitted := a.factory.Fit(view, section.Size{Width: width}, true)
		return section.Size{Width: contentWidth, Height: math.Ceil(fitted.Height)}
	case section.SizeAutomaticWidth:
		view := prepare()
		if view == nil {
			return section.Size{Height: calc.Fixed}
		}
		fitted := a.factory.Fit(view, section.Size{Height: calc.Fixed}, false)
		return section.Size{Width: math.Ceil(fitted.Width), Height: calc.Fixed}
	default:
		return calc.Size
	}
}

func (a *Adapter) calculationCell(t section.ViewType) section.Cell {
	if a.factory == nil {
		return nil
	}
	id := t.ReuseID()
	if cell, ok := a.calcCells[id]; ok {
		return cell
	}
	cell := a.factory.NewCell(t)
	a.calcCells[id] = cell
	return cell
}

func (a *Adapter) calculationView(t section.ViewType) section.ReusableView {
	if a.factory == nil {
		return nil
	}
	id := t.ReuseID()
	if view, ok := a.calcViews[id]; ok {
		return view
	}
	view := a.factory.NewView(t)
	a.calcViews[id] = view
	return view
}

// CalculationViews returns the number of cached calculation cells and views.
func (a *Adapter) CalculationViews() (cells, views int) {
	return len(a.calcCells), len(a.calcViews)
}
