package adapter

import "sectionkit/core/section"

// LayoutSection describes the compositional layout of the section at index. A custom
// description provided by the section wins over the derived one.
func (a *Adapter) LayoutSection(index int, env section.LayoutEnvironment) section.LayoutSection {
	s := a.data.At(index)
	if custom, ok := s.CompositionalSection(env); ok {
		return custom
	}

	width := env.ContentSize.Width
	insets := s.Insets()
	out := section.LayoutSection{
		Group:             layoutGroup(s, env),
		InterGroupSpacing: s.MinimumLineSpacing(),
		ContentInsets:     insets,
		Orthogonal:        s.OrthogonalScrolling(),
	}

	for _, kind := range section.SupplementaryKinds {
		if _, ok := s.SupplementaryType(kind); !ok {
			continue
		}
		alignment := section.AlignTop
		if kind == section.Footer {
			alignment = section.AlignBottom
		}
		out.Boundaries = append(out.Boundaries, section.BoundaryItem{
			Kind:      kind,
			Size:      layoutSize(s.SizeForSupplementary(kind, width)),
			Alignment: alignment,
		})
	}
	return out
}

// LayoutSections describes every committed section.
func (a *Adapter) LayoutSections(env section.LayoutEnvironment) []section.LayoutSection {
	out := make([]section.LayoutSection, a.data.Len())
	for i := range out {
		out[i] = a.LayoutSection(i, env)
	}
	return out
}

// layoutGroup derives one item per group, sized after the first item of the section.
func layoutGroup(s section.Section, env section.LayoutEnvironment) section.LayoutGroup {
	if custom, ok := s.CompositionalGroup(env); ok {
		return custom
	}

	size := section.LayoutSize{Width: section.FractionalWidth(1), Height: section.Estimated(1)}
	if s.NumberOfItems() > 0 {
		size = layoutSize(s.SizeForCell(0, env.ContentSize.Width))
	}
	return section.LayoutGroup{
		Size:            size,
		Items:           []section.LayoutItem{{Size: size}},
		FlexibleSpacing: s.MinimumInteritemSpacing(),
	}
}

func layoutSize(calc section.SizeCalculation) section.LayoutSize {
	switch calc.Mode {
	case section.SizeAutomaticHeight:
		width := section.FractionalWidth(1)
		if calc.Fixed > 0 {
			width = section.Absolute(calc.Fixed)
		}
		return section.LayoutSize{Width: width, Height: section.Estimated(1)}
	case section.SizeAutomaticWidth:
		return section.LayoutSize{Width: section.Estimated(1), Height: section.Absolute(calc.Fixed)}
	default:
		return section.LayoutSize{Width: section.Absolute(calc.Size.Width), Height: section.Absolute(calc.Size.Height)}
	}
}
