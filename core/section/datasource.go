package section

// DataSource provides a flat list of sections.
type DataSource interface {
	Sections() []Section
}

// GroupDataSource provides sections organized in groups.
type GroupDataSource interface {
	Groups() []Group
}

// Resolve returns the groups of a data source. The group form wins when source
// implements both. A flat list is wrapped in one implicit group identified by
// FlatGroupID, reused across calls through wrapper.
func Resolve(source any, wrapper *SectionGroup) ([]Group, bool) {
	if gs, ok := source.(GroupDataSource); ok {
		return gs.Groups(), true
	}
	if ds, ok := source.(DataSource); ok {
		if wrapper == nil {
			wrapper = NewGroup(FlatGroupID)
		}
		wrapper.SetSections(ds.Sections()...)
		return []Group{wrapper}, true
	}
	return nil, false
}

// Groups adapts a static group list to a GroupDataSource.
type Groups []Group

func (g Groups) Groups() []Group {
	return g
}

// Sections adapts a static section list to a DataSource.
type Sections []Section

func (s Sections) Sections() []Section {
	return s
}
