package services

import (
	"net/url"
	"slices"
	"strings"
)

// FilterOptions lists the distinct values seen per dimension, sorted.
type FilterOptions struct {
	Areas          []string `json:"areas"`
	BuildingParts  []string `json:"buildingParts"`
	Floors         []string `json:"floors"`
	CleaningGroups []string `json:"cleaningGroups"`
}

// CreateFilterOptions collects the distinct non-empty values of every
// dimension in ascending order. All four slices are non-nil.
func CreateFilterOptions(rows []Row) FilterOptions {
	return FilterOptions{
		Areas:          distinctSorted(rows, DimensionArea),
		BuildingParts:  distinctSorted(rows, DimensionBuildingPart),
		Floors:         distinctSorted(rows, DimensionFloor),
		CleaningGroups: distinctSorted(rows, DimensionCleaningGroup),
	}
}

// Values returns the option list for d.
func (o FilterOptions) Values(d Dimension) []string {
	switch d {
	case DimensionArea:
		return o.Areas
	case DimensionBuildingPart:
		return o.BuildingParts
	case DimensionFloor:
		return o.Floors
	case DimensionCleaningGroup:
		return o.CleaningGroups
	}
	return nil
}

func distinctSorted(rows []Row, d Dimension) []string {
	values := []string{}
	for _, g := range GroupRows(rows, d) {
		values = append(values, g.Key)
	}
	slices.Sort(values)
	return slices.Compact(values)
}

// RowFilter restricts an analysis to rows matching every non-empty field.
type RowFilter struct {
	Area          string `json:"area,omitempty"`
	BuildingPart  string `json:"buildingPart,omitempty"`
	Floor         string `json:"floor,omitempty"`
	CleaningGroup string `json:"cleaningGroup,omitempty"`
}

// RowFilterFromQuery reads the filter from URL query parameters named after
// the dimensions ("area", "buildingPart", "floor", "cleaningGroup").
func RowFilterFromQuery(q url.Values) RowFilter {
	return RowFilter{
		Area:          strings.TrimSpace(q.Get(DimensionArea.String())),
		BuildingPart:  strings.TrimSpace(q.Get(DimensionBuildingPart.String())),
		Floor:         strings.TrimSpace(q.Get(DimensionFloor.String())),
		CleaningGroup: strings.TrimSpace(q.Get(DimensionCleaningGroup.String())),
	}
}

// IsEmpty reports whether the filter lets every row through.
func (f RowFilter) IsEmpty() bool {
	return f == RowFilter{}
}

// Value returns the wanted value for d, or "" when d is not filtered.
func (f RowFilter) Value(d Dimension) string {
	switch d {
	case DimensionArea:
		return f.Area
	case DimensionBuildingPart:
		return f.BuildingPart
	case DimensionFloor:
		return f.Floor
	case DimensionCleaningGroup:
		return f.CleaningGroup
	}
	return ""
}

// Query encodes the filter as URL query parameters, the inverse of
// RowFilterFromQuery.
func (f RowFilter) Query() url.Values {
	q := url.Values{}
	for _, d := range Dimensions {
		if v := f.Value(d); v != "" {
			q.Set(d.String(), v)
		}
	}
	return q
}

// Match reports whether r satisfies the filter.
func (f RowFilter) Match(r Row) bool {
	for _, d := range Dimensions {
		if want := f.Value(d); want != "" && d.Key(r) != want {
			return false
		}
	}
	return true
}

// Apply returns the rows matching the filter, in order.
func (f RowFilter) Apply(rows []Row) []Row {
	if f.IsEmpty() {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Analysis is the combined result served to the table view and the exports.
type Analysis struct {
	Rows              []Row               `json:"rows"`
	Summary           Summary             `json:"summary"`
	Visualization     VisualizationData   `json:"visualization"`
	FilterOptions     FilterOptions       `json:"filterOptions"`
	AppliedFilter     RowFilter           `json:"appliedFilter"`
	TopAreas          []AreaStat          `json:"topAreas"`
	TopCleaningGroups []CleaningGroupStat `json:"topCleaningGroups"`
}

// Analyze normalizes raw rows, applies the filter and computes summary,
// chart data and ranking. Filter options always cover the unfiltered rows
// so a narrowed view can be widened again.
func Analyze(raw []RawRow, f RowFilter) Analysis {
	all := Preprocess(raw)
	rows := f.Apply(all)
	a := Analysis{
		Rows:          rows,
		Summary:       CalculateSummary(rows),
		Visualization: PrepareVisualization(rows),
		FilterOptions: CreateFilterOptions(all),
		AppliedFilter: f,
	}
	a.Rank(DefaultTopCount)
	return a
}

// Rank refreshes the top areas and cleaning groups by monthly net sales.
func (a *Analysis) Rank(count int) {
	a.TopAreas = TopStats(a.Summary.AreaStats, MetricNetSalesValuePerMonth, count, false)
	a.TopCleaningGroups = TopStats(a.Summary.CleaningGroupStats, MetricNetSalesValuePerMonth, count, false)
}
