package services

import "slices"

// VisualizationData maps group labels to a summed metric, one map per chart.
type VisualizationData struct {
	AreaData          map[string]float64 `json:"areaData"`
	CleaningGroupData map[string]float64 `json:"cleaningGroupData"`
	FloorData         map[string]float64 `json:"floorData"`
}

// PrepareVisualization builds the chart series: quantity per area, monthly
// net sales per cleaning group and monthly hours per floor, each rounded to
// two places. Rows without a label are skipped; the maps are never nil.
func PrepareVisualization(rows []Row) VisualizationData {
	return VisualizationData{
		AreaData: sumByDimension(rows, DimensionArea, func(r Row) float64 {
			return r.Quantity
		}),
		CleaningGroupData: sumByDimension(rows, DimensionCleaningGroup, func(r Row) float64 {
			return r.NetSalesValuePerMonth
		}),
		FloorData: sumByDimension(rows, DimensionFloor, func(r Row) float64 {
			return r.HoursPerMonth
		}),
	}
}

func sumByDimension(rows []Row, d Dimension, metric func(Row) float64) map[string]float64 {
	out := make(map[string]float64)
	for _, g := range GroupRows(rows, d) {
		var sum float64
		for _, r := range g.Items {
			sum += num(metric(r))
		}
		out[g.Key] = Round(sum, 2)
	}
	return out
}

// ChartPoint is one labelled bar of a chart.
type ChartPoint struct {
	Label string
	Value float64
}

// ChartSeries returns the entries of a visualization map ordered by value,
// largest first, with ties ordered by label.
func ChartSeries(data map[string]float64) []ChartPoint {
	points := make([]ChartPoint, 0, len(data))
	for label, v := range data {
		points = append(points, ChartPoint{Label: label, Value: v})
	}
	slices.SortFunc(points, func(a, b ChartPoint) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		case a.Label < b.Label:
			return -1
		case a.Label > b.Label:
			return 1
		}
		return 0
	})
	return points
}
