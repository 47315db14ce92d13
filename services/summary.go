package services

import "slices"

// Metric names a summed figure of a group statistic. The values are the
// JSON keys of GroupMetrics.
type Metric string

const (
	MetricCount                   Metric = "count"
	MetricQuantity                Metric = "quantity"
	MetricActiveQuantityPerMonth  Metric = "activeQuantityPerMonth"
	MetricNetSalesValuePerMonth   Metric = "netSalesValuePerMonth"
	MetricGrossSalesValuePerMonth Metric = "grossSalesValuePerMonth"
	MetricHoursPerMonth           Metric = "hoursPerMonth"
)

// DefaultTopCount is the number of top entries an analysis ranks by default.
const DefaultTopCount = 5

// GroupMetrics are the sums kept per area or cleaning group.
type GroupMetrics struct {
	Count                   int     `json:"count"`
	Quantity                float64 `json:"quantity"`
	ActiveQuantityPerMonth  float64 `json:"activeQuantityPerMonth"`
	NetSalesValuePerMonth   float64 `json:"netSalesValuePerMonth"`
	GrossSalesValuePerMonth float64 `json:"grossSalesValuePerMonth"`
	HoursPerMonth           float64 `json:"hoursPerMonth"`
}

// Metric returns the value of m, or 0 for an unknown metric.
func (g GroupMetrics) Metric(m Metric) float64 {
	switch m {
	case MetricCount:
		return float64(g.Count)
	case MetricQuantity:
		return g.Quantity
	case MetricActiveQuantityPerMonth:
		return g.ActiveQuantityPerMonth
	case MetricNetSalesValuePerMonth:
		return g.NetSalesValuePerMonth
	case MetricGrossSalesValuePerMonth:
		return g.GrossSalesValuePerMonth
	case MetricHoursPerMonth:
		return g.HoursPerMonth
	}
	return 0
}

func (g *GroupMetrics) add(r Row) {
	g.Count++
	g.Quantity += num(r.Quantity)
	g.ActiveQuantityPerMonth += num(r.ActiveQuantityPerMonth)
	g.NetSalesValuePerMonth += num(r.NetSalesValuePerMonth)
	g.GrossSalesValuePerMonth += num(r.GrossSalesValuePerMonth)
	g.HoursPerMonth += num(r.HoursPerMonth)
}

// AreaStat is the per-area breakdown entry of a Summary.
type AreaStat struct {
	Area string `json:"area"`
	GroupMetrics
}

// CleaningGroupStat is the per-cleaning-group breakdown entry of a Summary.
type CleaningGroupStat struct {
	CleaningGroup string `json:"cleaningGroup"`
	GroupMetrics
}

// Summary holds the totals over a list of rooms.
type Summary struct {
	TotalRooms                     int     `json:"totalRooms"`
	TotalQuantity                  float64 `json:"totalQuantity"`
	TotalActiveQuantityPerMonth    float64 `json:"totalActiveQuantityPerMonth"`
	TotalHoursPerMonth             float64 `json:"totalHoursPerMonth"`
	TotalNetSalesValuePerMonth     float64 `json:"totalNetSalesValuePerMonth"`
	TotalGrossSalesValuePerMonth   float64 `json:"totalGrossSalesValuePerMonth"`
	TotalNetInvoiceValuePerMonth   float64 `json:"totalNetInvoiceValuePerMonth"`
	TotalGrossInvoiceValuePerMonth float64 `json:"totalGrossInvoiceValuePerMonth"`
	TotalNetSalesValuePerYear      float64 `json:"totalNetSalesValuePerYear"`
	TotalGrossSalesValuePerYear    float64 `json:"totalGrossSalesValuePerYear"`
	TotalNetInvoiceValuePerYear    float64 `json:"totalNetInvoiceValuePerYear"`
	TotalGrossInvoiceValuePerYear  float64 `json:"totalGrossInvoiceValuePerYear"`

	AreaStats          []AreaStat          `json:"areaStats"`
	CleaningGroupStats []CleaningGroupStat `json:"cleaningGroupStats"`
}

// num guards every read that feeds a sum: a row built by
// CalculateDerivedValues may still carry NaN or ±Inf.
func num(x float64) float64 {
	return ToNumber(x, 0)
}

// CalculateSummary reduces rows to their totals and the per-area and
// per-cleaning-group breakdowns. Breakdown entries follow first-seen order;
// rows without an area (or cleaning group) count towards the totals only.
func CalculateSummary(rows []Row) Summary {
	s := Summary{
		AreaStats:          []AreaStat{},
		CleaningGroupStats: []CleaningGroupStat{},
	}
	for _, r := range rows {
		s.TotalRooms++
		s.TotalQuantity += num(r.Quantity)
		s.TotalActiveQuantityPerMonth += num(r.ActiveQuantityPerMonth)
		s.TotalHoursPerMonth += num(r.HoursPerMonth)
		s.TotalNetSalesValuePerMonth += num(r.NetSalesValuePerMonth)
		s.TotalGrossSalesValuePerMonth += num(r.GrossSalesValuePerMonth)
		s.TotalNetInvoiceValuePerMonth += num(r.NetInvoiceValuePerMonth)
		s.TotalGrossInvoiceValuePerMonth += num(r.GrossInvoiceValuePerMonth)
	}
	s.TotalNetSalesValuePerYear = Round(s.TotalNetSalesValuePerMonth*12, 2)
	s.TotalGrossSalesValuePerYear = Round(s.TotalGrossSalesValuePerMonth*12, 2)
	s.TotalNetInvoiceValuePerYear = Round(s.TotalNetInvoiceValuePerMonth*12, 2)
	s.TotalGrossInvoiceValuePerYear = Round(s.TotalGrossInvoiceValuePerMonth*12, 2)

	for _, g := range GroupRows(rows, DimensionArea) {
		stat := AreaStat{Area: g.Key}
		for _, r := range g.Items {
			stat.add(r)
		}
		s.AreaStats = append(s.AreaStats, stat)
	}
	for _, g := range GroupRows(rows, DimensionCleaningGroup) {
		stat := CleaningGroupStat{CleaningGroup: g.Key}
		for _, r := range g.Items {
			stat.add(r)
		}
		s.CleaningGroupStats = append(s.CleaningGroupStats, stat)
	}
	return s
}

// Ranked is implemented by every statistic TopStats can order.
type Ranked interface {
	Metric(Metric) float64
}

// TopStats returns the first count entries of stats ordered by metric m,
// descending unless ascending is set. Equal values keep their input order and
// stats itself is left untouched. A count <= 0 yields an empty slice.
func TopStats[T Ranked](stats []T, m Metric, count int, ascending bool) []T {
	count = max(count, 0)
	sorted := slices.Clone(stats)
	slices.SortStableFunc(sorted, func(a, b T) int {
		va, vb := ToNumber(a.Metric(m), 0), ToNumber(b.Metric(m), 0)
		if ascending {
			va, vb = vb, va
		}
		switch {
		case va > vb:
			return -1
		case va < vb:
			return 1
		}
		return 0
	})
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	if sorted == nil {
		return []T{}
	}
	return sorted
}
