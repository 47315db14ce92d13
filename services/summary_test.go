package services

import (
	"math"
	"testing"
)

func TestCalculateSummary(t *testing.T) {
	s := CalculateSummary(scenarioRows())

	if s.TotalRooms != 3 {
		t.Errorf("totalRooms = %d, want 3", s.TotalRooms)
	}
	if !approx(s.TotalQuantity, 85) {
		t.Errorf("totalQuantity = %v, want 85", s.TotalQuantity)
	}
	if !approx(s.TotalNetSalesValuePerMonth, 520) {
		t.Errorf("totalNetSalesValuePerMonth = %v, want 520", s.TotalNetSalesValuePerMonth)
	}
	if s.TotalNetSalesValuePerYear != 6240 {
		t.Errorf("totalNetSalesValuePerYear = %v, want 6240", s.TotalNetSalesValuePerYear)
	}
	if !approx(s.TotalHoursPerMonth, 35.42) {
		t.Errorf("totalHoursPerMonth = %v, want 35.42", s.TotalHoursPerMonth)
	}

	if len(s.AreaStats) != 2 {
		t.Fatalf("expected 2 area stats, got %d", len(s.AreaStats))
	}
	office, conference := s.AreaStats[0], s.AreaStats[1]
	if office.Area != "Office" || office.Count != 2 || office.Quantity != 45 || office.NetSalesValuePerMonth != 270 {
		t.Errorf("office stat = %+v", office)
	}
	if conference.Area != "ConferenceRoom" || conference.Count != 1 || conference.Quantity != 40 || conference.NetSalesValuePerMonth != 250 {
		t.Errorf("conference stat = %+v", conference)
	}

	if len(s.CleaningGroupStats) != 2 || s.CleaningGroupStats[0].CleaningGroup != "Unterhalt" {
		t.Fatalf("cleaning group stats = %+v", s.CleaningGroupStats)
	}
	if s.CleaningGroupStats[1].NetSalesValuePerMonth != 250 {
		t.Errorf("Glas net = %v, want 250", s.CleaningGroupStats[1].NetSalesValuePerMonth)
	}
}

func TestCalculateSummary_Additive(t *testing.T) {
	rows := scenarioRows()
	whole := CalculateSummary(rows)
	left := CalculateSummary(rows[:1])
	right := CalculateSummary(rows[1:])

	if whole.TotalRooms != left.TotalRooms+right.TotalRooms {
		t.Errorf("room count not additive")
	}
	if !approx(whole.TotalQuantity, left.TotalQuantity+right.TotalQuantity) {
		t.Errorf("quantity not additive")
	}
	if !approx(whole.TotalNetSalesValuePerMonth, left.TotalNetSalesValuePerMonth+right.TotalNetSalesValuePerMonth) {
		t.Errorf("net sales not additive")
	}
}

func TestCalculateSummary_Empty(t *testing.T) {
	s := CalculateSummary(nil)

	if s.TotalRooms != 0 || s.TotalQuantity != 0 || s.TotalNetSalesValuePerYear != 0 {
		t.Errorf("expected zero totals, got %+v", s)
	}
	if s.AreaStats == nil || s.CleaningGroupStats == nil {
		t.Error("breakdowns must be empty slices, not nil")
	}
}

func TestCalculateSummary_RowsWithoutAreaCountInTotalsOnly(t *testing.T) {
	rows := append(scenarioRows(), Row{ID: "r4", Quantity: 10, NetSalesValuePerMonth: 30})
	s := CalculateSummary(rows)

	if s.TotalRooms != 4 || !approx(s.TotalQuantity, 95) {
		t.Errorf("totals = %d rooms / %v qm, want 4 / 95", s.TotalRooms, s.TotalQuantity)
	}
	if len(s.AreaStats) != 2 {
		t.Errorf("expected the unlabelled row to stay out of area stats, got %+v", s.AreaStats)
	}
	var groupRooms int
	for _, g := range s.CleaningGroupStats {
		groupRooms += g.Count
	}
	if groupRooms != 3 {
		t.Errorf("cleaning group stats cover %d rooms, want 3", groupRooms)
	}
}

func TestCalculateSummary_NonFiniteRowsCountAsZero(t *testing.T) {
	rows := []Row{
		{Area: "Büro", Quantity: 10, NetSalesValuePerMonth: math.Inf(1), HoursPerMonth: math.NaN()},
		{Area: "Büro", Quantity: 5, NetSalesValuePerMonth: 40, HoursPerMonth: 2},
	}
	s := CalculateSummary(rows)

	if s.TotalNetSalesValuePerMonth != 40 || s.TotalHoursPerMonth != 2 {
		t.Errorf("totals = %v / %v, want 40 / 2", s.TotalNetSalesValuePerMonth, s.TotalHoursPerMonth)
	}
	if s.AreaStats[0].NetSalesValuePerMonth != 40 {
		t.Errorf("area net = %v, want 40", s.AreaStats[0].NetSalesValuePerMonth)
	}
}

func TestTopStats(t *testing.T) {
	stats := []AreaStat{
		{Area: "A", GroupMetrics: GroupMetrics{Count: 1, NetSalesValuePerMonth: 100}},
		{Area: "B", GroupMetrics: GroupMetrics{Count: 4, NetSalesValuePerMonth: 300}},
		{Area: "C", GroupMetrics: GroupMetrics{Count: 2, NetSalesValuePerMonth: 100}},
		{Area: "D", GroupMetrics: GroupMetrics{Count: 3, NetSalesValuePerMonth: 50}},
	}

	areas := func(in []AreaStat) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = s.Area
		}
		return out
	}

	tests := []struct {
		name      string
		metric    Metric
		count     int
		ascending bool
		want      []string
	}{
		{"descending by net", MetricNetSalesValuePerMonth, 3, false, []string{"B", "A", "C"}},
		{"ascending by net keeps ties stable", MetricNetSalesValuePerMonth, 3, true, []string{"D", "A", "C"}},
		{"by count", MetricCount, 2, false, []string{"B", "D"}},
		{"count larger than input", MetricNetSalesValuePerMonth, 10, false, []string{"B", "A", "C", "D"}},
		{"zero count", MetricNetSalesValuePerMonth, 0, false, []string{}},
		{"negative count", MetricNetSalesValuePerMonth, -1, false, []string{}},
		{"unknown metric keeps input order", Metric("nope"), 4, false, []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := areas(TopStats(stats, tt.metric, tt.count, tt.ascending))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}

	if stats[0].Area != "A" || stats[1].Area != "B" {
		t.Error("TopStats must not reorder its input")
	}
}

func TestTopStats_NonPositiveCountAndEmpty(t *testing.T) {
	var stats []CleaningGroupStat
	for i := 0; i < 8; i++ {
		stats = append(stats, CleaningGroupStat{CleaningGroup: string(rune('A' + i)), GroupMetrics: GroupMetrics{NetSalesValuePerMonth: float64(i)}})
	}
	for _, count := range []int{0, -1, -5} {
		got := TopStats(stats, MetricNetSalesValuePerMonth, count, false)
		if got == nil || len(got) != 0 {
			t.Errorf("count %d: expected empty non-nil slice, got %#v", count, got)
		}
	}
	if got := TopStats(stats, MetricNetSalesValuePerMonth, DefaultTopCount, false); len(got) != DefaultTopCount {
		t.Errorf("expected %d entries, got %d", DefaultTopCount, len(got))
	}

	empty := TopStats([]CleaningGroupStat(nil), MetricQuantity, 3, false)
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}
