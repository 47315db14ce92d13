package services

import (
	"slices"
	"testing"
)

func TestValidateRow(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *RawRow)
		want   []string
	}{
		{"valid row", func(r *RawRow) {}, []string{}},
		{"numbers as strings", func(r *RawRow) {
			r.Quantity = "25"
			r.PerformancePerHour = "50,5"
		}, []string{}},
		{"negative quantity", func(r *RawRow) { r.Quantity = -1 }, []string{"quantity must not be negative"}},
		{"zero performance", func(r *RawRow) { r.PerformancePerHour = 0 }, []string{"performancePerHour must be greater than zero to derive hours"}},
		{"missing performance", func(r *RawRow) { r.PerformancePerHour = nil }, []string{"performancePerHour must be greater than zero to derive hours"}},
		{"negative performance", func(r *RawRow) { r.PerformancePerHour = -5 }, []string{"performancePerHour must not be negative"}},
		{"negative unit count", func(r *RawRow) { r.UnitCount = "-2" }, []string{"unitCount must not be negative"}},
		{"blank classification", func(r *RawRow) {
			r.Area = "  "
			r.CleaningGroup = ""
		}, []string{"area is required", "cleaningGroup is required"}},
		{"everything missing", func(r *RawRow) { *r = RawRow{} }, []string{
			"performancePerHour must be greater than zero to derive hours",
			"area is required",
			"buildingPart is required",
			"floor is required",
			"cleaningGroup is required",
			"cleaningInterval is required",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRawRow()
			tt.modify(&r)
			got := ValidateRow(r)
			if got == nil {
				t.Fatal("ValidateRow must return a non-nil slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidateRow = %q, want %q", got, tt.want)
			}
		})
	}
}
