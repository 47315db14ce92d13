package services

import (
	"bytes"
	"math"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// approx compares money and hour figures that went through float sums.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// scenarioRows is a small three-room building used across the aggregation tests.
func scenarioRows() []Row {
	return []Row{
		{ID: "r1", Area: "Office", Floor: "EG", CleaningGroup: "Unterhalt", Quantity: 25, ActiveQuantityPerMonth: 520.75, HoursPerMonth: 10.42, NetSalesValuePerMonth: 150},
		{ID: "r2", Area: "Office", Floor: "1. OG", CleaningGroup: "Unterhalt", Quantity: 20, ActiveQuantityPerMonth: 416.6, HoursPerMonth: 8.33, NetSalesValuePerMonth: 120},
		{ID: "r3", Area: "ConferenceRoom", Floor: "EG", CleaningGroup: "Glas", Quantity: 40, ActiveQuantityPerMonth: 833.2, HoursPerMonth: 16.67, NetSalesValuePerMonth: 250},
	}
}
