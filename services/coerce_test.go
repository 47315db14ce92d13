package services

import (
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	var nilString *string
	twelve := "12"
	five := 5.5

	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, -1},
		{"empty string", "", -1},
		{"blank string", "   ", -1},
		{"garbage", "abc", -1},
		{"bool true", true, -1},
		{"bool false", false, -1},
		{"NaN", math.NaN(), -1},
		{"+Inf", math.Inf(1), -1},
		{"-Inf", math.Inf(-1), -1},
		{"nil string pointer", nilString, -1},
		{"string pointer", &twelve, 12},
		{"float pointer", &five, 5.5},
		{"float", 12.5, 12.5},
		{"int", 3, 3},
		{"int64", int64(250), 250},
		{"zero", 0, 0},
		{"negative", -4.25, -4.25},
		{"numeric string", "12.5", 12.5},
		{"padded string", " 7 ", 7},
		{"decimal comma", "12,5", 12.5},
		{"exponent", "1e3", 1000},
		{"german thousands", "1.234,56", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumber(tt.in, -1)
			if got != tt.want {
				t.Errorf("ToNumber(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToNumber_NeverReturnsNonFinite(t *testing.T) {
	inputs := []any{math.NaN(), math.Inf(1), "NaN", "Inf", "-Inf", "+Inf"}
	for _, in := range inputs {
		got := ToNumber(in, 0)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("ToNumber(%v) = %v, want a finite number", in, got)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int32
		want   float64
	}{
		{10.415, 2, 10.42},
		{2.675, 2, 2.68},
		{1.005, 2, 1.01},
		{-1.005, 2, -1.01},
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{20.83333, 2, 20.83},
		{0.4999, 3, 0.5},
		{125, 2, 125},
	}

	for _, tt := range tests {
		if got := Round(tt.x, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
		}
	}
}

func TestRound_NonFinitePassThrough(t *testing.T) {
	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v, want +Inf", got)
	}
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
}
