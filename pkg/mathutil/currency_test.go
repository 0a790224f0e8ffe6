package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Round down", input: 1.234, expected: 1.23},
		{name: "Round up", input: 1.235, expected: 1.24},
		{name: "Negative", input: -1.005, expected: -1.0},
		{name: "Already rounded", input: 42.42, expected: 42.42},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{name: "Normal division", numerator: 42000, denominator: 53959.57, expected: 42000 / 53959.57},
		{name: "Zero denominator", numerator: 42000, denominator: 0, expected: 0},
		{name: "Zero numerator", numerator: 0, denominator: 100, expected: 0},
		{name: "Negative numerator", numerator: -12000, denominator: 250000, expected: -0.048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRatio(tt.numerator, tt.denominator); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SafeRatio(%v, %v) = %v, expected %v", tt.numerator, tt.denominator, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.005, 0.01) {
		t.Error("WithinTolerance(1.0, 1.005, 0.01) = false, expected true")
	}
	if WithinTolerance(1.0, 1.02, 0.01) {
		t.Error("WithinTolerance(1.0, 1.02, 0.01) = true, expected false")
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(1000000, 1.25); math.Abs(got-12500) > 1e-9 {
		t.Errorf("ApplyPercentage(1000000, 1.25) = %v, expected 12500", got)
	}
}
