package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Neg(t *testing.T) {
	result := NewVector3(1, -2, 3).Neg()

	expected := NewVector3(-1, 2, -3)
	if result != expected {
		t.Errorf("Neg failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		in       []float64
		expected Vector3
	}{
		{[]float64{1, 2, 3}, NewVector3(1, 2, 3)},
		{[]float64{1, 2}, NewVector3(1, 2, 0)},
		{nil, Vector3{}},
		{[]float64{1, 2, 3, 4}, NewVector3(1, 2, 3)},
	}

	for _, tt := range tests {
		if got := FromSlice(tt.in); got != tt.expected {
			t.Errorf("FromSlice(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}
