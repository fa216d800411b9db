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

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
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

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("IsFinite failed: expected finite vector to report true")
	}

	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("IsFinite failed: NaN component should report false")
	}

	if NewVector3(0, math.Inf(1), 0).IsFinite() {
		t.Error("IsFinite failed: Inf component should report false")
	}
}

func TestVector3IsZero(t *testing.T) {
	if !NewVector3(0, 0, 0).IsZero() {
		t.Error("IsZero failed: zero vector should report true")
	}

	if NewVector3(0, 1e-12, 0).IsZero() {
		t.Error("IsZero failed: near-zero vector should report false")
	}
}

func TestVector3Quantize(t *testing.T) {
	v := NewVector3(1.23456, -2.34567, 3.45678)
	result := v.Quantize(3)

	expected := NewVector3(1.235, -2.346, 3.457)
	if result != expected {
		t.Errorf("Quantize failed: expected %v, got %v", expected, result)
	}
}

func TestVector3QuantizeWelding(t *testing.T) {
	// Two positions closer than the quantization step collapse to the same key
	v1 := NewVector3(1.00001, 2.00002, 3.00001)
	v2 := NewVector3(1.00002, 2.00001, 3.00002)

	if v1.Quantize(4) != v2.Quantize(4) {
		t.Errorf("Quantize failed: expected %v and %v to share a key at 4 decimals", v1, v2)
	}
}
