// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func vectorsAlmostEqual(a, b Vector2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func() Vector2D
		expected Vector2D
	}{
		{
			name:     "add",
			op:       func() Vector2D { return Vector2D{X: 1, Y: 2}.Add(Vector2D{X: 3, Y: -1}) },
			expected: Vector2D{X: 4, Y: 1},
		},
		{
			name:     "sub",
			op:       func() Vector2D { return Vector2D{X: 1, Y: 2}.Sub(Vector2D{X: 3, Y: -1}) },
			expected: Vector2D{X: -2, Y: 3},
		},
		{
			name:     "scale",
			op:       func() Vector2D { return Vector2D{X: 2, Y: -3}.Scale(2.5) },
			expected: Vector2D{X: 5, Y: -7.5},
		},
		{
			name:     "perp_rotates_counter_clockwise",
			op:       func() Vector2D { return Vector2D{X: 1, Y: 0}.Perp() },
			expected: Vector2D{X: 0, Y: 1},
		},
		{
			name:     "neg",
			op:       func() Vector2D { return Vector2D{X: 1, Y: -2}.Neg() },
			expected: Vector2D{X: -1, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op()
			if !vectorsAlmostEqual(result, tt.expected) {
				t.Errorf("got %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if got := v.Length(); !almostEqual(got, 5) {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := v.LengthSquared(); !almostEqual(got, 25) {
		t.Errorf("LengthSquared() = %v, expected 25", got)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	t.Run("unit_length", func(t *testing.T) {
		n := Vector2D{X: 10, Y: 0}.Normalize()
		if !vectorsAlmostEqual(n, Vector2D{X: 1, Y: 0}) {
			t.Errorf("Normalize() = %v, expected (1, 0)", n)
		}
	})

	t.Run("zero_vector_stays_zero", func(t *testing.T) {
		n := Vector2D{}.Normalize()
		if n != (Vector2D{}) {
			t.Errorf("Normalize() of zero vector = %v, expected zero", n)
		}
	})
}

func TestVector2D_DotCross(t *testing.T) {
	a := Vector2D{X: 1, Y: 2}
	b := Vector2D{X: 3, Y: 4}

	if got := a.Dot(b); !almostEqual(got, 11) {
		t.Errorf("Dot() = %v, expected 11", got)
	}
	if got := a.Cross(b); !almostEqual(got, -2) {
		t.Errorf("Cross() = %v, expected -2", got)
	}
}

func TestVector2D_Rotate(t *testing.T) {
	rotated := Vector2D{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !vectorsAlmostEqual(rotated, Vector2D{X: 0, Y: 1}) {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", rotated)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi, 2)
	if !vectorsAlmostEqual(v, Vector2D{X: -2, Y: 0}) {
		t.Errorf("FromAngle(pi, 2) = %v, expected (-2, 0)", v)
	}
}
