package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVectorAddSubRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector2
	}{
		{"zero", Vec(0, 0), Vec(0, 0)},
		{"positive", Vec(3, 4), Vec(1, 2)},
		{"mixed signs", Vec(-7.5, 2.25), Vec(100, -0.125)},
		{"large", Vec(1e6, -1e6), Vec(0.001, 0.002)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Add(tc.w).Sub(tc.w)
			if !result.ApproxEqual(tc.v, 1e-6) {
				t.Errorf("v + w - w = %v, expected %v", result, tc.v)
			}
		})
	}
}

func TestVectorNormalized(t *testing.T) {
	tests := []Vector2{
		Vec(3, 4),
		Vec(-1, 0),
		Vec(0, 0.0001),
		Vec(123.4, -567.8),
	}

	for _, v := range tests {
		n := v.Normalized()
		if math.Abs(n.Length()-1) > eps {
			t.Errorf("%v.Normalized().Length() = %f, expected 1", v, n.Length())
		}
	}
}

func TestVectorNormalizedZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalized() on zero vector should panic")
		}
	}()
	Vec(0, 0).Normalized()
}

func TestVectorRotate(t *testing.T) {
	v := Vec(2, -3)
	if got := v.Rotate(0); !got.ApproxEqual(v, eps) {
		t.Errorf("Rotate(0) = %v, expected %v", got, v)
	}

	got := Vec(1, 0).Rotate(math.Pi / 2)
	if !got.ApproxEqual(Vec(0, 1), eps) {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", got)
	}
}

func TestVectorAngles(t *testing.T) {
	if a := Vec(0, 1).Angle(); math.Abs(a-math.Pi/2) > eps {
		t.Errorf("Angle() = %f, expected pi/2", a)
	}
	if a := Vec(1, 0).AngleTo(Vec(0, -1)); math.Abs(a+math.Pi/2) > eps {
		t.Errorf("AngleTo() = %f, expected -pi/2", a)
	}
	if d := Vec(0, 0).Distance(Vec(3, 4)); d != 5 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("Dot() = %f, expected 11", d)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rectangle
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect(0, 0, 10, 10),
			b:        Rect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Rect(0, 0, 10, 10),
			b:        Rect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        Rect(0, 0, 10, 10),
			b:        Rect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        Rect(0, 0, 20, 20),
			b:        Rect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Rect(0, 0, 10, 10),
			b:        Rect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vector2
		expected bool
	}{
		{"inside", Vec(15, 15), true},
		{"top-left corner", Vec(10, 10), true},
		{"bottom-right corner (inclusive)", Vec(30, 25), true},
		{"right edge", Vec(30, 12), true},
		{"outside left", Vec(9.999, 15), false},
		{"outside right", Vec(30.001, 15), false},
		{"outside top", Vec(15, 5), false},
		{"outside bottom", Vec(15, 25.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.ContainsPoint(tc.p)
			expected := r.Left() <= tc.p.X && tc.p.X <= r.Right() &&
				r.Top() <= tc.p.Y && tc.p.Y <= r.Bottom()
			if result != tc.expected || result != expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"overlapping", Circ(0, 0, 5), Circ(6, 0, 5), true},
		{"touching", Circ(0, 0, 3), Circ(3, 4, 2), true},
		{"apart", Circ(0, 0, 3), Circ(3, 4, 1.9), false},
		{"concentric", Circ(1, 1, 1), Circ(1, 1, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			expected := tc.a.Center().Distance(tc.b.Center()) <= tc.a.Radius+tc.b.Radius
			if result != tc.expected || result != expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestShapeAccessors(t *testing.T) {
	r := Rect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
	if c := r.Center(); c != Vec(15, 17.5) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}

	c := Circ(0, 0, 4)
	CenterOn(&c, &r)
	if c.Center() != r.Center() {
		t.Errorf("CenterOn() moved circle to %v, expected %v", c.Center(), r.Center())
	}
	if c.Left() != 11 || c.Top() != 13.5 {
		t.Errorf("circle edges = (%f, %f), expected (11, 13.5)", c.Left(), c.Top())
	}

	r.SetBottom(100)
	if r.Top() != 85 {
		t.Errorf("SetBottom(100) left Top() = %f, expected 85", r.Top())
	}
	r.SetRight(50)
	if r.Left() != 30 {
		t.Errorf("SetRight(50) left Left() = %f, expected 30", r.Left())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
