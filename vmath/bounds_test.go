package vmath

import "testing"

// TestClampPinsToBoundary verifies values outside are pinned and values inside untouched
func TestClampPinsToBoundary(t *testing.T) {
	b := ArenaBounds(800, 600, 32)

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{400, 300}, Vec2{400, 300}},
		{"right", Vec2{900, 300}, Vec2{768, 300}},
		{"left", Vec2{-5, 300}, Vec2{32, 300}},
		{"top", Vec2{400, 601}, Vec2{400, 568}},
		{"bottom", Vec2{400, 0}, Vec2{400, 32}},
		{"corner", Vec2{1000, -1000}, Vec2{768, 32}},
		{"on edge", Vec2{768, 32}, Vec2{768, 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestClampIdempotent verifies clamping twice equals clamping once
func TestClampIdempotent(t *testing.T) {
	rng := NewFastRand(42)
	sizes := [][2]float64{{800, 600}, {64, 64}, {65, 1000}, {3000, 128}}

	for _, size := range sizes {
		b := ArenaBounds(size[0], size[1], 32)
		for i := 0; i < 1000; i++ {
			p := Vec2{rng.Range(-5000, 5000), rng.Range(-5000, 5000)}
			once := b.Clamp(p)
			twice := b.Clamp(once)
			if once != twice {
				t.Fatalf("arena %v: Clamp not idempotent for %v: %v then %v", size, p, once, twice)
			}
			if !b.Contains(once) {
				t.Fatalf("arena %v: Clamp(%v) = %v is outside bounds", size, p, once)
			}
		}
	}
}

// TestClampDegenerateArena verifies the lower bound wins when the arena is narrower than the entity
func TestClampDegenerateArena(t *testing.T) {
	b := ArenaBounds(40, 40, 32)
	for _, v := range []float64{-100, 0, 20, 32, 100} {
		got := b.Clamp(Vec2{v, v})
		if got.X != 32 || got.Y != 32 {
			t.Errorf("Clamp(%f) in degenerate arena = %v, want {32 32}", v, got)
		}
	}
}

// TestOutsideInclusive verifies boundary values count as inside
func TestOutsideInclusive(t *testing.T) {
	b := ArenaBounds(800, 600, 32)
	if b.OutsideX(32) || b.OutsideX(768) {
		t.Error("boundary x reported outside")
	}
	if !b.OutsideX(768.0001) || !b.OutsideX(31.9999) {
		t.Error("x beyond boundary reported inside")
	}
	if b.OutsideY(568) || !b.OutsideY(568.5) {
		t.Error("y boundary check wrong")
	}
}

// TestCirclesOverlapStrict verifies touching circles do not overlap
func TestCirclesOverlapStrict(t *testing.T) {
	a := Vec2{400, 300}
	if CirclesOverlap(a, 32, Vec2{464, 300}, 32) {
		t.Error("circles at exactly r1+r2 reported overlapping")
	}
	if !CirclesOverlap(a, 32, Vec2{463.999, 300}, 32) {
		t.Error("circles closer than r1+r2 reported apart")
	}
}
