package vmath

// CirclesOverlap reports strict overlap of two circles
// Touching circles (distance == ra + rb) do not overlap
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Distance(a, b) < ra+rb
}
