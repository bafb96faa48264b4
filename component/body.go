package component

// BodyComponent is the circular footprint used for confinement and collision
type BodyComponent struct {
	Radius float64
}

// BodyOfSize returns a body whose radius is half the given size
func BodyOfSize(size float64) BodyComponent {
	return BodyComponent{Radius: size / 2}
}
