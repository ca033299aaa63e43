package core

// Ray represents a ray with an origin and direction.
// The direction is not required to be unit length.
type Ray struct {
	Origin    Point
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayFromPoints creates a ray starting at tail whose direction is head - tail.
// The direction keeps its length, so At(1) == head.
func NewRayFromPoints(tail, head Point) Ray {
	return Ray{Origin: tail, Direction: head.Subtract(tail)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// BackgroundColor returns the colour seen by a ray that hits nothing:
// a vertical blend from Black to White driven by the unit direction's Y.
func (r Ray) BackgroundColor() Color {
	t := r.Direction.Normalize().Y
	return White.Multiply(t).Add(Black.Multiply(1 - t))
}
