package box

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box between two corners, with
// Base[i] <= Max[i] on every axis.
type Box struct {
	Base mgl64.Vec3
	Max  mgl64.Vec3
}

// New creates a Box from its minimum corner and its size per axis.
func New(base, size mgl64.Vec3) *Box {
	return &Box{Base: base, Max: base.Add(size)}
}

// Size returns the box extent per axis.
func (b *Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Base)
}

// Translate moves both corners by v, in place.
func (b *Box) Translate(v mgl64.Vec3) {
	b.Base = b.Base.Add(v)
	b.Max = b.Max.Add(v)
}

// ContainsPoint checks if a point is inside the box
func (b *Box) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Base.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Base.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Base.Z() && point.Z() <= b.Max.Z()
}

// Overlaps checks if two boxes overlap
func (b *Box) Overlaps(other *Box) bool {
	// boxes overlap if they overlap on all three axes
	return b.Max.X() >= other.Base.X() && b.Base.X() <= other.Max.X() &&
		b.Max.Y() >= other.Base.Y() && b.Base.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Base.Z() && b.Base.Z() <= other.Max.Z()
}
