// Package voxelsweep moves an axis-aligned box through a sparse voxel grid
// and reports exactly where it first touches a solid cell. The grid is an
// opaque oracle queried lazily, so the world can be effectively infinite;
// the caller decides at every collision whether the box stops, slides or
// bounces.
package voxelsweep

import (
	"github.com/akmonengine/voxelsweep/box"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_EPSILON = 1e-10

// VoxelFunc reports whether the voxel at (x, y, z) is solid. fx, fy and fz
// give the fractional position of the box's leading edge within that cell,
// each in [0, 1), for oracles that are only partially solid per cell. It
// must be deterministic: the sweep guarantees each cell is queried at most
// once per boundary crossing, not at most once per call.
type VoxelFunc func(x, y, z int, fx, fy, fz float64) bool

// CollideFunc is invoked at every collision with the cumulative distance
// traveled so far, the crossed axis (0=x, 1=y, 2=z), the direction of
// travel on that axis, and the movement left to consume. The callback may
// mutate left (zero the crossed component to slide, negate it to bounce);
// returning true stops the sweep. A callback that keeps the colliding
// component and returns false will re-cross the same boundary forever.
type CollideFunc func(dist float64, axis int, dir int, left *mgl64.Vec3) bool

// Sweeper carries sweep options plus the scratch state reused between
// calls. The zero value is ready to use. A Sweeper serves one call at a
// time: use one per goroutine, or the package-level Sweep which allocates
// its state per call.
type Sweeper struct {
	// NoTranslate leaves the caller's box untouched; the sweep then only
	// reports distance and collisions.
	NoTranslate bool
	// Epsilon biases edge-to-voxel rounding away from exact grid lines so
	// an aligned box is not misclassified. Zero means DEFAULT_EPSILON.
	Epsilon float64
	// CheckStartingVoxel probes the voxels the box is already embedded in
	// before any movement. Only the first solid axis (lowest numbered) is
	// reported, even if several are embedded.
	CheckStartingVoxel bool

	st sweepState
}

// Sweep moves b along dir through the grid described by getVoxel, with
// default options. See (*Sweeper).Sweep.
func Sweep(getVoxel VoxelFunc, b *box.Box, dir mgl64.Vec3, onCollide CollideFunc) float64 {
	var sw Sweeper
	return sw.Sweep(getVoxel, b, dir, onCollide)
}

// Sweep moves b along dir until the vector is consumed or the callback
// stops the sweep, and returns the cumulative distance traveled. When the
// callback redirects the movement this is the sum of the sub-sweep
// lengths, which can exceed the straight-line displacement. Unless
// NoTranslate is set, b is translated in place by the net displacement.
// A nil onCollide continues through every collision unchanged.
func (sw *Sweeper) Sweep(getVoxel VoxelFunc, b *box.Box, dir mgl64.Vec3, onCollide CollideFunc) float64 {
	st := &sw.st
	st.epsilon = sw.Epsilon
	if st.epsilon == 0 {
		st.epsilon = DEFAULT_EPSILON
	}
	st.cumulativeT = 0
	st.base = b.Base
	st.max = b.Max
	st.size = b.Max.Sub(b.Base)

	dist := sw.run(getVoxel, dir, onCollide)

	if !sw.NoTranslate {
		// net displacement per axis, measured on the leading corner so the
		// snap applied at each collision carries through exactly
		var delta mgl64.Vec3
		for i := 0; i < 3; i++ {
			if dir[i] > 0 {
				delta[i] = st.max[i] - b.Max[i]
			} else {
				delta[i] = st.base[i] - b.Base[i]
			}
		}
		b.Translate(delta)
	}
	return dist
}

func (sw *Sweeper) run(getVoxel VoxelFunc, dir mgl64.Vec3, onCollide CollideFunc) float64 {
	st := &sw.st
	st.init(dir)
	if st.maxT == 0 {
		return 0
	}

	if sw.CheckStartingVoxel && !sw.checkStart(getVoxel, dir, onCollide) {
		return 0
	}

	st.stepForward()
	for st.t <= st.maxT {
		if st.checkFace(getVoxel, st.axis) {
			if st.handleCollision(onCollide) {
				return st.cumulativeT
			}
		}
		st.stepForward()
	}

	// the whole remaining vector fits without an obstruction
	st.cumulativeT += st.maxT
	for i := 0; i < 3; i++ {
		st.base[i] += st.vec[i]
		st.max[i] += st.vec[i]
	}
	return st.cumulativeT
}

// checkStart probes the voxels the box overlaps before any movement,
// axis by axis, handling only the first solid hit. It reports whether the
// sweep should proceed.
func (sw *Sweeper) checkStart(getVoxel VoxelFunc, dir mgl64.Vec3, onCollide CollideFunc) bool {
	st := &sw.st
	for axis := 0; axis < 3; axis++ {
		if !st.checkFace(getVoxel, axis) {
			continue
		}
		left := dir
		if onCollide != nil && onCollide(0, axis, st.step[axis], &left) {
			return false
		}
		if left != dir {
			st.init(left)
			if st.maxT == 0 {
				return false
			}
		}
		break
	}
	return true
}
