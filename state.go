package voxelsweep

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sweepState carries one sweep call's DDA bookkeeping. It is created at
// call start, reinitialized after every non-terminal collision, and never
// shared between calls.
type sweepState struct {
	vec  mgl64.Vec3 // remaining movement for the current sub-sweep
	base mgl64.Vec3 // working copies of the box corners
	max  mgl64.Vec3
	size mgl64.Vec3

	t           float64 // parametric position within the current sub-sweep
	maxT        float64 // length of the current sub-sweep
	cumulativeT float64 // distance consumed across all sub-sweeps
	axis        int     // axis most recently crossed

	epsilon float64

	step   [3]int     // direction of travel per axis, +1 or -1
	ldi    [3]int     // voxel index of the leading edge
	tri    [3]int     // voxel index of the trailing edge
	tr     [3]float64 // real position of the trailing edge
	normed [3]float64 // direction components normalized by maxT
	tDelta [3]float64 // parametric distance per voxel crossed
	tNext  [3]float64 // parametric distance to the next boundary
}

// leadEdgeToInt converts a leading edge coordinate to the index of the
// voxel containing it. The epsilon bias keeps an edge sitting exactly on a
// grid line out of the cell it is about to enter.
func leadEdgeToInt(coord float64, step int, epsilon float64) int {
	return int(math.Floor(coord - float64(step)*epsilon))
}

func trailEdgeToInt(coord float64, step int, epsilon float64) int {
	return int(math.Floor(coord + float64(step)*epsilon))
}

// frac returns the fractional part of v, in [0, 1).
func frac(v float64) float64 {
	return v - math.Floor(v)
}

// init derives the per-axis DDA parameters from the remaining movement
// vector and the current corners. maxT is zero exactly when no further
// movement is requested.
func (s *sweepState) init(vec mgl64.Vec3) {
	s.vec = vec
	s.t = 0
	s.maxT = vec.Len()
	if s.maxT == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		dir := vec[i] >= 0
		if dir {
			s.step[i] = 1
		} else {
			s.step[i] = -1
		}

		var lead, trail float64
		if dir {
			lead, trail = s.max[i], s.base[i]
		} else {
			lead, trail = s.base[i], s.max[i]
		}
		s.ldi[i] = leadEdgeToInt(lead, s.step[i], s.epsilon)
		s.tr[i] = trail
		s.tri[i] = trailEdgeToInt(trail, s.step[i], s.epsilon)

		s.normed[i] = vec[i] / s.maxT
		s.tDelta[i] = math.Abs(1 / s.normed[i])

		if math.IsInf(s.tDelta[i], 1) {
			s.tNext[i] = math.Inf(1)
			continue
		}
		var dist float64
		if dir {
			dist = float64(s.ldi[i]+1) - lead
		} else {
			dist = lead - float64(s.ldi[i])
		}
		s.tNext[i] = s.tDelta[i] * dist
	}
}

// stepForward advances the raycast to the nearest boundary crossing and
// returns the crossed axis. Ties resolve to the lowest-numbered axis.
func (s *sweepState) stepForward() int {
	axis := 0
	if s.tNext[1] < s.tNext[axis] {
		axis = 1
	}
	if s.tNext[2] < s.tNext[axis] {
		axis = 2
	}

	dt := s.tNext[axis] - s.t
	s.t = s.tNext[axis]
	s.ldi[axis] += s.step[axis]
	s.tNext[axis] += s.tDelta[axis]

	for i := 0; i < 3; i++ {
		s.tr[i] += dt * s.normed[i]
		s.tri[i] = trailEdgeToInt(s.tr[i], s.step[i], s.epsilon)
	}

	s.axis = axis
	return axis
}

// checkFace queries every voxel covering the box's leading face on the
// given axis, in fixed nested order (x outer, y middle, z inner, each
// stepped by its direction of travel). No coordinate triple is queried
// twice within one call; the first solid voxel short-circuits.
func (s *sweepState) checkFace(getVoxel VoxelFunc, axis int) bool {
	stepx, stepy, stepz := s.step[0], s.step[1], s.step[2]

	x0, y0, z0 := s.tri[0], s.tri[1], s.tri[2]
	switch axis {
	case 0:
		x0 = s.ldi[0]
	case 1:
		y0 = s.ldi[1]
	case 2:
		z0 = s.ldi[2]
	}
	x1, y1, z1 := s.ldi[0]+stepx, s.ldi[1]+stepy, s.ldi[2]+stepz

	// leading edge real positions, for the sub-cell fractions
	lx := s.tr[0] + float64(stepx)*s.size[0]
	ly := s.tr[1] + float64(stepy)*s.size[1]
	lz := s.tr[2] + float64(stepz)*s.size[2]

	for x := x0; x != x1; x += stepx {
		fx := frac(lx - float64(x))
		for y := y0; y != y1; y += stepy {
			fy := frac(ly - float64(y))
			for z := z0; z != z1; z += stepz {
				if getVoxel(x, y, z, fx, fy, frac(lz-float64(z))) {
					return true
				}
			}
		}
	}
	return false
}

// handleCollision applies the partial movement up to the current crossing,
// snaps the crossed axis to the voxel boundary, and hands control to the
// callback. It reports whether the sweep is finished.
func (s *sweepState) handleCollision(onCollide CollideFunc) bool {
	s.cumulativeT += s.t
	done := s.t / s.maxT

	var left mgl64.Vec3
	for i := 0; i < 3; i++ {
		dv := s.vec[i] * done
		s.base[i] += dv
		s.max[i] += dv
		left[i] = s.vec[i] * (1 - done)
	}

	// snap the leading edge to the boundary, removing the float drift that
	// would otherwise let the box sink into the solid voxel
	if s.step[s.axis] > 0 {
		s.max[s.axis] = math.Round(s.max[s.axis])
	} else {
		s.base[s.axis] = math.Round(s.base[s.axis])
	}

	if onCollide != nil && onCollide(s.cumulativeT, s.axis, s.step[s.axis], &left) {
		return true
	}

	s.init(left)
	return s.maxT == 0
}
