package voxelsweep

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a voxel in the 3D grid
type CellKey struct {
	X, Y, Z int
}

// VoxelGrid - sparse set of solid voxels, hashed into power-of-two buckets.
// It exists for tests, examples and small worlds; the sweep itself only
// sees a VoxelFunc and works against any backing store.
type VoxelGrid struct {
	buckets  [][]CellKey
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewVoxelGrid creates a grid sized for roughly numVoxels solid voxels.
func NewVoxelGrid(numVoxels int) *VoxelGrid {
	numBuckets := nextPowerOfTwo(numVoxels)

	return &VoxelGrid{
		buckets:  make([][]CellKey, numBuckets),
		cellMask: numBuckets - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of 2
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Set marks the voxel at (x, y, z) solid.
func (g *VoxelGrid) Set(x, y, z int) {
	key := CellKey{x, y, z}
	idx := g.hashCell(key)

	for _, k := range g.buckets[idx] {
		if k == key {
			return
		}
	}
	g.buckets[idx] = append(g.buckets[idx], key)
}

// Unset clears the voxel at (x, y, z).
func (g *VoxelGrid) Unset(x, y, z int) {
	key := CellKey{x, y, z}
	idx := g.hashCell(key)

	bucket := g.buckets[idx]
	for i, k := range bucket {
		if k == key {
			g.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Fill marks every voxel in the inclusive block [min, max] solid.
func (g *VoxelGrid) Fill(min, max CellKey) {
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				g.Set(x, y, z)
			}
		}
	}
}

// Clear empties the grid, keeping the buckets allocated.
func (g *VoxelGrid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// Solid reports whether the voxel at (x, y, z) is solid.
func (g *VoxelGrid) Solid(x, y, z int) bool {
	key := CellKey{x, y, z}
	for _, k := range g.buckets[g.hashCell(key)] {
		if k == key {
			return true
		}
	}
	return false
}

// Voxels adapts the grid to the sweep's oracle signature. The sub-cell
// fractions are ignored: a grid voxel is solid through its whole cell.
func (g *VoxelGrid) Voxels() VoxelFunc {
	return func(x, y, z int, _, _, _ float64) bool {
		return g.Solid(x, y, z)
	}
}

// hashCell - hashes a voxel towards a bucket index
func (g *VoxelGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
