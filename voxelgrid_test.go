package voxelsweep

import (
	"testing"

	"github.com/akmonengine/voxelsweep/box"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoxelGridSetSolid(t *testing.T) {
	grid := NewVoxelGrid(64)

	grid.Set(0, 0, 0)
	grid.Set(-3, 7, 100)
	grid.Set(-3, 7, 100) // duplicate, must stay a single entry

	assert.True(t, grid.Solid(0, 0, 0))
	assert.True(t, grid.Solid(-3, 7, 100))
	assert.False(t, grid.Solid(0, 1, 0))
	assert.False(t, grid.Solid(3, 7, 100))

	grid.Unset(-3, 7, 100)
	assert.False(t, grid.Solid(-3, 7, 100), "single Unset removes a twice-Set voxel")

	grid.Unset(50, 50, 50) // absent, no-op
}

func TestVoxelGridFillClear(t *testing.T) {
	grid := NewVoxelGrid(256)
	grid.Fill(CellKey{-2, 0, -2}, CellKey{2, 1, 2})

	for x := -2; x <= 2; x++ {
		for y := 0; y <= 1; y++ {
			for z := -2; z <= 2; z++ {
				require.True(t, grid.Solid(x, y, z))
			}
		}
	}
	assert.False(t, grid.Solid(0, 2, 0))
	assert.False(t, grid.Solid(-3, 0, 0))

	grid.Clear()
	assert.False(t, grid.Solid(0, 0, 0))
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"below", 5, 8},
		{"exact", 64, 64},
		{"above", 65, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextPowerOfTwo(tt.in); got != tt.want {
				t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVoxelGridHashRange(t *testing.T) {
	grid := NewVoxelGrid(64)

	for x := -20; x <= 20; x += 5 {
		for y := -20; y <= 20; y += 5 {
			for z := -20; z <= 20; z += 5 {
				h := grid.hashCell(CellKey{x, y, z})
				require.GreaterOrEqual(t, h, 0)
				require.Less(t, h, len(grid.buckets))
			}
		}
	}
}

// A box dropped onto a filled floor lands with its bottom exactly on the
// floor's top face.
func TestVoxelGridSweepLanding(t *testing.T) {
	grid := NewVoxelGrid(256)
	grid.Fill(CellKey{-5, 0, -5}, CellKey{5, 0, 5})

	b := box.New(mgl64.Vec3{0.3, 2.5, 0.3}, mgl64.Vec3{0.5, 0.5, 0.5})

	rec := hitRecorder{stop: true}
	dist := Sweep(grid.Voxels(), b, mgl64.Vec3{0, -5, 0}, rec.collide)

	require.Len(t, rec.dists, 1)
	assert.Equal(t, 1, rec.axes[0])
	assert.Equal(t, -1, rec.dirs[0])
	assert.InDelta(t, 1.5, dist, 1e-9)
	assert.Equal(t, 1.0, b.Base[1])
}
