package main

import (
	"fmt"

	"github.com/akmonengine/voxelsweep"
	"github.com/akmonengine/voxelsweep/box"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene builds a small voxel world: a floor at y=0 and a wall at x=6,
// with a player-sized box hovering above the floor.
func SetupScene() (*voxelsweep.VoxelGrid, *box.Box) {
	grid := voxelsweep.NewVoxelGrid(1024)
	grid.Fill(voxelsweep.CellKey{X: -10, Y: 0, Z: -10}, voxelsweep.CellKey{X: 10, Y: 0, Z: 10})
	grid.Fill(voxelsweep.CellKey{X: 6, Y: 1, Z: -10}, voxelsweep.CellKey{X: 6, Y: 5, Z: 10})

	player := box.New(mgl64.Vec3{0.2, 4.5, 0.2}, mgl64.Vec3{0.6, 1.8, 0.6})

	return grid, player
}

func main() {
	grid, player := SetupScene()

	fmt.Println("Falling box demo")
	fmt.Println("================")
	fmt.Printf("player: %v -> %v\n", player.Base, player.Max)

	// one big displacement: forward along x while falling; slide on every
	// surface instead of stopping
	movement := mgl64.Vec3{8, -9, 0}
	fmt.Printf("moving by %v\n", movement)

	dist := voxelsweep.Sweep(grid.Voxels(), player, movement, func(dist float64, axis, dir int, left *mgl64.Vec3) bool {
		fmt.Printf("  hit on axis %d (dir %+d) after %.3f, remaining %v\n", axis, dir, dist, *left)
		left[axis] = 0
		return false
	})

	fmt.Printf("travelled %.3f\n", dist)
	fmt.Printf("player now: %v -> %v\n", player.Base, player.Max)

	// a second, unobstructed hop straight up
	dist = voxelsweep.Sweep(grid.Voxels(), player, mgl64.Vec3{0, 1.5, 0}, nil)
	fmt.Printf("hopped %.3f up, player: %v -> %v\n", dist, player.Base, player.Max)
}
