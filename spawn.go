package main

import "math/rand"

const (
	teamSpawnAttempts = 50
	botSpawnAttempts  = 100
	spawnClearRadius  = 1.0
	teamSpawnHeight   = 10.0 // spawn above ground, client physics drops the player
	teamSpawnBand     = 60.0 // side length of the square spawn area per team
	teamBaseOffset    = 200.0
)

// FindTeamSpawn samples the team's spawn band (a 60x60 square offset
// toward the team's base along Z) until it finds an unblocked point.
// After exhausting the attempt budget it falls back to a fixed position
// just outside the base, so the join path has bounded latency.
func FindTeamSpawn(team int) Vec3 {
	zOff := -teamBaseOffset
	if team == 1 {
		zOff = teamBaseOffset
	}
	for i := 0; i < teamSpawnAttempts; i++ {
		p := Vec3{
			X: rand.Float64()*teamSpawnBand - teamSpawnBand/2,
			Y: teamSpawnHeight,
			Z: rand.Float64()*teamSpawnBand - teamSpawnBand/2 + zOff,
		}
		if !IsBlocked(p, spawnClearRadius) {
			return p
		}
	}
	if team == 1 {
		return Vec3{X: 0, Y: teamSpawnHeight, Z: 150}
	}
	return Vec3{X: 0, Y: teamSpawnHeight, Z: -150}
}

// FindBotSpawn samples the full 400x400 center of the map for an
// unblocked ground-level point, falling back to the map center.
func FindBotSpawn() Vec3 {
	for i := 0; i < botSpawnAttempts; i++ {
		p := Vec3{
			X: rand.Float64()*400 - 200,
			Y: GroundHeight,
			Z: rand.Float64()*400 - 200,
		}
		if !IsBlocked(p, spawnClearRadius) {
			return p
		}
	}
	return Vec3{X: 0, Y: GroundHeight, Z: 0}
}
