package main

// World constants. The map is a 500x500 square centered on the origin;
// the width/height/gravity block is advisory metadata for clients.
const (
	MapBoundary  = 250.0 // |x|,|z| limit for players and projectiles
	GroundHeight = 1.8   // minimum player eye height
	WorldWidth   = 1000.0
	WorldHeight  = 1000.0
	WorldGravity = -9.8
)

// Solid object types
const (
	SolidBase     = "base"
	SolidBuilding = "building"
	SolidBox      = "box"
)

// NoTeam marks a solid that belongs to neither team
const NoTeam = -1

// SolidObject is a static axis-aligned volume used for collision only.
// X/Y/Z is the center, W/H/D are full extents. All solids rest on the
// ground plane, so Y is always H/2.
type SolidObject struct {
	Type string
	Team int
	X    float64
	Y    float64
	Z    float64
	W    float64
	H    float64
	D    float64
}

// worldSolids is the server's authoritative copy of the map geometry.
// Clients render their own copy; only this list is enforced.
var worldSolids = []SolidObject{
	// Team bases at the north and south ends
	{Type: SolidBase, Team: 0, X: 0, Y: 7.5, Z: -200, W: 40, H: 15, D: 40},
	{Type: SolidBase, Team: 1, X: 0, Y: 7.5, Z: 200, W: 40, H: 15, D: 40},

	// Mid-field buildings
	{Type: SolidBuilding, Team: NoTeam, X: -100, Y: 12.5, Z: -60, W: 30, H: 25, D: 30},
	{Type: SolidBuilding, Team: NoTeam, X: 100, Y: 12.5, Z: 60, W: 30, H: 25, D: 30},
	{Type: SolidBuilding, Team: NoTeam, X: -120, Y: 10, Z: 100, W: 25, H: 20, D: 25},
	{Type: SolidBuilding, Team: NoTeam, X: 120, Y: 10, Z: -100, W: 25, H: 20, D: 25},

	// Scattered cover boxes
	{Type: SolidBox, Team: NoTeam, X: -40, Y: 2.5, Z: 30, W: 8, H: 5, D: 8},
	{Type: SolidBox, Team: NoTeam, X: 50, Y: 2.5, Z: -20, W: 8, H: 5, D: 8},
	{Type: SolidBox, Team: NoTeam, X: -70, Y: 3, Z: -130, W: 10, H: 6, D: 10},
	{Type: SolidBox, Team: NoTeam, X: 70, Y: 3, Z: 130, W: 10, H: 6, D: 10},
	{Type: SolidBox, Team: NoTeam, X: 20, Y: 2.5, Z: 80, W: 8, H: 5, D: 8},
	{Type: SolidBox, Team: NoTeam, X: -30, Y: 2.5, Z: -80, W: 8, H: 5, D: 8},
}

// worldInfo returns the advisory metadata block included in snapshots
func worldInfo() WorldInfo {
	return WorldInfo{Width: WorldWidth, Height: WorldHeight, Gravity: WorldGravity}
}
