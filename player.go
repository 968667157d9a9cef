package main

import (
	"math"
	"time"
)

const (
	PlayerMaxHealth = 100
	PlayerRadius    = 1.0
	HitScore        = 10
	KillScore       = 50
)

// Player is the authoritative record for a human or bot combatant.
// The wander heading and last-shot time live directly on the record so
// the bot controller never captures mutable state outside the store.
type Player struct {
	ID         string
	Name       string
	Position   Vec3
	Rotation   Vec3 // Euler radians; Y is the yaw used for aiming
	Velocity   Vec3
	Health     int
	Score      int
	Team       int
	IsBot      bool
	LastUpdate time.Time

	// Bot AI state
	MoveDir   Vec3
	HasDir    bool
	ForceTurn bool
	LastShot  time.Time
}

// NewPlayer creates a human player at a team spawn, facing the enemy base
func NewPlayer(id, name string, team int) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Position:   FindTeamSpawn(team),
		Rotation:   spawnRotation(team),
		Health:     PlayerMaxHealth,
		Team:       team,
		LastUpdate: time.Now(),
	}
}

// NewBot creates a bot player somewhere on the open map
func NewBot(id, name string) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Position:   FindBotSpawn(),
		Health:     PlayerMaxHealth,
		Team:       1,
		IsBot:      true,
		LastUpdate: time.Now(),
	}
}

// spawnRotation faces team 0 south toward the enemy and team 1 north
func spawnRotation(team int) Vec3 {
	if team == 0 {
		return Vec3{Y: math.Pi}
	}
	return Vec3{}
}

// ApplyDamage reduces health, clamped at zero, and reports death.
// A player already at zero is awaiting respawn and takes no damage.
func (p *Player) ApplyDamage(damage int) bool {
	if p.Health <= 0 {
		return false
	}
	p.Health -= damage
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// RespawnAtBase resets a human player at their team spawn
func (p *Player) RespawnAtBase() {
	p.Health = PlayerMaxHealth
	p.Position = FindTeamSpawn(p.Team)
	p.Rotation = spawnRotation(p.Team)
	p.Velocity = Vec3{}
}

// FacingDir returns the horizontal unit vector for the player's yaw.
// Yaw follows the atan2(dx, dz) convention: 0 looks down +Z.
func (p *Player) FacingDir() Vec3 {
	return Vec3{X: math.Sin(p.Rotation.Y), Z: math.Cos(p.Rotation.Y)}
}

// ToState converts to the protocol snapshot entry
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:         p.ID,
		Name:       p.Name,
		Position:   p.Position,
		Rotation:   p.Rotation,
		Velocity:   p.Velocity,
		Health:     p.Health,
		Score:      p.Score,
		Team:       p.Team,
		IsBot:      p.IsBot,
		LastUpdate: p.LastUpdate.UnixMilli(),
	}
}
