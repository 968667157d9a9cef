package main

import (
	"fmt"
	"math"
	"time"
)

const (
	ProjectileDamage = 25
	ProjectileSpeed  = 200.0 // units/s along the firing direction
	ProjectileTTL    = 5 * time.Second
	MaxProjectiles   = 100
	HitRadius        = 7.5
	ProjectileRadius = 0.5

	MaxProjectileY = 100.0
	MinProjectileY = -50.0

	// Velocity integration uses a fixed scale tuned against a 30Hz
	// reference with a 3x boost, not the actual 100ms tick period.
	// Changing this changes perceived bullet speed for every client.
	ProjectileDTScale = 0.033 * 3
)

// Projectile is a live bullet owned by the shooter identified by PlayerID
type Projectile struct {
	ID        string
	PlayerID  string
	Position  Vec3
	Direction Vec3
	Velocity  Vec3
	Damage    int
	CreatedAt time.Time
}

// projectileID derives an id from the shooter and creation time
func projectileID(playerID string, now time.Time) string {
	return fmt.Sprintf("%s-%d", playerID, now.UnixMilli())
}

// NewProjectile creates a projectile fired by the given player
func NewProjectile(playerID string, pos, dir, vel Vec3, now time.Time) *Projectile {
	return &Projectile{
		ID:        projectileID(playerID, now),
		PlayerID:  playerID,
		Position:  pos,
		Direction: dir,
		Velocity:  vel,
		Damage:    ProjectileDamage,
		CreatedAt: now,
	}
}

// Advance integrates one tick of motion
func (pr *Projectile) Advance() {
	pr.Position.X += pr.Velocity.X * ProjectileDTScale
	pr.Position.Y += pr.Velocity.Y * ProjectileDTScale
	pr.Position.Z += pr.Velocity.Z * ProjectileDTScale
}

// Expired reports whether the projectile outlived its TTL or left the
// map/height envelope
func (pr *Projectile) Expired(now time.Time) bool {
	if now.Sub(pr.CreatedAt) > ProjectileTTL {
		return true
	}
	return math.Abs(pr.Position.X) > MapBoundary ||
		math.Abs(pr.Position.Z) > MapBoundary ||
		pr.Position.Y > MaxProjectileY ||
		pr.Position.Y < MinProjectileY
}

// ToState converts to the protocol snapshot entry
func (pr *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:        pr.ID,
		PlayerID:  pr.PlayerID,
		Position:  pr.Position,
		Direction: pr.Direction,
		Velocity:  pr.Velocity,
		Damage:    pr.Damage,
		CreatedAt: pr.CreatedAt.UnixMilli(),
	}
}
