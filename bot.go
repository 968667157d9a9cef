package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	BotsPerPlayer   = 3
	BotTickInterval = 100 * time.Millisecond
	BotStep         = 0.375 // units advanced along the heading per tick
	BotTurnChance   = 0.1   // chance per tick of picking a new heading
	BotFireInterval = 500 * time.Millisecond
	BotFireRange    = 30.0
	BotRespawnDelay = 2 * time.Second
	BotRadius       = 1.0

	// A resolved move smaller than this on both axes means the bot is
	// pinned against geometry and needs a new heading.
	botStuckEpsilon = 1e-4
)

var botNames = []string{"BotA", "BotB", "BotC", "BotD", "BotE", "BotF", "BotG", "BotH"}

func randomBotName() string {
	return fmt.Sprintf("%s%d", botNames[rand.Intn(len(botNames))], rand.Intn(1000))
}

// randomDirection returns a random horizontal unit vector
func randomDirection() Vec3 {
	angle := rand.Float64() * 2 * math.Pi
	return Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
}

// botRunner drives one bot on its own timer. It holds only ids: every
// tick re-reads the bot and its target from the store under the game
// mutex, because either can be deleted by a racing disconnect.
type botRunner struct {
	game    *Game
	botID   string
	ownerID string
	stop    chan struct{}
}

// spawnBotLocked creates a bot bound to a human player and starts its
// AI loop. Caller holds the game mutex.
func (g *Game) spawnBotLocked(ownerID string, n int) {
	botID := fmt.Sprintf("bot_%s_%d", ownerID, n)
	g.players[botID] = NewBot(botID, randomBotName())
	r := &botRunner{
		game:    g,
		botID:   botID,
		ownerID: ownerID,
		stop:    make(chan struct{}),
	}
	g.bots[botID] = r
	go r.run()
}

func (r *botRunner) run() {
	ticker := time.NewTicker(BotTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.game.botTick(r.botID, r.ownerID)
		case <-r.stop:
			return
		}
	}
}

// botTick runs one AI step: wander, slide against geometry, aim at the
// owning human, and fire when in range off cooldown. A missing bot or
// target record means a disconnect won the race, so skip silently.
func (g *Game) botTick(botID, targetID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	bot, ok := g.players[botID]
	if !ok {
		return
	}
	target, ok := g.players[targetID]
	if !ok {
		return
	}

	now := time.Now()

	if !bot.HasDir || bot.ForceTurn || rand.Float64() < BotTurnChance {
		bot.MoveDir = randomDirection()
		bot.HasDir = true
		bot.ForceTurn = false
	}

	cand := bot.Position
	cand.X += bot.MoveDir.X * BotStep
	cand.Z += bot.MoveDir.Z * BotStep

	resolved := ResolveSlide(bot.Position, cand, BotRadius)
	if math.Abs(resolved.X-bot.Position.X) > botStuckEpsilon ||
		math.Abs(resolved.Z-bot.Position.Z) > botStuckEpsilon {
		resolved.X = Clamp(resolved.X, -MapBoundary, MapBoundary)
		resolved.Z = Clamp(resolved.Z, -MapBoundary, MapBoundary)
		bot.Position = resolved
	} else {
		bot.ForceTurn = true
	}

	dx := target.Position.X - bot.Position.X
	dz := target.Position.Z - bot.Position.Z
	bot.Rotation.Y = math.Atan2(dx, dz)
	bot.LastUpdate = now

	if now.Sub(bot.LastShot) < BotFireInterval {
		return
	}
	dist := math.Sqrt(dx*dx + dz*dz)
	if dist > BotFireRange || dist == 0 {
		return
	}
	if len(g.projectiles) >= MaxProjectiles {
		return
	}

	bot.LastShot = now
	dir := Vec3{X: dx / dist, Z: dz / dist}
	g.spawnProjectileLocked(NewProjectile(botID, bot.Position, dir, Scale(dir, ProjectileSpeed), now))
}
