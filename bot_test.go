package main

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestRandomBotName(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := randomBotName()
		found := false
		for _, prefix := range botNames {
			if strings.HasPrefix(name, prefix) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("name %q does not use a known prefix", name)
		}
	}
}

func TestRandomDirectionIsHorizontalUnit(t *testing.T) {
	for i := 0; i < 20; i++ {
		d := randomDirection()
		if d.Y != 0 {
			t.Errorf("direction %+v has vertical component", d)
		}
		if math.Abs(math.Sqrt(d.X*d.X+d.Z*d.Z)-1) > 1e-9 {
			t.Errorf("direction %+v is not unit length", d)
		}
	}
}

func TestBotTickFiresInRange(t *testing.T) {
	g := NewGame()
	bot := NewBot("bot_p1_0", "BotA1")
	bot.Position = Vec3{X: 200, Y: GroundHeight, Z: 0}
	target := &Player{ID: "p1", Name: "A", Health: PlayerMaxHealth, Position: Vec3{X: 220, Y: GroundHeight, Z: 0}}
	g.players["bot_p1_0"] = bot
	g.players["p1"] = target

	g.botTick("bot_p1_0", "p1")

	g.mu.Lock()
	count := len(g.projectiles)
	var pr *Projectile
	for _, p := range g.projectiles {
		pr = p
	}
	g.mu.Unlock()

	if count != 1 {
		t.Fatalf("bot 20 units from target should fire, %d projectiles", count)
	}
	if pr.PlayerID != "bot_p1_0" {
		t.Errorf("projectile owner = %q", pr.PlayerID)
	}
	// Aimed at the target: positive X, no drift on Z beyond the wander step
	if pr.Velocity.X <= 0 {
		t.Errorf("projectile velocity %+v not toward target", pr.Velocity)
	}
}

func TestBotTickHoldsFireOutOfRange(t *testing.T) {
	g := NewGame()
	bot := NewBot("bot_p1_0", "BotA1")
	bot.Position = Vec3{X: 200, Y: GroundHeight, Z: 0}
	target := &Player{ID: "p1", Name: "A", Health: PlayerMaxHealth, Position: Vec3{X: 150, Y: GroundHeight, Z: 0}}
	g.players["bot_p1_0"] = bot
	g.players["p1"] = target

	for i := 0; i < 10; i++ {
		g.botTick("bot_p1_0", "p1")
	}

	g.mu.Lock()
	count := len(g.projectiles)
	g.mu.Unlock()
	if count != 0 {
		t.Errorf("bot 50 units from target fired %d projectiles", count)
	}
}

func TestBotTickFireCooldown(t *testing.T) {
	g := NewGame()
	bot := NewBot("bot_p1_0", "BotA1")
	bot.Position = Vec3{X: 200, Y: GroundHeight, Z: 0}
	bot.LastShot = time.Now()
	target := &Player{ID: "p1", Name: "A", Health: PlayerMaxHealth, Position: Vec3{X: 210, Y: GroundHeight, Z: 0}}
	g.players["bot_p1_0"] = bot
	g.players["p1"] = target

	g.botTick("bot_p1_0", "p1")

	g.mu.Lock()
	count := len(g.projectiles)
	g.mu.Unlock()
	if count != 0 {
		t.Errorf("bot fired %d projectiles inside the cooldown window", count)
	}
}

func TestBotTickAimsAtTarget(t *testing.T) {
	g := NewGame()
	bot := NewBot("bot_p1_0", "BotA1")
	bot.Position = Vec3{X: 200, Y: GroundHeight, Z: 0}
	target := &Player{ID: "p1", Name: "A", Health: PlayerMaxHealth, Position: Vec3{X: 200, Y: GroundHeight, Z: 100}}
	g.players["bot_p1_0"] = bot
	g.players["p1"] = target

	g.botTick("bot_p1_0", "p1")

	// Target is roughly due +Z; one wander step barely moves the bot
	if math.Abs(bot.Rotation.Y) > 0.05 {
		t.Errorf("yaw = %v, want ~0 (facing +Z)", bot.Rotation.Y)
	}
}

func TestBotTickMissingRecords(t *testing.T) {
	g := NewGame()
	// Neither the bot nor the target exists; must be a silent no-op
	g.botTick("bot_p1_0", "p1")

	bot := NewBot("bot_p1_0", "BotA1")
	g.players["bot_p1_0"] = bot
	g.botTick("bot_p1_0", "p1")

	if g.PlayerCount() != 1 {
		t.Error("tick with missing target mutated the player store")
	}
}

func TestBotTickMoves(t *testing.T) {
	g := NewGame()
	bot := NewBot("bot_p1_0", "BotA1")
	bot.Position = Vec3{X: 200, Y: GroundHeight, Z: 0}
	target := &Player{ID: "p1", Name: "A", Health: PlayerMaxHealth, Position: Vec3{X: 150, Y: GroundHeight, Z: 0}}
	g.players["bot_p1_0"] = bot
	g.players["p1"] = target

	start := bot.Position
	g.botTick("bot_p1_0", "p1")

	dx := bot.Position.X - start.X
	dz := bot.Position.Z - start.Z
	step := math.Sqrt(dx*dx + dz*dz)
	if math.Abs(step-BotStep) > 1e-9 {
		t.Errorf("bot moved %v in one tick, want %v", step, BotStep)
	}
	if !bot.HasDir {
		t.Error("bot should hold a wander heading after its first tick")
	}
}

func TestSpawnBotLifecycle(t *testing.T) {
	g := NewGame()
	c := &mockBroadcaster{}
	g.HandleJoin("p1", JoinMsg{Name: "Alice"}, c)
	defer g.RemovePlayer("p1")

	g.mu.Lock()
	runners := make([]*botRunner, 0, len(g.bots))
	for _, r := range g.bots {
		runners = append(runners, r)
	}
	g.mu.Unlock()

	if len(runners) != BotsPerPlayer {
		t.Fatalf("runner count = %d, want %d", len(runners), BotsPerPlayer)
	}
	for _, r := range runners {
		if r.ownerID != "p1" {
			t.Errorf("runner owner = %q, want p1", r.ownerID)
		}
		g.mu.Lock()
		_, ok := g.players[r.botID]
		g.mu.Unlock()
		if !ok {
			t.Errorf("bot %s has a runner but no player record", r.botID)
		}
	}
}
