package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// TickInterval is the period of the broadcast/physics loop
const TickInterval = 100 * time.Millisecond

// GameModeTeamDM is the join-intent mode string for team deathmatch
const GameModeTeamDM = "teamDeathmatch"

// Broadcaster is the outbound side of a connection
type Broadcaster interface {
	SendJSON(msg interface{})
	SendRaw(data []byte)
	SendBinary(data []byte)
}

// Game owns the authoritative world state: all players (human and bot),
// projectiles, and teams, plus the client registry used for fan-out. One
// mutex guards all collections; it is held for the duration of a single
// intent and never across a network write (sends go through buffered
// per-client channels).
type Game struct {
	mu          sync.Mutex
	players     map[string]*Player
	projectiles map[string]*Projectile
	teams       map[string]*Team
	clients     map[string]Broadcaster
	bots        map[string]*botRunner
	projTimers  map[string]*time.Timer
	running     bool
	stop        chan struct{}
}

// NewGame creates an empty world
func NewGame() *Game {
	return &Game{
		players:     make(map[string]*Player),
		projectiles: make(map[string]*Projectile),
		teams:       make(map[string]*Team),
		clients:     make(map[string]Broadcaster),
		bots:        make(map[string]*botRunner),
		projTimers:  make(map[string]*time.Timer),
		stop:        make(chan struct{}),
	}
}

// Run starts the world tick loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the tick loop and all bot runners
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.running {
		return
	}
	g.running = false
	close(g.stop)
	for id, r := range g.bots {
		close(r.stop)
		delete(g.bots, id)
	}
	for id, t := range g.projTimers {
		t.Stop()
		delete(g.projTimers, id)
	}
}

// update runs one world tick: snapshot broadcast first, then projectile
// integration, hit resolution, and expiry.
func (g *Game) update() {
	now := time.Now()

	g.mu.Lock()
	snap := g.snapshotLocked()
	data, err := msgpack.Marshal(Envelope{T: MsgGameState, Data: snap})
	if err == nil {
		for _, c := range g.clients {
			c.SendBinary(data)
		}
	} else {
		log.Printf("snapshot encode error: %v", err)
	}

	g.advanceProjectilesLocked(now)
	g.updateMetricsLocked()
	g.mu.Unlock()

	metricTicksTotal.Inc()
}

// snapshotLocked builds the full state message. Slices are always
// non-nil so clients see empty arrays, not null.
func (g *Game) snapshotLocked() GameStateMsg {
	snap := GameStateMsg{
		Players:      make([]PlayerState, 0, len(g.players)),
		Projectiles:  make([]ProjectileState, 0, len(g.projectiles)),
		TargetBoards: []TargetBoard{},
		World:        worldInfo(),
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, p.ToState())
	}
	for _, pr := range g.projectiles {
		snap.Projectiles = append(snap.Projectiles, pr.ToState())
	}
	return snap
}

// advanceProjectilesLocked integrates every live projectile and resolves
// geometry hits, player hits, and expiry, in that order.
func (g *Game) advanceProjectilesLocked(now time.Time) {
	for id, pr := range g.projectiles {
		pr.Advance()

		if IsBlocked(pr.Position, ProjectileRadius) {
			g.removeProjectileLocked(id)
			continue
		}

		hit := false
		for pid, p := range g.players {
			if pid == pr.PlayerID {
				continue
			}
			if Distance(pr.Position, p.Position) < HitRadius {
				g.removeProjectileLocked(id)
				g.applyHitLocked(pr.PlayerID, pid, pr.Damage)
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		if pr.Expired(now) {
			g.removeProjectileLocked(id)
		}
	}
}

// applyHitLocked applies damage and scoring for one hit, from either the
// tick collision path or a client hit claim. The shooter may already be
// gone; the hit still lands. A target already at zero health is awaiting
// respawn, so the hit is a no-op.
func (g *Game) applyHitLocked(shooterID, targetID string, damage int) {
	target, ok := g.players[targetID]
	if !ok || target.Health <= 0 {
		return
	}
	shooter := g.players[shooterID]

	died := target.ApplyDamage(damage)
	if shooter != nil {
		shooter.Score += HitScore
	}
	if died {
		if shooter != nil {
			shooter.Score += KillScore
		}
		if target.IsBot {
			g.scheduleBotRespawn(targetID)
		} else {
			target.RespawnAtBase()
		}
	}

	score := 0
	if shooter != nil {
		score = shooter.Score
	}
	metricHitsTotal.Inc()
	g.broadcastAllLocked(Envelope{T: MsgPlayerHitEvent, Data: HitEventMsg{
		TargetID:     targetID,
		ShooterID:    shooterID,
		Damage:       damage,
		TargetHealth: target.Health,
		ShooterScore: score,
	}})
}

// scheduleBotRespawn revives a dead bot after a delay. The bot may have
// been torn down with its owner in the meantime, so the callback
// re-checks the record before touching it.
func (g *Game) scheduleBotRespawn(botID string) {
	time.AfterFunc(BotRespawnDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		bot, ok := g.players[botID]
		if !ok || bot.Health > 0 {
			return
		}
		bot.Position = FindBotSpawn()
		bot.Health = PlayerMaxHealth
	})
}

// spawnProjectileLocked registers a projectile, schedules its guaranteed
// removal at TTL, and announces it to everyone including the shooter.
func (g *Game) spawnProjectileLocked(pr *Projectile) {
	g.projectiles[pr.ID] = pr
	id := pr.ID
	g.projTimers[id] = time.AfterFunc(ProjectileTTL, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.removeProjectileLocked(id)
	})
	g.broadcastAllLocked(Envelope{T: MsgProjectileCreated, Data: pr.ToState()})
}

// removeProjectileLocked deletes a projectile and cancels its expiry
// timer. Idempotent: the tick path and the timer can both race here.
func (g *Game) removeProjectileLocked(id string) {
	if _, ok := g.projectiles[id]; !ok {
		return
	}
	delete(g.projectiles, id)
	if t, ok := g.projTimers[id]; ok {
		t.Stop()
		delete(g.projTimers, id)
	}
	g.broadcastAllLocked(Envelope{T: MsgProjectileDestroyed, Data: id})
}

// RegisterClient adds a connection to the fan-out set before any join,
// so team lobby events reach players still on the team screen.
func (g *Game) RegisterClient(id string, c Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[id] = c
}

// HandleJoin admits a player, assigns a team, spawns their bots, sends
// them the full snapshot, and announces them. Joining twice is a no-op.
func (g *Game) HandleJoin(id string, msg JoinMsg, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.players[id]; ok {
		return
	}

	team := rand.Intn(2)
	if msg.GameMode == GameModeTeamDM && msg.TeamCode != "" {
		if t, ok := g.teams[msg.TeamCode]; ok {
			// Deterministic assignment by join order: even index in the
			// deduplicated [leader, members...] list is team 0.
			if t.memberIndex(id)%2 == 0 {
				team = 0
			} else {
				team = 1
			}
		}
	}

	name := msg.Name
	if name == "" {
		name = defaultPlayerName(id)
	}

	player := NewPlayer(id, name, team)
	g.players[id] = player
	g.clients[id] = client

	for i := 0; i < BotsPerPlayer; i++ {
		g.spawnBotLocked(id, i)
	}

	if data, err := msgpack.Marshal(Envelope{T: MsgGameState, Data: g.snapshotLocked()}); err == nil {
		client.SendBinary(data)
	}
	g.broadcastOthersLocked(id, Envelope{T: MsgPlayerJoined, Data: player.ToState()})

	log.Printf("player %s (%s) joined on team %d", id, name, team)
}

// HandleMove validates and applies a movement intent, then broadcasts
// the corrected state to everyone but the mover.
func (g *Game) HandleMove(id string, msg MoveMsg) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[id]
	if !ok {
		return
	}

	newPos := parseVec3(msg.Position, p.Position)
	newPos = ResolveSlide(p.Position, newPos, PlayerRadius)
	newPos.X = Clamp(newPos.X, -MapBoundary, MapBoundary)
	newPos.Z = Clamp(newPos.Z, -MapBoundary, MapBoundary)
	if newPos.Y < GroundHeight {
		newPos.Y = GroundHeight
	}

	p.Position = newPos
	p.Rotation = parseVec3(msg.Rotation, p.Rotation)
	p.Velocity = parseVec3(msg.Velocity, p.Velocity)
	p.LastUpdate = time.Now()

	g.broadcastOthersLocked(id, Envelope{T: MsgPlayerMoved, Data: MovedMsg{
		ID:       id,
		Position: p.Position,
		Rotation: p.Rotation,
		Velocity: p.Velocity,
	}})
}

// HandleShoot creates a projectile from a shoot intent. Shots are
// silently dropped while the projectile cap is reached.
func (g *Game) HandleShoot(id string, msg ShootMsg) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[id]
	if !ok {
		return
	}
	if len(g.projectiles) >= MaxProjectiles {
		return
	}

	now := time.Now()
	dir := parseVec3(msg.Direction, p.FacingDir())
	pos := parseVec3(msg.Position, p.Position)
	vel := parseVec3(msg.Velocity, Scale(dir, ProjectileSpeed))

	g.spawnProjectileLocked(NewProjectile(id, pos, dir, vel, now))
}

// HandleHit applies a client-asserted hit claim. This trusts the client
// about the hit itself; only existence and damage bounds are checked.
// The tick collision path can land the same shot a second time.
func (g *Game) HandleHit(shooterID string, msg HitMsg) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.players[shooterID]; !ok {
		return
	}
	if _, ok := g.players[msg.TargetID]; !ok {
		return
	}
	damage := msg.Damage
	if damage < 0 {
		damage = 0
	} else if damage > PlayerMaxHealth {
		damage = PlayerMaxHealth
	}
	g.applyHitLocked(shooterID, msg.TargetID, damage)
}

// RemovePlayer tears down everything tied to a connection: the player
// record, team membership, owned bots, and the departure announcement.
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, existed := g.players[id]
	delete(g.players, id)
	delete(g.clients, id)

	g.leaveTeamsLocked(id)

	for botID, r := range g.bots {
		if r.ownerID != id {
			continue
		}
		close(r.stop)
		delete(g.bots, botID)
		delete(g.players, botID)
	}

	if existed {
		g.broadcastAllLocked(Envelope{T: MsgPlayerLeft, Data: id})
		log.Printf("player %s left", id)
	}
}

// PlayerCount returns the number of live players including bots
func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.players)
}

// broadcastAllLocked marshals once and fans out to every client
func (g *Game) broadcastAllLocked(env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	for _, c := range g.clients {
		c.SendRaw(data)
	}
}

// broadcastOthersLocked fans out to every client except one
func (g *Game) broadcastOthersLocked(excludeID string, env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	for id, c := range g.clients {
		if id == excludeID {
			continue
		}
		c.SendRaw(data)
	}
}

// sendToLocked delivers an event to a single player if still connected
func (g *Game) sendToLocked(id string, env Envelope) {
	if c, ok := g.clients[id]; ok {
		c.SendJSON(env)
	}
}

// updateMetricsLocked refreshes the live gauges once per tick
func (g *Game) updateMetricsLocked() {
	bots := len(g.bots)
	metricPlayersOnline.Set(float64(len(g.players) - bots))
	metricBotsActive.Set(float64(bots))
	metricProjectilesLive.Set(float64(len(g.projectiles)))
	metricTeamsActive.Set(float64(len(g.teams)))
}
