package main

import "encoding/json"

// Client -> Server message types
const (
	MsgPlayerJoin  = "playerJoin"
	MsgPlayerMove  = "playerMove"
	MsgPlayerShoot = "playerShoot"
	MsgPlayerHit   = "playerHit"
	MsgCreateTeam  = "createTeam"
	MsgJoinTeam    = "joinTeam"
	MsgStartTeamDM = "startTeamDeathmatch"
	MsgPing        = "ping"
)

// Server -> Client message types
const (
	MsgGameState           = "gameState"
	MsgPlayerJoined        = "playerJoined"
	MsgPlayerMoved         = "playerMoved"
	MsgPlayerLeft          = "playerLeft"
	MsgProjectileCreated   = "projectileCreated"
	MsgProjectileDestroyed = "projectileDestroyed"
	MsgPlayerHitEvent      = "playerHit"
	MsgTeamCreated         = "teamCreated"
	MsgTeamJoined          = "teamJoined"
	MsgTeamMemberJoined    = "teamMemberJoined"
	MsgTeamMemberLeft      = "teamMemberLeft"
	MsgTeamDMStarted       = "teamDeathmatchStarted"
	MsgTeamError           = "teamError"
	MsgPong                = "pong"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t" msgpack:"t"`
	Data interface{} `json:"d,omitempty" msgpack:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// Vec3 is a point or direction in world space
type Vec3 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

// JoinMsg is sent when a player wants to enter the arena
type JoinMsg struct {
	Name     string `json:"name"`
	GameMode string `json:"gameMode"`
	TeamCode string `json:"teamCode"`
}

// MoveMsg carries untrusted movement vectors. Fields stay raw so each
// vector can be validated independently and fall back as a whole to the
// player's last known value when any component is invalid.
type MoveMsg struct {
	Position json.RawMessage `json:"position"`
	Rotation json.RawMessage `json:"rotation"`
	Velocity json.RawMessage `json:"velocity"`
}

// ShootMsg carries the client-side muzzle state for a new projectile
type ShootMsg struct {
	Position  json.RawMessage `json:"position"`
	Direction json.RawMessage `json:"direction"`
	Velocity  json.RawMessage `json:"velocity"`
}

// HitMsg is a client-asserted hit claim
type HitMsg struct {
	TargetID string `json:"targetId"`
	Damage   int    `json:"damage"`
}

// TeamMsg addresses a team by its code
type TeamMsg struct {
	TeamCode string `json:"teamCode"`
}

// PlayerState is the per-player snapshot entry
type PlayerState struct {
	ID         string `json:"id" msgpack:"id"`
	Name       string `json:"name" msgpack:"name"`
	Position   Vec3   `json:"position" msgpack:"position"`
	Rotation   Vec3   `json:"rotation" msgpack:"rotation"`
	Velocity   Vec3   `json:"velocity" msgpack:"velocity"`
	Health     int    `json:"health" msgpack:"health"`
	Score      int    `json:"score" msgpack:"score"`
	Team       int    `json:"team" msgpack:"team"`
	IsBot      bool   `json:"isBot,omitempty" msgpack:"isBot,omitempty"`
	LastUpdate int64  `json:"lastUpdate" msgpack:"lastUpdate"`
}

// ProjectileState is the per-projectile snapshot entry
type ProjectileState struct {
	ID        string `json:"id" msgpack:"id"`
	PlayerID  string `json:"playerId" msgpack:"playerId"`
	Position  Vec3   `json:"position" msgpack:"position"`
	Direction Vec3   `json:"direction" msgpack:"direction"`
	Velocity  Vec3   `json:"velocity" msgpack:"velocity"`
	Damage    int    `json:"damage" msgpack:"damage"`
	CreatedAt int64  `json:"createdAt" msgpack:"createdAt"`
}

// TargetBoard is a legacy practice-target entry. The board list is always
// empty now but clients still expect the field in every snapshot.
type TargetBoard struct {
	ID       string `json:"id" msgpack:"id"`
	Position Vec3   `json:"position" msgpack:"position"`
}

// WorldInfo is advisory map metadata forwarded to clients
type WorldInfo struct {
	Width   float64 `json:"width" msgpack:"width"`
	Height  float64 `json:"height" msgpack:"height"`
	Gravity float64 `json:"gravity" msgpack:"gravity"`
}

// GameStateMsg is the full snapshot sent on join and broadcast every tick
type GameStateMsg struct {
	Players      []PlayerState     `json:"players" msgpack:"players"`
	Projectiles  []ProjectileState `json:"projectiles" msgpack:"projectiles"`
	TargetBoards []TargetBoard     `json:"targetBoards" msgpack:"targetBoards"`
	World        WorldInfo         `json:"world" msgpack:"world"`
}

// MovedMsg is broadcast to other players after a validated move
type MovedMsg struct {
	ID       string `json:"id"`
	Position Vec3   `json:"position"`
	Rotation Vec3   `json:"rotation"`
	Velocity Vec3   `json:"velocity"`
}

// HitEventMsg is broadcast after damage is applied
type HitEventMsg struct {
	TargetID     string `json:"targetId"`
	ShooterID    string `json:"shooterId"`
	Damage       int    `json:"damage"`
	TargetHealth int    `json:"targetHealth"`
	ShooterScore int    `json:"shooterScore"`
}

// TeamMember identifies one player on a team
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamCreatedMsg confirms team creation to the creator
type TeamCreatedMsg struct {
	TeamCode string `json:"teamCode"`
}

// TeamJoinedMsg confirms a join to the joining player
type TeamJoinedMsg struct {
	TeamCode string       `json:"teamCode"`
	Members  []TeamMember `json:"members"`
	IsLeader bool         `json:"isLeader"`
	LeaderID string       `json:"leaderId"`
}

// TeamMemberJoinedMsg notifies existing members of a new teammate
type TeamMemberJoinedMsg struct {
	Member TeamMember `json:"member"`
}

// TeamMemberLeftMsg notifies remaining members of a departure
type TeamMemberLeftMsg struct {
	MemberID string `json:"memberId"`
}

// TeamDMStartedMsg tells a member to re-join in team deathmatch mode
type TeamDMStartedMsg struct {
	TeamCode string `json:"teamCode"`
}

// TeamErrorMsg surfaces a team operation failure
type TeamErrorMsg struct {
	Message string `json:"message"`
}
