package main

import (
	"errors"
	"log"
	"time"
)

// MaxTeamSize caps team membership
const MaxTeamSize = 5

// Typed team errors; the text is surfaced verbatim in teamError events
var (
	ErrTeamNotFound = errors.New("Team not found")
	ErrTeamFull     = errors.New("Team is full")
	ErrNotLeader    = errors.New("Only team leader can start deathmatch")
)

// Team is a pre-match grouping keyed by a client-supplied code. Codes
// are not checked for uniqueness: a second create with the same code
// replaces the first.
type Team struct {
	Code      string
	Leader    string
	Members   []TeamMember
	CreatedAt time.Time
}

// hasMember reports whether id is already on the roster
func (t *Team) hasMember(id string) bool {
	for _, m := range t.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// memberIndex returns the position of id in the deduplicated
// [leader, members...] list, or -1. Join-order parity over this list
// decides deathmatch team assignment.
func (t *Team) memberIndex(id string) int {
	ids := []string{t.Leader}
	for _, m := range t.Members {
		seen := false
		for _, known := range ids {
			if known == m.ID {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, m.ID)
		}
	}
	for i, known := range ids {
		if known == id {
			return i
		}
	}
	return -1
}

// removeMember drops id from the roster, reporting whether it was there
func (t *Team) removeMember(id string) bool {
	for i, m := range t.Members {
		if m.ID == id {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return true
		}
	}
	return false
}

// CreateTeam registers a team with the creator as leader and sole
// member, replacing any team already using the code.
func (g *Game) CreateTeam(id, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.teams[code] = &Team{
		Code:      code,
		Leader:    id,
		Members:   []TeamMember{{ID: id, Name: defaultPlayerName(id)}},
		CreatedAt: time.Now(),
	}
	g.sendToLocked(id, Envelope{T: MsgTeamCreated, Data: TeamCreatedMsg{TeamCode: code}})
	log.Printf("team %s created by %s", code, id)
}

// JoinTeam appends a member and notifies the whole roster. Unknown
// codes and full teams yield a teamError and no mutation; re-joining
// is idempotent.
func (g *Game) JoinTeam(id, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	team, ok := g.teams[code]
	if !ok {
		g.sendTeamErrorLocked(id, ErrTeamNotFound)
		return
	}

	if !team.hasMember(id) {
		if len(team.Members) >= MaxTeamSize {
			g.sendTeamErrorLocked(id, ErrTeamFull)
			return
		}
		member := TeamMember{ID: id, Name: defaultPlayerName(id)}
		team.Members = append(team.Members, member)
		for _, m := range team.Members {
			g.sendToLocked(m.ID, Envelope{T: MsgTeamMemberJoined, Data: TeamMemberJoinedMsg{Member: member}})
		}
	}

	g.sendToLocked(id, Envelope{T: MsgTeamJoined, Data: TeamJoinedMsg{
		TeamCode: code,
		Members:  append([]TeamMember(nil), team.Members...),
		IsLeader: id == team.Leader,
		LeaderID: team.Leader,
	}})
}

// StartTeamDM fans the start event out to the leader and every member.
// Only the recorded leader may trigger it.
func (g *Game) StartTeamDM(id, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	team, ok := g.teams[code]
	if !ok {
		g.sendTeamErrorLocked(id, ErrTeamNotFound)
		return
	}
	if team.Leader != id {
		g.sendTeamErrorLocked(id, ErrNotLeader)
		return
	}

	notified := map[string]bool{}
	recipients := []string{team.Leader}
	for _, m := range team.Members {
		recipients = append(recipients, m.ID)
	}
	for _, mid := range recipients {
		if notified[mid] {
			continue
		}
		notified[mid] = true
		g.sendToLocked(mid, Envelope{T: MsgTeamDMStarted, Data: TeamDMStartedMsg{TeamCode: code}})
	}
	log.Printf("team %s started deathmatch", code)
}

// leaveTeamsLocked removes a departing player from every team roster,
// notifies the remaining members, and deletes teams left empty.
func (g *Game) leaveTeamsLocked(id string) {
	for code, team := range g.teams {
		if !team.removeMember(id) {
			continue
		}
		for _, m := range team.Members {
			g.sendToLocked(m.ID, Envelope{T: MsgTeamMemberLeft, Data: TeamMemberLeftMsg{MemberID: id}})
		}
		if len(team.Members) == 0 {
			delete(g.teams, code)
		}
	}
}

func (g *Game) sendTeamErrorLocked(id string, err error) {
	g.sendToLocked(id, Envelope{T: MsgTeamError, Data: TeamErrorMsg{Message: err.Error()}})
}
