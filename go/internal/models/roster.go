package models

import "sort"

// Roster is the room membership keyed by uid and ordered by join order.
// Ordinal position in the roster drives the turn-assignment arithmetic, so
// the ordering here must match the server's.
type Roster struct {
	players []Player
	index   map[string]int
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{index: make(map[string]int)}
}

// Replace swaps the entire membership for the given players. Players are
// ordered by join order; when the server omits join orders the payload order
// is preserved.
func (r *Roster) Replace(players []Player) {
	r.players = make([]Player, len(players))
	copy(r.players, players)

	ordered := false
	for _, p := range r.players {
		if p.JoinOrder != 0 {
			ordered = true
			break
		}
	}
	if ordered {
		sort.SliceStable(r.players, func(i, j int) bool {
			return r.players[i].JoinOrder < r.players[j].JoinOrder
		})
	}

	r.index = make(map[string]int, len(r.players))
	for i, p := range r.players {
		r.index[p.UID] = i
	}
}

// Get returns the player with the given uid.
func (r *Roster) Get(uid string) (Player, bool) {
	i, ok := r.index[uid]
	if !ok {
		return Player{}, false
	}
	return r.players[i], true
}

// Ordinal returns the 0-indexed position of the player in join order, or -1
// when the uid is not a member.
func (r *Roster) Ordinal(uid string) int {
	i, ok := r.index[uid]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether the uid is a current member.
func (r *Roster) Contains(uid string) bool {
	_, ok := r.index[uid]
	return ok
}

// Len returns the number of members.
func (r *Roster) Len() int {
	return len(r.players)
}

// OnlineCount returns the number of members currently marked online.
func (r *Roster) OnlineCount() int {
	n := 0
	for _, p := range r.players {
		if p.Online {
			n++
		}
	}
	return n
}

// SetOffline marks the player offline in place. Returns false when the uid
// is unknown.
func (r *Roster) SetOffline(uid string) bool {
	i, ok := r.index[uid]
	if !ok {
		return false
	}
	r.players[i].Online = false
	return true
}

// ApplyScores updates member scores from a uid to score mapping. Unknown
// uids are ignored.
func (r *Roster) ApplyScores(scores map[string]int) {
	for uid, score := range scores {
		if i, ok := r.index[uid]; ok {
			r.players[i].Score = score
		}
	}
}

// Players returns a copy of the membership in join order.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}
