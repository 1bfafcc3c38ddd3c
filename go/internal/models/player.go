package models

// Player is one member of the room roster as reported by the server.
// The roster is replaced wholesale on every membership update; the client
// never merges unknown fields into it.
type Player struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Online    bool   `json:"online"`
	JoinOrder int    `json:"joinOrder"`
}

// DisplayName returns a readable name for the player, falling back to a
// short identifier when the server never supplied one.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return ShortName(p.UID)
}

// ShortName derives a placeholder name from the first 4 characters of a uid.
func ShortName(uid string) string {
	if uid == "" {
		return "Player Unknown"
	}
	if len(uid) > 4 {
		uid = uid[:4]
	}
	return "Player " + uid
}
