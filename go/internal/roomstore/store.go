package roomstore

// Store persists the current room identity across reconnects: two string
// entries, the room id and the human-entered room code. Written on a
// successful join or create, cleared on leave, logout and game end.
type Store interface {
	Save(roomID, roomCode string) error
	Load() (roomID, roomCode string, ok bool)
	Clear() error
}

// Memory is an in-process Store, used in tests and as a fallback when no
// state path is configured.
type Memory struct {
	roomID   string
	roomCode string
	saved    bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save records the room pair.
func (m *Memory) Save(roomID, roomCode string) error {
	m.roomID = roomID
	m.roomCode = roomCode
	m.saved = true
	return nil
}

// Load returns the recorded pair, if any.
func (m *Memory) Load() (string, string, bool) {
	if !m.saved {
		return "", "", false
	}
	return m.roomID, m.roomCode, true
}

// Clear forgets the recorded pair.
func (m *Memory) Clear() error {
	m.roomID = ""
	m.roomCode = ""
	m.saved = false
	return nil
}
