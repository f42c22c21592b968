package models

import "sync"

// Game represents a single Mafia game hosted by its owner
type Game struct {
	ID         string
	OwnerID    int64
	OwnerName  string
	Players    []*Player // join order until roles are assigned
	MaxPlayers int
	MaxMafia   int
	Status     GameStatus
	Winner     Faction

	// LastReveal points at the latest role image shown in the owner's chat
	LastReveal *MessageRef

	mu sync.RWMutex
}

// Lock acquires the game's write lock
func (g *Game) Lock() {
	g.mu.Lock()
}

// Unlock releases the game's write lock
func (g *Game) Unlock() {
	g.mu.Unlock()
}

// RLock acquires the game's read lock
func (g *Game) RLock() {
	g.mu.RLock()
}

// RUnlock releases the game's read lock
func (g *Game) RUnlock() {
	g.mu.RUnlock()
}

// Player returns the player with the given id (must be called with lock held)
func (g *Game) Player(id int64) (*Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// IsFull reports whether every seat is taken (must be called with lock held)
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.MaxPlayers
}

// CurrentStatus returns the status under the read lock
func (g *Game) CurrentStatus() GameStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Status
}
