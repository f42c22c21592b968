package store

import (
	"sync"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// GameStore keeps games by id and the game each user currently belongs to
type GameStore struct {
	games     map[string]*models.Game
	userGames map[int64]string // userID -> gameID
	mu        sync.RWMutex
}

// NewGameStore creates a new game store
func NewGameStore() *GameStore {
	return &GameStore{
		games:     make(map[string]*models.Game),
		userGames: make(map[int64]string),
	}
}

// Get retrieves a game by id
func (s *GameStore) Get(id string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, exists := s.games[id]
	return g, exists
}

// Set stores a game
func (s *GameStore) Set(id string, g *models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[id] = g
}

// Delete removes a game together with the bindings of the given users
func (s *GameStore) Delete(id string, userIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	for _, uid := range userIDs {
		if s.userGames[uid] == id {
			delete(s.userGames, uid)
		}
	}
}

// Exists checks if a game id is taken
func (s *GameStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.games[id]
	return exists
}

// Bind records the game a user currently belongs to
func (s *GameStore) Bind(userID int64, gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userGames[userID] = gameID
}

// Unbind forgets a user's game binding
func (s *GameStore) Unbind(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.userGames, userID)
}

// GameFor returns the game a user is bound to. A binding to a game that no
// longer exists is dropped and reported as absent.
func (s *GameStore) GameFor(userID int64) (*models.Game, bool) {
	s.mu.RLock()
	id, bound := s.userGames[userID]
	var g *models.Game
	if bound {
		g = s.games[id]
	}
	s.mu.RUnlock()

	if !bound {
		return nil, false
	}
	if g == nil {
		s.mu.Lock()
		if s.userGames[userID] == id {
			delete(s.userGames, userID)
		}
		s.mu.Unlock()
		return nil, false
	}
	return g, true
}

// Len returns the number of stored games
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
