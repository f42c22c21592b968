package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"

	"github.com/aaronzipp/mafia-host/internal/store"
)

// GenerateGameID creates a random game id
func GenerateGameID() string {
	code := make([]byte, GameIDLength)
	for i := range GameIDLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(GameIDChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = GameIDChars[rand.IntN(len(GameIDChars))]
			continue
		}
		code[i] = GameIDChars[n.Int64()]
	}
	return string(code)
}

// GetUniqueGameID generates a game id not yet present in the store
func GetUniqueGameID(games *store.GameStore) string {
	for {
		id := GenerateGameID()
		if !games.Exists(id) {
			return id
		}
	}
}
