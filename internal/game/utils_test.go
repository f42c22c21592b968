package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/mafia-host/internal/models"
	"github.com/aaronzipp/mafia-host/internal/store"
)

func TestGenerateGameID(t *testing.T) {
	for range 100 {
		id := GenerateGameID()
		assert.Len(t, id, GameIDLength)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(GameIDChars, c), "unexpected char %q in %s", c, id)
		}
	}
}

func TestGetUniqueGameID(t *testing.T) {
	games := store.NewGameStore()
	seen := map[string]bool{}
	for range 50 {
		id := GetUniqueGameID(games)
		assert.False(t, seen[id])
		seen[id] = true
		games.Set(id, &models.Game{ID: id})
	}
	assert.Equal(t, 50, games.Len())
}
