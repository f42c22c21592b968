package game

import (
	"fmt"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// GenerateRoles builds the shuffled role deck for a game: one Don, mafiaCount-1
// Mafia, one Sheriff, one Doctor and Civilians up to playerCount. When
// mafiaCount+2 exceeds playerCount the deck is longer than playerCount, so
// callers run ValidateSetup first.
func GenerateRoles(src Source, playerCount, mafiaCount int) []models.Role {
	roles := []models.Role{models.RoleDon}
	for i := 1; i < mafiaCount; i++ {
		roles = append(roles, models.RoleMafia)
	}
	roles = append(roles, models.RoleSheriff, models.RoleDoctor)
	for len(roles) < playerCount {
		roles = append(roles, models.RoleCivilian)
	}
	return Shuffle(src, roles)
}

// ValidateSetup checks that a (players, mafia) pair yields a well-formed deck
func ValidateSetup(maxPlayers, maxMafia int) error {
	if maxMafia < 1 {
		return fmt.Errorf("%w: need at least 1 mafia, got %d", ErrInvalidSetup, maxMafia)
	}
	if maxMafia+2 > maxPlayers {
		return fmt.Errorf("%w: %d mafia leave no seat for the Sheriff and Doctor among %d players", ErrInvalidSetup, maxMafia, maxPlayers)
	}
	return nil
}
