package game

import (
	"github.com/samber/lo"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// CheckWinner decides whether the game is over. Town wins once no mafia is
// alive; mafia wins as soon as it reaches parity with the town.
func CheckWinner(players []*models.Player) models.Faction {
	alive := lo.Filter(players, func(p *models.Player, _ int) bool { return p.IsAlive })
	mafia := lo.CountBy(alive, func(p *models.Player) bool { return p.Role.IsMafia() })
	town := len(alive) - mafia

	switch {
	case mafia == 0:
		return models.FactionTown
	case mafia >= town:
		return models.FactionMafia
	default:
		return models.FactionNone
	}
}

// AllRevealed reports whether every player has seen their role
func AllRevealed(players []*models.Player) bool {
	return lo.EveryBy(players, func(p *models.Player) bool { return p.Revealed })
}
