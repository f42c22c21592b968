package game

import (
	"github.com/samber/lo"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// ActionKind names an owner action offered on the dashboard
type ActionKind string

const (
	ActionStart     ActionKind = "start"
	ActionRevealAll ActionKind = "reveal_all"
	ActionReveal    ActionKind = "reveal"
	ActionEliminate ActionKind = "eliminate"
)

// Action is a single dashboard action, optionally aimed at a player
type Action struct {
	Kind   ActionKind
	Target *PlayerView
}

// PlayerView is the dashboard's read-only copy of a player
type PlayerView struct {
	ID       int64
	Name     string
	Order    int
	Role     models.Role
	Alive    bool
	Revealed bool
}

// DashboardView is everything the owner's control panel shows
type DashboardView struct {
	GameID     string
	Status     models.GameStatus
	Winner     models.Faction
	MaxPlayers int
	ShowRoles  bool
	Actions    []Action
	Players    []PlayerView
}

// BuildDashboard derives the owner's view of a game (must be called with lock held).
// Waiting games offer a start, active games offer reveals until everyone has
// seen their role and eliminations afterwards, ended games offer nothing.
// Roles stay hidden until every player has seen theirs.
func BuildDashboard(g *models.Game) DashboardView {
	view := DashboardView{
		GameID:     g.ID,
		Status:     g.Status,
		Winner:     g.Winner,
		MaxPlayers: g.MaxPlayers,
		Players: lo.Map(g.Players, func(p *models.Player, _ int) PlayerView {
			return PlayerView{
				ID:       p.ID,
				Name:     p.Name,
				Order:    p.Order,
				Role:     p.Role,
				Alive:    p.IsAlive,
				Revealed: p.Revealed,
			}
		}),
	}

	switch g.Status {
	case models.StatusWaiting:
		view.Actions = []Action{{Kind: ActionStart}}
	case models.StatusActive:
		if !AllRevealed(g.Players) {
			view.Actions = append(view.Actions, Action{Kind: ActionRevealAll})
			for i := range view.Players {
				view.Actions = append(view.Actions, Action{Kind: ActionReveal, Target: &view.Players[i]})
			}
			break
		}
		view.ShowRoles = true
		for i := range view.Players {
			if view.Players[i].Alive {
				view.Actions = append(view.Actions, Action{Kind: ActionEliminate, Target: &view.Players[i]})
			}
		}
	case models.StatusEnded:
		view.ShowRoles = true
	}

	if !view.ShowRoles {
		for i := range view.Players {
			view.Players[i].Role = models.RoleNone
		}
	}
	return view
}
