package render

import (
	"errors"
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/mafia-host/internal/game"
	"github.com/aaronzipp/mafia-host/internal/models"
)

// StartHint greets a user who opens the bot without a join link
const StartHint = "Welcome to Mafia Game Bot! Send /help for commands and game rules."

// HelpText lists the commands available to everyone
const HelpText = "📖 Commands:\n" +
	"/creategame [players] [mafia] - create a new game (defaults 11 players, 3 mafia). You become the owner.\n" +
	"/joingame <gameId> - join an existing game or use a join link.\n" +
	"\nWhen enough players join, open /dashboard to begin. Roles are sent when the game starts.\n" +
	"Mafia eliminate others while civilians try to expose them."

// OwnerHelpText is appended to the help for game owners
const OwnerHelpText = "\n<b>Owner Tips</b>\n" +
	"Single command to manage whole game:\n/dashboard\n" +
	"\nAdvanced commands:\n" +
	"/startgame - start the game manually\n" +
	"/abortgame - cancel your current game"

// Fixed replies. NotAuthorized is the short toast form for button presses.
const (
	NotAuthorized     = "Not authorized!"
	NotAuthorizedChat = "❌ Not authorized!"
	Joined            = "✅ Joined successfully!"
	Aborted           = "Game was aborted!"
	RolesAssigned     = "🎲 Roles assigned. Use /dashboard to reveal roles and manage the game."
	RolesAssignedCB   = "🎲 Roles assigned. Refresh dashboard to proceed."
	EliminationCancel = "❎ Elimination cancelled."
	GameEndedNotice   = "⚠️ Game has ended."
)

// GameCreated announces a new game to its owner
func GameCreated(g *models.Game, joinLink string) (string, []models.Button) {
	var b strings.Builder
	b.WriteString("🎮 Game created! Game ID: ")
	b.WriteString(g.ID)
	b.WriteString("\nMax Players: ")
	b.WriteString(strconv.Itoa(g.MaxPlayers))
	b.WriteString("\nMax Mafia: ")
	b.WriteString(strconv.Itoa(g.MaxMafia))
	b.WriteString("\nJoin link: ")
	b.WriteString(joinLink)
	return b.String(), []models.Button{{Text: "Join Game", URL: joinLink}}
}

// Dashboard renders the owner's control panel
func Dashboard(view game.DashboardView) (string, models.Keyboard) {
	var b strings.Builder
	b.WriteString("📋 Game Dashboard (Status: ")
	b.WriteString(string(view.Status))
	b.WriteString(")")

	if view.Status == models.StatusActive && view.ShowRoles {
		b.WriteString("\n\n<b>Players with Roles:</b>")
		for _, p := range view.Players {
			b.WriteString("\n")
			b.WriteString(strconv.Itoa(p.Order))
			b.WriteString(". ")
			b.WriteString(htmlpkg.EscapeString(p.Name))
			b.WriteString(" - ")
			b.WriteString(string(p.Role))
			if p.Alive {
				b.WriteString(" 💚")
			} else {
				b.WriteString(" 💀")
			}
		}
	} else if view.Status == models.StatusWaiting {
		b.WriteString("\nPlayers: ")
		b.WriteString(strconv.Itoa(len(view.Players)))
		b.WriteString("/")
		b.WriteString(strconv.Itoa(view.MaxPlayers))
	}

	keyboard := make(models.Keyboard, 0, len(view.Actions))
	for _, a := range view.Actions {
		keyboard = append(keyboard, []models.Button{actionButton(view.GameID, a)})
	}
	return b.String(), keyboard
}

func actionButton(gameID string, a game.Action) models.Button {
	switch a.Kind {
	case game.ActionStart:
		return models.Button{Text: "🚀 Start Game", Data: CallbackData(CallbackStart, gameID)}
	case game.ActionRevealAll:
		return models.Button{Text: "🔓 Reveal All", Data: CallbackData(CallbackRevealAll, gameID)}
	case game.ActionReveal:
		return models.Button{
			Text: "🎭 Reveal " + seat(a.Target),
			Data: CallbackData(CallbackReveal, gameID, a.Target.ID),
		}
	default:
		return models.Button{
			Text: "❌ Eliminate " + seat(a.Target),
			Data: CallbackData(CallbackEliminateConfirm, gameID, a.Target.ID),
		}
	}
}

func seat(p *game.PlayerView) string {
	return strconv.Itoa(p.Order) + ". " + p.Name
}

// EliminateConfirm asks the owner to confirm an elimination
func EliminateConfirm(gameID string, targetID int64, name string) (string, []models.Button) {
	text := "⚠️ Confirm elimination of <b>" + htmlpkg.EscapeString(name) + "</b>?"
	return text, []models.Button{
		{Text: "✅ Yes", Data: CallbackData(CallbackEliminate, gameID, targetID)},
		{Text: "❌ No", Data: CallbackData(CallbackCancel, gameID)},
	}
}

// Eliminated announces an elimination to the owner
func Eliminated(name string) string {
	return "☠️ " + name + " has been eliminated."
}

// NeedPlayers tells the owner how many players must join before starting
func NeedPlayers(maxPlayers int) string {
	return "❌ Need " + strconv.Itoa(maxPlayers) + " players (excluding owner) to start!"
}

// Error translates a lifecycle error into the message shown in chat
func Error(err error) string {
	switch {
	case errors.Is(err, game.ErrAlreadyInGame):
		return "❌ You are already in an active game!"
	case errors.Is(err, game.ErrGameNotFound):
		return "❌ Game not found!"
	case errors.Is(err, game.ErrOwnerCannotJoin):
		return "❌ Game owner cannot join their own game!"
	case errors.Is(err, game.ErrGameEnded):
		return "❌ This game has ended!"
	case errors.Is(err, game.ErrGameFull):
		return "❌ Game full!"
	case errors.Is(err, game.ErrAlreadyJoined):
		return "❌ Already joined!"
	case errors.Is(err, game.ErrNotAuthorized):
		return NotAuthorizedChat
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "❌ Not enough players to start!"
	case errors.Is(err, game.ErrPlayerNotFound):
		return "❌ Player not found!"
	case errors.Is(err, game.ErrInvalidSetup):
		return "❌ Invalid game size: need at least 1 mafia and room for the Sheriff and Doctor."
	case errors.Is(err, game.ErrInvalidPhase):
		return "⚠️ That action is not available right now."
	default:
		return "⚠️ Something went wrong, please try again."
	}
}
