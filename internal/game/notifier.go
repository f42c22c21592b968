package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// Notifier delivers messages to chats. Implemented by the chat gateway.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string, keyboard ...[]models.Button) (models.MessageRef, error)
	SendImage(ctx context.Context, chatID int64, image, caption string) (models.MessageRef, error)
	DeleteMessage(ctx context.Context, ref models.MessageRef) error
}

// RoleImages maps each role to the image shown when it is revealed
type RoleImages map[models.Role]string

// DefaultRoleImages returns the image table for files under base
func DefaultRoleImages(base string) RoleImages {
	base = strings.TrimSuffix(base, "/")
	return RoleImages{
		models.RoleDon:      base + "/don.png",
		models.RoleMafia:    base + "/mafia.png",
		models.RoleSheriff:  base + "/sheriff.png",
		models.RoleDoctor:   base + "/doc.png",
		models.RoleCivilian: base + "/civilian.png",
	}
}

func ownerRevealCaption(p *models.Player) string {
	return fmt.Sprintf("🎭 %s is %s", p.Name, p.Role)
}

func playerRevealCaption(role models.Role) string {
	return fmt.Sprintf("🎭 Your role is %s", role)
}

func joinedText(name string, count, seats int) string {
	return fmt.Sprintf("🎯 %s joined! (%d/%d)", name, count, seats)
}

// AllRevealedText is sent to the owner after a batch reveal
const AllRevealedText = "🎭 All roles have been revealed."

// Summary composes the end-of-game announcement listing every non-civilian role
func Summary(winner models.Faction, players []*models.Player) string {
	lines := lo.FilterMap(players, func(p *models.Player, _ int) (string, bool) {
		return fmt.Sprintf("%s: %s", p.Name, p.Role), p.Role != models.RoleCivilian
	})
	return fmt.Sprintf("🏆 %s win!\n\n📜 Active Roles:\n%s", winner, strings.Join(lines, "\n"))
}
