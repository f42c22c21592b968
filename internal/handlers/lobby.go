package handlers

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/render"
)

func (ctx *Context) cmdStart(c context.Context, u Update, _ []string) {
	ctx.reply(c, u.ChatID, render.StartHint)
}

func (ctx *Context) cmdHelp(c context.Context, u Update, _ []string) {
	ctx.reply(c, u.ChatID, render.HelpText)
	if g, err := ctx.Service.CurrentGame(u.From.ID); err == nil && g.OwnerID == u.From.ID {
		ctx.reply(c, u.ChatID, render.OwnerHelpText)
	}
}

// cmdCreateGame handles "/creategame [players mafia]"
func (ctx *Context) cmdCreateGame(c context.Context, u Update, match []string) {
	maxPlayers, maxMafia := ctx.Service.Defaults()
	if len(match) == 3 && match[1] != "" {
		var err1, err2 error
		maxPlayers, err1 = strconv.Atoi(match[1])
		maxMafia, err2 = strconv.Atoi(match[2])
		if err1 != nil || err2 != nil {
			ctx.reply(c, u.ChatID, "❌ Usage: /creategame [players] [mafia]")
			return
		}
	}

	g, err := ctx.Service.Create(c, u.From.ID, nameOr(u.From.FirstName, "admin"), maxPlayers, maxMafia)
	if err != nil {
		zap.L().Debug("create game rejected", zap.Int64("user_id", u.From.ID), zap.Error(err))
		ctx.reply(c, u.ChatID, render.Error(err))
		return
	}

	link := ctx.Config.JoinLink(g.ID)
	text, buttons := render.GameCreated(g, link)
	ctx.reply(c, u.ChatID, text, buttons)
	ctx.replyImage(c, u.ChatID, ctx.joinQRURL(g.ID), "📷 Scan to join game "+g.ID)
	ctx.reply(c, u.ChatID, render.OwnerHelpText)
}

// cmdJoin handles "/joingame <id>" and the "/start join_<id>" deep link
func (ctx *Context) cmdJoin(c context.Context, u Update, match []string) {
	gameID := strings.ToUpper(strings.TrimSpace(match[1]))
	if err := ctx.Service.Join(c, gameID, u.From.ID, nameOr(u.From.FirstName, "Player")); err != nil {
		zap.L().Debug("join rejected", zap.String("game_id", gameID), zap.Int64("user_id", u.From.ID), zap.Error(err))
		ctx.reply(c, u.ChatID, render.Error(err))
		return
	}
	ctx.reply(c, u.ChatID, render.Joined)
}
