package handlers

import (
	"context"
	"errors"

	"github.com/aaronzipp/mafia-host/internal/game"
	"github.com/aaronzipp/mafia-host/internal/models"
	"github.com/aaronzipp/mafia-host/internal/render"
)

const noGameFound = "❌ No game found!"

// cmdStartGame assigns roles in the owner's current game
func (ctx *Context) cmdStartGame(c context.Context, u Update, _ []string) {
	g, err := ctx.Service.CurrentGame(u.From.ID)
	if err != nil {
		ctx.reply(c, u.ChatID, noGameFound)
		return
	}

	err = ctx.Service.Start(c, g.ID, u.From.ID)
	switch {
	case err == nil:
		ctx.reply(c, u.ChatID, render.RolesAssigned)
	case errors.Is(err, game.ErrNotAuthorized), errors.Is(err, game.ErrNotEnoughPlayers):
		ctx.reply(c, u.ChatID, render.NeedPlayers(g.MaxPlayers))
	default:
		ctx.reply(c, u.ChatID, render.Error(err))
	}
}

// cmdDashboard shows the owner's control panel
func (ctx *Context) cmdDashboard(c context.Context, u Update, _ []string) {
	g, err := ctx.Service.CurrentGame(u.From.ID)
	if err != nil {
		ctx.reply(c, u.ChatID, noGameFound)
		return
	}

	view, err := ctx.Service.Dashboard(c, g.ID, u.From.ID)
	if err != nil {
		ctx.reply(c, u.ChatID, render.Error(err))
		return
	}
	if view.Status == models.StatusEnded {
		ctx.reply(c, u.ChatID, render.GameEndedNotice)
		return
	}
	text, keyboard := render.Dashboard(view)
	ctx.reply(c, u.ChatID, text, keyboard...)
}

// cmdAbortGame cancels the owner's current game
func (ctx *Context) cmdAbortGame(c context.Context, u Update, _ []string) {
	g, err := ctx.Service.CurrentGame(u.From.ID)
	if err != nil {
		ctx.reply(c, u.ChatID, noGameFound)
		return
	}
	if err := ctx.Service.Abort(c, g.ID, u.From.ID); err != nil {
		ctx.reply(c, u.ChatID, render.Error(err))
		return
	}
	ctx.reply(c, u.ChatID, render.Aborted)
}
