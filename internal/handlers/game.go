package handlers

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/game"
	"github.com/aaronzipp/mafia-host/internal/render"
)

// handleCallback runs an inline button action and returns the toast to show
func (ctx *Context) handleCallback(c context.Context, u Update) string {
	cb, err := render.ParseCallback(u.Callback.Data)
	if err != nil {
		zap.L().Debug("ignoring callback", zap.Error(err))
		return ""
	}
	actor := u.From.ID

	switch cb.Action {
	case render.CallbackStart:
		if err := ctx.Service.Start(c, cb.GameID, actor); err != nil {
			return answer(err)
		}
		ctx.reply(c, u.ChatID, render.RolesAssignedCB)

	case render.CallbackReveal:
		if _, err := ctx.Service.Reveal(c, cb.GameID, actor, cb.TargetID); err != nil {
			return answer(err)
		}

	case render.CallbackRevealAll:
		if _, err := ctx.Service.RevealAll(c, cb.GameID, actor); err != nil {
			return answer(err)
		}

	case render.CallbackEliminateConfirm:
		p, err := ctx.Service.Player(cb.GameID, actor, cb.TargetID)
		if err != nil {
			return answer(err)
		}
		text, buttons := render.EliminateConfirm(cb.GameID, p.ID, p.Name)
		ctx.reply(c, u.ChatID, text, buttons)

	case render.CallbackEliminate:
		res, err := ctx.Service.Eliminate(c, cb.GameID, actor, cb.TargetID)
		if err != nil {
			return answer(err)
		}
		ctx.reply(c, u.ChatID, render.Eliminated(res.Player.Name))

	case render.CallbackCancel:
		ctx.reply(c, u.ChatID, render.EliminationCancel)

	default:
		zap.L().Debug("unknown callback action", zap.String("action", cb.Action))
	}
	return ""
}

func answer(err error) string {
	if errors.Is(err, game.ErrNotAuthorized) {
		return render.NotAuthorized
	}
	return render.Error(err)
}
