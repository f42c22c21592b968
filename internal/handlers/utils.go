package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// reply sends a message back to the chat an update came from
func (ctx *Context) reply(c context.Context, chatID int64, text string, keyboard ...[]models.Button) {
	if _, err := ctx.Hub.SendText(c, chatID, text, keyboard...); err != nil {
		zap.L().Debug("reply not delivered", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// replyImage sends an image back to the chat an update came from
func (ctx *Context) replyImage(c context.Context, chatID int64, image, caption string) {
	if _, err := ctx.Hub.SendImage(c, chatID, image, caption); err != nil {
		zap.L().Debug("image not delivered", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("response not written", zap.Error(err))
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
