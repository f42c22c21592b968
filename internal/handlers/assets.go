package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 256

// HandleJoinQR renders the join deep link of a game as a PNG QR code
func (ctx *Context) HandleJoinQR(w http.ResponseWriter, r *http.Request) {
	gameID := strings.ToUpper(r.PathValue("gameID"))
	if _, err := ctx.Service.Lookup(gameID); err != nil {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(ctx.Config.JoinLink(gameID), qrcode.Medium, qrSize)
	if err != nil {
		zap.L().Error("qr encode failed", zap.String("game_id", gameID), zap.Error(err))
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

func (ctx *Context) joinQRURL(gameID string) string {
	return strings.TrimRight(ctx.Config.PublicURL, "/") + "/join/" + url.PathEscape(gameID) + "/qr.png"
}
