package handlers

import (
	"net/http"

	"github.com/aaronzipp/mafia-host/internal/config"
	"github.com/aaronzipp/mafia-host/internal/game"
	"github.com/aaronzipp/mafia-host/internal/sse"
)

// Context holds shared application dependencies
type Context struct {
	Service *game.Service
	Hub     *sse.Hub
	Config  config.Config
}

// Routes registers the gateway endpoints
func (ctx *Context) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /updates", ctx.HandleUpdate)
	mux.HandleFunc("GET /chats/{chatID}/events", ctx.HandleSSE)
	mux.HandleFunc("GET /join/{gameID}/qr.png", ctx.HandleJoinQR)
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(ctx.Config.AssetsDir))))
	mux.HandleFunc("GET /{$}", ctx.HandleIndex)
	return mux
}

// HandleIndex reports that the gateway is up
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("🎭 Mafia Bot Running\n"))
}
