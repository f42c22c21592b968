package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// HandleSSE streams the bot's outbound messages for one chat
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(r.PathValue("chatID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid chat", http.StatusBadRequest)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	client := ctx.Hub.AddClient(chatID)
	defer ctx.Hub.RemoveClient(chatID, client)
	zap.L().Debug("stream opened", zap.Int64("chat_id", chatID), zap.Int("streams", ctx.Hub.ClientCount(chatID)))

	done := r.Context().Done()
	for {
		select {
		case <-done:
			zap.L().Debug("stream closed by client", zap.Int64("chat_id", chatID))
			return
		case ev := <-client:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
			flusher.Flush()
		}
	}
}
