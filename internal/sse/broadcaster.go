package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/models"
)

// ErrUnreachable is returned when no connected client accepted a message
var ErrUnreachable = errors.New("chat unreachable")

// Hub delivers outbound bot messages to the event streams opened by each chat
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[chan Event]struct{} // chatID -> client channels
	buffer  int
	timeout time.Duration
}

// NewHub creates a hub whose clients buffer up to buffer events and
// are skipped when a send blocks longer than timeout
func NewHub(buffer int, timeout time.Duration) *Hub {
	return &Hub{
		clients: make(map[int64]map[chan Event]struct{}),
		buffer:  buffer,
		timeout: timeout,
	}
}

// AddClient registers a new event stream for the chat
func (h *Hub) AddClient(chatID int64) chan Event {
	client := make(chan Event, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[chatID] == nil {
		h.clients[chatID] = make(map[chan Event]struct{})
	} else {
		zap.L().Warn("chat opened an additional stream",
			zap.Int64("chat_id", chatID),
			zap.Int("existing", len(h.clients[chatID])))
	}
	h.clients[chatID][client] = struct{}{}
	return client
}

// RemoveClient unregisters an event stream
func (h *Hub) RemoveClient(chatID int64, client chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[chatID], client)
	if len(h.clients[chatID]) == 0 {
		delete(h.clients, chatID)
	}
	zap.L().Debug("stream removed", zap.Int64("chat_id", chatID))
}

// ClientCount returns the number of open streams for the chat
func (h *Hub) ClientCount(chatID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[chatID])
}

// SendText delivers a text message, optionally with an inline keyboard
func (h *Hub) SendText(ctx context.Context, chatID int64, text string, keyboard ...[]models.Button) (models.MessageRef, error) {
	msg := models.OutboundMessage{
		ID:       uuid.NewString(),
		ChatID:   chatID,
		Text:     text,
		Keyboard: models.Keyboard(keyboard),
	}
	return h.publish(ctx, chatID, EventMessage, msg)
}

// SendImage delivers an image with a caption
func (h *Hub) SendImage(ctx context.Context, chatID int64, image, caption string) (models.MessageRef, error) {
	msg := models.OutboundMessage{
		ID:      uuid.NewString(),
		ChatID:  chatID,
		Image:   image,
		Caption: caption,
	}
	return h.publish(ctx, chatID, EventPhoto, msg)
}

// DeleteMessage asks the chat to drop a previously delivered message
func (h *Hub) DeleteMessage(ctx context.Context, ref models.MessageRef) error {
	msg := models.OutboundMessage{ID: ref.MessageID, ChatID: ref.ChatID}
	_, err := h.publish(ctx, ref.ChatID, EventDelete, msg)
	return err
}

func (h *Hub) publish(ctx context.Context, chatID int64, event string, msg models.OutboundMessage) (models.MessageRef, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return models.MessageRef{}, fmt.Errorf("encode %s: %w", event, err)
	}

	// Collect client channels while holding the lock
	h.mu.RLock()
	clients := make([]chan Event, 0, len(h.clients[chatID]))
	for c := range h.clients[chatID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return models.MessageRef{}, fmt.Errorf("%w: chat %d has no open stream", ErrUnreachable, chatID)
	}

	// Send WITHOUT holding the lock
	delivered := 0
	ev := Event{Name: event, Data: string(data)}
	for _, client := range clients {
		select {
		case client <- ev:
			delivered++
		case <-time.After(h.timeout):
			zap.L().Debug("stream send timed out", zap.Int64("chat_id", chatID), zap.String("event", event))
		case <-ctx.Done():
			return models.MessageRef{}, ctx.Err()
		}
	}
	if delivered == 0 {
		return models.MessageRef{}, fmt.Errorf("%w: chat %d did not accept %s", ErrUnreachable, chatID, event)
	}
	return models.MessageRef{ChatID: chatID, MessageID: msg.ID}, nil
}
