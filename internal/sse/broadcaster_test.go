package sse

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mafia-host/internal/models"
)

func decode(t *testing.T, ev Event) models.OutboundMessage {
	t.Helper()
	var msg models.OutboundMessage
	require.NoError(t, json.Unmarshal([]byte(ev.Data), &msg))
	return msg
}

func TestHubSend(t *testing.T) {
	ctx := context.Background()
	h := NewHub(4, 50*time.Millisecond)
	client := h.AddClient(7)
	defer h.RemoveClient(7, client)

	t.Run("text with keyboard", func(t *testing.T) {
		ref, err := h.SendText(ctx, 7, "hello", []models.Button{{Text: "Go", Data: "go_1"}})
		require.NoError(t, err)
		assert.Equal(t, int64(7), ref.ChatID)
		assert.NotEmpty(t, ref.MessageID)

		ev := <-client
		assert.Equal(t, EventMessage, ev.Name)
		msg := decode(t, ev)
		assert.Equal(t, ref.MessageID, msg.ID)
		assert.Equal(t, "hello", msg.Text)
		require.Len(t, msg.Keyboard, 1)
		assert.Equal(t, "go_1", msg.Keyboard[0][0].Data)
	})

	t.Run("image", func(t *testing.T) {
		_, err := h.SendImage(ctx, 7, "/images/don.png", "🎭 Your role is Mafia Don")
		require.NoError(t, err)

		ev := <-client
		assert.Equal(t, EventPhoto, ev.Name)
		msg := decode(t, ev)
		assert.Equal(t, "/images/don.png", msg.Image)
		assert.Equal(t, "🎭 Your role is Mafia Don", msg.Caption)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, h.DeleteMessage(ctx, models.MessageRef{ChatID: 7, MessageID: "abc"}))
		ev := <-client
		assert.Equal(t, EventDelete, ev.Name)
		assert.Equal(t, "abc", decode(t, ev).ID)
	})
}

func TestHubUnreachable(t *testing.T) {
	ctx := context.Background()
	h := NewHub(0, 10*time.Millisecond)

	_, err := h.SendText(ctx, 1, "anyone?")
	assert.ErrorIs(t, err, ErrUnreachable)

	// nobody reads from an unbuffered stream
	client := h.AddClient(1)
	_, err = h.SendText(ctx, 1, "anyone?")
	assert.ErrorIs(t, err, ErrUnreachable)

	h.RemoveClient(1, client)
	assert.Equal(t, 0, h.ClientCount(1))
}

func TestHubFansOutToEveryStream(t *testing.T) {
	h := NewHub(1, 10*time.Millisecond)
	a := h.AddClient(3)
	b := h.AddClient(3)
	assert.Equal(t, 2, h.ClientCount(3))

	_, err := h.SendText(context.Background(), 3, "both")
	require.NoError(t, err)
	assert.Equal(t, "both", decode(t, <-a).Text)
	assert.Equal(t, "both", decode(t, <-b).Text)
}
