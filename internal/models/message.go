package models

// MessageRef identifies a message previously delivered to a chat
type MessageRef struct {
	ChatID    int64
	MessageID string
}

// Button is a single inline keyboard button
type Button struct {
	Text string `json:"text"`
	Data string `json:"callback_data,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Keyboard is a list of button rows
type Keyboard [][]Button

// OutboundMessage is what the chat gateway delivers to a connected chat
type OutboundMessage struct {
	ID       string   `json:"message_id"`
	ChatID   int64    `json:"chat_id"`
	Text     string   `json:"text,omitempty"`
	Image    string   `json:"photo,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Keyboard Keyboard `json:"reply_markup,omitempty"`
}
