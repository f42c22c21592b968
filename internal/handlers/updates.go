package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// User is the sender of an update
type User struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
}

// CallbackQuery is an inline button press
type CallbackQuery struct {
	ID   string `json:"id"`
	Data string `json:"data" validate:"required"`
}

// Update is a single incoming chat event: either a text message or a button press
type Update struct {
	From     User           `json:"from"`
	ChatID   int64          `json:"chat_id" validate:"required"`
	Text     string         `json:"text" validate:"required_without=Callback"`
	Callback *CallbackQuery `json:"callback"`
}

// UpdateResponse acknowledges an update. Answer is the toast shown for a button press.
type UpdateResponse struct {
	OK     bool   `json:"ok"`
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

type commandFunc func(ctx *Context, c context.Context, u Update, match []string)

type command struct {
	pattern *regexp.Regexp
	handle  commandFunc
}

var commands = []command{
	{regexp.MustCompile(`^/start$`), (*Context).cmdStart},
	{regexp.MustCompile(`^/start join_(.+)$`), (*Context).cmdJoin},
	{regexp.MustCompile(`^/joingame (.+)$`), (*Context).cmdJoin},
	{regexp.MustCompile(`^/help$`), (*Context).cmdHelp},
	{regexp.MustCompile(`^/creategame(?:\s+(\d+)\s+(\d+))?$`), (*Context).cmdCreateGame},
	{regexp.MustCompile(`^/startgame$`), (*Context).cmdStartGame},
	{regexp.MustCompile(`^/dashboard$`), (*Context).cmdDashboard},
	{regexp.MustCompile(`^/abortgame$`), (*Context).cmdAbortGame},
}

// HandleUpdate accepts one chat update and runs the matching command or callback
func (ctx *Context) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var u Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		zap.L().Debug("malformed update", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, UpdateResponse{Error: "malformed update"})
		return
	}
	if err := validate.Struct(u); err != nil {
		zap.L().Debug("invalid update", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, UpdateResponse{Error: "validation failed: " + err.Error()})
		return
	}

	if u.Callback != nil {
		answer := ctx.handleCallback(r.Context(), u)
		writeJSON(w, http.StatusOK, UpdateResponse{OK: true, Answer: answer})
		return
	}

	text := strings.TrimSpace(u.Text)
	for _, cmd := range commands {
		if match := cmd.pattern.FindStringSubmatch(text); match != nil {
			cmd.handle(ctx, r.Context(), u, match)
			break
		}
	}
	writeJSON(w, http.StatusOK, UpdateResponse{OK: true})
}
