package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback actions carried in inline button data
const (
	CallbackStart            = "startgame"
	CallbackReveal           = "reveal"
	CallbackRevealAll        = "revealall"
	CallbackEliminateConfirm = "eliminateconfirm"
	CallbackEliminate        = "eliminate"
	CallbackCancel           = "cancel"
)

// Callback is a decoded button press
type Callback struct {
	Action   string
	GameID   string
	TargetID int64
}

// CallbackData encodes a button payload as action_gameID[_targetID]
func CallbackData(action, gameID string, targetID ...int64) string {
	if len(targetID) == 0 {
		return action + "_" + gameID
	}
	return action + "_" + gameID + "_" + strconv.FormatInt(targetID[0], 10)
}

// ParseCallback decodes a payload produced by CallbackData
func ParseCallback(data string) (Callback, error) {
	parts := strings.Split(data, "_")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return Callback{}, fmt.Errorf("malformed callback %q", data)
	}
	cb := Callback{Action: parts[0], GameID: parts[1]}
	if len(parts) == 3 {
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return Callback{}, fmt.Errorf("malformed callback target %q: %w", parts[2], err)
		}
		cb.TargetID = id
	}
	return cb, nil
}
