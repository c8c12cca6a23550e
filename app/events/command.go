package events

import (
	"strconv"
	"strings"
)

// actionVerb is a closed set of moderation actions carried by callback payloads
type actionVerb int

// enum of moderation verbs, verbIgnored marks anything that failed to decode
const (
	verbIgnored actionVerb = iota
	verbApprove
	verbProfileOK
	verbBan
	verbMute
	verbBanChannel
)

func (v actionVerb) String() string {
	switch v {
	case verbApprove:
		return "approve"
	case verbProfileOK:
		return "profile-ok"
	case verbBan:
		return "ban"
	case verbMute:
		return "mute"
	case verbBanChannel:
		return "ban-channel"
	}
	return "ignored"
}

// actionCommand is a decoded callback payload. For user-scoped verbs targetID
// is a user id, for verbBanChannel it is a channel id. chatID is zero for
// verbs without a chat argument.
type actionCommand struct {
	verb     actionVerb
	chatID   int64
	targetID int64
}

// parseCallback decodes an opaque "_"-delimited callback payload into a typed
// command. Unknown verbs, wrong arity and non-numeric ids all produce
// verbIgnored, the caller drops such payloads without side effects.
func parseCallback(data string) actionCommand {
	parts := strings.Split(data, "_")

	parseID := func(s string) (int64, bool) {
		id, err := strconv.ParseInt(s, 10, 64)
		return id, err == nil
	}

	switch parts[0] {
	case "approve":
		if len(parts) != 2 {
			return actionCommand{}
		}
		if id, ok := parseID(parts[1]); ok {
			return actionCommand{verb: verbApprove, targetID: id}
		}
	case "attOk":
		if len(parts) != 2 {
			return actionCommand{}
		}
		if id, ok := parseID(parts[1]); ok {
			return actionCommand{verb: verbProfileOK, targetID: id}
		}
	case "ban":
		if len(parts) != 3 {
			return actionCommand{}
		}
		chatID, okChat := parseID(parts[1])
		userID, okUser := parseID(parts[2])
		if okChat && okUser {
			return actionCommand{verb: verbBan, chatID: chatID, targetID: userID}
		}
	case "mute":
		if len(parts) != 3 {
			return actionCommand{}
		}
		chatID, okChat := parseID(parts[1])
		userID, okUser := parseID(parts[2])
		if okChat && okUser {
			return actionCommand{verb: verbMute, chatID: chatID, targetID: userID}
		}
	case "banchan":
		if len(parts) != 3 {
			return actionCommand{}
		}
		chatID, okChat := parseID(parts[1])
		channelID, okChan := parseID(parts[2])
		if okChat && okChan {
			return actionCommand{verb: verbBanChannel, chatID: chatID, targetID: channelID}
		}
	}
	return actionCommand{}
}
