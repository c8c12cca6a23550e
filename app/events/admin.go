package events

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/tg-doorman/lib/checker"
)

// admin handles everything arriving from the admin group: inline keyboard
// callbacks with moderation verbs and reply-based admin commands.
// created by listener
type admin struct {
	tbAPI       TbAPI
	trust       Trust
	profiles    ProfileReviews
	badContent  BadContent
	classifier  Classifier
	recent      Recent
	identity    *identityCache
	adminChatID int64
	audit       AuditLogger
}

// InlineCallbackHandler dispatches one moderation verb from a callback query.
// Payloads that fail to decode are dropped without side effects. For decoded
// verbs the platform action may fail, the admin chat is notified either way
// and the inline keyboard is retracted as the terminal step.
func (a *admin) InlineCallbackHandler(ctx context.Context, query *tbapi.CallbackQuery) error {
	if query.Message != nil && query.Message.Chat.ID != a.adminChatID {
		return nil // only the admin chat keyboard is honored
	}

	cmd := parseCallback(query.Data)
	if cmd.verb == verbIgnored {
		log.Printf("[DEBUG] ignored callback payload %q from %q", query.Data, query.From.UserName)
		return nil
	}

	// ack the button press right away, the action may take a while
	if _, err := a.tbAPI.Request(tbapi.NewCallback(query.ID, "accepted")); err != nil {
		log.Printf("[WARN] failed to send callback response: %v", err)
	}

	errs := new(multierror.Error)
	var actErr error

	adminName := query.From.UserName

	switch cmd.verb {
	case verbApprove:
		actErr = a.trust.Approve(ctx, cmd.targetID)
		a.notifyOutcome(query, fmt.Sprintf("user %d approved by %s", cmd.targetID, adminName), actErr)

	case verbProfileOK:
		actErr = a.profiles.MarkUserOK(ctx, cmd.targetID)
		a.notifyOutcome(query, fmt.Sprintf("profile of user %d marked as ok by %s, messages are still checked",
			cmd.targetID, adminName), actErr)

	case verbBan:
		actErr = a.banUser(cmd.chatID, cmd.targetID)
		a.notifyOutcome(query, fmt.Sprintf("user %d banned in chat %d by %s, recent messages registered as bad content",
			cmd.targetID, cmd.chatID, adminName), actErr)
		a.cleanupRecent(ctx, cmd.targetID, cmd.chatID)

	case verbMute:
		actErr = a.muteUser(cmd.chatID, cmd.targetID)
		a.notifyOutcome(query, fmt.Sprintf("user %d muted in chat %d by %s", cmd.targetID, cmd.chatID, adminName), actErr)
		a.cleanupRecent(ctx, cmd.targetID, cmd.chatID)

	case verbBanChannel:
		actErr = a.banChannel(cmd.chatID, cmd.targetID)
		a.notifyOutcome(query, fmt.Sprintf("channel %d banned in chat %d by %s", cmd.targetID, cmd.chatID, adminName), actErr)
		a.cleanupRecent(ctx, cmd.targetID, cmd.chatID)
	}

	if actErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to %s %d: %w", cmd.verb, cmd.targetID, actErr))
	}

	a.saveAudit(cmd.verb.String(), cmd.chatID, cmd.targetID, query.From.UserName, actErr)

	// retract the keyboard regardless of the action outcome, the button is spent
	if query.Message != nil {
		emptyKeyboard := tbapi.InlineKeyboardMarkup{InlineKeyboard: [][]tbapi.InlineKeyboardButton{}}
		editMsg := tbapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID, emptyKeyboard)
		if err := send(editMsg, a.tbAPI); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to retract keyboard, chatID:%d, msgID:%d: %w",
				query.Message.Chat.ID, query.Message.MessageID, err))
		}
	}

	return errs.ErrorOrNil()
}

// MsgHandler handles commands posted to the admin chat: "/unban <id>" and the
// reply-based "/spam", "/ham" and "/check".
func (a *admin) MsgHandler(ctx context.Context, update tbapi.Update) error {
	msg := update.Message
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/unban") {
		return a.handleUnban(ctx, msg)
	}

	command := ""
	switch {
	case text == "/spam" || strings.HasPrefix(text, "/spam@"):
		command = "/spam"
	case text == "/ham" || strings.HasPrefix(text, "/ham@"):
		command = "/ham"
	case text == "/check" || strings.HasPrefix(text, "/check@"):
		command = "/check"
	default:
		return nil // not a command, nothing to do
	}

	if msg.ReplyToMessage == nil {
		return a.reply(msg, command+" expects a reply to a message")
	}

	// replies to the bot's own reports carry no usable sample, refuse them.
	// forwarded messages are exempt, the bot is just the forwarder there.
	me, err := a.identity.me()
	if err != nil {
		return fmt.Errorf("failed to resolve own identity: %w", err)
	}
	reply := msg.ReplyToMessage
	if reply.From != nil && reply.From.ID == me.ID && reply.ForwardOrigin == nil {
		log.Printf("[DEBUG] %s reply to own message %d rejected", command, reply.MessageID)
		return a.reply(msg, fmt.Sprintf("looks like %s was sent as a reply to my message, reply to the user's message instead", command))
	}

	sample := transform(reply).ContentText()
	if strings.TrimSpace(sample) == "" {
		log.Printf("[DEBUG] %s reply with no text, ignored", command)
		return nil
	}

	switch command {
	case "/spam":
		return a.handleSpam(ctx, msg, sample)
	case "/ham":
		return a.handleHam(msg, sample)
	case "/check":
		return a.handleCheck(msg, sample)
	}
	return nil
}

// handleUnban processes "/unban <id>". A malformed id is dropped silently,
// admins often type free-form text starting with the command.
func (a *admin) handleUnban(ctx context.Context, msg *tbapi.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) != 2 {
		return nil
	}
	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}

	if err := a.trust.Unban(ctx, userID); err != nil {
		return fmt.Errorf("failed to unban user %d: %w", userID, err)
	}
	a.saveAudit("unban", 0, userID, userName(msg), nil)
	return a.reply(msg, fmt.Sprintf("user %d unbanned", userID))
}

// handleSpam trains the classifier on the sample and registers it as bad content
func (a *admin) handleSpam(ctx context.Context, msg *tbapi.Message, sample string) error {
	errs := new(multierror.Error)
	if err := a.classifier.AddSpam(sample); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to update spam samples: %w", err))
	}
	if err := a.badContent.MarkAsBad(ctx, sample); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to mark message as bad: %w", err))
	}
	if err := a.reply(msg, "added to spam samples"); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// handleHam trains the classifier on the sample as a legit message
func (a *admin) handleHam(msg *tbapi.Message, sample string) error {
	if err := a.classifier.AddHam(sample); err != nil {
		return fmt.Errorf("failed to update ham samples: %w", err)
	}
	return a.reply(msg, "added to ham samples")
}

// handleCheck reports what the detector sees in the sample: emoji flag, stop
// words, lookalike words, classifier verdict and the normalized text
func (a *admin) handleCheck(msg *tbapi.Message, sample string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "too many emojis: %v\n", a.classifier.TooManyEmojis(sample))

	if found, match := a.classifier.StopWords(sample); found {
		fmt.Fprintf(&b, "stop words: %s\n", match)
	} else {
		fmt.Fprintf(&b, "stop words: none\n")
	}

	normalized := checker.Normalize(sample)
	if lookalikes := checker.LookalikeWords(normalized); len(lookalikes) > 0 {
		fmt.Fprintf(&b, "lookalike words: %s\n", strings.Join(lookalikes, ", "))
	} else {
		fmt.Fprintf(&b, "lookalike words: none\n")
	}

	spam, score := a.classifier.Classify(sample)
	fmt.Fprintf(&b, "classifier: spam=%v, score=%.2f\n", spam, score)
	fmt.Fprintf(&b, "normalized: %s", normalized)

	return a.reply(msg, b.String())
}

// cleanupRecent wipes the lately seen messages of a removed sender: registers
// each non-empty text as bad content and bulk-deletes the messages from the
// chat. This is best effort, failures here never block the moderation action.
func (a *admin) cleanupRecent(ctx context.Context, senderID, chatID int64) {
	msgs := a.recent.Get(senderID, chatID)
	if len(msgs) == 0 {
		return
	}

	msgIDs := make([]int, 0, len(msgs))
	for _, m := range msgs {
		msgIDs = append(msgIDs, m.ID)
		text := m.ContentText()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := a.badContent.MarkAsBad(ctx, text); err != nil {
			log.Printf("[DEBUG] failed to mark message %d as bad: %v", m.ID, err)
		}
	}

	if _, err := a.tbAPI.Request(tbapi.DeleteMessagesConfig{BaseChatMessages: tbapi.BaseChatMessages{
		ChatConfig: tbapi.ChatConfig{ChatID: chatID},
		MessageIDs: msgIDs,
	}}); err != nil {
		log.Printf("[DEBUG] failed to bulk-delete %d messages of user %d in chat %d: %v", len(msgIDs), senderID, chatID, err)
		return
	}
	log.Printf("[INFO] deleted %d recent messages of user %d in chat %d", len(msgIDs), senderID, chatID)
}

func (a *admin) banUser(chatID, userID int64) error {
	resp, err := a.tbAPI.Request(tbapi.BanChatMemberConfig{
		ChatMemberConfig: tbapi.ChatMemberConfig{
			ChatConfig: tbapi.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
	})
	if err != nil {
		return err
	}
	if !resp.Ok {
		return fmt.Errorf("response is not Ok: %v", string(resp.Result))
	}
	log.Printf("[INFO] user %d banned in chat %d", userID, chatID)
	return nil
}

// muteUser revokes every chat capability of the user. Permissions are applied
// independently, so all flags must be set to false explicitly.
func (a *admin) muteUser(chatID, userID int64) error {
	resp, err := a.tbAPI.Request(tbapi.RestrictChatMemberConfig{
		ChatMemberConfig: tbapi.ChatMemberConfig{
			ChatConfig: tbapi.ChatConfig{ChatID: chatID},
			UserID:     userID,
		},
		UseIndependentChatPermissions: true,
		Permissions: &tbapi.ChatPermissions{
			CanSendMessages:       false,
			CanSendAudios:         false,
			CanSendDocuments:      false,
			CanSendPhotos:         false,
			CanSendVideos:         false,
			CanSendVideoNotes:     false,
			CanSendVoiceNotes:     false,
			CanSendPolls:          false,
			CanSendOtherMessages:  false,
			CanAddWebPagePreviews: false,
			CanChangeInfo:         false,
			CanInviteUsers:        false,
			CanPinMessages:        false,
			CanManageTopics:       false,
		},
	})
	if err != nil {
		return err
	}
	if !resp.Ok {
		return fmt.Errorf("response is not Ok: %v", string(resp.Result))
	}
	log.Printf("[INFO] user %d muted in chat %d", userID, chatID)
	return nil
}

func (a *admin) banChannel(chatID, channelID int64) error {
	resp, err := a.tbAPI.Request(tbapi.BanChatSenderChatConfig{
		ChatConfig:   tbapi.ChatConfig{ChatID: chatID},
		SenderChatID: channelID,
	})
	if err != nil {
		return err
	}
	if !resp.Ok {
		return fmt.Errorf("response is not Ok: %v", string(resp.Result))
	}
	log.Printf("[INFO] channel %d banned in chat %d", channelID, chatID)
	return nil
}

// notifyOutcome reports the action result to the admin chat, replying to the
// originating report message when available
func (a *admin) notifyOutcome(query *tbapi.CallbackQuery, okText string, actErr error) {
	text := okText
	if actErr != nil {
		text = "error: " + actErr.Error() + ", please go and handle it manually"
	}
	tbMsg := tbapi.NewMessage(a.adminChatID, escapeMarkDownV1Text(text))
	if query.Message != nil {
		tbMsg.ReplyParameters = tbapi.ReplyParameters{MessageID: query.Message.MessageID}
	}
	if err := send(tbMsg, a.tbAPI); err != nil {
		log.Printf("[WARN] failed to notify admin chat: %v", err)
	}
}

func (a *admin) saveAudit(action string, chatID, userID int64, adminName string, actErr error) {
	if a.audit == nil {
		return
	}
	entry := AuditEntry{
		Time:   time.Now(),
		Action: action,
		ChatID: chatID,
		UserID: userID,
		Admin:  adminName,
	}
	if actErr != nil {
		entry.Error = actErr.Error()
	}
	a.audit.Save(entry)
}

// reply sends a message to the admin chat replying to the given message
func (a *admin) reply(msg *tbapi.Message, text string) error {
	tbMsg := tbapi.NewMessage(a.adminChatID, escapeMarkDownV1Text(text))
	tbMsg.ReplyParameters = tbapi.ReplyParameters{MessageID: msg.MessageID}
	if err := send(tbMsg, a.tbAPI); err != nil {
		return fmt.Errorf("failed to reply in admin chat: %w", err)
	}
	return nil
}

func userName(msg *tbapi.Message) string {
	if msg.From == nil {
		return ""
	}
	return msg.From.UserName
}
