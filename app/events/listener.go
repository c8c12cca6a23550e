// Package events provides the telegram event loop and all high-level handlers.
// It routes group messages to the spam checks and the recent-messages cache,
// reports suspects to the admin chat with action buttons, and dispatches the
// moderation verbs coming back from those buttons.
package events

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tbapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/umputun/tg-doorman/app/bot"
)

// TelegramListener listens to tg updates and routes them to handlers.
// Not thread safe.
type TelegramListener struct {
	TbAPI      TbAPI
	Trust      Trust
	Profiles   ProfileReviews
	BadContent BadContent
	Classifier Classifier
	Recent     Recent
	Audit      AuditLogger
	Group      string // can be int64 or public group username (without "@" prefix)
	AdminGroup string // can be int64 or public group username (without "@" prefix)
	SuperUsers SuperUsers

	adminHandler *admin
	chatID       int64
	adminChatID  int64
}

// Do processes all events, blocking call
func (l *TelegramListener) Do(ctx context.Context) error {
	log.Printf("[INFO] start telegram listener for %q", l.Group)

	var getChatErr error
	if l.chatID, getChatErr = l.getChatID(l.Group); getChatErr != nil {
		return fmt.Errorf("failed to get chat ID for group %q: %w", l.Group, getChatErr)
	}

	if l.AdminGroup != "" {
		if l.adminChatID, getChatErr = l.getChatID(l.AdminGroup); getChatErr != nil {
			return fmt.Errorf("failed to get chat ID for admin group %q: %w", l.AdminGroup, getChatErr)
		}
		log.Printf("[INFO] admin chat ID: %d", l.adminChatID)
	}

	if err := l.updateSupers(); err != nil {
		log.Printf("[WARN] failed to update superusers: %v", err)
	}

	l.adminHandler = &admin{
		tbAPI:       l.TbAPI,
		trust:       l.Trust,
		profiles:    l.Profiles,
		badContent:  l.BadContent,
		classifier:  l.Classifier,
		recent:      l.Recent,
		identity:    newIdentityCache(l.TbAPI),
		adminChatID: l.adminChatID,
		audit:       l.Audit,
	}

	u := tbapi.NewUpdate(0)
	u.Timeout = 60

	updates := l.TbAPI.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("telegram update chan closed")
			}

			if update.CallbackQuery != nil {
				if err := l.adminHandler.InlineCallbackHandler(ctx, update.CallbackQuery); err != nil {
					log.Printf("[WARN] failed to process callback: %v", err)
					l.sendError(err)
				}
				continue
			}

			if update.Message == nil {
				continue
			}

			if l.isAdminChat(update.Message.Chat.ID, userName(update.Message), userID(update.Message)) {
				if err := l.adminHandler.MsgHandler(ctx, update); err != nil {
					log.Printf("[WARN] failed to process admin chat message: %v", err)
					l.sendError(err)
				}
				continue
			}

			if err := l.procEvent(ctx, update); err != nil {
				log.Printf("[WARN] failed to process update: %v", err)
			}
		}
	}
}

// procEvent handles one group message: records it for potential cleanup and
// reports it to the admin chat if the checks find it suspicious
func (l *TelegramListener) procEvent(ctx context.Context, update tbapi.Update) error {
	if update.Message.Chat.ID != l.chatID {
		return nil // ignore messages from chats we don't watch
	}

	msg := transform(update.Message)
	text := msg.ContentText()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	l.Recent.Add(*msg)

	if l.SuperUsers.IsSuper(msg.From.Username, msg.From.ID) {
		return nil
	}

	approved, err := l.Trust.IsApproved(ctx, msg.From.ID)
	if err != nil {
		return fmt.Errorf("failed to check approval for user %d: %w", msg.From.ID, err)
	}
	if approved {
		return nil
	}

	reasons := l.checkMessage(text)
	if len(reasons) == 0 {
		return nil
	}

	log.Printf("[INFO] suspect message from %q (%d): %s", bot.DisplayName(*msg), msg.From.ID, strings.Join(reasons, "; "))
	if l.adminChatID == 0 {
		return nil
	}
	return l.reportSuspect(*msg, reasons)
}

// checkMessage runs all detector checks, returns human-readable reasons
func (l *TelegramListener) checkMessage(text string) (reasons []string) {
	if l.Classifier.TooManyEmojis(text) {
		reasons = append(reasons, "too many emojis")
	}
	if found, match := l.Classifier.StopWords(text); found {
		reasons = append(reasons, "stop word: "+match)
	}
	if spam, score := l.Classifier.Classify(text); spam {
		reasons = append(reasons, fmt.Sprintf("classifier: spam, score %.2f", score))
	}
	return reasons
}

// reportSuspect posts the suspect message to the admin chat with moderation
// buttons. The button payloads carry the verb and ids, decoded on callback.
func (l *TelegramListener) reportSuspect(msg bot.Message, reasons []string) error {
	text := fmt.Sprintf("**suspect message from [%s](tg://user?id=%d)**\n\n%s\n\n_%s_",
		escapeMarkDownV1Text(bot.DisplayName(msg)), msg.From.ID,
		escapeMarkDownV1Text(strings.ReplaceAll(msg.ContentText(), "\n", " ")),
		escapeMarkDownV1Text(strings.Join(reasons, "; ")))

	row := []tbapi.InlineKeyboardButton{
		tbapi.NewInlineKeyboardButtonData("✓ approve", fmt.Sprintf("approve_%d", msg.From.ID)),
		tbapi.NewInlineKeyboardButtonData("✓ profile ok", fmt.Sprintf("attOk_%d", msg.From.ID)),
	}
	actionRow := []tbapi.InlineKeyboardButton{
		tbapi.NewInlineKeyboardButtonData("⛔ ban", fmt.Sprintf("ban_%d_%d", msg.ChatID, msg.From.ID)),
		tbapi.NewInlineKeyboardButtonData("🔇 mute", fmt.Sprintf("mute_%d_%d", msg.ChatID, msg.From.ID)),
	}
	keyboard := [][]tbapi.InlineKeyboardButton{row, actionRow}
	if msg.SenderChat.ID != 0 {
		keyboard = append(keyboard, []tbapi.InlineKeyboardButton{
			tbapi.NewInlineKeyboardButtonData("⛔ ban channel", fmt.Sprintf("banchan_%d_%d", msg.ChatID, msg.SenderChat.ID)),
		})
	}

	tbMsg := tbapi.NewMessage(l.adminChatID, text)
	tbMsg.ParseMode = tbapi.ModeMarkdown
	tbMsg.ReplyMarkup = tbapi.InlineKeyboardMarkup{InlineKeyboard: keyboard}
	if _, err := l.TbAPI.Send(tbMsg); err != nil {
		return fmt.Errorf("can't send suspect report to admin chat: %w", err)
	}
	return nil
}

func (l *TelegramListener) isAdminChat(fromChat int64, from string, fromID int64) bool {
	if fromChat != l.adminChatID {
		return false
	}
	log.Printf("[DEBUG] message in admin chat %d, from %s (%d)", fromChat, from, fromID)
	if !l.SuperUsers.IsSuper(from, fromID) {
		log.Printf("[DEBUG] %s (%d) is not superuser in admin chat, ignored", from, fromID)
		return false
	}
	return true
}

// sendError reports a handler failure to the admin chat, best effort
func (l *TelegramListener) sendError(err error) {
	if l.adminChatID == 0 {
		return
	}
	if sendErr := send(tbapi.NewMessage(l.adminChatID, "error: "+escapeMarkDownV1Text(err.Error())), l.TbAPI); sendErr != nil {
		log.Printf("[WARN] failed to send error to admin chat: %v", sendErr)
	}
}

func (l *TelegramListener) getChatID(group string) (int64, error) {
	chatID, err := strconv.ParseInt(group, 10, 64)
	if err == nil {
		return chatID, nil
	}

	chat, err := l.TbAPI.GetChat(tbapi.ChatInfoConfig{ChatConfig: tbapi.ChatConfig{SuperGroupUsername: "@" + group}})
	if err != nil {
		return 0, fmt.Errorf("can't get chat for %s: %w", group, err)
	}

	return chat.ID, nil
}

// updateSupers merges the chat administrators fetched from the Telegram API
// into the configured list of super-users
func (l *TelegramListener) updateSupers() error {
	admins, err := l.TbAPI.GetChatAdministrators(tbapi.ChatAdministratorsConfig{ChatConfig: tbapi.ChatConfig{ChatID: l.chatID}})
	if err != nil {
		return fmt.Errorf("failed to get chat administrators: %w", err)
	}

	for _, chatAdmin := range admins {
		name := strings.TrimSpace(chatAdmin.User.UserName)
		if name == "" {
			continue
		}
		if l.SuperUsers.IsSuper(name, chatAdmin.User.ID) {
			continue // already in the list
		}
		l.SuperUsers = append(l.SuperUsers, name)
	}

	log.Printf("[INFO] added admins, full list of supers: {%s}", strings.Join(l.SuperUsers, ", "))
	return nil
}

func userID(msg *tbapi.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}
