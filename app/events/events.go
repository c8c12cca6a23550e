package events

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/umputun/tg-doorman/app/bot"
)

//go:generate moq --out mocks/tb_api.go --pkg mocks --with-resets --skip-ensure . TbAPI
//go:generate moq --out mocks/trust.go --pkg mocks --with-resets --skip-ensure . Trust
//go:generate moq --out mocks/profile_reviews.go --pkg mocks --with-resets --skip-ensure . ProfileReviews
//go:generate moq --out mocks/bad_content.go --pkg mocks --with-resets --skip-ensure . BadContent
//go:generate moq --out mocks/classifier.go --pkg mocks --with-resets --skip-ensure . Classifier
//go:generate moq --out mocks/recent.go --pkg mocks --with-resets --skip-ensure . Recent

// TbAPI is an interface for telegram bot API, only subset of methods used
type TbAPI interface {
	GetUpdatesChan(config tbapi.UpdateConfig) tbapi.UpdatesChannel
	Send(c tbapi.Chattable) (tbapi.Message, error)
	Request(c tbapi.Chattable) (*tbapi.APIResponse, error)
	GetMe() (tbapi.User, error)
	GetChat(config tbapi.ChatInfoConfig) (tbapi.ChatFullInfo, error)
	GetChatAdministrators(config tbapi.ChatAdministratorsConfig) ([]tbapi.ChatMember, error)
}

// Trust is an interface for the approved users registry
type Trust interface {
	Approve(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
	IsApproved(ctx context.Context, userID int64) (bool, error)
}

// ProfileReviews is an interface for the reviewed profiles registry
type ProfileReviews interface {
	MarkUserOK(ctx context.Context, userID int64) error
}

// BadContent is an interface for the bad content registry
type BadContent interface {
	MarkAsBad(ctx context.Context, text string) error
}

// Classifier is an interface for text checks and classifier training
type Classifier interface {
	Classify(text string) (spam bool, score float64)
	AddSpam(msg string) error
	AddHam(msg string) error
	TooManyEmojis(text string) bool
	StopWords(text string) (found bool, match string)
}

// Recent is an interface for the recent messages cache
type Recent interface {
	Add(msg bot.Message)
	Get(senderID, chatID int64) []bot.Message
}

// AuditEntry is a single record of an executed moderation action
type AuditEntry struct {
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	ChatID int64     `json:"chat_id,omitempty"`
	UserID int64     `json:"user_id"`
	Admin  string    `json:"admin,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// AuditLogger is an interface for the moderation audit log
type AuditLogger interface {
	Save(entry AuditEntry)
}

// AuditLoggerFunc is a function adapter for AuditLogger
type AuditLoggerFunc func(entry AuditEntry)

// Save implements AuditLogger
func (f AuditLoggerFunc) Save(entry AuditEntry) { f(entry) }

func escapeMarkDownV1Text(text string) string {
	escSymbols := []string{"_", "*", "`", "["}
	for _, esc := range escSymbols {
		text = strings.ReplaceAll(text, esc, "\\"+esc)
	}
	return text
}

// send a message to the telegram as markdown first and if failed - as plain text
func send(tbMsg tbapi.Chattable, tbAPI TbAPI) error {
	withParseMode := func(tbMsg tbapi.Chattable, parseMode string) tbapi.Chattable {
		switch msg := tbMsg.(type) {
		case tbapi.MessageConfig:
			msg.ParseMode = parseMode
			msg.LinkPreviewOptions = tbapi.LinkPreviewOptions{IsDisabled: true}
			return msg
		case tbapi.EditMessageTextConfig:
			msg.ParseMode = parseMode
			msg.LinkPreviewOptions = tbapi.LinkPreviewOptions{IsDisabled: true}
			return msg
		case tbapi.EditMessageReplyMarkupConfig:
			return msg
		}
		return tbMsg // don't touch other types
	}

	msg := withParseMode(tbMsg, tbapi.ModeMarkdown) // try markdown first
	if _, err := tbAPI.Send(msg); err != nil {
		log.Printf("[WARN] failed to send message as markdown, %v", err)
		msg = withParseMode(tbMsg, "") // try plain text
		if _, err := tbAPI.Send(msg); err != nil {
			return fmt.Errorf("can't send message to telegram: %w", err)
		}
	}
	return nil
}

func transform(msg *tbapi.Message) *bot.Message {
	message := bot.Message{
		ID:      msg.MessageID,
		Sent:    msg.Time(),
		Text:    msg.Text,
		Caption: msg.Caption,
		ChatID:  msg.Chat.ID,
	}

	if msg.From != nil {
		message.From = bot.User{
			ID:       msg.From.ID,
			Username: msg.From.UserName,
		}
	}

	if msg.From != nil && strings.TrimSpace(msg.From.FirstName) != "" {
		message.From.DisplayName = msg.From.FirstName
	}
	if msg.From != nil && strings.TrimSpace(msg.From.LastName) != "" {
		message.From.DisplayName += " " + msg.From.LastName
	}

	if msg.SenderChat != nil {
		message.SenderChat = bot.SenderChat{
			ID:       msg.SenderChat.ID,
			UserName: msg.SenderChat.UserName,
		}
	}

	if msg.Quote != nil {
		message.Quote = msg.Quote.Text
	}

	if msg.ForwardOrigin != nil {
		message.WithForward = true
	}

	return &message
}
