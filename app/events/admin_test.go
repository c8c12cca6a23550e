package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-doorman/app/bot"
	"github.com/umputun/tg-doorman/app/events/mocks"
)

type adminTestFixture struct {
	adm        *admin
	tbAPI      *mocks.TbAPIMock
	trust      *mocks.TrustMock
	profiles   *mocks.ProfileReviewsMock
	badContent *mocks.BadContentMock
	classifier *mocks.ClassifierMock
	recent     *mocks.RecentMock
	audit      []AuditEntry
}

func newAdminTestFixture(t *testing.T) *adminTestFixture {
	t.Helper()

	f := &adminTestFixture{
		tbAPI: &mocks.TbAPIMock{
			SendFunc: func(c tbapi.Chattable) (tbapi.Message, error) {
				return tbapi.Message{}, nil
			},
			RequestFunc: func(c tbapi.Chattable) (*tbapi.APIResponse, error) {
				return &tbapi.APIResponse{Ok: true}, nil
			},
			GetMeFunc: func() (tbapi.User, error) {
				return tbapi.User{ID: 7, UserName: "doorman_bot"}, nil
			},
		},
		trust: &mocks.TrustMock{
			ApproveFunc:    func(ctx context.Context, userID int64) error { return nil },
			UnbanFunc:      func(ctx context.Context, userID int64) error { return nil },
			IsApprovedFunc: func(ctx context.Context, userID int64) (bool, error) { return false, nil },
		},
		profiles: &mocks.ProfileReviewsMock{
			MarkUserOKFunc: func(ctx context.Context, userID int64) error { return nil },
		},
		badContent: &mocks.BadContentMock{
			MarkAsBadFunc: func(ctx context.Context, text string) error { return nil },
		},
		classifier: &mocks.ClassifierMock{
			AddSpamFunc:       func(msg string) error { return nil },
			AddHamFunc:        func(msg string) error { return nil },
			ClassifyFunc:      func(text string) (bool, float64) { return false, 0 },
			TooManyEmojisFunc: func(text string) bool { return false },
			StopWordsFunc:     func(text string) (bool, string) { return false, "" },
		},
		recent: &mocks.RecentMock{
			AddFunc: func(msg bot.Message) {},
			GetFunc: func(senderID, chatID int64) []bot.Message { return nil },
		},
	}

	f.adm = &admin{
		tbAPI:       f.tbAPI,
		trust:       f.trust,
		profiles:    f.profiles,
		badContent:  f.badContent,
		classifier:  f.classifier,
		recent:      f.recent,
		identity:    newIdentityCache(f.tbAPI),
		adminChatID: 1000,
	}
	f.adm.audit = AuditLoggerFunc(func(entry AuditEntry) { f.audit = append(f.audit, entry) })
	return f
}

func mkCallback(data string) *tbapi.CallbackQuery {
	return &tbapi.CallbackQuery{
		ID:      "cb-id",
		Data:    data,
		From:    &tbapi.User{ID: 99, UserName: "admin"},
		Message: &tbapi.Message{MessageID: 55, Chat: tbapi.Chat{ID: 1000}},
	}
}

// lastMarkupEdit returns the final retraction edit sent by the handler, if any
func lastMarkupEdit(tbAPI *mocks.TbAPIMock) (tbapi.EditMessageReplyMarkupConfig, bool) {
	for i := len(tbAPI.SendCalls()) - 1; i >= 0; i-- {
		if edit, ok := tbAPI.SendCalls()[i].C.(tbapi.EditMessageReplyMarkupConfig); ok {
			return edit, true
		}
	}
	return tbapi.EditMessageReplyMarkupConfig{}, false
}

func TestAdmin_CallbackApprove(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("approve_123"))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.trust.ApproveCalls()))
	assert.Equal(t, int64(123), f.trust.ApproveCalls()[0].UserID)
	assert.Empty(t, f.profiles.MarkUserOKCalls(), "approve must not touch profile reviews")
	assert.Empty(t, f.recent.GetCalls(), "approve triggers no cleanup")

	// ack + no ban/mute/banchan requests
	require.Equal(t, 1, len(f.tbAPI.RequestCalls()))
	_, ok := f.tbAPI.RequestCalls()[0].C.(tbapi.CallbackConfig)
	assert.True(t, ok, "the only request is the callback ack")

	edit, found := lastMarkupEdit(f.tbAPI)
	require.True(t, found, "keyboard retracted")
	assert.Empty(t, edit.ReplyMarkup.InlineKeyboard)
	assert.Equal(t, 55, edit.MessageID)

	notify, ok := f.tbAPI.SendCalls()[0].C.(tbapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, notify.Text, "user 123 approved")
	assert.Contains(t, notify.Text, "admin", "confirmation names the acting admin")

	require.Len(t, f.audit, 1)
	assert.Equal(t, "approve", f.audit[0].Action)
	assert.Equal(t, int64(123), f.audit[0].UserID)
	assert.Equal(t, "admin", f.audit[0].Admin)
	assert.Empty(t, f.audit[0].Error)
}

func TestAdmin_CallbackProfileOK(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("attOk_321"))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.profiles.MarkUserOKCalls()))
	assert.Equal(t, int64(321), f.profiles.MarkUserOKCalls()[0].UserID)
	assert.Empty(t, f.trust.ApproveCalls(), "profile-ok must not approve")
	assert.Empty(t, f.recent.GetCalls())
}

func TestAdmin_CallbackBan(t *testing.T) {
	f := newAdminTestFixture(t)
	f.recent.GetFunc = func(senderID, chatID int64) []bot.Message {
		return []bot.Message{
			{ID: 201, From: bot.User{ID: 555}, ChatID: -100200, Text: "spam one"},
			{ID: 202, From: bot.User{ID: 555}, ChatID: -100200, Text: "spam two"},
		}
	}

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("ban_-100200_555"))
	require.NoError(t, err)

	var banReq tbapi.BanChatMemberConfig
	banFound := false
	var delReq tbapi.DeleteMessagesConfig
	delFound := false
	for _, call := range f.tbAPI.RequestCalls() {
		switch req := call.C.(type) {
		case tbapi.BanChatMemberConfig:
			banReq, banFound = req, true
		case tbapi.DeleteMessagesConfig:
			delReq, delFound = req, true
		case tbapi.RestrictChatMemberConfig:
			t.Fatal("ban must not restrict")
		}
	}
	require.True(t, banFound)
	assert.Equal(t, int64(-100200), banReq.ChatConfig.ChatID)
	assert.Equal(t, int64(555), banReq.UserID)

	require.True(t, delFound, "recent messages bulk-deleted")
	assert.Equal(t, []int{201, 202}, delReq.MessageIDs)
	assert.Equal(t, int64(-100200), delReq.ChatConfig.ChatID)

	require.Equal(t, 2, len(f.badContent.MarkAsBadCalls()), "each recent text registered as bad")
	assert.Equal(t, "spam one", f.badContent.MarkAsBadCalls()[0].Text)

	require.Len(t, f.audit, 1)
	assert.Equal(t, "ban", f.audit[0].Action)
	assert.Equal(t, int64(-100200), f.audit[0].ChatID)
}

func TestAdmin_CallbackMute(t *testing.T) {
	f := newAdminTestFixture(t)
	f.recent.GetFunc = func(senderID, chatID int64) []bot.Message {
		return []bot.Message{{ID: 301, From: bot.User{ID: 555}, ChatID: -100200, Text: "noisy"}}
	}

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("mute_-100200_555"))
	require.NoError(t, err)

	var restrictReq tbapi.RestrictChatMemberConfig
	restrictFound := false
	for _, call := range f.tbAPI.RequestCalls() {
		switch req := call.C.(type) {
		case tbapi.RestrictChatMemberConfig:
			restrictReq, restrictFound = req, true
		case tbapi.BanChatMemberConfig:
			t.Fatal("mute must not ban")
		}
	}
	require.True(t, restrictFound)
	assert.Equal(t, int64(555), restrictReq.UserID)
	assert.True(t, restrictReq.UseIndependentChatPermissions)
	require.NotNil(t, restrictReq.Permissions)
	assert.False(t, restrictReq.Permissions.CanSendMessages)
	assert.False(t, restrictReq.Permissions.CanSendOtherMessages)
	assert.False(t, restrictReq.Permissions.CanAddWebPagePreviews)

	// cleanup targets the muted user, not anyone else
	require.Equal(t, 1, len(f.recent.GetCalls()))
	assert.Equal(t, int64(555), f.recent.GetCalls()[0].SenderID)
	assert.Equal(t, int64(-100200), f.recent.GetCalls()[0].ChatID)
}

func TestAdmin_CallbackBanChannel(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("banchan_-100200_-100999"))
	require.NoError(t, err)

	var chanReq tbapi.BanChatSenderChatConfig
	found := false
	for _, call := range f.tbAPI.RequestCalls() {
		if req, ok := call.C.(tbapi.BanChatSenderChatConfig); ok {
			chanReq, found = req, true
		}
	}
	require.True(t, found)
	assert.Equal(t, int64(-100200), chanReq.ChatConfig.ChatID)
	assert.Equal(t, int64(-100999), chanReq.SenderChatID)
	assert.Empty(t, f.trust.ApproveCalls())
}

func TestAdmin_CallbackActionFailureStillRetracts(t *testing.T) {
	f := newAdminTestFixture(t)
	f.trust.ApproveFunc = func(ctx context.Context, userID int64) error { return errors.New("db gone") }

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("approve_123"))
	require.ErrorContains(t, err, "db gone")

	_, found := lastMarkupEdit(f.tbAPI)
	assert.True(t, found, "keyboard retracted even after a failed action")

	require.Len(t, f.audit, 1)
	assert.Contains(t, f.audit[0].Error, "db gone")

	// outcome notification carries the error text and the manual-action hint
	notified := false
	for _, call := range f.tbAPI.SendCalls() {
		if msg, ok := call.C.(tbapi.MessageConfig); ok && strings.Contains(msg.Text, "error:") {
			notified = true
			assert.Contains(t, msg.Text, "handle it manually")
		}
	}
	assert.True(t, notified, "admin chat notified about the failure")
}

func TestAdmin_CallbackBanFailureStillNotifiesAndCleans(t *testing.T) {
	f := newAdminTestFixture(t)
	f.recent.GetFunc = func(senderID, chatID int64) []bot.Message {
		return []bot.Message{{ID: 501, From: bot.User{ID: 200}, ChatID: 100, Text: "spam text"}}
	}
	f.tbAPI.RequestFunc = func(c tbapi.Chattable) (*tbapi.APIResponse, error) {
		if _, ok := c.(tbapi.BanChatMemberConfig); ok {
			return nil, errors.New("not enough rights")
		}
		return &tbapi.APIResponse{Ok: true}, nil
	}

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("ban_100_200"))
	require.ErrorContains(t, err, "not enough rights")

	// exactly one failure notification
	failures := 0
	for _, call := range f.tbAPI.SendCalls() {
		if msg, ok := call.C.(tbapi.MessageConfig); ok && strings.Contains(msg.Text, "error:") {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "single failure notification")

	// cleanup runs whether or not the ban itself succeeded
	require.Equal(t, 1, len(f.recent.GetCalls()))
	assert.Equal(t, int64(200), f.recent.GetCalls()[0].SenderID)
	assert.Equal(t, int64(100), f.recent.GetCalls()[0].ChatID)
	require.Equal(t, 1, len(f.badContent.MarkAsBadCalls()))
	assert.Equal(t, "spam text", f.badContent.MarkAsBadCalls()[0].Text)

	_, found := lastMarkupEdit(f.tbAPI)
	assert.True(t, found, "keyboard retracted after the failed ban")

	require.Len(t, f.audit, 1)
	assert.Equal(t, "ban", f.audit[0].Action)
	assert.Contains(t, f.audit[0].Error, "not enough rights")
}

func TestAdmin_CallbackIgnoredPayload(t *testing.T) {
	f := newAdminTestFixture(t)

	for _, data := range []string{"garbage", "approve_abc", "ban_1", ""} {
		err := f.adm.InlineCallbackHandler(context.Background(), mkCallback(data))
		require.NoError(t, err, data)
	}

	assert.Empty(t, f.tbAPI.RequestCalls(), "no ack for dropped payloads")
	assert.Empty(t, f.tbAPI.SendCalls(), "no retraction for dropped payloads")
	assert.Empty(t, f.audit)
}

func TestAdmin_CallbackWrongChatIgnored(t *testing.T) {
	f := newAdminTestFixture(t)
	query := mkCallback("approve_123")
	query.Message.Chat.ID = 2000 // not the admin chat

	err := f.adm.InlineCallbackHandler(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, f.trust.ApproveCalls())
	assert.Empty(t, f.tbAPI.SendCalls())
}

func TestAdmin_CleanupFailuresSwallowed(t *testing.T) {
	f := newAdminTestFixture(t)
	f.recent.GetFunc = func(senderID, chatID int64) []bot.Message {
		return []bot.Message{{ID: 401, From: bot.User{ID: 555}, ChatID: -100200, Text: "spam"}}
	}
	f.badContent.MarkAsBadFunc = func(ctx context.Context, text string) error { return errors.New("store down") }
	f.tbAPI.RequestFunc = func(c tbapi.Chattable) (*tbapi.APIResponse, error) {
		if _, ok := c.(tbapi.DeleteMessagesConfig); ok {
			return nil, errors.New("messages too old")
		}
		return &tbapi.APIResponse{Ok: true}, nil
	}

	err := f.adm.InlineCallbackHandler(context.Background(), mkCallback("ban_-100200_555"))
	assert.NoError(t, err, "cleanup failures never fail the action")
}

func mkAdminMsg(text string) *tbapi.Message {
	return &tbapi.Message{
		MessageID: 77,
		Text:      text,
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 99, UserName: "admin"},
	}
}

func mkUpdate(msg *tbapi.Message) tbapi.Update {
	return tbapi.Update{Message: msg}
}

func TestAdmin_Unban(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.MsgHandler(context.Background(), mkUpdate(mkAdminMsg("/unban 12345")))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.trust.UnbanCalls()))
	assert.Equal(t, int64(12345), f.trust.UnbanCalls()[0].UserID)

	require.Len(t, f.audit, 1)
	assert.Equal(t, "unban", f.audit[0].Action)
	assert.Equal(t, int64(12345), f.audit[0].UserID)
	assert.Equal(t, "admin", f.audit[0].Admin)
}

func TestAdmin_UnbanMalformedDroppedSilently(t *testing.T) {
	f := newAdminTestFixture(t)

	for _, text := range []string{"/unban", "/unban abc", "/unban 1 2", "/unbanish the darkness please"} {
		err := f.adm.MsgHandler(context.Background(), mkUpdate(mkAdminMsg(text)))
		require.NoError(t, err, text)
	}
	assert.Empty(t, f.trust.UnbanCalls())
	assert.Empty(t, f.tbAPI.SendCalls(), "no reply for malformed unban")
	assert.Empty(t, f.audit)
}

func TestAdmin_SpamCommand(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/spam")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "buy cheap stuff",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 555, UserName: "spammer"},
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.classifier.AddSpamCalls()))
	assert.Equal(t, "buy cheap stuff", f.classifier.AddSpamCalls()[0].Msg)
	require.Equal(t, 1, len(f.badContent.MarkAsBadCalls()))
	assert.Equal(t, "buy cheap stuff", f.badContent.MarkAsBadCalls()[0].Text)
	require.Equal(t, 1, len(f.tbAPI.SendCalls()), "single confirmation reply")
}

func TestAdmin_HamCommand(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/ham@doorman_bot")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "legit question",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 555},
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.classifier.AddHamCalls()))
	assert.Equal(t, "legit question", f.classifier.AddHamCalls()[0].Msg)
	assert.Empty(t, f.badContent.MarkAsBadCalls(), "ham is not bad content")
}

func TestAdmin_CommandWithoutReply(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.MsgHandler(context.Background(), mkUpdate(mkAdminMsg("/spam")))
	require.NoError(t, err)

	assert.Empty(t, f.classifier.AddSpamCalls())
	require.Equal(t, 1, len(f.tbAPI.SendCalls()))
	reply, ok := f.tbAPI.SendCalls()[0].C.(tbapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "expects a reply")
}

func TestAdmin_ReplyToOwnMessageRejectedWithWarning(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/spam")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "suspect report text",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 7, UserName: "doorman_bot"}, // the bot itself
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)
	assert.Empty(t, f.classifier.AddSpamCalls(), "own reports are not samples")
	assert.Empty(t, f.badContent.MarkAsBadCalls())

	require.Equal(t, 1, len(f.tbAPI.SendCalls()), "single explanatory reply")
	reply, ok := f.tbAPI.SendCalls()[0].C.(tbapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, reply.Text, "reply to the user's message instead")
}

func TestAdmin_ReplyToForwardedByBotAccepted(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/spam")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID:     200,
		Text:          "forwarded spam",
		Chat:          tbapi.Chat{ID: 1000},
		From:          &tbapi.User{ID: 7, UserName: "doorman_bot"},
		ForwardOrigin: &tbapi.MessageOrigin{Type: "user"}, // bot is just the forwarder
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)
	require.Equal(t, 1, len(f.classifier.AddSpamCalls()))
	assert.Equal(t, "forwarded spam", f.classifier.AddSpamCalls()[0].Msg)
}

func TestAdmin_QuotePrefixedSample(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/spam")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "main text",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 555},
		Quote:     &tbapi.TextQuote{Text: "quoted bit"},
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)
	require.Equal(t, 1, len(f.classifier.AddSpamCalls()))
	assert.Equal(t, "quoted bit main text", f.classifier.AddSpamCalls()[0].Msg)
}

func TestAdmin_WhitespaceOnlySampleIgnored(t *testing.T) {
	f := newAdminTestFixture(t)
	msg := mkAdminMsg("/spam")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "   \n\t  ",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 555},
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)
	assert.Empty(t, f.classifier.AddSpamCalls())
	assert.Empty(t, f.badContent.MarkAsBadCalls())
	assert.Empty(t, f.tbAPI.SendCalls())
}

func TestAdmin_CheckCommand(t *testing.T) {
	f := newAdminTestFixture(t)
	f.classifier.TooManyEmojisFunc = func(text string) bool { return true }
	f.classifier.StopWordsFunc = func(text string) (bool, string) { return true, "казино" }
	f.classifier.ClassifyFunc = func(text string) (bool, float64) { return true, 87.5 }

	msg := mkAdminMsg("/check")
	msg.ReplyToMessage = &tbapi.Message{
		MessageID: 200,
		Text:      "some sample",
		Chat:      tbapi.Chat{ID: 1000},
		From:      &tbapi.User{ID: 555},
	}

	err := f.adm.MsgHandler(context.Background(), mkUpdate(msg))
	require.NoError(t, err)

	require.Equal(t, 1, len(f.tbAPI.SendCalls()))
	reply, ok := f.tbAPI.SendCalls()[0].C.(tbapi.MessageConfig)
	require.True(t, ok)

	lines := strings.Split(reply.Text, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "too many emojis: true")
	assert.Contains(t, lines[1], "казино")
	assert.Contains(t, lines[2], "lookalike words")
	assert.Contains(t, lines[3], "spam=true")
	assert.Contains(t, lines[3], "87.50")
	assert.Contains(t, lines[4], "normalized: some sample")
}

func TestAdmin_NonCommandIgnored(t *testing.T) {
	f := newAdminTestFixture(t)

	err := f.adm.MsgHandler(context.Background(), mkUpdate(mkAdminMsg("just chatting")))
	require.NoError(t, err)
	assert.Empty(t, f.tbAPI.SendCalls())
	assert.Empty(t, f.classifier.AddSpamCalls())
}

func TestAuditEntry_JSON(t *testing.T) {
	entry := AuditEntry{Action: "ban", ChatID: -100200, UserID: 555, Admin: "admin"}
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"ban"`)
	assert.Contains(t, string(data), `"user_id":555`)
	assert.NotContains(t, string(data), "error", "empty error omitted")
}
