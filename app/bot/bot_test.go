package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_ContentText(t *testing.T) {
	tbl := []struct {
		name string
		msg  Message
		want string
	}{
		{"text only", Message{Text: "hello"}, "hello"},
		{"caption fallback", Message{Caption: "photo caption"}, "photo caption"},
		{"text wins over caption", Message{Text: "hello", Caption: "ignored"}, "hello"},
		{"quote prepended", Message{Text: "hello", Quote: "quoted part"}, "quoted part hello"},
		{"quote with caption", Message{Caption: "cap", Quote: "quoted"}, "quoted cap"},
		{"empty", Message{}, ""},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.ContentText())
		})
	}
}

func TestDisplayName(t *testing.T) {
	tbl := []struct {
		name string
		msg  Message
		want string
	}{
		{"display name set", Message{From: User{ID: 1, Username: "un", DisplayName: "Full Name"}}, "Full Name"},
		{"username fallback", Message{From: User{ID: 1, Username: "un"}}, "un"},
		{"id fallback", Message{From: User{ID: 123}}, "123"},
		{"trims spaces", Message{From: User{DisplayName: " Name "}}, "Name"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.msg))
		})
	}
}
