package events

import (
	"strconv"
	"strings"
)

// SuperUsers is a list of moderators, entries are usernames or numeric user ids
type SuperUsers []string

// IsSuper checks if the username or user id is in the list of super users
func (s SuperUsers) IsSuper(userName string, userID int64) bool {
	userIDStr := strconv.FormatInt(userID, 10)
	for _, super := range s {
		if strings.EqualFold(userName, super) || strings.EqualFold("/"+userName, super) {
			return true
		}
		if userID != 0 && super == userIDStr {
			return true
		}
	}
	return false
}
