package domain

import "time"

// NoticeLevel is the severity of a transient on-screen message.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeDanger  NoticeLevel = "danger"
	NoticeInfo    NoticeLevel = "info"
)

// NoticeDuration is how long a notice stays on screen before it expires.
const NoticeDuration = 3 * time.Second

// Notice is a dismissible, auto-expiring message shown to the visitor.
// Notices are never deduplicated; concurrent notices stack.
type Notice struct {
	Message string      `json:"message"`
	Level   NoticeLevel `json:"level"`
}

func NewNotice(message string, level NoticeLevel) Notice {
	return Notice{Message: message, Level: level}
}
