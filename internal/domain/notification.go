package domain

import "time"

type NotificationKind string

const (
	NoticeInfo    NotificationKind = "info"
	NoticeSuccess NotificationKind = "success"
	NoticeWarning NotificationKind = "warning"
	NoticeError   NotificationKind = "error"
)

type Notification struct {
	ID      string
	Title   string
	Message string
	Kind    NotificationKind
	Date    time.Time
	Read    bool
	Link    string
}
