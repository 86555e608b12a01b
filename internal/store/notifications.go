package store

import (
	"time"

	"github.com/MdAkhlaq657/shophub/internal/domain"
	"github.com/google/uuid"
)

// Notifications is an independent mailbox of system messages with read
// tracking. The unread count only moves when the affected notification
// actually changes read state, so it can never go negative or double-count.
type Notifications struct {
	items  []domain.Notification
	unread int

	now   func() time.Time
	newID func() string
}

func NewNotifications() *Notifications {
	return &Notifications{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Post prepends an unread notification to the feed and returns it.
func (n *Notifications) Post(title, message string, kind domain.NotificationKind, link string) domain.Notification {
	return n.PostAt(title, message, kind, link, n.now())
}

// PostAt is Post with an explicit date, for backdated entries such as the
// storefront's seeded feed.
func (n *Notifications) PostAt(title, message string, kind domain.NotificationKind, link string, date time.Time) domain.Notification {
	notification := domain.Notification{
		ID:      n.newID(),
		Title:   title,
		Message: message,
		Kind:    kind,
		Date:    date,
		Link:    link,
	}

	n.items = append([]domain.Notification{notification}, n.items...)
	n.unread++

	return notification
}

// MarkRead reports whether the notification moved from unread to read.
// Marking an already-read notification leaves the unread count untouched.
func (n *Notifications) MarkRead(id string) bool {
	for i, item := range n.items {
		if item.ID != id {
			continue
		}
		if item.Read {
			return false
		}
		n.items[i].Read = true
		n.unread--
		return true
	}
	return false
}

func (n *Notifications) MarkAllRead() {
	for i := range n.items {
		n.items[i].Read = true
	}
	n.unread = 0
}

// Delete removes the notification, decrementing the unread count only when
// the deleted entry was still unread.
func (n *Notifications) Delete(id string) bool {
	for i, item := range n.items {
		if item.ID != id {
			continue
		}
		if !item.Read {
			n.unread--
		}
		n.items = append(n.items[:i], n.items[i+1:]...)
		return true
	}
	return false
}

func (n *Notifications) ClearAll() {
	n.items = nil
	n.unread = 0
}

func (n *Notifications) All() []domain.Notification {
	items := make([]domain.Notification, len(n.items))
	copy(items, n.items)
	return items
}

func (n *Notifications) Unread() int {
	return n.unread
}
