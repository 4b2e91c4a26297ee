package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"syllabus-tracker/backend/models"
)

// DefaultNotificationTTL applies to notifications pushed without a duration.
const DefaultNotificationTTL = 5 * time.Second

// Notifier holds transient notifications. Each one is dropped automatically
// once its duration elapses unless it was dismissed first.
type Notifier struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	items  []models.Notification
	timers map[string]*time.Timer
	closed bool
}

// NewNotifier uses ttl as the default lifetime, or DefaultNotificationTTL when ttl <= 0.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, now: time.Now, timers: make(map[string]*time.Timer)}
}

// Push stores a notification with the default lifetime.
func (n *Notifier) Push(typ models.NotificationType, title, message string) models.Notification {
	return n.PushFor(typ, title, message, 0)
}

// PushFor is Push with an explicit lifetime; d <= 0 means the default.
func (n *Notifier) PushFor(typ models.NotificationType, title, message string, d time.Duration) models.Notification {
	if d <= 0 {
		d = n.ttl
	}
	item := models.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Duration:  d,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return item
	}
	n.items = append(n.items, item)
	id := item.ID
	n.timers[id] = time.AfterFunc(d, func() { n.remove(id) })
	return item
}

// Dismiss removes a notification early and cancels its timer.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[id]; ok {
		t.Stop()
	}
	return n.removeLocked(id)
}

// List returns the live notifications, oldest first.
func (n *Notifier) List() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Notification{}, n.items...)
}

// Close stops every pending timer and drops all notifications.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range n.timers {
		t.Stop()
	}
	n.timers = map[string]*time.Timer{}
	n.items = nil
	n.closed = true
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removeLocked(id)
}

func (n *Notifier) removeLocked(id string) bool {
	delete(n.timers, id)
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}
