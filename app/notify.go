package app

import (
	"sync"
	"time"

	"github.com/etnz/tradebook/renderer"
)

// DismissDelay is the lifetime of a notification.
const DismissDelay = 3 * time.Second

// Notifier holds the transient notifications, newest last.
//
// Every pushed notification is dismissed after DismissDelay.
type Notifier struct {
	mu     sync.Mutex
	next   int
	active []renderer.Notice
	timers map[int]*time.Timer
	sink   func(renderer.Notice)
	delay  time.Duration
}

// NewNotifier returns a Notifier. If sink is not nil it is called with
// every pushed notification.
func NewNotifier(sink func(renderer.Notice)) *Notifier {
	return &Notifier{
		timers: make(map[int]*time.Timer),
		sink:   sink,
		delay:  DismissDelay,
	}
}

// Push shows a new notification.
func (n *Notifier) Push(kind renderer.NoticeKind, msg string) renderer.Notice {
	n.mu.Lock()
	n.next++
	notice := renderer.Notice{ID: n.next, Kind: kind, Message: msg}
	n.active = append(n.active, notice)
	n.timers[notice.ID] = time.AfterFunc(n.delay, func() { n.Dismiss(notice.ID) })
	sink := n.sink
	n.mu.Unlock()

	if sink != nil {
		sink(notice)
	}
	return notice
}

// Dismiss removes the notification id, if still active.
func (n *Notifier) Dismiss(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	for i, notice := range n.active {
		if notice.ID == id {
			n.active = append(n.active[:i:i], n.active[i+1:]...)
			return
		}
	}
}

// Active returns a copy of the active notifications, oldest first.
func (n *Notifier) Active() []renderer.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]renderer.Notice(nil), n.active...)
}

// Stop dismisses every notification and stops their timers.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.active = nil
}
