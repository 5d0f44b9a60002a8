package audit

import (
	"context"
	"log/slog"
)

const (
	ActionUserRegistered      = "user_registered"
	ActionPostCreated         = "post_created"
	ActionPostUpdated         = "post_updated"
	ActionPostDeleted         = "post_deleted"
	ActionPostModerated       = "post_moderated"
	ActionCommentCreated      = "comment_created"
	ActionConversationStarted = "conversation_started"
	ActionMessageSent         = "message_sent"
	ActionSkillCreated        = "skill_created"
	ActionSkillDeleted        = "skill_deleted"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			slog.Error("audit write failed", slog.String("action", ev.Action), slog.String("error", err.Error()))
		}
	}
}

// Dispatch never blocks the request: a full queue drops the event.
// A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

func Ref(id uint) *uint {
	return &id
}
