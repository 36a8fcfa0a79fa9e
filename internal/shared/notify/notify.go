// Package notify carries short user-facing notices (toasts) from use cases to
// whatever surface displays them.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Level selects how a notice is styled.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
)

// Notice is one toast.
type Notice struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Notifier receives notices. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Notify(context.Context, Notice) {}

// Logger writes notices as structured log lines.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) Notify(ctx context.Context, notice Notice) {
	l.logger.InfoContext(ctx, "notice",
		slog.String("level", string(notice.Level)),
		slog.String("title", notice.Title),
		slog.String("description", notice.Description),
	)
}

// Queue collects notices until a page render drains them.
type Queue struct {
	mu      sync.Mutex
	pending []Notice
}

func (q *Queue) Notify(_ context.Context, notice Notice) {
	q.mu.Lock()
	q.pending = append(q.pending, notice)
	q.mu.Unlock()
}

// Drain returns the queued notices and empties the queue.
func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Fanout forwards each notice to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, notice Notice) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, notice)
		}
	}
}
