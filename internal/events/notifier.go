package events

import (
	"context"
	"log/slog"
	"sync"
)

// Notifier dispatches memory-state change notifications to registered
// handlers. It stores handlers in memory and invokes them synchronously,
// in registration order, once per published change.
type Notifier struct {
	handlers []StateChangeHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewNotifier creates a new Notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		handlers: make([]StateChangeHandler, 0),
		logger:   logger.With("component", "state_change_notifier"),
	}
}

// Register adds a new handler to receive state-change notifications.
func (n *Notifier) Register(handler StateChangeHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers = append(n.handlers, handler)
	n.logger.Debug("registered state change handler", "handler_count", len(n.handlers))
}

// Notify publishes the given change to all registered handlers.
// If a handler returns an error, the change is still delivered to all other
// handlers; the error is logged and never propagated to the writer, so a
// broken subscriber cannot fail an accepted review.
func (n *Notifier) Notify(ctx context.Context, change StateChange) {
	n.mu.RLock()
	handlers := make([]StateChangeHandler, len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.RUnlock()

	n.logger.Debug("notifying state change",
		"word_id", change.WordID,
		"handler_count", len(handlers))

	for i, handler := range handlers {
		if err := handler.HandleStateChange(ctx, change); err != nil {
			n.logger.Error("handler failed to process state change",
				"error", err,
				"handler_index", i,
				"word_id", change.WordID)
		}
	}
}
