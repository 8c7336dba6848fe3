package logging

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Severity grades a reported event.
type Severity string

// Event severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Event is one recoverable-failure report.
type Event struct {
	ID       string
	Message  string
	Notify   bool
	Severity Severity
	Time     time.Time
}

// Sink receives recoverable-failure reports. It is the only observability
// surface the theme subsystem uses.
type Sink interface {
	LogEvent(message string, notify bool, severity Severity)
}

// NotifyFunc forwards events flagged for user display, typically to a TUI
// status line.
type NotifyFunc func(Event)

// EventSink logs events through zerolog and forwards notify-flagged events
// to an optional NotifyFunc.
type EventSink struct {
	logger zerolog.Logger
	notify NotifyFunc
}

// NewEventSink creates a sink writing through logger. notify may be nil.
func NewEventSink(logger zerolog.Logger, notify NotifyFunc) *EventSink {
	return &EventSink{logger: logger, notify: notify}
}

// LogEvent records one event.
func (s *EventSink) LogEvent(message string, notify bool, severity Severity) {
	event := Event{
		ID:       uuid.NewString(),
		Message:  message,
		Notify:   notify,
		Severity: severity,
		Time:     time.Now(),
	}

	var entry *zerolog.Event
	switch severity {
	case SeverityError:
		entry = s.logger.Error()
	case SeverityWarning:
		entry = s.logger.Warn()
	default:
		entry = s.logger.Info()
	}
	entry.Str("event_id", event.ID).Bool("notify", notify).Msg(message)

	if notify && s.notify != nil {
		s.notify(event)
	}
}
