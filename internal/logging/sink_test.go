package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestEventSinkLogsAndNotifies(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var notified []Event
	sink := NewEventSink(logger, func(event Event) {
		notified = append(notified, event)
	})

	sink.LogEvent("theme failed to load", true, SeverityError)

	if !strings.Contains(buf.String(), "theme failed to load") {
		t.Fatalf("message not logged: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("severity not mapped to level: %s", buf.String())
	}

	if len(notified) != 1 {
		t.Fatalf("expected one notification, got %d", len(notified))
	}
	if notified[0].ID == "" {
		t.Fatal("expected event id")
	}
	if notified[0].Severity != SeverityError {
		t.Fatalf("unexpected severity: %q", notified[0].Severity)
	}
}

func TestEventSinkSkipsNotifyWhenUnflagged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	called := false
	sink := NewEventSink(logger, func(Event) { called = true })

	sink.LogEvent("routine event", false, SeverityInfo)

	if called {
		t.Fatal("notify must not fire for unflagged events")
	}
	if !strings.Contains(buf.String(), `"level":"info"`) {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestEventSinkNilNotifier(t *testing.T) {
	sink := NewEventSink(zerolog.Nop(), nil)
	sink.LogEvent("no notifier attached", true, SeverityWarning)
}
