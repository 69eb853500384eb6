package engine

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestAddObserver(t *testing.T) {
	table := newUsersTable(t)
	observer := &MockObserver{}

	table.AddObserver(observer)

	if len(table.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(table.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	table := newUsersTable(t)
	observer := &MockObserver{}

	table.AddObserver(observer)
	table.RemoveObserver(observer)

	if len(table.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(table.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	table := newUsersTable(t)

	// Should not panic
	table.notify(EventInsert, 0, Row{int64(1), "a"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	table := newUsersTable(t)
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	table.AddObserver(observer1)
	table.AddObserver(observer2)

	table.notify(EventInsert, 0, Row{int64(1), "a"})

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
	if observer1.Events[0].ID != observer2.Events[0].ID {
		t.Errorf("Observers should see the same event, got %s and %s",
			observer1.Events[0].ID, observer2.Events[0].ID)
	}
}

func TestEventTimestamp(t *testing.T) {
	table := newUsersTable(t)
	observer := &MockObserver{}
	table.AddObserver(observer)

	table.notify(EventDelete, 0, nil)

	if observer.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	table := newUsersTable(t)
	table.AddObserver(NewLoggingObserver(logger))
	if !table.InsertRow([]any{1, "a"}) {
		t.Fatal("insert failed")
	}

	out := buf.String()
	if !strings.Contains(out, "table_mutation") || !strings.Contains(out, "event=insert") {
		t.Errorf("Expected mutation log line, got %q", out)
	}
}
