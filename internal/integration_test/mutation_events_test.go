package integration

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/executor"
)

// recordingObserver collects every event it receives
type recordingObserver struct {
	events []engine.Event
}

func (r *recordingObserver) OnEvent(event engine.Event) {
	r.events = append(r.events, event)
}

// TestMutationEventsThroughSQL verifies statement execution emits one event
// per applied mutation and none for rejected ones
func TestMutationEventsThroughSQL(t *testing.T) {
	observer := &recordingObserver{}
	session := executor.NewSession(
		executor.WithLogger(quietLogger()),
		executor.WithTableObserver(observer),
	)

	for _, stmt := range []string{
		"CREATE TABLE items (id INTEGER PRIMARY KEY, label STRING)",
		"INSERT INTO items VALUES (1, 'x')",
		"INSERT INTO items VALUES (1, 'dup')",
		"INSERT INTO items VALUES (2, 'y')",
		"UPDATE items SET label = 'z' WHERE id = 2",
		"UPDATE items SET label = 'z' WHERE id = 9",
		"DELETE FROM items WHERE id = 1",
		"SELECT * FROM items",
	} {
		if _, err := session.Execute(stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	expected := []struct {
		typ engine.EventType
		pos int
	}{
		{engine.EventInsert, 0},
		{engine.EventInsert, 1},
		{engine.EventUpdate, 1},
		{engine.EventDelete, 0},
	}
	if len(observer.events) != len(expected) {
		t.Fatalf("expected %d events, got %d: %+v", len(expected), len(observer.events), observer.events)
	}

	seen := make(map[string]bool)
	for i, want := range expected {
		got := observer.events[i]
		if got.Type != want.typ || got.Position != want.pos {
			t.Errorf("event %d: expected %s at %d, got %s at %d", i, want.typ, want.pos, got.Type, got.Position)
		}
		if got.Table != "items" {
			t.Errorf("event %d: expected table items, got %s", i, got.Table)
		}
		if got.ID == "" || seen[got.ID] {
			t.Errorf("event %d: expected a fresh ID, got %q", i, got.ID)
		}
		seen[got.ID] = true
		if i > 0 && got.Timestamp.Before(observer.events[i-1].Timestamp) {
			t.Errorf("event %d timestamp is before event %d", i, i-1)
		}
	}

	if label := observer.events[2].Values[1]; label != "z" {
		t.Errorf("update event should carry the new value, got %v", label)
	}
}

// TestLoggingObserverThroughSQL checks mutations reach the structured log
func TestLoggingObserverThroughSQL(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	session := executor.NewSession(
		executor.WithLogger(quietLogger()),
		executor.WithTableObserver(engine.NewLoggingObserver(logger)),
	)

	session.Execute("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	session.Execute("INSERT INTO t VALUES (7)")
	session.Execute("DELETE FROM t WHERE id = 7")

	out := buf.String()
	if strings.Count(out, "msg=table_mutation") != 2 {
		t.Fatalf("expected two mutation records, got:\n%s", out)
	}
	for _, want := range []string{"event=insert", "event=delete", "table=t", "position=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
