package engine

import (
	"io"
	"log/slog"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUsersTable builds the id/name table used across the engine tests
func newUsersTable(t *testing.T) *Table {
	t.Helper()
	return NewTable("users", []*Column{
		NewColumn("id", TypeInteger, PrimaryKey(), NotNull()),
		NewColumn("name", TypeString),
	}, WithLogger(quietLogger()))
}

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}
