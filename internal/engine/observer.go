package engine

import "time"

// EventType names the kind of row mutation that happened
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event describes one successful mutation of a table
type Event struct {
	ID        string    // Unique event identifier (UUID)
	Type      EventType // Kind of mutation
	Table     string    // Table name
	Position  int       // Row position touched (for delete: position before removal)
	Values    Row       // Row values after the mutation (before removal for delete)
	Timestamp time.Time // When the mutation completed
}

// Observer receives table mutation events.
// Observers are only called after the mutation has been applied.
type Observer interface {
	OnEvent(event Event)
}

// indexRebuilder keeps one index fresh by rebuilding it on every event
type indexRebuilder struct {
	idx *Index
}

func (r *indexRebuilder) OnEvent(Event) { r.idx.Rebuild() }

// AutoRebuild returns an observer that rebuilds idx after every mutation.
// Indexes never subscribe on their own; attaching this is the caller's choice.
func AutoRebuild(idx *Index) Observer {
	return &indexRebuilder{idx: idx}
}
