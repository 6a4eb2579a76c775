package order

import (
	"encoding/json"
	"time"
)

// HistoryEntry is one record of the audit trail.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
	ActorID   *uint64
	Note      string
}

// History is the append-only audit trail of an order. The zero value is an
// empty trail. A History is never modified in place: Append returns a new
// value and Entries returns a copy.
type History struct {
	entries []HistoryEntry
}

// NewHistory builds a trail from already-persisted entries.
func NewHistory(entries ...HistoryEntry) History {
	return History{entries: cloneEntries(entries, 0)}
}

// Append returns a new trail equal to h plus one trailing entry.
func (h History) Append(status Status, at time.Time, actorID *uint64, note string) History {
	next := cloneEntries(h.entries, 1)
	next = append(next, HistoryEntry{
		Status:    status,
		Timestamp: at,
		ActorID:   copyID(actorID),
		Note:      note,
	})
	return History{entries: next}
}

// Entries returns a copy of the trail in chronological order.
func (h History) Entries() []HistoryEntry {
	return cloneEntries(h.entries, 0)
}

func (h History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry, false when the trail is empty.
func (h History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	last.ActorID = copyID(last.ActorID)
	return last, true
}

type historyEntryJSON struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   *uint64   `json:"actorId,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// MarshalJSON encodes the trail as an array of {status, timestamp, actorId?, note?}.
func (h History) MarshalJSON() ([]byte, error) {
	out := make([]historyEntryJSON, 0, len(h.entries))
	for _, e := range h.entries {
		out = append(out, historyEntryJSON{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp.UTC(),
			ActorID:   e.ActorID,
			Note:      e.Note,
		})
	}
	return json.Marshal(out)
}

// DecodeHistory restores a persisted trail. Anything that is not a JSON array
// of entries yields an empty trail instead of an error. Entries with an
// unrecognized status are kept as Unknown.
func DecodeHistory(data []byte) History {
	var raw []historyEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return History{}
	}
	entries := make([]HistoryEntry, 0, len(raw))
	for _, r := range raw {
		status, err := ParseStatus(r.Status)
		if err != nil {
			status = Unknown
		}
		entries = append(entries, HistoryEntry{
			Status:    status,
			Timestamp: r.Timestamp,
			ActorID:   r.ActorID,
			Note:      r.Note,
		})
	}
	return History{entries: entries}
}

func cloneEntries(entries []HistoryEntry, extra int) []HistoryEntry {
	out := make([]HistoryEntry, len(entries), len(entries)+extra)
	for i, e := range entries {
		e.ActorID = copyID(e.ActorID)
		out[i] = e
	}
	return out
}

func copyID(id *uint64) *uint64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
