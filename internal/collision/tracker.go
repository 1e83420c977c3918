// Package collision provides an insertion-ordered name index with duplicate
// detection, shared by Row (key names) and Container (row names).
package collision

// Tracker tracks names in insertion order and rejects a name seen twice.
// It generalizes the teacher's hash-collision tracker: where that tracker
// tolerated two different names sharing a hash and only rejected the exact
// same name reused, YAD has no hash step at all (lookup is by name
// directly), so every repeated name here is an unconditional duplicate.
type Tracker struct {
	names []string
	index map[string]int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make([]string, 0),
		index: make(map[string]int),
	}
}

// Track records name at the next insertion-order position and returns that
// position. If name was already tracked, it returns ok=false and the
// tracker is left unchanged; the caller is responsible for turning that
// into its own duplicate-name error.
func (t *Tracker) Track(name string) (pos int, ok bool) {
	if _, exists := t.index[name]; exists {
		return 0, false
	}

	idx := len(t.names)
	t.index[name] = idx
	t.names = append(t.names, name)
	return idx, true
}

// Index looks up the insertion-order position of name. ok is false if name
// was never tracked.
func (t *Tracker) Index(name string) (pos int, ok bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Names returns the tracked names in insertion order. The returned slice is
// owned by the caller.
func (t *Tracker) Names() []string {
	cp := make([]string, len(t.names))
	copy(cp, t.names)
	return cp
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int { return len(t.names) }
