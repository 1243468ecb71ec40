// Package selection implements the two-click protocol that turns vertex
// picks into edges.
//
// The State is Idle or Pending(v). A first Select(v) makes v pending; selecting
// v again deselects it; selecting any other w asks the store for edge (v,w)
// and always returns to Idle, whatever the store answered. Reset (a click on
// empty space) returns to Idle from anywhere.
//
// The pending index is borrowed from the store. Attach registers a removal
// hook so that deleting the pending vertex cancels the selection and deleting
// a lower vertex shifts the pending index down with the renumbering.
package selection

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/worlded/mapgraph"
)

// Kind classifies what a Select or Reset call did.
type Kind int

const (
	// Selected means the vertex became pending.
	Selected Kind = iota
	// Deselected means the pending vertex was selected again and released.
	Deselected
	// Connected means a new edge was added between the pending and selected vertex.
	Connected
	// Duplicate means the two vertices were already connected; nothing was added.
	Duplicate
	// Rejected means the store refused the edge for another reason (see Outcome.Err).
	Rejected
	// Cleared means a pending selection was dropped by Reset.
	Cleared
	// Unchanged means Reset was called while already Idle.
	Unchanged
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Connected:
		return "connected"
	case Duplicate:
		return "duplicate"
	case Rejected:
		return "rejected"
	case Cleared:
		return "cleared"
	case Unchanged:
		return "unchanged"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome reports the transition taken by a Select or Reset call.
// From and To are the vertices involved; To is -1 when unused.
type Outcome struct {
	Kind     Kind
	From, To int
	Err      error
}

// State is the selection state machine for one store.
type State struct {
	store   *mapgraph.Store
	pending int
	active  bool
}

// New returns an Idle State bound to store.
// Call Attach to follow vertex deletions through store hooks.
func New(store *mapgraph.Store) *State {
	return &State{store: store, pending: -1}
}

// Attach registers st on its store so vertex deletions update the pending index.
func (st *State) Attach() {
	st.store.OnVertexRemoved(st.VertexRemoved)
}

// Pending returns the pending vertex, if any. A pending index that no longer
// fits the store (it was cleared or reloaded) is dropped first.
func (st *State) Pending() (int, bool) {
	st.revalidate()
	if !st.active {
		return -1, false
	}

	return st.pending, true
}

// Select feeds a "vertex v was picked" event into the machine.
func (st *State) Select(v int) Outcome {
	st.revalidate()

	switch {
	case !st.active:
		st.pending, st.active = v, true
		return Outcome{Kind: Selected, From: v, To: -1}

	case st.pending == v:
		st.clear()
		return Outcome{Kind: Deselected, From: v, To: -1}

	default:
		from := st.pending
		st.clear()
		err := st.store.AddEdge(from, v)
		switch {
		case err == nil:
			return Outcome{Kind: Connected, From: from, To: v}
		case errors.Is(err, mapgraph.ErrDuplicateEdge):
			return Outcome{Kind: Duplicate, From: from, To: v, Err: err}
		default:
			return Outcome{Kind: Rejected, From: from, To: v, Err: err}
		}
	}
}

// Reset returns to Idle, as a click on empty space does.
func (st *State) Reset() Outcome {
	st.revalidate()
	if !st.active {
		return Outcome{Kind: Unchanged, From: -1, To: -1}
	}
	from := st.pending
	st.clear()

	return Outcome{Kind: Cleared, From: from, To: -1}
}

// VertexRemoved adjusts the pending index after vertex i was deleted from the store.
func (st *State) VertexRemoved(i int) {
	if !st.active {
		return
	}
	switch {
	case st.pending == i:
		st.clear()
	case st.pending > i:
		st.pending--
	}
}

func (st *State) revalidate() {
	if st.active && (st.pending < 0 || st.pending >= st.store.VertexCount()) {
		st.clear()
	}
}

func (st *State) clear() {
	st.pending, st.active = -1, false
}
