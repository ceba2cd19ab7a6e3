package selection

import "github.com/gabrielmiguelok/gridselect/internal/grid"

// Guard keeps the selection free of dangling references after paging,
// filtering, or column visibility changes. Run it against every freshly
// published snapshot and after selection changes; when nothing is stale
// it takes no action, so re-running after its own corrections is cheap
// and terminates.
//
// The guard is deliberately conservative: when any entry had to be
// dropped it also unsets anchor and focus, because their coordinates may
// now point at a different logical cell. The next user action
// re-establishes them.
type Guard struct {
	state *State
}

// NewGuard creates a guard over the given state.
func NewGuard(state *State) *Guard {
	return &Guard{state: state}
}

// Revalidate checks the selection against the snapshot and corrects it:
//
//  1. No visible rows but a non-empty selection: clear everything.
//  2. Entries whose row or column is gone: drop them and unset
//     anchor/focus.
//  3. Nothing stale: no state churn, no notification.
func (g *Guard) Revalidate(snap *grid.Snapshot) {
	s := g.state

	s.mu.Lock()
	if len(s.cells) == 0 {
		s.mu.Unlock()
		return
	}

	if snap.IsEmpty() {
		s.anchor = nil
		s.focus = nil
		changed := s.replaceCellsLocked(nil)
		payload := s.publishableLocked(changed)
		s.mu.Unlock()
		s.notify(payload, changed)
		return
	}

	kept := make([]grid.CellRef, 0, len(s.cells))
	for ref := range s.cells {
		if snap.HasRow(ref.Row) && snap.HasColumn(ref.Col) {
			kept = append(kept, ref)
		}
	}
	if len(kept) == len(s.cells) {
		s.mu.Unlock()
		return
	}

	s.anchor = nil
	s.focus = nil
	changed := s.replaceCellsLocked(kept)
	payload := s.publishableLocked(changed)
	s.mu.Unlock()
	s.notify(payload, changed)
}
