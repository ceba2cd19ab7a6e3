// Package selection holds the authoritative selection state of a grid:
// the anchor and focus coordinates, the committed set of selected cells,
// and the in-progress marquee rectangle of a drag episode.
//
// # Invariants
//
//   - Anchor and focus are either both unset or both set.
//   - The committed set is stored as identity references (CellRef), never
//     as indices, so it survives re-renders, filtering, and paging.
//   - Every mutation goes through a State setter; setters validate
//     against the provider's current snapshot and publish a de-duplicated
//     "selection.changed" notification when the set actually changed.
//   - The Guard re-validates the set whenever the snapshot is replaced,
//     dropping references to rows or columns that are no longer visible.
//
// State is exclusively owned by the input controllers and the Guard;
// rendering and clipboard collaborators only read it.
package selection
