package grid

// Row is one visible row: its stable identifier plus the original record
// it was built from. Record keys are column Field names.
type Row struct {
	ID     RowID
	Record map[string]any
}

// Column is one visible column. Field names the record key the column
// reads its cell values from; Title is the header label.
type Column struct {
	ID    ColumnID
	Field string
	Title string
}

// Snapshot is an immutable view of the visible grid: ordered rows,
// ordered columns, and id-to-index lookups. Producers build a new
// Snapshot on every visibility change; consumers treat it as read-only.
type Snapshot struct {
	rows []Row
	cols []Column

	rowIndex map[RowID]int
	colIndex map[ColumnID]int
}

// NewSnapshot builds a snapshot from ordered rows and columns.
// The slices are retained; callers must not modify them afterwards.
func NewSnapshot(rows []Row, cols []Column) *Snapshot {
	s := &Snapshot{
		rows:     rows,
		cols:     cols,
		rowIndex: make(map[RowID]int, len(rows)),
		colIndex: make(map[ColumnID]int, len(cols)),
	}
	for i, r := range rows {
		s.rowIndex[r.ID] = i
	}
	for i, c := range cols {
		s.colIndex[c.ID] = i
	}
	return s
}

// EmptySnapshot returns a snapshot with no rows and no columns.
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil, nil)
}

// RowCount returns the number of visible rows.
func (s *Snapshot) RowCount() int { return len(s.rows) }

// ColCount returns the number of visible columns.
func (s *Snapshot) ColCount() int { return len(s.cols) }

// IsEmpty returns true if the snapshot has no visible rows.
func (s *Snapshot) IsEmpty() bool { return len(s.rows) == 0 }

// Rows returns the ordered visible rows. The slice is shared; do not modify.
func (s *Snapshot) Rows() []Row { return s.rows }

// Columns returns the ordered visible columns. The slice is shared; do not modify.
func (s *Snapshot) Columns() []Column { return s.cols }

// RowAt returns the row at the given index.
func (s *Snapshot) RowAt(i int) (Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[i], true
}

// ColumnAt returns the column at the given index.
func (s *Snapshot) ColumnAt(i int) (Column, bool) {
	if i < 0 || i >= len(s.cols) {
		return Column{}, false
	}
	return s.cols[i], true
}

// RowIndex returns the current index of the given row identity.
func (s *Snapshot) RowIndex(id RowID) (int, bool) {
	i, ok := s.rowIndex[id]
	return i, ok
}

// ColumnIndex returns the current index of the given column identity.
func (s *Snapshot) ColumnIndex(id ColumnID) (int, bool) {
	i, ok := s.colIndex[id]
	return i, ok
}

// HasRow returns true if the row identity is visible in this snapshot.
func (s *Snapshot) HasRow(id RowID) bool {
	_, ok := s.rowIndex[id]
	return ok
}

// HasColumn returns true if the column identity is visible in this snapshot.
func (s *Snapshot) HasColumn(id ColumnID) bool {
	_, ok := s.colIndex[id]
	return ok
}

// Contains returns true if the coordinate is inside this snapshot's bounds.
func (s *Snapshot) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < len(s.rows) && c.Col >= 0 && c.Col < len(s.cols)
}

// RefAt resolves a coordinate to its identity-based reference.
func (s *Snapshot) RefAt(c Coord) (CellRef, bool) {
	if !s.Contains(c) {
		return CellRef{}, false
	}
	return CellRef{Row: s.rows[c.Row].ID, Col: s.cols[c.Col].ID}, true
}

// CoordOf resolves an identity-based reference to its current coordinate.
func (s *Snapshot) CoordOf(ref CellRef) (Coord, bool) {
	ri, ok := s.rowIndex[ref.Row]
	if !ok {
		return Coord{}, false
	}
	ci, ok := s.colIndex[ref.Col]
	if !ok {
		return Coord{}, false
	}
	return Coord{Row: ri, Col: ci}, true
}

// HasRef returns true if both halves of the reference are visible.
func (s *Snapshot) HasRef(ref CellRef) bool {
	_, ok := s.CoordOf(ref)
	return ok
}

// Value returns the raw value at the coordinate, or nil when out of
// bounds or when the record has no entry for the column's field.
func (s *Snapshot) Value(c Coord) any {
	if !s.Contains(c) {
		return nil
	}
	rec := s.rows[c.Row].Record
	if rec == nil {
		return nil
	}
	return rec[s.cols[c.Col].Field]
}

// ValueEmpty reports whether the cell at the coordinate holds no data:
// out of bounds, a missing record entry, nil, or the empty string.
func (s *Snapshot) ValueEmpty(c Coord) bool {
	v := s.Value(c)
	if v == nil {
		return true
	}
	if str, ok := v.(string); ok {
		return str == ""
	}
	return false
}

// Provider publishes the current snapshot. Implementations may replace
// the snapshot at any time; callers capture one pointer per operation
// and perform all positional math against that capture.
type Provider interface {
	Snapshot() *Snapshot
}
