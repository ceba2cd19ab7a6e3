package app

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/gabrielmiguelok/gridselect/internal/grid"
)

// LoadDataset reads a JSON array of flat records and builds the grid
// rows and columns from it. Columns come from the first record's keys
// in document order; each row's identity is its "id" field when present
// and a generated identifier otherwise.
func LoadDataset(path string) ([]grid.Row, []grid.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, NewOperationError("load-dataset", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, nil, NewOperationError("load-dataset", path, fmt.Errorf("not valid JSON"))
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, nil, NewOperationError("load-dataset", path, fmt.Errorf("expected a top-level array"))
	}

	var cols []grid.Column
	var rows []grid.Row

	doc.ForEach(func(_, rec gjson.Result) bool {
		if !rec.IsObject() {
			return true
		}
		if cols == nil {
			rec.ForEach(func(k, _ gjson.Result) bool {
				field := k.String()
				cols = append(cols, grid.Column{
					ID:    grid.ColumnID(field),
					Field: field,
					Title: field,
				})
				return true
			})
		}

		record := make(map[string]any)
		rec.ForEach(func(k, v gjson.Result) bool {
			record[k.String()] = v.Value()
			return true
		})

		id := grid.RowID(fmt.Sprintf("row-%d", len(rows)))
		if rid := rec.Get("id"); rid.Exists() {
			id = grid.RowID(rid.String())
		}
		rows = append(rows, grid.Row{ID: id, Record: record})
		return true
	})

	if len(rows) == 0 || len(cols) == 0 {
		return nil, nil, NewOperationError("load-dataset", path, ErrNoData)
	}
	return rows, cols, nil
}

// SampleDataset builds the built-in demo grid: a small sales table with
// deliberate empty runs so block-jump navigation has edges to find.
func SampleDataset() ([]grid.Row, []grid.Column) {
	cols := []grid.Column{
		{ID: "product", Field: "product", Title: "Product"},
		{ID: "region", Field: "region", Title: "Region"},
		{ID: "q1", Field: "q1", Title: "Q1"},
		{ID: "q2", Field: "q2", Title: "Q2"},
		{ID: "q3", Field: "q3", Title: "Q3"},
		{ID: "q4", Field: "q4", Title: "Q4"},
	}

	products := []string{"Anvil", "Beacon", "Crate", "Dynamo", "Ember", "Flywheel", "Gasket", "Hopper"}
	regions := []string{"North", "South", "East", "West"}

	var rows []grid.Row
	for i := 0; i < 40; i++ {
		record := map[string]any{
			"product": products[i%len(products)],
			"region":  regions[i%len(regions)],
			"q1":      (i*7)%90 + 10,
			"q2":      (i*13)%90 + 10,
			"q3":      (i*19)%90 + 10,
			"q4":      (i*23)%90 + 10,
		}
		// Punch holes so Ctrl+Arrow has data boundaries to jump to.
		if i%5 == 2 {
			record["q2"] = ""
			record["q3"] = ""
		}
		if i%7 == 3 {
			record["q4"] = nil
		}
		rows = append(rows, grid.Row{
			ID:     grid.RowID(fmt.Sprintf("row-%d", i)),
			Record: record,
		})
	}
	return rows, cols
}
