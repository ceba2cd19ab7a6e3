package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, `[
		{"id": "alpha", "name": "Alpha", "score": 12},
		{"id": "beta", "name": "Beta", "score": null},
		{"name": "anonymous", "score": 3}
	]`)

	rows, cols, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(cols) != 3 {
		t.Fatalf("cols = %d, want 3", len(cols))
	}

	// Columns follow the first record's key order.
	wantFields := []string{"id", "name", "score"}
	for i, f := range wantFields {
		if cols[i].Field != f {
			t.Errorf("cols[%d].Field = %q, want %q", i, cols[i].Field, f)
		}
	}

	if rows[0].ID != "alpha" || rows[1].ID != "beta" {
		t.Errorf("row IDs = %q, %q, want alpha, beta", rows[0].ID, rows[1].ID)
	}
	// A record without an "id" field gets a positional identity.
	if rows[2].ID != "row-2" {
		t.Errorf("rows[2].ID = %q, want row-2", rows[2].ID)
	}

	if rows[0].Record["score"] != float64(12) {
		t.Errorf("score = %v (%T), want 12", rows[0].Record["score"], rows[0].Record["score"])
	}
	if v, present := rows[1].Record["score"]; !present || v != nil {
		t.Errorf("null score = %v, present %v, want nil, true", v, present)
	}
}

func TestLoadDatasetRejectsNonArray(t *testing.T) {
	path := writeDataset(t, `{"rows": []}`)
	if _, _, err := LoadDataset(path); err == nil {
		t.Error("non-array document should fail")
	}
}

func TestLoadDatasetRejectsEmptyArray(t *testing.T) {
	path := writeDataset(t, `[]`)
	_, _, err := LoadDataset(path)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("LoadDataset([]) = %v, want ErrNoData", err)
	}
}

func TestLoadDatasetRejectsMalformedJSON(t *testing.T) {
	path := writeDataset(t, `[{"a": 1},`)
	if _, _, err := LoadDataset(path); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestSampleDatasetHasHoles(t *testing.T) {
	rows, cols := SampleDataset()

	if len(rows) != 40 || len(cols) != 6 {
		t.Fatalf("sample = %dx%d, want 40x6", len(rows), len(cols))
	}

	// Row 2 carries the punched empty quarters.
	if rows[2].Record["q2"] != "" || rows[2].Record["q3"] != "" {
		t.Error("expected empty q2/q3 on row 2")
	}
	if rows[3].Record["q4"] != nil {
		t.Error("expected nil q4 on row 3")
	}
	// Unpunched rows hold numbers everywhere.
	if _, ok := rows[0].Record["q2"].(int); !ok {
		t.Errorf("q2 on row 0 = %v, want a number", rows[0].Record["q2"])
	}
}
