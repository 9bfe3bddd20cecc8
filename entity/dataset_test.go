package entity

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDataset_Valid(t *testing.T) {
	path := writeDataset(t, `{
		"partners": [
			{"name": "Extra Corp", "is_company": true, "email": "x@extra.com"}
		],
		"products": [
			{"name": "Extra Service", "type": "service", "list_price": 50}
		]
	}`)

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(ds.Partners) != 1 || ds.Partners[0].Name != "Extra Corp" {
		t.Errorf("partners = %+v, want one Extra Corp", ds.Partners)
	}
	if len(ds.Products) != 1 || ds.Products[0].Type != "service" {
		t.Errorf("products = %+v, want one service product", ds.Products)
	}
}

func TestLoadDataset_InvalidRecord(t *testing.T) {
	path := writeDataset(t, `{"partners": [{"email": "x@extra.com"}]}`)

	if _, err := LoadDataset(path); err == nil {
		t.Error("LoadDataset() should reject partner without name")
	}
}

func TestLoadDataset_BadJSON(t *testing.T) {
	path := writeDataset(t, `{"partners": [`)

	if _, err := LoadDataset(path); err == nil {
		t.Error("LoadDataset() should fail on malformed JSON")
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadDataset() should fail on missing file")
	}
}
