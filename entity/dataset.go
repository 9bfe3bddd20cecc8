package entity

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is an optional user-supplied extension to the built-in
// sample records: extra partners and products merged into a run.
type Dataset struct {
	Partners []Partner `json:"partners,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// LoadDataset reads and validates a dataset file. Records are checked
// one by one so the error names the offending entry.
func LoadDataset(path string) (*Dataset, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	for i := range ds.Partners {
		if err := ds.Partners[i].Validate(); err != nil {
			return nil, fmt.Errorf("partner %d (%s): %w", i, ds.Partners[i].Name, err)
		}
	}
	for i := range ds.Products {
		if err := ds.Products[i].Validate(); err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, ds.Products[i].Name, err)
		}
	}

	return &ds, nil
}
