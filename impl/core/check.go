package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"odooclient/entity"
	"odooclient/internal/lib/sl"
)

// ModelSample is a snapshot of one remote model: how many records a
// capped search returned and a few recent labels.
type ModelSample struct {
	Model   string   `json:"model"`
	Count   int      `json:"count"`
	Samples []string `json:"samples,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// checkedModels lists what CheckData inspects, in display order.
var checkedModels = []string{
	entity.ModelPartner,
	entity.ModelProduct,
	entity.ModelSaleOrder,
	entity.ModelPurchaseOrder,
	entity.ModelMove,
	entity.ModelPayment,
	entity.ModelAsset,
}

// CheckData reads back what exists on the instance, one model at a
// time. A model that errors out (uninstalled module, missing access)
// is reported with the error instead of aborting the sweep.
func (c *Core) CheckData() ([]ModelSample, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}
	if _, err := c.odoo.Authenticate(); err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	samples := make([]ModelSample, 0, len(checkedModels))
	for _, model := range checkedModels {
		sample := ModelSample{Model: model}

		records, err := c.odoo.SearchRead(model, nil, []string{"id", "name"}, 20)
		if err != nil {
			c.log.With(
				slog.String("model", model),
				sl.Err(err),
			).Warn("model check failed")
			sample.Error = err.Error()
			samples = append(samples, sample)
			continue
		}

		sample.Count = len(records)
		for _, record := range records {
			if name, ok := record["name"].(string); ok && len(sample.Samples) < 5 {
				sample.Samples = append(sample.Samples, name)
			}
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// CheckJournalEntries lists recent account.move records from the last
// 30 days, the quickest way to verify a seed run actually posted.
func (c *Core) CheckJournalEntries() ([]map[string]interface{}, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}
	if _, err := c.odoo.Authenticate(); err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	recent := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	domain := []interface{}{
		[]interface{}{"date", ">=", recent},
	}
	fields := []string{"id", "name", "ref", "date", "move_type", "state"}

	entries, err := c.odoo.SearchRead(entity.ModelMove, domain, fields, 20)
	if err != nil {
		return nil, fmt.Errorf("read journal entries: %w", err)
	}
	return entries, nil
}

// LedgerCounts reports how many records the local ledger holds per
// model. Returns nil without error when the SQL store is disabled.
func (c *Core) LedgerCounts() (map[string]int64, error) {
	if c.repo == nil {
		return nil, nil
	}
	return c.repo.CountByModel()
}

// RunRecords lists the ledger rows of one run, in insertion order.
func (c *Core) RunRecords(runID string) ([]entity.SeedRecord, error) {
	if c.repo == nil {
		return nil, nil
	}
	return c.repo.RecordsByRun(runID)
}

// ServerVersion reports the remote server version without
// authenticating, the cheapest connectivity probe available.
func (c *Core) ServerVersion() (string, error) {
	if c.odoo == nil {
		return "", errors.New("odoo client is not set")
	}
	return c.odoo.Version()
}
