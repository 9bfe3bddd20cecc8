package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"odooclient/entity"
)

// Read operations backing the HTTP facade. The facade is a thin
// pass-through: it never authenticates callers and the RPC session
// re-authenticates lazily under the hood.

// ListModels returns every installed model with its technical and
// display name.
func (c *Core) ListModels() ([]map[string]interface{}, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}
	return c.odoo.SearchRead(entity.ModelIrModel, nil, []string{"model", "name"}, 0)
}

// SearchModel runs a search with a JSON-encoded domain taken straight
// from the request path.
func (c *Core) SearchModel(model, domainStr string) ([]map[string]interface{}, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}

	domain, err := ParseDomain(domainStr)
	if err != nil {
		return nil, fmt.Errorf("invalid domain format: %w", err)
	}
	return c.odoo.SearchRead(model, domain, []string{"id", "name"}, 100)
}

// ExecuteQuery is the generic read behind POST /api/execute.
func (c *Core) ExecuteQuery(model string, domain []interface{}, fields []string, limit int) ([]map[string]interface{}, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}
	return c.odoo.SearchRead(model, domain, fields, limit)
}

// ParseDomain decodes a JSON domain expression. An empty string means
// no filter.
func ParseDomain(domainStr string) ([]interface{}, error) {
	if domainStr == "" {
		return nil, nil
	}
	var domain []interface{}
	if err := json.Unmarshal([]byte(domainStr), &domain); err != nil {
		return nil, err
	}
	return domain, nil
}
