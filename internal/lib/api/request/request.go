package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ExecuteRequest is the body of POST /api/execute: a generic read
// against one remote model.
type ExecuteRequest struct {
	Model  string        `json:"model"`
	Domain []interface{} `json:"domain,omitempty"`
	Fields []string      `json:"fields,omitempty"`
	Limit  int           `json:"limit,omitempty"`
}

// Common errors
var (
	ErrEmptyBody = errors.New("request body is empty")
)

// Defaults applied to omitted fields, matching what most callers want
// from a quick accounting query.
const (
	DefaultModel = "account.move"
	DefaultLimit = 100
)

// Decode decodes the request body and fills in defaults for omitted
// fields.
func Decode(r *http.Request) (*ExecuteRequest, error) {
	var req ExecuteRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, err
	}
	req.applyDefaults()
	return &req, nil
}

func (r *ExecuteRequest) applyDefaults() {
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if len(r.Fields) == 0 {
		r.Fields = []string{"id", "name"}
	}
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
}
