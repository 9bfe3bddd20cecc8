package services

import (
	"fmt"
	"log/slog"

	"odooclient/internal/config"
	"odooclient/internal/lib/sl"
)

// Client is one RPC flavor of the remote Odoo instance.
type Client interface {
	Authenticate() (int64, error)
	Version() (string, error)
	ExecuteKw(model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error)
}

// OdooService wraps a Client with the typed operations the rest of the
// system uses. The flavor is chosen by odoo.protocol.
type OdooService struct {
	client Client
	log    *slog.Logger
}

func NewOdooService(conf *config.Config, log *slog.Logger) (*OdooService, error) {
	Configure(float64(conf.Odoo.Rate), conf.Odoo.Burst)

	var client Client
	var err error
	switch conf.Odoo.Protocol {
	case "jsonrpc", "":
		client, err = NewJsonRpcClient(conf, log)
	case "xmlrpc":
		client, err = NewXmlRpcClient(conf, log)
	default:
		return nil, fmt.Errorf("unknown odoo protocol: %s", conf.Odoo.Protocol)
	}
	if err != nil {
		return nil, err
	}

	return &OdooService{
		client: client,
		log:    log.With(sl.Module("odoo")),
	}, nil
}

// NewOdooServiceWithClient is used by tests to inject a fake client.
func NewOdooServiceWithClient(client Client, log *slog.Logger) *OdooService {
	return &OdooService{client: client, log: log.With(sl.Module("odoo"))}
}

func (s *OdooService) Authenticate() (int64, error) {
	return s.client.Authenticate()
}

func (s *OdooService) Version() (string, error) {
	return s.client.Version()
}

// Create inserts one record and returns its remote id.
func (s *OdooService) Create(model string, values map[string]interface{}) (int64, error) {
	result, err := s.client.ExecuteKw(model, "create", []interface{}{values}, nil)
	if err != nil {
		return 0, err
	}

	id, ok := toInt64(result)
	if !ok {
		return 0, fmt.Errorf("unexpected create result for %s: %v", model, result)
	}

	s.log.With(
		slog.String("model", model),
		slog.Int64("id", id),
	).Debug("record created")
	return id, nil
}

// SearchRead runs search_read with the given domain and fields.
func (s *OdooService) SearchRead(model string, domain []interface{}, fields []string, limit int) ([]map[string]interface{}, error) {
	if domain == nil {
		domain = []interface{}{}
	}
	kwargs := map[string]interface{}{}
	if len(fields) > 0 {
		kwargs["fields"] = fields
	}
	if limit > 0 {
		kwargs["limit"] = limit
	}

	result, err := s.client.ExecuteKw(model, "search_read", []interface{}{domain}, kwargs)
	if err != nil {
		return nil, err
	}

	raw, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected search_read result for %s: %T", model, result)
	}

	records := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected search_read record for %s: %T", model, item)
		}
		records = append(records, record)
	}
	return records, nil
}

// Invoke calls a workflow method (action_post, action_confirm, ...) on
// existing records.
func (s *OdooService) Invoke(model, method string, ids ...int64) error {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	_, err := s.client.ExecuteKw(model, method, []interface{}{args}, nil)
	if err != nil {
		return err
	}

	s.log.With(
		slog.String("model", model),
		slog.String("rpc_method", method),
		slog.Any("ids", ids),
	).Debug("method invoked")
	return nil
}

// toInt64 normalizes the id representations the two wire formats
// produce (json numbers decode as float64, xmlrpc as int64).
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
