package odoo

type Core interface {
	ListModels() ([]map[string]interface{}, error)
	SearchModel(model, domain string) ([]map[string]interface{}, error)
	ExecuteQuery(model string, domain []interface{}, fields []string, limit int) ([]map[string]interface{}, error)
}
