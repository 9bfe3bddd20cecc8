package entity

// Asset is an account.asset payload. The model only exists when the
// assets module is installed; creation failures are reported and
// skipped like any other record.
type Asset struct {
	Name          string  `json:"name"`
	OriginalValue float64 `json:"original_value"`
	Method        string  `json:"method"`
	MethodNumber  int     `json:"method_number"`
}

func (a *Asset) Values() map[string]interface{} {
	return map[string]interface{}{
		"name":           a.Name,
		"original_value": a.OriginalValue,
		"method":         a.Method,
		"method_number":  a.MethodNumber,
	}
}
