package entity

import "odooclient/internal/lib/validate"

// Product is a product.product payload.
type Product struct {
	Name          string  `json:"name" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=service consu product"`
	ListPrice     float64 `json:"list_price" validate:"gte=0"`
	StandardPrice float64 `json:"standard_price" validate:"gte=0"`
	Description   string  `json:"description,omitempty"`
	DefaultCode   string  `json:"default_code,omitempty"`
}

func (p *Product) Validate() error {
	return validate.Struct(p)
}

func (p *Product) Values() map[string]interface{} {
	values := map[string]interface{}{
		"name":           p.Name,
		"type":           p.Type,
		"list_price":     p.ListPrice,
		"standard_price": p.StandardPrice,
	}
	if p.Description != "" {
		values["description"] = p.Description
	}
	if p.DefaultCode != "" {
		values["default_code"] = p.DefaultCode
	}
	return values
}
