package entity

// OrderLine is a line of a sales or purchase order. The quantity key
// differs between the two models (product_uom_qty vs product_qty).
type OrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	PriceUnit float64 `json:"price_unit"`
}

// SaleOrder is a sale.order payload. Created orders are confirmed with
// action_confirm so they show up past the quotation stage.
type SaleOrder struct {
	PartnerID int64       `json:"partner_id"`
	Lines     []OrderLine `json:"lines"`
	Note      string      `json:"note,omitempty"`
}

func (o *SaleOrder) Values() map[string]interface{} {
	lines := make([]interface{}, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, CreateCommand(map[string]interface{}{
			"product_id":      line.ProductID,
			"product_uom_qty": line.Quantity,
			"price_unit":      line.PriceUnit,
		}))
	}
	values := map[string]interface{}{
		"partner_id": o.PartnerID,
		"order_line": lines,
	}
	if o.Note != "" {
		values["note"] = o.Note
	}
	return values
}

// PurchaseOrder is a purchase.order payload, confirmed with
// button_confirm after create.
type PurchaseOrder struct {
	PartnerID int64       `json:"partner_id"`
	Lines     []OrderLine `json:"lines"`
}

func (o *PurchaseOrder) Values() map[string]interface{} {
	lines := make([]interface{}, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, CreateCommand(map[string]interface{}{
			"product_id":  line.ProductID,
			"product_qty": line.Quantity,
			"price_unit":  line.PriceUnit,
		}))
	}
	return map[string]interface{}{
		"partner_id": o.PartnerID,
		"order_line": lines,
	}
}
