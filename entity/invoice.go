package entity

// Move types of account.move records.
const (
	MoveTypeCustomerInvoice = "out_invoice"
	MoveTypeSupplierInvoice = "in_invoice"
	MoveTypeCustomerRefund  = "out_refund"
	MoveTypeSupplierRefund  = "in_refund"
)

type InvoiceLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	PriceUnit float64 `json:"price_unit"`
}

// Invoice is an account.move payload covering customer/supplier
// invoices and credit notes, distinguished by MoveType. Posted with
// action_post after create.
type Invoice struct {
	PartnerID int64         `json:"partner_id"`
	MoveType  string        `json:"move_type"`
	Lines     []InvoiceLine `json:"lines"`
}

func (i *Invoice) Values() map[string]interface{} {
	lines := make([]interface{}, 0, len(i.Lines))
	for _, line := range i.Lines {
		lines = append(lines, CreateCommand(map[string]interface{}{
			"product_id": line.ProductID,
			"quantity":   line.Quantity,
			"price_unit": line.PriceUnit,
		}))
	}
	return map[string]interface{}{
		"partner_id":       i.PartnerID,
		"move_type":        i.MoveType,
		"invoice_line_ids": lines,
	}
}
