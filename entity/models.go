package entity

// Remote model names addressed over RPC. The field shapes of these
// models are owned by the Odoo instance; payloads here are opaque
// key-value dictionaries from its point of view.
const (
	ModelPartner       = "res.partner"
	ModelCountry       = "res.country"
	ModelProduct       = "product.product"
	ModelSaleOrder     = "sale.order"
	ModelPurchaseOrder = "purchase.order"
	ModelMove          = "account.move"
	ModelPayment       = "account.payment"
	ModelAsset         = "account.asset"
	ModelJournal       = "account.journal"
	ModelAccount       = "account.account"
	ModelIrModel       = "ir.model"
)

// Posting methods used after create. Confirmation is a separate remote
// call on the freshly created record.
const (
	MethodActionPost    = "action_post"
	MethodActionConfirm = "action_confirm"
	MethodButtonConfirm = "button_confirm"
)

// CreateCommand wraps values into the (0, 0, {...}) one2many command
// triplet Odoo expects for inline line creation.
func CreateCommand(values map[string]interface{}) []interface{} {
	return []interface{}{0, 0, values}
}
