package entity

// Payment is an account.payment payload, posted with action_post.
type Payment struct {
	PartnerID   int64   `json:"partner_id"`
	PaymentType string  `json:"payment_type"`
	PartnerType string  `json:"partner_type"`
	Amount      float64 `json:"amount"`
}

func (p *Payment) Values() map[string]interface{} {
	return map[string]interface{}{
		"partner_id":   p.PartnerID,
		"payment_type": p.PaymentType,
		"partner_type": p.PartnerType,
		"amount":       p.Amount,
	}
}
