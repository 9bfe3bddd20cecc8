package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"odooclient/entity"
	"odooclient/internal/lib/sl"
)

// SeedAll creates the full sample dataset on the remote instance:
// partners, products, sales and purchase orders, invoices, credit
// notes, payments, assets and a journal entry. Every record is posted
// or confirmed so it is visible past the draft stage. A failed create
// is logged and skipped; only a failed authentication aborts the run.
func (c *Core) SeedAll() (*entity.SeedReport, error) {
	if c.odoo == nil {
		return nil, errors.New("odoo client is not set")
	}

	uid, err := c.odoo.Authenticate()
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	runID := time.Now().UTC().Format("20060102_150405")
	report := &entity.SeedReport{
		RunID:   runID,
		Started: time.Now().UTC(),
	}

	c.log.With(
		slog.String("run_id", runID),
		slog.Int64("uid", uid),
	).Info("starting seed run")

	customers, suppliers := c.seedPartners(runID, report)
	products := c.seedProducts(runID, report)
	c.seedSalesOrders(runID, report, customers, products)
	c.seedPurchaseOrders(runID, report, suppliers, products)
	c.seedInvoices(runID, report, customers, suppliers, products)
	c.seedCreditNotes(runID, report, customers, suppliers, products)
	c.seedPayments(runID, report, customers, suppliers)
	c.seedAssets(runID, report)
	c.seedJournalEntries(runID, report)

	report.Finished = time.Now().UTC()

	c.saveReport(report)
	c.notifySummary(report)

	c.log.With(
		slog.String("run_id", runID),
		slog.Int("created", report.TotalCreated()),
		slog.Int("skipped", report.TotalSkipped()),
	).Info("seed run finished")

	return report, nil
}

// createRecord creates one record, logging and reporting failure
// instead of propagating it.
func (c *Core) createRecord(runID, model string, values map[string]interface{}, label string) (int64, bool) {
	id, err := c.odoo.Create(model, values)
	if err != nil {
		c.log.With(
			slog.String("model", model),
			slog.String("label", label),
			sl.Err(err),
		).Warn("could not create record, skipping")
		return 0, false
	}

	c.log.With(
		slog.String("model", model),
		slog.String("label", label),
		slog.Int64("id", id),
	).Debug("record created")

	c.recordCreated(runID, model, id, label)
	return id, true
}

// post invokes a posting or confirmation method on a freshly created
// record. The record stays counted as created even when this fails.
func (c *Core) post(model, method string, id int64, label string) {
	if err := c.odoo.Invoke(model, method, id); err != nil {
		c.log.With(
			slog.String("model", model),
			slog.String("method", method),
			slog.String("label", label),
			sl.Err(err),
		).Warn("created record could not be posted")
	}
}

func (c *Core) seedPartners(runID string, report *entity.SeedReport) (customers, suppliers []int64) {
	partners := append(sampleCustomers(), sampleSuppliers()...)
	if c.extra != nil {
		partners = append(partners, c.extra.Partners...)
	}

	step := entity.SeedStep{Name: "partners"}
	for i := range partners {
		partner := &partners[i]
		c.resolveCountry(partner)

		id, ok := c.createRecord(runID, entity.ModelPartner, partner.Values(), partner.Name)
		if !ok {
			step.Skipped++
			continue
		}
		step.Created = append(step.Created, id)
		if partner.IsSupplier() {
			suppliers = append(suppliers, id)
		} else {
			customers = append(customers, id)
		}
	}
	report.AddStep(step)
	return customers, suppliers
}

// resolveCountry maps the dataset country name to a remote country_id.
// Unknown names and lookup failures leave the field unset.
func (c *Core) resolveCountry(partner *entity.Partner) {
	code := partner.CountryCode()
	if code == "" {
		return
	}

	domain := []interface{}{
		[]interface{}{"code", "=", code},
	}
	records, err := c.odoo.SearchRead(entity.ModelCountry, domain, []string{"id"}, 1)
	if err != nil {
		c.log.With(
			slog.String("country", partner.Country),
			sl.Err(err),
		).Warn("country lookup failed")
		return
	}
	if len(records) == 0 {
		return
	}
	if id, ok := remoteID(records[0]["id"]); ok {
		partner.CountryID = id
	}
}

func (c *Core) seedProducts(runID string, report *entity.SeedReport) []int64 {
	products := sampleProducts()
	if c.extra != nil {
		products = append(products, c.extra.Products...)
	}

	var created []int64
	step := entity.SeedStep{Name: "products"}
	for i := range products {
		id, ok := c.createRecord(runID, entity.ModelProduct, products[i].Values(), products[i].Name)
		if !ok {
			step.Skipped++
			continue
		}
		step.Created = append(step.Created, id)
		created = append(created, id)
	}
	report.AddStep(step)
	return created
}

func (c *Core) seedSalesOrders(runID string, report *entity.SeedReport, customers, products []int64) {
	step := entity.SeedStep{Name: "sales_orders"}
	defer func() { report.AddStep(step) }()

	if len(customers) == 0 || len(products) < 3 {
		c.log.Warn("not enough partners or products for sales orders")
		return
	}

	order := entity.SaleOrder{
		PartnerID: customers[0],
		Lines: []entity.OrderLine{
			{ProductID: products[0], Quantity: 2, PriceUnit: 100.0},
			{ProductID: products[2], Quantity: 10, PriceUnit: 100.0},
		},
	}
	id, ok := c.createRecord(runID, entity.ModelSaleOrder, order.Values(), "sales order")
	if !ok {
		step.Skipped++
		return
	}
	c.post(entity.ModelSaleOrder, entity.MethodActionConfirm, id, "sales order")
	step.Created = append(step.Created, id)
}

func (c *Core) seedPurchaseOrders(runID string, report *entity.SeedReport, suppliers, products []int64) {
	step := entity.SeedStep{Name: "purchase_orders"}
	defer func() { report.AddStep(step) }()

	if len(suppliers) == 0 || len(products) < 3 {
		c.log.Warn("not enough suppliers or products for purchase orders")
		return
	}

	order := entity.PurchaseOrder{
		PartnerID: suppliers[0],
		Lines: []entity.OrderLine{
			{ProductID: products[1], Quantity: 1, PriceUnit: 500.0},
			{ProductID: products[2], Quantity: 5, PriceUnit: 300.0},
		},
	}
	id, ok := c.createRecord(runID, entity.ModelPurchaseOrder, order.Values(), "purchase order")
	if !ok {
		step.Skipped++
		return
	}
	c.post(entity.ModelPurchaseOrder, entity.MethodButtonConfirm, id, "purchase order")
	step.Created = append(step.Created, id)
}

func (c *Core) seedInvoices(runID string, report *entity.SeedReport, customers, suppliers, products []int64) {
	step := entity.SeedStep{Name: "invoices"}
	defer func() { report.AddStep(step) }()

	if len(customers) == 0 || len(products) < 3 {
		c.log.Warn("not enough partners or products for invoices")
		return
	}

	secondCustomer := customers[0]
	if len(customers) > 1 {
		secondCustomer = customers[1]
	}

	invoices := []entity.Invoice{
		{
			PartnerID: customers[0],
			MoveType:  entity.MoveTypeCustomerInvoice,
			Lines: []entity.InvoiceLine{
				{ProductID: products[0], Quantity: 1, PriceUnit: 100.0},
				{ProductID: products[2], Quantity: 5, PriceUnit: 150.0},
			},
		},
		{
			PartnerID: secondCustomer,
			MoveType:  entity.MoveTypeCustomerInvoice,
			Lines: []entity.InvoiceLine{
				{ProductID: products[1], Quantity: 3, PriceUnit: 500.0},
			},
		},
	}
	if len(suppliers) > 0 {
		invoices = append(invoices, entity.Invoice{
			PartnerID: suppliers[0],
			MoveType:  entity.MoveTypeSupplierInvoice,
			Lines: []entity.InvoiceLine{
				{ProductID: products[1], Quantity: 1, PriceUnit: 500.0},
			},
		})
	}

	for i := range invoices {
		label := fmt.Sprintf("%s invoice", invoices[i].MoveType)
		id, ok := c.createRecord(runID, entity.ModelMove, invoices[i].Values(), label)
		if !ok {
			step.Skipped++
			continue
		}
		c.post(entity.ModelMove, entity.MethodActionPost, id, label)
		step.Created = append(step.Created, id)
	}
}

func (c *Core) seedCreditNotes(runID string, report *entity.SeedReport, customers, suppliers, products []int64) {
	step := entity.SeedStep{Name: "credit_notes"}
	defer func() { report.AddStep(step) }()

	if len(customers) == 0 || len(products) < 2 {
		c.log.Warn("not enough partners or products for credit notes")
		return
	}

	notes := []entity.Invoice{
		{
			PartnerID: customers[0],
			MoveType:  entity.MoveTypeCustomerRefund,
			Lines: []entity.InvoiceLine{
				{ProductID: products[0], Quantity: 1, PriceUnit: 100.0},
			},
		},
	}
	if len(suppliers) > 0 {
		notes = append(notes, entity.Invoice{
			PartnerID: suppliers[0],
			MoveType:  entity.MoveTypeSupplierRefund,
			Lines: []entity.InvoiceLine{
				{ProductID: products[1], Quantity: 1, PriceUnit: 500.0},
			},
		})
	}

	for i := range notes {
		label := fmt.Sprintf("%s credit note", notes[i].MoveType)
		id, ok := c.createRecord(runID, entity.ModelMove, notes[i].Values(), label)
		if !ok {
			step.Skipped++
			continue
		}
		c.post(entity.ModelMove, entity.MethodActionPost, id, label)
		step.Created = append(step.Created, id)
	}
}

func (c *Core) seedPayments(runID string, report *entity.SeedReport, customers, suppliers []int64) {
	step := entity.SeedStep{Name: "payments"}
	defer func() { report.AddStep(step) }()

	if len(customers) == 0 {
		c.log.Warn("no customers for payments")
		return
	}

	payments := []entity.Payment{
		{
			PartnerID:   customers[0],
			PaymentType: "inbound",
			PartnerType: "customer",
			Amount:      500.0,
		},
	}
	if len(suppliers) > 0 {
		payments = append(payments, entity.Payment{
			PartnerID:   suppliers[0],
			PaymentType: "outbound",
			PartnerType: "supplier",
			Amount:      300.0,
		})
	}

	for i := range payments {
		label := fmt.Sprintf("%s payment", payments[i].PartnerType)
		id, ok := c.createRecord(runID, entity.ModelPayment, payments[i].Values(), label)
		if !ok {
			step.Skipped++
			continue
		}
		c.post(entity.ModelPayment, entity.MethodActionPost, id, label)
		step.Created = append(step.Created, id)
	}
}

func (c *Core) seedAssets(runID string, report *entity.SeedReport) {
	step := entity.SeedStep{Name: "assets"}
	for _, asset := range sampleAssets() {
		id, ok := c.createRecord(runID, entity.ModelAsset, asset.Values(), asset.Name)
		if !ok {
			step.Skipped++
			continue
		}
		step.Created = append(step.Created, id)
	}
	report.AddStep(step)
}

// seedJournalEntries books one balanced manual entry against the first
// journal and the first two accounts found on the instance.
func (c *Core) seedJournalEntries(runID string, report *entity.SeedReport) {
	step := entity.SeedStep{Name: "journal_entries"}
	defer func() { report.AddStep(step) }()

	journals, err := c.odoo.SearchRead(entity.ModelJournal, nil, []string{"name", "type"}, 1)
	if err != nil || len(journals) == 0 {
		c.log.With(sl.Err(err)).Warn("no journal available for journal entries")
		return
	}
	journalID, ok := remoteID(journals[0]["id"])
	if !ok {
		return
	}

	accounts, err := c.odoo.SearchRead(entity.ModelAccount, nil, []string{"name", "code"}, 10)
	if err != nil || len(accounts) < 2 {
		c.log.With(sl.Err(err)).Warn("not enough accounts for journal entries")
		return
	}
	debitAccount, okD := remoteID(accounts[0]["id"])
	creditAccount, okC := remoteID(accounts[1]["id"])
	if !okD || !okC {
		return
	}

	now := time.Now().UTC()
	stamp := now.Format("20060102_150405")
	entry := entity.JournalEntry{
		Name:      fmt.Sprintf("JOURNAL/%s/%s", now.Format("2006/01"), stamp),
		Date:      now.Format("2006-01-02"),
		JournalID: journalID,
		Ref:       fmt.Sprintf("Sample journal entry %s", stamp),
		Lines: []entity.JournalItem{
			{AccountID: debitAccount, Name: "Debit entry", Debit: 500.0},
			{AccountID: creditAccount, Name: "Credit entry", Credit: 500.0},
		},
	}
	if !entry.Balanced() {
		c.log.Warn("journal entry is not balanced, skipping")
		step.Skipped++
		return
	}

	id, ok := c.createRecord(runID, entity.ModelMove, entry.Values(), entry.Name)
	if !ok {
		step.Skipped++
		return
	}
	c.post(entity.ModelMove, entity.MethodActionPost, id, entry.Name)
	step.Created = append(step.Created, id)
}

func (c *Core) saveReport(report *entity.SeedReport) {
	if c.mongoRepo == nil {
		return
	}
	if err := c.mongoRepo.SaveReport(report); err != nil {
		c.log.With(sl.Err(err)).Warn("failed to save seed report")
	}
}

func (c *Core) notifySummary(report *entity.SeedReport) {
	if c.notifier == nil {
		return
	}
	c.notifier.SendMessage(fmt.Sprintf(
		"Seed run %s finished: %d created, %d skipped",
		report.RunID, report.TotalCreated(), report.TotalSkipped(),
	))
}

// remoteID extracts a record id from a decoded RPC value. JSON decodes
// numbers as float64, the XML-RPC client returns int64.
func remoteID(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}
