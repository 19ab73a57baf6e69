package events

// POS event types written to the outbox.
const (
	EventInvoiceSaved         = "invoice_saved"
	EventInvoiceReturned      = "invoice_returned"
	EventStockDecrementFailed = "stock_decrement_failed"
	EventStockIntake          = "stock_intake"
	EventDailySummaryRolledUp = "daily_summary_rolled_up"
)
