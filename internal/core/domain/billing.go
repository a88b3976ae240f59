package domain

import "time"

// Provider is a utility company that bills can be paid to.
type Provider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"` // electricity, gas, telephone, internet, water, tv
}

// BillInvoice is the result of a bill lookup: the BillFetched state of the
// two-phase bill payment flow. The amount and consumer name are illustrative
// demo values, not derived from the consumer number.
type BillInvoice struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"provider_id"`
	ProviderName   string    `json:"provider_name"`
	ConsumerNumber string    `json:"consumer_number"`
	ConsumerName   string    `json:"consumer_name"`
	Amount         int64     `json:"amount"`
	DueDate        string    `json:"due_date"`
	FetchedAt      time.Time `json:"fetched_at"`
}
