package domain

// TransactionDirection is the side of the ledger an entry falls on.
type TransactionDirection string

const (
	TransactionCredit TransactionDirection = "credit"
	TransactionDebit  TransactionDirection = "debit"
)

// TransactionStatus is the lifecycle state of a historical entry.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a historical ledger entry. History is seed data: the
// transfer/bill/recharge flows never append to it or mutate it.
type Transaction struct {
	ID          string               `json:"id"`
	Direction   TransactionDirection `json:"direction"`
	Amount      int64                `json:"amount"` // non-negative
	Currency    string               `json:"currency"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Date        string               `json:"date"` // YYYY-MM-DD
	Status      TransactionStatus    `json:"status"`
}

// MonthlySpend is one month's aggregate outflow for the dashboard chart.
type MonthlySpend struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

// CategorySpend is a category's share of spending for the dashboard chart.
type CategorySpend struct {
	Category   string `json:"category"`
	Amount     int64  `json:"amount"`
	Percentage int    `json:"percentage"`
}
