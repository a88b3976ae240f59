package domain

// AccountKind classifies a bank account.
type AccountKind string

const (
	AccountKindSavings AccountKind = "savings"
	AccountKindCurrent AccountKind = "current"
	AccountKindCredit  AccountKind = "credit"
)

// Account is a bank account owned by the demo user. Balances are whole
// rupees (PKR has no minor unit in this model) and may be negative for
// credit accounts, where they represent the amount owed.
type Account struct {
	ID       string      `json:"id"`
	Kind     AccountKind `json:"kind"`
	Name     string      `json:"name"`
	Number   string      `json:"number"` // masked, e.g. "****4582"
	Balance  int64       `json:"balance"`
	Currency string      `json:"currency"`
}

// CanDebit reports whether the account can cover a debit of amount.
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && amount <= a.Balance
}

// Contact is a known transfer beneficiary. Contacts are seed data and are
// never created or edited by any flow.
type Contact struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	AccountNumber string `json:"account_number"` // masked
}
