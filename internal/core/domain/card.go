package domain

// CardNetwork is the payment network a card belongs to.
type CardNetwork string

const (
	CardNetworkVisa       CardNetwork = "visa"
	CardNetworkMastercard CardNetwork = "mastercard"
)

// CardKind distinguishes debit from credit cards.
type CardKind string

const (
	CardKindDebit  CardKind = "debit"
	CardKindCredit CardKind = "credit"
)

// Card is a payment card linked to an account. Invariant: Balance <= Limit.
// Frozen is toggled only by explicit user action, never by a transaction.
type Card struct {
	ID      string      `json:"id"`
	Network CardNetwork `json:"network"`
	Kind    CardKind    `json:"kind"`
	Number  string      `json:"number"` // 16 digits, space-grouped
	Holder  string      `json:"holder"`
	Expiry  string      `json:"expiry"` // MM/YY
	Balance int64       `json:"balance"`
	Limit   int64       `json:"limit"`
	Frozen  bool        `json:"frozen"`
}
