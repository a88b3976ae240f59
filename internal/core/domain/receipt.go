package domain

// ReceiptKind identifies which flow produced a receipt.
type ReceiptKind string

const (
	ReceiptKindTransfer ReceiptKind = "transfer"
	ReceiptKindBill     ReceiptKind = "bill"
	ReceiptKindRecharge ReceiptKind = "recharge"
)

// ReceiptStatus is the outcome stamped on a receipt.
type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailed  ReceiptStatus = "failed"
)

// Receipt is the output of a completed transfer, bill payment or recharge.
// It is constructed once per successful flow, immutable, and never persisted:
// the record lives only in the response that carries it.
type Receipt struct {
	Kind          ReceiptKind   `json:"kind"`
	TransactionID string        `json:"transaction_id"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Amount        int64         `json:"amount"`
	Status        ReceiptStatus `json:"status"`

	// Transfer fields
	FromAccount     string `json:"from_account,omitempty"`
	ToAccount       string `json:"to_account,omitempty"`
	BeneficiaryName string `json:"beneficiary_name,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	Reference       string `json:"reference,omitempty"`

	// Bill fields
	Provider       string `json:"provider,omitempty"`
	ConsumerNumber string `json:"consumer_number,omitempty"`
	ConsumerName   string `json:"consumer_name,omitempty"`

	// Recharge fields
	Operator     string `json:"operator,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	PackageName  string `json:"package_name,omitempty"`
	Validity     string `json:"validity,omitempty"`
}
