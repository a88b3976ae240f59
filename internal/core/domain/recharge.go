package domain

// Operator is a mobile network operator.
type Operator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PackageKind partitions recharge packages into plain prepaid loads and
// bundles carrying data/minutes/SMS allowances.
type PackageKind string

const (
	PackageKindPrepaid PackageKind = "prepaid"
	PackageKindBundle  PackageKind = "bundle"
)

// RechargePackage is an operator's recharge offering.
type RechargePackage struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    int64       `json:"price"`
	Validity string      `json:"validity"`
	Kind     PackageKind `json:"kind"`
	Data     string      `json:"data,omitempty"`
	Minutes  string      `json:"minutes,omitempty"`
	SMS      string      `json:"sms,omitempty"`
}
