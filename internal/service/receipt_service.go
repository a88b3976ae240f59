package service

import (
	"bytes"
	"fmt"
	"html/template"

	"nexbank/internal/core/domain"
	"nexbank/pkg/apperror"
	"nexbank/pkg/currency"
)

// receiptTemplate is the printable transaction slip. It mirrors the receipt
// modal: common header, kind-specific detail rows, amount footer.
const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Transaction Receipt</title>
<style>
body { font-family: monospace; max-width: 420px; margin: 24px auto; color: #111; }
h1 { font-size: 18px; text-align: center; }
.status { text-align: center; text-transform: uppercase; letter-spacing: 2px; margin: 8px 0 16px; }
table { width: 100%; border-collapse: collapse; }
td { padding: 4px 0; }
td:last-child { text-align: right; }
.amount { font-size: 20px; font-weight: bold; text-align: center; margin-top: 16px; border-top: 1px dashed #999; padding-top: 12px; }
.footer { text-align: center; font-size: 11px; color: #666; margin-top: 16px; }
</style>
</head>
<body>
<h1>NexBank</h1>
<p class="status">{{.Receipt.Status}}</p>
<table>
<tr><td>Transaction ID</td><td>{{.Receipt.TransactionID}}</td></tr>
<tr><td>Date</td><td>{{.Receipt.Date}} {{.Receipt.Time}}</td></tr>
{{- if eq .Receipt.Kind "transfer"}}
<tr><td>From</td><td>{{.Receipt.FromAccount}}</td></tr>
<tr><td>To</td><td>{{.Receipt.ToAccount}}</td></tr>
<tr><td>Beneficiary</td><td>{{.Receipt.BeneficiaryName}}</td></tr>
{{- if .Receipt.BankName}}
<tr><td>Bank</td><td>{{.Receipt.BankName}}</td></tr>
{{- end}}
<tr><td>Reference</td><td>{{.Receipt.Reference}}</td></tr>
{{- else if eq .Receipt.Kind "bill"}}
<tr><td>Provider</td><td>{{.Receipt.Provider}}</td></tr>
<tr><td>Consumer No</td><td>{{.Receipt.ConsumerNumber}}</td></tr>
<tr><td>Consumer</td><td>{{.Receipt.ConsumerName}}</td></tr>
{{- else if eq .Receipt.Kind "recharge"}}
<tr><td>Operator</td><td>{{.Receipt.Operator}}</td></tr>
<tr><td>Mobile No</td><td>{{.Receipt.MobileNumber}}</td></tr>
<tr><td>Package</td><td>{{.Receipt.PackageName}}</td></tr>
<tr><td>Validity</td><td>{{.Receipt.Validity}}</td></tr>
{{- end}}
</table>
<p class="amount">{{.FormattedAmount}}</p>
<p class="footer">Thank you for banking with NexBank &middot; Helpline 111-627-627</p>
</body>
</html>
`

// ReceiptRendererImpl implements ports.ReceiptRenderer using html/template.
type ReceiptRendererImpl struct {
	tmpl *template.Template
}

// NewReceiptRenderer creates a renderer with the slip template parsed once.
func NewReceiptRenderer() (*ReceiptRendererImpl, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing receipt template: %w", err)
	}
	return &ReceiptRendererImpl{tmpl: tmpl}, nil
}

// RenderPrintHTML renders the printable document for a receipt.
func (r *ReceiptRendererImpl) RenderPrintHTML(receipt *domain.Receipt) ([]byte, error) {
	if receipt == nil {
		return nil, apperror.Validation("receipt is required")
	}

	data := struct {
		Receipt         *domain.Receipt
		FormattedAmount string
	}{
		Receipt:         receipt,
		FormattedAmount: currency.Format(receipt.Amount),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("rendering receipt: %w", err))
	}
	return buf.Bytes(), nil
}
