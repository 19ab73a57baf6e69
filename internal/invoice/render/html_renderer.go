package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const billHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{billTitle .Invoice.Kind}} {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
      font-size: 13px;
    }
    .bill { max-width: 760px; margin: 0 auto; }
    .header {
      display: flex;
      justify-content: space-between;
      border-bottom: 2px solid #111827;
      padding-bottom: 12px;
      margin-bottom: 16px;
    }
    .store strong { font-size: 16px; }
    .meta { text-align: right; }
    .meta .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 10px;
    }
    .parties { margin-bottom: 16px; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th {
      text-transform: uppercase;
      font-size: 10px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    td.num, th.num { text-align: right; }
    .totals { margin-top: 12px; margin-left: auto; width: 280px; }
    .totals td { border-bottom: none; padding: 2px 8px; }
    .totals .final td { border-top: 1px solid #111827; font-weight: bold; font-size: 15px; }
    .footer {
      margin-top: 20px;
      border-top: 1px solid #e5e7eb;
      padding-top: 12px;
      font-size: 11px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="bill">
    <div class="header">
      <div class="store">
        <div><strong>{{.Store.Name}}</strong></div>
        {{if .Store.Address}}<div>{{.Store.Address}}</div>{{end}}
        {{if .Store.Phone}}<div>Ph: {{.Store.Phone}}</div>{{end}}
        {{if .Store.GSTIN}}<div>GSTIN: {{.Store.GSTIN}}</div>{{end}}
        {{if .Store.DLNo}}<div>DL No: {{.Store.DLNo}}</div>{{end}}
      </div>
      <div class="meta">
        <div class="label">{{billTitle .Invoice.Kind}}</div>
        <div><strong>{{.Invoice.Number}}</strong></div>
        <div>Date: {{formatDate .Invoice.Date}}</div>
        <div>Payment: {{.Invoice.PaymentMode}}</div>
      </div>
    </div>

    <div class="parties">
      {{if .Invoice.CustomerName}}<div>Customer: {{.Invoice.CustomerName}}{{if .Invoice.CustomerPhone}} ({{.Invoice.CustomerPhone}}){{end}}</div>{{end}}
      {{if .Invoice.DoctorName}}<div>Prescribed by: {{.Invoice.DoctorName}}</div>{{end}}
    </div>

    <table>
      <thead>
        <tr>
          <th>Item</th>
          <th>Batch</th>
          <th>Exp</th>
          <th>Pack</th>
          <th class="num">Qty</th>
          <th class="num">MRP</th>
          <th class="num">Rate</th>
          <th class="num">GST%</th>
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.ItemName}}</td>
          <td>{{.Batch}}</td>
          <td>{{.Expiry}}</td>
          <td>{{.Pack}}</td>
          <td class="num">{{.Quantity}}</td>
          <td class="num">{{formatAmount .MRP}}</td>
          <td class="num">{{formatAmount .Rate}}</td>
          <td class="num">{{formatPercent .GSTPercent}}</td>
          <td class="num">{{formatAmount .Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <table class="totals">
      <tr><td>Taxable Value</td><td class="num">{{formatAmount .Invoice.GrossAmount}}</td></tr>
      <tr><td>CGST</td><td class="num">{{formatAmount .Invoice.CGSTAmount}}</td></tr>
      <tr><td>SGST</td><td class="num">{{formatAmount .Invoice.SGSTAmount}}</td></tr>
      <tr><td>Subtotal</td><td class="num">{{formatAmount .Invoice.Subtotal}}</td></tr>
      {{if not .Invoice.DiscountAmount.IsZero}}<tr><td>Discount</td><td class="num">-{{formatAmount .Invoice.DiscountAmount}}</td></tr>{{end}}
      {{if not .Invoice.RoundOff.IsZero}}<tr><td>Round Off</td><td class="num">{{formatAmount .Invoice.RoundOff}}</td></tr>{{end}}
      <tr class="final"><td>{{if isReturn .Invoice.Kind}}Refund{{else}}Total{{end}}</td><td class="num">&#8377; {{.Invoice.FinalAmount}}</td></tr>
    </table>

    <div class="footer">
      {{if gt (len .Lines) 0}}{{if not .Invoice.SavedFromMRP.IsZero}}<div>You saved &#8377; {{formatAmount .Invoice.SavedFromMRP}} on MRP today.</div>{{end}}{{end}}
      <div>Goods once sold are returnable only with the original bill.</div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatAmount":  formatAmount,
		"formatDate":    formatDate,
		"formatPercent": formatPercent,
		"billTitle":     billTitle,
		"isReturn":      isReturn,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("bill").Funcs(funcs).Parse(billHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if strings.TrimSpace(input.Store.Name) == "" {
		input.Store.Name = "Pharmacy"
	}
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("02-01-2006")
}

func formatPercent(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func billTitle(kind string) string {
	if isReturn(kind) {
		return "Credit Note"
	}
	return "Tax Invoice"
}

func isReturn(kind string) bool {
	return strings.EqualFold(strings.TrimSpace(kind), "return")
}
