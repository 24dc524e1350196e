package services

import (
	"bytes"
	"html/template"
	"time"

	"tillpoint/entity"
	"tillpoint/utils"
)

// BillingService renders the printable documents the terminal hands to the
// front: the bill for the cart on screen and the exported monthly report.
type BillingService struct {
	bill   *template.Template
	report *template.Template
}

func NewBillingService() *BillingService {
	funcs := template.FuncMap{"rupees": utils.Rupees}
	return &BillingService{
		bill:   template.Must(template.New("bill").Funcs(funcs).Parse(billTpl)),
		report: template.Must(template.New("report").Funcs(funcs).Parse(reportTpl)),
	}
}

// RenderBill produces the printable bill for the current cart.
func (s *BillingService) RenderBill(items []entity.CartItem, totals CartTotals) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	var buf bytes.Buffer
	data := struct {
		Date   string
		Items  []entity.CartItem
		Totals CartTotals
	}{
		Date:   time.Now().Format("02 Jan 2006 15:04"),
		Items:  items,
		Totals: totals,
	}
	if err := s.bill.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderReport produces the exported monthly sales report document.
func (s *BillingService) RenderReport(r *ReportResult) (string, error) {
	var buf bytes.Buffer
	data := struct {
		*ReportResult
		GeneratedAt string
	}{
		ReportResult: r,
		GeneratedAt:  time.Now().Format("02 Jan 2006 15:04"),
	}
	if err := s.report.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const billTpl = `<!DOCTYPE html>
<html>
<head>
<title>Bill - Restaurant</title>
<style>
body { font-family: Arial, sans-serif; padding: 40px; }
h1 { text-align: center; }
.bill-item { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
.bill-total { margin-top: 20px; padding-top: 20px; border-top: 2px solid #333; }
.total-row { font-size: 1.4em; font-weight: bold; }
</style>
</head>
<body>
<h1>Restaurant Bill</h1>
<p style="text-align:center">Date: {{.Date}}</p>
<div class="bill-items">
{{range .Items}}<div class="bill-item"><span>{{.Name}} ({{.Qty}}x)</span><span>{{rupees .Total}}</span></div>
{{end}}</div>
<div class="bill-total">
<div>Subtotal: {{rupees .Totals.Subtotal}}</div>
<div class="total-row">Total: {{rupees .Totals.Total}}</div>
</div>
<p style="text-align:center; margin-top:40px">Thank you for your visit!</p>
</body>
</html>
`

const reportTpl = `<!DOCTYPE html>
<html>
<head>
<title>Monthly Sales Report {{.MonthLabel}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 40px; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 8px; border-bottom: 1px solid #eee; }
</style>
</head>
<body>
<h1>Monthly Sales Report</h1>
<p>Month: {{.MonthLabel}}</p>
<h2>Summary</h2>
<ul>
<li>Total Orders: {{.TotalOrders}}</li>
<li>Total Revenue: {{rupees .TotalRevenue}}</li>
<li>Items Sold: {{.TotalItemsSold}}</li>
<li>Average Order: {{rupees .AverageOrderValue}}</li>
</ul>
<h2>Item Sales Breakdown</h2>
<table>
<thead><tr><th>Item Name</th><th>Quantity Sold</th><th>Revenue</th></tr></thead>
<tbody>
{{range .PerItemBreakdown}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{rupees .Revenue}}</td></tr>
{{end}}</tbody>
</table>
<p style="color:#999">Generated on {{.GeneratedAt}}</p>
</body>
</html>
`
