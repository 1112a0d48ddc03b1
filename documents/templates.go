package documents

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nouhin-backend/models"
)

// Data carries everything a document needs: the delivery, its resolved
// customer and the issuing company.
type Data struct {
	Delivery models.Delivery
	Customer models.Customer
	Company  models.CompanyInfo
}

var yen = message.NewPrinter(language.Japanese)

var funcs = template.FuncMap{
	"amount": func(it models.DeliveryItem) string {
		return yen.Sprintf("%.0f", it.Quantity*it.UnitPrice)
	},
	"money": func(v float64) string {
		return yen.Sprintf("%.0f", v)
	},
}

var deliveryNoteTmpl = template.Must(template.New("deliveryNote").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; font-size: 12px; margin: 24px; }
h1 { text-align: center; letter-spacing: 1em; font-size: 20px; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { border: 1px solid #333; padding: 4px 6px; }
th { background: #eee; }
.num { text-align: right; }
.meta { margin-top: 8px; }
.company { text-align: right; }
</style>
</head>
<body>
<h1>納品書</h1>
<div class="meta">
<p>伝票番号: {{.Delivery.VoucherNumber}}<br>納品日: {{.Delivery.DeliveryDate}}</p>
<p>{{.Customer.Name}} 御中</p>
</div>
<div class="company">
<p>{{.Company.Name}}<br>〒{{.Company.PostalCode}} {{.Company.Address}}<br>TEL: {{.Company.Phone}} FAX: {{.Company.Fax}}</p>
</div>
<table>
<tr><th>品名</th><th>数量</th><th>単位</th><th>単価</th><th>金額</th><th>備考</th></tr>
{{range .Delivery.Items}}
<tr><td>{{.ProductName}}</td><td class="num">{{.Quantity}}</td><td>{{.Unit}}</td><td class="num">{{money .UnitPrice}}</td><td class="num">{{amount .}}</td><td>{{.Notes}}</td></tr>
{{end}}
<tr><th colspan="4">合計</th><th class="num">{{money .Delivery.TotalAmount}}</th><th></th></tr>
</table>
{{if .Delivery.Notes}}<p>備考: {{.Delivery.Notes}}</p>{{end}}
</body>
</html>
`))

var invoiceTmpl = template.Must(template.New("invoice").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; font-size: 12px; margin: 24px; }
h1 { text-align: center; letter-spacing: 1em; font-size: 20px; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { border: 1px solid #333; padding: 4px 6px; }
th { background: #eee; }
.num { text-align: right; }
.company { text-align: right; }
.bank { margin-top: 16px; border: 1px solid #333; padding: 8px; }
</style>
</head>
<body>
<h1>請求書</h1>
<p>伝票番号: {{.Delivery.VoucherNumber}}</p>
<p>{{if .Customer.FormalName}}{{.Customer.FormalName}}{{else}}{{.Customer.Name}}{{end}} 御中</p>
<div class="company">
<p>{{.Company.Name}}<br>〒{{.Company.PostalCode}} {{.Company.Address}}<br>TEL: {{.Company.Phone}}<br>担当: {{.Company.ContactPerson}}</p>
</div>
<p>下記の通りご請求申し上げます。</p>
<p>ご請求金額: <strong>{{money .Delivery.TotalAmount}} 円</strong>（お支払条件: {{.Customer.PaymentTerms}}）</p>
<table>
<tr><th>品名</th><th>数量</th><th>単位</th><th>単価</th><th>金額</th></tr>
{{range .Delivery.Items}}
<tr><td>{{.ProductName}}</td><td class="num">{{.Quantity}}</td><td>{{.Unit}}</td><td class="num">{{money .UnitPrice}}</td><td class="num">{{amount .}}</td></tr>
{{end}}
<tr><th colspan="4">合計</th><th class="num">{{money .Delivery.TotalAmount}}</th></tr>
</table>
<div class="bank">
お振込先: {{.Company.BankName}} {{.Company.BankBranch}} {{.Company.BankAccountType}} {{.Company.BankAccountNumber}}<br>
口座名義: {{.Company.BankAccountHolder}}
</div>
</body>
</html>
`))

// DeliveryNoteHTML renders the 納品書 page for a delivery.
func DeliveryNoteHTML(data Data) (string, error) {
	return execute(deliveryNoteTmpl, data)
}

// InvoiceHTML renders the 請求書 page for a delivery.
func InvoiceHTML(data Data) (string, error) {
	return execute(invoiceTmpl, data)
}

func execute(t *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
