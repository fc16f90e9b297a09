package printer

import (
	"strings"
	"text/template"
	"time"

	"pizzahouse/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var documentFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"upper": strings.ToUpper,
	"clock": func(t *time.Time) string {
		if t == nil {
			return "-"
		}

		return t.Format("Mon 15:04")
	},
	"stamp": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"line":  func(item entity.OrderItem) decimal.Decimal { return item.LineTotal() },
}

const kitchenOrderTemplate = `=== KITCHEN ORDER ===
Order:  {{.Order.ID}}
Placed: {{stamp .Order.CreatedAt}}
Type:   {{upper (print .Order.Type)}}
{{range .Order.Items}}
{{.Quantity}} x {{.Name}} ({{.Customization.Size}})
{{- range .Customization.Toppings}}
    + {{.Quantity}} x {{.Name}}
{{- end}}
{{- if .Customization.SpecialInstructions}}
    ! {{.Customization.SpecialInstructions}}
{{- end}}
{{end}}
{{- if .Order.Notes}}
Notes: {{.Order.Notes}}
{{end}}`

const customerReceiptTemplate = `=== PIZZA HOUSE RECEIPT ===
Order:  {{.Order.ID}}
Date:   {{stamp .Order.CreatedAt}}
{{range .Order.Items}}
{{.Quantity}} x {{.Name}} @ {{money .UnitPrice}} = {{money (line .)}}
{{- end}}

Subtotal:  {{money .Order.Subtotal}}
Delivery:  {{money .Order.DeliveryCharge}}
Tax:       {{money .Order.Tax}}
Discount: -{{money .Order.Discount}}
Total:     {{money .Order.FinalPrice}}
Payment:   {{.Order.PaymentMethod}} ({{.Order.PaymentStatus}})

Track your order: {{.TrackingURL}}
`

const deliverySlipTemplate = `=== DELIVERY SLIP ===
Order:    {{.Order.ID}}
{{- with .Order.DeliveryAddress}}
Address:  {{.Street}}, {{.City}} {{.PostalCode}}
{{- if .Instructions}}
Notes:    {{.Instructions}}
{{- end}}
{{- end}}
ETA:      {{clock .Order.EstimatedDeliveryTime}}
{{- if .Order.IsOutOfZone}}
OUT OF ZONE DELIVERY
{{- end}}
Collect:  {{if eq (print .Order.PaymentMethod) "cash"}}{{money .Order.FinalPrice}}{{else}}prepaid{{end}}

Track: {{.TrackingURL}}
`

var documentTemplates = template.Must(template.New("documents").Funcs(documentFuncs).Parse(
	`{{define "kitchenOrder"}}` + kitchenOrderTemplate + `{{end}}` +
		`{{define "customerReceipt"}}` + customerReceiptTemplate + `{{end}}` +
		`{{define "deliverySlip"}}` + deliverySlipTemplate + `{{end}}`,
))

type documentData struct {
	Order       *entity.Order
	TrackingURL string
}
