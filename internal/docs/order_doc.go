package docs

import (
	"fmt"
	"html"
	"strings"
	"time"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

var statusColors = map[string]string{
	models.StatusPending:   "#f59e0b",
	models.StatusConfirmed: "#10b981",
	models.StatusCancelled: "#ef4444",
	models.StatusDelivered: "#3b82f6",
}

// OrderDocument génère une fiche commande HTML autonome. product peut être
// nil (produit supprimé après la commande) : la fiche se rend alors sans les
// détails produit. Tous les champs optionnels ont un comportement d'omission
// défini, la génération n'échoue jamais.
func OrderDocument(o *models.Order, product *models.Product, lang string, generatedAt time.Time) string {
	lang = i18n.Normalize(lang)
	esc := html.EscapeString

	color, ok := statusColors[o.Status]
	if !ok {
		color = "#6b7280"
	}
	badge := fmt.Sprintf(`<span style="display: inline-block; padding: 6px 16px; background-color: %s; color: #ffffff; border-radius: 20px; font-size: 13px; font-weight: 600;">%s</span>`,
		color, i18n.StatusLabel(lang, o.Status))

	var rows strings.Builder
	rows.WriteString(metaRow(i18n.Label(lang, "customer"), esc(o.CustomerName)))
	rows.WriteString(metaRow(i18n.Label(lang, "phone"), esc(o.CustomerPhone)))
	if o.CustomerAddress != "" {
		rows.WriteString(metaRow(i18n.Label(lang, "address"), esc(o.CustomerAddress)))
	}
	if o.CustomerCity != "" {
		rows.WriteString(metaRow(i18n.Label(lang, "city"), esc(o.CustomerCity)))
	}
	rows.WriteString(metaRow(i18n.Label(lang, "quantity"), fmt.Sprintf("%d", o.Quantity)))

	if product != nil {
		rows.WriteString(metaRow(i18n.Label(lang, "product"), esc(product.Name)))
		if product.Price != "" {
			rows.WriteString(metaRow(i18n.Label(lang, "price"), esc(product.Price)))
		}
	} else {
		rows.WriteString(metaRow(i18n.Label(lang, "product"), fmt.Sprintf(`<em style="color: #999999;">%s</em>`, i18n.Label(lang, "product_deleted"))))
	}

	var sections strings.Builder
	if o.Notes != "" {
		sections.WriteString(section(i18n.Label(lang, "notes"),
			fmt.Sprintf(`<p style="margin: 0; color: #444; font-size: 15px; line-height: 1.8;">%s</p>`, esc(o.Notes))))
	}
	if o.ConfirmationScript != "" {
		sections.WriteString(section(i18n.Label(lang, "script"),
			fmt.Sprintf(`<pre style="margin: 0; padding: 16px; background-color: #f8f9fa; border-radius: 8px; color: #444444; font-size: 14px; line-height: 1.7; white-space: pre-wrap; font-family: inherit;">%s</pre>`, esc(o.ConfirmationScript))))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s" dir="%s">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Tahoma, Arial, sans-serif; background-color: #f5f5f5;">
    <div style="max-width: 700px; margin: 0 auto; padding: 40px 20px;">
        <div style="background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
            <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 30px; text-align: center;">
                <h1 style="margin: 0 0 12px 0; color: #ffffff; font-size: 28px; font-weight: 700;">%s</h1>
                %s
            </div>
            <div style="padding: 30px;">
%s%s            </div>
            <div style="padding: 20px 30px; background-color: #f8f9fa; text-align: center; border-top: 1px solid #eeeeee;">
                <p style="margin: 0; color: #999999; font-size: 12px;">%s %s</p>
            </div>
        </div>
    </div>
</body>
</html>
`,
		lang, i18n.Direction(lang),
		i18n.Label(lang, "order_sheet"),
		i18n.Label(lang, "order_sheet"), badge,
		rows.String(), sections.String(),
		i18n.Label(lang, "generated_on"), generatedAt.Format("2006-01-02"),
	)
}
