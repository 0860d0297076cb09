package docs

import (
	"fmt"
	"html"
	"strings"
	"time"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// ProductDocument génère une fiche produit HTML autonome (styles inline),
// prête à imprimer ou télécharger. Fonction pure : le même produit et la même
// date produisent exactement le même document. generatedAt est injecté par
// l'appelant pour garder la génération déterministe.
func ProductDocument(p *models.Product, lang string, generatedAt time.Time) string {
	lang = i18n.Normalize(lang)
	esc := html.EscapeString

	var meta strings.Builder
	if p.Price != "" {
		meta.WriteString(metaRow(i18n.Label(lang, "price"), esc(p.Price)))
	}
	if p.Category != "" {
		meta.WriteString(metaRow(i18n.Label(lang, "category"), esc(p.Category)))
	}

	var sections strings.Builder
	if desc := p.Description(lang); desc != "" {
		sections.WriteString(section(i18n.Label(lang, "description"),
			fmt.Sprintf(`<p style="margin: 0; color: #444; font-size: 15px; line-height: 1.8;">%s</p>`, esc(desc))))
	}
	if items := p.Benefits[lang]; len(items) > 0 {
		sections.WriteString(section(i18n.Label(lang, "benefits"), bulletList(items, "#10b981")))
	}
	if items := p.Features[lang]; len(items) > 0 {
		sections.WriteString(section(i18n.Label(lang, "features"), bulletList(items, "#667eea")))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s" dir="%s">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s — %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Tahoma, Arial, sans-serif; background-color: #f5f5f5;">
    <div style="max-width: 700px; margin: 0 auto; padding: 40px 20px;">
        <div style="background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
            <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 30px; text-align: center;">
                <p style="margin: 0 0 8px 0; color: #ffffff; font-size: 14px; opacity: 0.85; text-transform: uppercase; letter-spacing: 1px;">%s</p>
                <h1 style="margin: 0; color: #ffffff; font-size: 30px; font-weight: 700;">%s</h1>
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
		esc(p.Name), i18n.Label(lang, "product_sheet"),
		i18n.Label(lang, "product_sheet"), esc(p.Name),
		meta.String(), sections.String(),
		i18n.Label(lang, "generated_on"), generatedAt.Format("2006-01-02"),
	)
}

func metaRow(label, value string) string {
	return fmt.Sprintf(`                <div style="display: flex; justify-content: space-between; padding: 12px 16px; background-color: #f8f9fa; border-radius: 8px; margin-bottom: 10px;">
                    <span style="color: #666666; font-size: 14px; font-weight: 600;">%s</span>
                    <span style="color: #333333; font-size: 14px;">%s</span>
                </div>
`, label, value)
}

func section(title, body string) string {
	return fmt.Sprintf(`                <div style="margin-top: 25px;">
                    <h2 style="margin: 0 0 12px 0; color: #333333; font-size: 18px; font-weight: 600; border-bottom: 2px solid #667eea; padding-bottom: 8px;">%s</h2>
                    %s
                </div>
`, title, body)
}

func bulletList(items []string, color string) string {
	var b strings.Builder
	b.WriteString(`<ul style="margin: 0; padding: 0; list-style: none;">`)
	for _, item := range items {
		fmt.Fprintf(&b, `
                        <li style="padding: 8px 0; color: #444444; font-size: 15px;"><span style="color: %s; font-weight: 700;">✓</span> %s</li>`,
			color, html.EscapeString(item))
	}
	b.WriteString(`
                    </ul>`)
	return b.String()
}
