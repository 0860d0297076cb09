package docs

import (
	"fmt"
	"strings"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// Customer regroupe les champs client nécessaires au script de confirmation.
type Customer struct {
	Name     string
	Phone    string
	Address  string
	City     string
	Quantity int
}

// ConfirmationScript génère le texte de confirmation d'une commande dans la
// langue demandée. Fonction pure : un gabarit fixe par langue, les lignes
// adresse/ville sont omises quand le champ est vide, et la description du
// produit dans cette langue est reprise telle quelle.
func ConfirmationScript(p *models.Product, c Customer, lang string) string {
	switch i18n.Normalize(lang) {
	case i18n.English:
		return englishScript(p, c)
	case i18n.French:
		return frenchScript(p, c)
	default:
		return arabicScript(p, c)
	}
}

func englishScript(p *models.Product, c Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s! 👋\n\n", c.Name)
	fmt.Fprintf(&b, "Thank you for your order of %s.\n\n", p.Name)
	b.WriteString("Order summary:\n")
	fmt.Fprintf(&b, "- Product: %s\n", p.Name)
	if p.Price != "" {
		fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	}
	fmt.Fprintf(&b, "- Quantity: %d\n", c.Quantity)
	fmt.Fprintf(&b, "- Phone: %s\n", c.Phone)
	if c.Address != "" {
		fmt.Fprintf(&b, "- Address: %s\n", c.Address)
	}
	if c.City != "" {
		fmt.Fprintf(&b, "- City: %s\n", c.City)
	}
	if desc := p.Description(i18n.English); desc != "" {
		b.WriteString("\nAbout the product:\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	b.WriteString("\nPlease reply \"confirm\" to validate your order. Thank you for your trust! 🙏")

	return b.String()
}

func frenchScript(p *models.Product, c Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bonjour %s ! 👋\n\n", c.Name)
	fmt.Fprintf(&b, "Merci pour votre commande de %s.\n\n", p.Name)
	b.WriteString("Récapitulatif de la commande :\n")
	fmt.Fprintf(&b, "- Produit : %s\n", p.Name)
	if p.Price != "" {
		fmt.Fprintf(&b, "- Prix : %s\n", p.Price)
	}
	fmt.Fprintf(&b, "- Quantité : %d\n", c.Quantity)
	fmt.Fprintf(&b, "- Téléphone : %s\n", c.Phone)
	if c.Address != "" {
		fmt.Fprintf(&b, "- Adresse : %s\n", c.Address)
	}
	if c.City != "" {
		fmt.Fprintf(&b, "- Ville : %s\n", c.City)
	}
	if desc := p.Description(i18n.French); desc != "" {
		b.WriteString("\nÀ propos du produit :\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	b.WriteString("\nRépondez « confirmer » pour valider votre commande. Merci de votre confiance ! 🙏")

	return b.String()
}

func arabicScript(p *models.Product, c Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "مرحباً %s! 👋\n\n", c.Name)
	fmt.Fprintf(&b, "شكراً لطلبك %s.\n\n", p.Name)
	b.WriteString("ملخص الطلب:\n")
	fmt.Fprintf(&b, "- المنتج: %s\n", p.Name)
	if p.Price != "" {
		fmt.Fprintf(&b, "- السعر: %s\n", p.Price)
	}
	fmt.Fprintf(&b, "- الكمية: %d\n", c.Quantity)
	fmt.Fprintf(&b, "- الهاتف: %s\n", c.Phone)
	if c.Address != "" {
		fmt.Fprintf(&b, "- العنوان: %s\n", c.Address)
	}
	if c.City != "" {
		fmt.Fprintf(&b, "- المدينة: %s\n", c.City)
	}
	if desc := p.Description(i18n.Arabic); desc != "" {
		b.WriteString("\nعن المنتج:\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	b.WriteString("\nيرجى الرد بكلمة \"تأكيد\" لتثبيت طلبك. شكراً لثقتك! 🙏")

	return b.String()
}
