package ai

import (
	"fmt"
	"strings"

	"matjar_back_end/internal/i18n"
	"matjar_back_end/internal/models"
)

// Les prompts sont rédigés en anglais : c'est la langue sur laquelle les
// modèles sont les plus fiables, la sortie reste multilingue.

func languageName(lang string) string {
	switch lang {
	case i18n.Arabic:
		return "Arabic"
	case i18n.French:
		return "French"
	default:
		return "English"
	}
}

// buildAnalysisPrompt demande au modèle une fiche produit complète en trois
// langues, sous forme d'objet JSON strict.
func buildAnalysisPrompt() string {
	lines := []string{
		"You are a product marketing expert. Analyze the product photo and produce ready-to-publish marketing content.",
		"Respond with a single JSON object, no prose, with exactly these fields:",
		`- "name": a short commercial product name (in Arabic)`,
		`- "descriptions": {"ar": ..., "en": ..., "fr": ...} — a persuasive selling description per language`,
		`- "benefits": {"ar": [...], "en": [...], "fr": [...]} — 3 to 5 short customer benefits per language`,
		`- "features": {"ar": [...], "en": [...], "fr": [...]} — 3 to 5 short product features per language`,
		`- "price": a suggested price as free text (may be empty if unknown)`,
		`- "category": a short product category (may be empty)`,
		"Write naturally in each language, do not transliterate. Keep list items under 10 words.",
	}
	return strings.Join(lines, "\n")
}

// buildMarketingPrompt embarque la fiche produit dans la langue cible et
// demande un post, des hashtags, un appel à l'action et des conseils de vente.
func buildMarketingPrompt(p *models.Product, lang string) string {
	target := languageName(lang)

	lines := []string{
		fmt.Sprintf("You are a social media marketing expert. Write content in %s for this product:", target),
		fmt.Sprintf("Product name: %s", p.Name),
	}
	if p.Price != "" {
		lines = append(lines, fmt.Sprintf("Price: %s", p.Price))
	}
	if p.Category != "" {
		lines = append(lines, fmt.Sprintf("Category: %s", p.Category))
	}
	if desc := p.Description(lang); desc != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", desc))
	}
	if benefits := p.Benefits[lang]; len(benefits) > 0 {
		lines = append(lines, "Benefits: "+strings.Join(benefits, "; "))
	}
	if features := p.Features[lang]; len(features) > 0 {
		lines = append(lines, "Features: "+strings.Join(features, "; "))
	}
	lines = append(lines,
		"Respond with a single JSON object, no prose, with exactly these fields:",
		fmt.Sprintf(`- "post": an engaging social media post in %s`, target),
		`- "hashtags": 5 to 8 relevant hashtags`,
		fmt.Sprintf(`- "callToAction": a short call to action in %s`, target),
		fmt.Sprintf(`- "salesTips": 3 practical selling tips in %s`, target),
	)
	return strings.Join(lines, "\n")
}

// buildMarketingImagePrompt fabrique une unique consigne descriptive pour le
// modèle de génération d'images à partir du contenu marketing.
func buildMarketingImagePrompt(input MarketingImageInput) string {
	lines := []string{
		fmt.Sprintf("Create a premium social media marketing visual for the product %q.", input.ProductName),
	}
	if input.Post != "" {
		lines = append(lines, fmt.Sprintf("The visual illustrates this post: %s", input.Post))
	}
	if input.CallToAction != "" {
		lines = append(lines, fmt.Sprintf("Highlight the call to action: %s.", input.CallToAction))
	}
	if len(input.Hashtags) > 0 {
		lines = append(lines, "Campaign themes: "+strings.Join(input.Hashtags, ", ")+".")
	}
	lines = append(lines,
		"Professional product photography, studio lighting, clean modern composition, vivid colors.",
		"No embedded text, no watermark, ready for social media.",
	)
	return strings.Join(lines, "\n")
}

// buildChatPrompt ancre la réponse sur la description stockée du produit.
func buildChatPrompt(question, lang, productDescription string) string {
	target := languageName(lang)

	lines := []string{
		fmt.Sprintf("You are a helpful sales assistant. Answer the customer question in %s.", target),
	}
	if productDescription != "" {
		lines = append(lines, "Product information:", productDescription)
	}
	lines = append(lines,
		"Answer concisely and honestly. If the information is not available, say so.",
		fmt.Sprintf("Question: %s", question),
	)
	return strings.Join(lines, "\n")
}
