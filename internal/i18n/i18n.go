package i18n

// Les trois langues supportées par Matjar. Toutes les structures localisées
// (descriptions, bénéfices, caractéristiques) portent exactement ces trois clés.
const (
	Arabic  = "ar"
	English = "en"
	French  = "fr"
)

// DefaultLanguage est la langue par défaut des commandes et des exports.
const DefaultLanguage = Arabic

// Languages liste les codes supportés, dans l'ordre d'affichage du front.
var Languages = []string{Arabic, English, French}

// IsSupported indique si le code de langue fait partie des trois langues gérées.
func IsSupported(lang string) bool {
	return lang == Arabic || lang == English || lang == French
}

// Normalize retourne la langue demandée si elle est supportée, sinon la langue
// par défaut. Les handlers passent systématiquement par ici.
func Normalize(lang string) string {
	if IsSupported(lang) {
		return lang
	}
	return DefaultLanguage
}

// Direction retourne le sens d'écriture pour les documents HTML générés.
func Direction(lang string) string {
	if lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

// LanguageName retourne le nom natif de la langue (affiché dans les exports).
func LanguageName(lang string) string {
	switch lang {
	case Arabic:
		return "العربية"
	case French:
		return "Français"
	default:
		return "English"
	}
}

var labels = map[string]map[string]string{
	Arabic: {
		"product_sheet":   "بطاقة المنتج",
		"order_sheet":     "بطاقة الطلب",
		"price":           "السعر",
		"category":        "الفئة",
		"description":     "الوصف",
		"benefits":        "الفوائد",
		"features":        "المميزات",
		"customer":        "العميل",
		"phone":           "الهاتف",
		"address":         "العنوان",
		"city":            "المدينة",
		"quantity":        "الكمية",
		"notes":           "ملاحظات",
		"status":          "الحالة",
		"product":         "المنتج",
		"product_deleted": "المنتج لم يعد متوفرًا",
		"script":          "نص التأكيد",
		"generated_on":    "تم الإنشاء في",
	},
	English: {
		"product_sheet":   "Product Sheet",
		"order_sheet":     "Order Sheet",
		"price":           "Price",
		"category":        "Category",
		"description":     "Description",
		"benefits":        "Benefits",
		"features":        "Features",
		"customer":        "Customer",
		"phone":           "Phone",
		"address":         "Address",
		"city":            "City",
		"quantity":        "Quantity",
		"notes":           "Notes",
		"status":          "Status",
		"product":         "Product",
		"product_deleted": "This product is no longer available",
		"script":          "Confirmation Script",
		"generated_on":    "Generated on",
	},
	French: {
		"product_sheet":   "Fiche Produit",
		"order_sheet":     "Fiche Commande",
		"price":           "Prix",
		"category":        "Catégorie",
		"description":     "Description",
		"benefits":        "Bénéfices",
		"features":        "Caractéristiques",
		"customer":        "Client",
		"phone":           "Téléphone",
		"address":         "Adresse",
		"city":            "Ville",
		"quantity":        "Quantité",
		"notes":           "Notes",
		"status":          "Statut",
		"product":         "Produit",
		"product_deleted": "Ce produit n'est plus disponible",
		"script":          "Script de confirmation",
		"generated_on":    "Généré le",
	},
}

// Label retourne le libellé localisé utilisé dans les documents générés.
func Label(lang, key string) string {
	if m, ok := labels[Normalize(lang)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// StatusLabel retourne le libellé localisé d'un statut de commande.
func StatusLabel(lang, status string) string {
	m := map[string]map[string]string{
		Arabic:  {"pending": "قيد الانتظار", "confirmed": "مؤكد", "cancelled": "ملغي", "delivered": "تم التوصيل"},
		English: {"pending": "Pending", "confirmed": "Confirmed", "cancelled": "Cancelled", "delivered": "Delivered"},
		French:  {"pending": "En attente", "confirmed": "Confirmée", "cancelled": "Annulée", "delivered": "Livrée"},
	}
	if v, ok := m[Normalize(lang)][status]; ok {
		return v
	}
	return status
}

var errorMessages = map[string]map[string]string{
	Arabic: {
		"ai_failed":       "فشل الاتصال بخدمة الذكاء الاصطناعي",
		"analysis_failed": "فشل تحليل صورة المنتج",
		"not_image":       "الملف المرفوع ليس صورة",
		"file_too_large":  "حجم الصورة يتجاوز الحد المسموح (10MB)",
		"no_file":         "لم يتم إرفاق أي صورة",
		"no_question":     "السؤال مطلوب",
	},
	English: {
		"ai_failed":       "The AI service request failed",
		"analysis_failed": "Product image analysis failed",
		"not_image":       "The uploaded file is not an image",
		"file_too_large":  "The image exceeds the allowed size (10MB)",
		"no_file":         "No image file was provided",
		"no_question":     "A question is required",
	},
	French: {
		"ai_failed":       "L'appel au service d'IA a échoué",
		"analysis_failed": "L'analyse de l'image du produit a échoué",
		"not_image":       "Le fichier envoyé n'est pas une image",
		"file_too_large":  "L'image dépasse la taille autorisée (10MB)",
		"no_file":         "Aucune image n'a été fournie",
		"no_question":     "La question est obligatoire",
	},
}

// ErrorMessage retourne un message d'erreur localisé pour l'API.
func ErrorMessage(lang, key string) string {
	if m, ok := errorMessages[Normalize(lang)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return errorMessages[DefaultLanguage][key]
}

// FallbackAnswer est la réponse renvoyée quand le modèle ne retourne aucun contenu.
func FallbackAnswer(lang string) string {
	switch Normalize(lang) {
	case English:
		return "Sorry, I could not find an answer to your question. Please try rephrasing it."
	case French:
		return "Désolé, je n'ai pas trouvé de réponse à votre question. Essayez de la reformuler."
	default:
		return "عذرًا، لم أتمكن من العثور على إجابة لسؤالك. حاول إعادة صياغته."
	}
}
