package i18n

// Language is a supported UI locale
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

var translations = map[Language]map[string]string{
	LanguageEnglish: {
		"nav.services":        "Services",
		"nav.about":           "About",
		"nav.contact":         "Contact",
		"nav.login":           "Staff Login",
		"home.hero.title":     "Your Trusted Partner for",
		"home.hero.subtitle":  "Cleaning & Pest Control",
		"home.cta.book":       "Book Service Now",
		"home.cta.services":   "View Services",
		"home.services.title": "Our Services",
		"home.why.title":      "Why NASAYIM CLEAN",
		"home.cta.ready":      "Ready to Get Started?",
		"home.cta.quote":      "Get Free Quote",
		"home.cta.whatsapp":   "WhatsApp Us",
		"services.title":      "Our Services",
		"about.title":         "About NASAYIM CLEAN",
		"about.story":         "Our Story",
		"contact.title":       "Contact Us",
		"contact.info":        "Contact Information",
		"contact.message":     "Send us a Message",
		"login.title":         "Staff Login",
		"cart.title":          "Your Cart",
		"cart.empty":          "Your cart is empty",
		"cart.subtotal":       "Subtotal",
		"cart.discount":       "Discount",
		"cart.tax":            "VAT (5%)",
		"cart.total":          "Total",
		"cart.checkout":       "Proceed to Checkout",
		"chat.title":          "Customer Support",
		"chat.start":          "Start a Conversation",
		"chat.placeholder":    "Type your message...",
		"footer.copyright":    "© 2026 NASAYIM CLEAN. All rights reserved.",
	},
	LanguageArabic: {
		"nav.services":        "الخدمات",
		"nav.about":           "عن الشركة",
		"nav.contact":         "اتصل بنا",
		"nav.login":           "دخول الموظفين",
		"home.hero.title":     "شريكك الموثوق لـ",
		"home.hero.subtitle":  "التنظيف ومكافحة الآفات",
		"home.cta.book":       "احجز الخدمة الآن",
		"home.cta.services":   "عرض الخدمات",
		"home.services.title": "خدماتنا",
		"home.why.title":      "لماذا نسائم كلين",
		"home.cta.ready":      "هل أنت مستعد للبدء؟",
		"home.cta.quote":      "احصل على عرض سعر مجاني",
		"home.cta.whatsapp":   "تواصل عبر واتس آب",
		"services.title":      "خدماتنا",
		"about.title":         "عن نسائم كلين",
		"about.story":         "قصتنا",
		"contact.title":       "اتصل بنا",
		"contact.info":        "معلومات الاتصال",
		"contact.message":     "أرسل لنا رسالة",
		"login.title":         "دخول الموظفين",
		"cart.title":          "سلة التسوق",
		"cart.empty":          "سلة التسوق فارغة",
		"cart.subtotal":       "المجموع الفرعي",
		"cart.discount":       "الخصم",
		"cart.tax":            "ضريبة القيمة المضافة (5٪)",
		"cart.total":          "الإجمالي",
		"cart.checkout":       "إتمام الطلب",
		"chat.title":          "دعم العملاء",
		"chat.start":          "ابدأ محادثة",
		"chat.placeholder":    "اكتب رسالتك...",
		"footer.copyright":    "© 2026 نسائم كلين. جميع الحقوق محفوظة.",
	},
}

// Bundle resolves translation keys for a single locale
type Bundle struct {
	language Language
}

// NewBundle creates a bundle for the given language, falling back to English
// when the language is not supported
func NewBundle(language Language) *Bundle {
	if !language.IsValid() {
		language = LanguageEnglish
	}
	return &Bundle{language: language}
}

// Language returns the bundle's locale
func (b *Bundle) Language() Language {
	return b.language
}

// T returns the translation for key, or the key itself when missing
func (b *Bundle) T(key string) string {
	if text, ok := translations[b.language][key]; ok {
		return text
	}
	return key
}

// IsRTL reports whether the locale renders right-to-left
func (b *Bundle) IsRTL() bool {
	return b.language == LanguageArabic
}
