package template

import (
	"strings"

	"github.com/nasayimclean/webapi/internal/i18n"
)

// Channel is a delivery channel for customer notifications
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// TemplateType categorizes notification templates
type TemplateType string

const (
	TypeAppointmentReminder TemplateType = "appointment_reminder"
	TypeStatusUpdate        TemplateType = "status_update"
	TypeConfirmation        TemplateType = "confirmation"
	TypeCompletion          TemplateType = "completion"
	TypeFeedback            TemplateType = "feedback"
)

// Timing holds minute offsets relative to the appointment or event
type Timing struct {
	Before int
	After  int
}

// NotificationTemplate is a static catalog entry with per-locale text
type NotificationTemplate struct {
	ID        string
	Name      string
	Type      TemplateType
	Channels  []Channel
	Text      map[i18n.Language]string
	Variables []string
	Timing    *Timing
}

// HasChannel reports whether the template may be sent on the given channel
func (t *NotificationTemplate) HasChannel(channel Channel) bool {
	for _, c := range t.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

var catalog = []*NotificationTemplate{
	{
		ID:       "appointment_reminder_24h",
		Name:     "Appointment Reminder - 24 Hours",
		Type:     TypeAppointmentReminder,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Hi {{customerName}}, reminder: Your {{serviceName}} appointment is scheduled for {{appointmentDate}} at {{appointmentTime}}. Reply CONFIRM to confirm or CANCEL to cancel.",
			i18n.LanguageArabic:  "مرحباً {{customerName}}، تذكير: موعدك لخدمة {{serviceName}} مجدول في {{appointmentDate}} الساعة {{appointmentTime}}. رد CONFIRM للتأكيد أو CANCEL للإلغاء.",
		},
		Variables: []string{"customerName", "serviceName", "appointmentDate", "appointmentTime"},
		Timing:    &Timing{Before: 1440},
	},
	{
		ID:       "appointment_reminder_1h",
		Name:     "Appointment Reminder - 1 Hour",
		Type:     TypeAppointmentReminder,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Hi {{customerName}}, your {{serviceName}} appointment is in 1 hour ({{appointmentTime}}). Our technician {{technicianName}} is on the way.",
			i18n.LanguageArabic:  "مرحباً {{customerName}}، موعدك لخدمة {{serviceName}} بعد ساعة واحدة ({{appointmentTime}}). فنينا {{technicianName}} في الطريق.",
		},
		Variables: []string{"customerName", "serviceName", "appointmentTime", "technicianName"},
		Timing:    &Timing{Before: 60},
	},
	{
		ID:       "order_confirmation",
		Name:     "Order Confirmation",
		Type:     TypeConfirmation,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp, ChannelEmail},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Thank you {{customerName}}! Your order #{{orderId}} has been confirmed. Services: {{services}}. Total: {{total}} SAR. Technician will arrive on {{appointmentDate}}.",
			i18n.LanguageArabic:  "شكراً {{customerName}}! تم تأكيد طلبك #{{orderId}}. الخدمات: {{services}}. الإجمالي: {{total}} ريال. سيصل الفني في {{appointmentDate}}.",
		},
		Variables: []string{"customerName", "orderId", "services", "total", "appointmentDate"},
	},
	{
		ID:       "technician_on_way",
		Name:     "Technician On The Way",
		Type:     TypeStatusUpdate,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Hi {{customerName}}, {{technicianName}} is on the way to your location. ETA: {{eta}} minutes. Track live: {{trackingLink}}",
			i18n.LanguageArabic:  "مرحباً {{customerName}}، {{technicianName}} في الطريق إلى موقعك. الوصول المتوقع: {{eta}} دقيقة. تتبع مباشر: {{trackingLink}}",
		},
		Variables: []string{"customerName", "technicianName", "eta", "trackingLink"},
	},
	{
		ID:       "service_completed",
		Name:     "Service Completed",
		Type:     TypeCompletion,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp, ChannelEmail},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Great! {{serviceName}} has been completed by {{technicianName}}. Amount paid: {{amount}} SAR. Please rate your experience: {{ratingLink}}",
			i18n.LanguageArabic:  "ممتاز! تم إكمال {{serviceName}} بواسطة {{technicianName}}. المبلغ المدفوع: {{amount}} ريال. يرجى تقييم تجربتك: {{ratingLink}}",
		},
		Variables: []string{"serviceName", "technicianName", "amount", "ratingLink"},
	},
	{
		ID:       "feedback_request",
		Name:     "Feedback Request",
		Type:     TypeFeedback,
		Channels: []Channel{ChannelSMS, ChannelWhatsApp},
		Text: map[i18n.Language]string{
			i18n.LanguageEnglish: "Hi {{customerName}}, how was your experience with NASAYIM CLEAN? Share your feedback: {{feedbackLink}}. Thank you!",
			i18n.LanguageArabic:  "مرحباً {{customerName}}، كيف كانت تجربتك مع نسائم كلين؟ شارك ملاحظاتك: {{feedbackLink}}. شكراً!",
		},
		Variables: []string{"customerName", "feedbackLink"},
	},
}

// GetTemplate returns the catalog entry for id, or nil if unknown
func GetTemplate(id string) *NotificationTemplate {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Templates returns the full read-only catalog
func Templates() []*NotificationTemplate {
	return catalog
}

// Interpolate replaces every {{key}} occurrence in text with the matching
// value. Keys absent from vars are left as literal {{key}} text.
func Interpolate(text string, vars map[string]string) string {
	result := text
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
