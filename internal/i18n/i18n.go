package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":               "Invalid request",
			"error.invalid_request_body":          "Invalid request body",
			"error.internal_error":                "An unexpected error occurred",
			"error.unauthorized":                  "Unauthorized",
			"error.api_key_required":              "API key is required",
			"error.invalid_api_key":               "Invalid API key",
			"error.forbidden":                     "Forbidden",
			"error.not_found":                     "Not found",
			"error.rate_limit_exceeded":           "Too many requests, please try again later",
			"error.conflict":                      "Conflict",
			"error.invalid_token":                 "Invalid or expired token",
			"error.token_required":                "Authentication token is required",
			"error.timeout":                       "The request took too long to complete",
			"error.service_unavailable":           "Service temporarily unavailable",
			"error.validation.cart":               "The cart could not be priced",
			"error.customer_mismatch":             "The token does not belong to this customer",
			"error.customer_not_found":            "Customer not found",
			"error.cart_not_found":                "Cart not found",
			"error.items_unavailable":             "Some items are not available in the requested quantity",
			"error.payment_declined":              "Payment was declined",
			"error.stock_decrement":               "Stock could not be reserved; the payment authorization was cancelled",
			"error.stock_decrement_uncompensated": "Stock could not be reserved; the payment authorization is pending cancellation",

			"success.checkout_completed": "Checkout completed successfully",
		},
		"pt": {
			"error.invalid_request":               "Requisição inválida",
			"error.invalid_request_body":          "Corpo da requisição inválido",
			"error.internal_error":                "Ocorreu um erro inesperado",
			"error.unauthorized":                  "Não autorizado",
			"error.api_key_required":              "Chave de API é obrigatória",
			"error.invalid_api_key":               "Chave de API inválida",
			"error.forbidden":                     "Proibido",
			"error.not_found":                     "Não encontrado",
			"error.rate_limit_exceeded":           "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                      "Conflito",
			"error.invalid_token":                 "Token inválido ou expirado",
			"error.token_required":                "Token de autenticação é obrigatório",
			"error.timeout":                       "A requisição demorou demais para ser concluída",
			"error.service_unavailable":           "Serviço temporariamente indisponível",
			"error.validation.cart":               "Não foi possível calcular o preço do carrinho",
			"error.customer_mismatch":             "O token não pertence a este cliente",
			"error.customer_not_found":            "Cliente não encontrado",
			"error.cart_not_found":                "Carrinho não encontrado",
			"error.items_unavailable":             "Alguns itens não estão disponíveis na quantidade solicitada",
			"error.payment_declined":              "Pagamento recusado",
			"error.stock_decrement":               "Não foi possível reservar o estoque; a autorização de pagamento foi cancelada",
			"error.stock_decrement_uncompensated": "Não foi possível reservar o estoque; o cancelamento do pagamento está pendente",

			"success.checkout_completed": "Compra finalizada com sucesso",
		},
		"nl": {
			"error.invalid_request":               "Ongeldig verzoek",
			"error.invalid_request_body":          "Ongeldige aanvraag body",
			"error.internal_error":                "Er is een onverwachte fout opgetreden",
			"error.unauthorized":                  "Niet geautoriseerd",
			"error.api_key_required":              "API-sleutel is vereist",
			"error.invalid_api_key":               "Ongeldige API-sleutel",
			"error.forbidden":                     "Verboden",
			"error.not_found":                     "Niet gevonden",
			"error.rate_limit_exceeded":           "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                      "Conflict",
			"error.invalid_token":                 "Ongeldig of verlopen token",
			"error.token_required":                "Authenticatietoken is vereist",
			"error.timeout":                       "Het verzoek duurde te lang",
			"error.service_unavailable":           "Dienst tijdelijk niet beschikbaar",
			"error.validation.cart":               "De winkelwagen kon niet worden geprijsd",
			"error.customer_mismatch":             "Het token hoort niet bij deze klant",
			"error.customer_not_found":            "Klant niet gevonden",
			"error.cart_not_found":                "Winkelwagen niet gevonden",
			"error.items_unavailable":             "Sommige artikelen zijn niet in de gevraagde hoeveelheid beschikbaar",
			"error.payment_declined":              "Betaling geweigerd",
			"error.stock_decrement":               "Voorraad kon niet worden gereserveerd; de betalingsautorisatie is geannuleerd",
			"error.stock_decrement_uncompensated": "Voorraad kon niet worden gereserveerd; annulering van de betaling is in behandeling",

			"success.checkout_completed": "Afrekenen succesvol voltooid",
		},
	}
}
