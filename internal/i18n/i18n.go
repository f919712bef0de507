// Package i18n holds the handful of user-facing strings the dashboard emits
// itself. Everything else is either server-provided or template markup.
package i18n

// Locale codes match the upstream Accept-Language values.
const (
	LocaleEN = "en"
	LocaleRU = "ru"
	LocaleRO = "ro"
)

// DefaultLocale is used when no preference has been persisted.
const DefaultLocale = LocaleRU

// Message keys.
const (
	KeyUnknownError = "unknown_error"
	KeyLoginFailed  = "login_failed"
	KeyNotFound     = "not_found"
)

var messages = map[string]map[string]string{
	LocaleEN: {
		KeyUnknownError: "Unknown error",
		KeyLoginFailed:  "Login failed",
		KeyNotFound:     "Page not found",
	},
	LocaleRU: {
		KeyUnknownError: "Неизвестная ошибка",
		KeyLoginFailed:  "Не удалось войти",
		KeyNotFound:     "Страница не найдена",
	},
	LocaleRO: {
		KeyUnknownError: "Eroare necunoscută",
		KeyLoginFailed:  "Autentificare eșuată",
		KeyNotFound:     "Pagina nu a fost găsită",
	},
}

// T returns the message for key in locale, falling back to English.
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[LocaleEN][key]
}

// Known reports whether locale is a supported locale code.
func Known(locale string) bool {
	_, ok := messages[locale]
	return ok
}
