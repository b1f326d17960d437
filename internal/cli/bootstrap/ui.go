package bootstrap

import (
	"strings"

	"golang.org/x/text/language"
)

// UIOptions: настройки представления: тема, локаль форм, язык таблиц.
type UIOptions struct {
	Theme           string
	Locale          string
	Tag             language.Tag
	FormPlugins     []string
	GridLanguageURL string
}

var supportedTags = []language.Tag{language.BrazilianPortuguese, language.English}

var matcher = language.NewMatcher(supportedTags)

var gridLabels = map[string]map[string]string{
	"pt-BR": {
		"id":         "ID",
		"login":      "Login",
		"role":       "Perfil",
		"created_at": "Criado em",
		"empty":      "Nenhum registro encontrado",
		"total":      "Total",
	},
	"en": {
		"id":         "ID",
		"login":      "Login",
		"role":       "Role",
		"created_at": "Created",
		"empty":      "No data available",
		"total":      "Total",
	},
}

// ParseLocale принимает и pt_BR, и pt-BR. Неизвестная локаль: pt-BR.
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return language.BrazilianPortuguese
	}
	return tag
}

// NewUIOptions builds options; labels for unsupported locales fall back to English.
func NewUIOptions(theme, locale, gridLanguageURL string) UIOptions {
	return UIOptions{
		Theme:           theme,
		Locale:          locale,
		Tag:             ParseLocale(locale),
		FormPlugins:     []string{"mask"},
		GridLanguageURL: gridLanguageURL,
	}
}

// Label returns a grid label for the configured locale.
func (o UIOptions) Label(key string) string {
	_, idx, conf := matcher.Match(o.Tag)
	tag := language.English
	if conf != language.No {
		tag = supportedTags[idx]
	}
	if v, ok := gridLabels[tag.String()][key]; ok {
		return v
	}
	if v, ok := gridLabels["en"][key]; ok {
		return v
	}
	return key
}
