package locale

import (
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Supported languages; English is the fallback for missing messages
var Supported = []language.Tag{language.English, language.Arabic}

// Translator renders reply texts in one configured language
type Translator struct {
	localizer *i18n.Localizer
	lang      language.Tag
}

// NewBundle builds the message bundle with every catalog registered
func NewBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	register(bundle, language.English, english)
	register(bundle, language.Arabic, arabic)
	return bundle
}

func register(bundle *i18n.Bundle, tag language.Tag, catalog map[string]string) {
	messages := lo.MapToSlice(catalog, func(id, other string) *i18n.Message {
		return &i18n.Message{ID: id, Other: other}
	})
	if err := bundle.AddMessages(tag, messages...); err != nil {
		slog.Error("Failed to register messages", "language", tag.String(), "error", err)
	}
}

// New creates a translator for lang ("en", "ar", ...). Unknown languages
// fall back to English.
func New(lang string) *Translator {
	tag, err := language.Parse(lang)
	if err != nil {
		slog.Warn("Unknown language, falling back to English", "language", lang)
		tag = language.English
	}
	matcher := language.NewMatcher(Supported)
	_, idx, _ := matcher.Match(tag)

	return &Translator{
		localizer: i18n.NewLocalizer(NewBundle(), Supported[idx].String()),
		lang:      Supported[idx],
	}
}

// Language is the matched language
func (t *Translator) Language() language.Tag {
	return t.lang
}

// T renders the message id with optional template data. A missing id is
// logged and returned as is so a reply is never empty.
func (t *Translator) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	text, err := t.localizer.Localize(cfg)
	if err != nil {
		slog.Error("Failed to localize message", "id", id, "language", t.lang.String(), "error", err)
		return id
	}
	return text
}
