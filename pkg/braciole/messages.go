package braciole

import (
	"embed"
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var messageBundle = newMessageBundle()

func newMessageBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return bundle
	}
	for _, file := range files {
		// Locale files are embedded; the inline defaults below cover a
		// file that fails to parse.
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+file.Name())
	}
	return bundle
}

// FailureMessage renders a navigation failure as a short, localized,
// user-presentable sentence for on-device error surfaces. langs are BCP 47
// tags in preference order; English is the fallback. Returns "" for a nil
// error.
//
// The engine itself never consults these strings. Error identity lives in
// the error values; this is presentation only.
func FailureMessage(err error, langs ...string) string {
	if err == nil {
		return ""
	}
	loc := i18n.NewLocalizer(messageBundle, langs...)

	var stackErr *MissingStackError
	switch {
	case errors.As(err, &stackErr):
		return localize(loc, "NavigationMissingStack",
			map[string]any{"Transition": stackErr.Transition.Kind.String()},
			"This screen needs a navigation stack for a {{.Transition}} transition.")
	case errors.Is(err, ErrNoTransitionDelegate):
		return localize(loc, "NavigationNoDelegate", nil,
			"This screen uses a transition this app does not provide.")
	case errors.Is(err, ErrNilContent):
		return localize(loc, "NavigationNoContent", nil,
			"This screen has nothing to show yet.")
	default:
		return localize(loc, "NavigationFailed",
			map[string]any{"Reason": err.Error()},
			"Couldn't open this screen: {{.Reason}}")
	}
}

func localize(loc *i18n.Localizer, id string, data map[string]any, fallback string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   data,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}
