// Package i18n renders user-facing import messages.
//
// Templates use named placeholders in braces ("{label}"). A [Catalog] maps
// a source template to its translation for one locale; a template missing
// from the catalog is rendered untranslated.
package i18n

import (
	"sort"
	"strings"
)

// Message templates produced by the import engine.
const (
	MsgTagError      = `"{error}" in tag "{label}".`
	MsgFolderError   = `"{error}" in folder "{label}".`
	MsgPasswordError = `"{error}" in password "{label}".`
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Translator renders a message template with the given variables.
type Translator interface {
	Translate(template string, vars map[string]string) string

	// Locale returns the locale whose catalog is in use and whether it
	// replaced a configured locale that has no catalog.
	Locale() (locale string, fallback bool)
}

// Catalog maps source templates to translated templates.
type Catalog map[string]string

var catalogs = map[string]Catalog{
	"en": {},
	"de": {
		MsgTagError:      `"{error}" im Tag "{label}".`,
		MsgFolderError:   `"{error}" im Ordner "{label}".`,
		MsgPasswordError: `"{error}" im Passwort "{label}".`,
	},
	"fr": {
		MsgTagError:      `"{error}" dans l'étiquette "{label}".`,
		MsgFolderError:   `"{error}" dans le dossier "{label}".`,
		MsgPasswordError: `"{error}" dans le mot de passe "{label}".`,
	},
}

type translator struct {
	locale   string
	fallback bool
	catalog  Catalog
}

// NewTranslator returns a Translator for locale. Region suffixes are
// ignored ("de_DE" and "de-AT" both use "de"); unknown locales fall back to
// the untranslated templates.
func NewTranslator(locale string) Translator {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "_-"); i != -1 {
		lang = lang[:i]
	}

	if lang == "" {
		lang = DefaultLocale
	}

	catalog, ok := catalogs[lang]
	if !ok {
		return &translator{locale: DefaultLocale, fallback: true, catalog: catalogs[DefaultLocale]}
	}
	return &translator{locale: lang, catalog: catalog}
}

// Locale implements [Translator].
func (t *translator) Locale() (string, bool) {
	return t.locale, t.fallback
}

// Translate implements [Translator].
func (t *translator) Translate(template string, vars map[string]string) string {
	if translated, ok := t.catalog[template]; ok {
		template = translated
	}
	return Render(template, vars)
}

// Render substitutes every "{name}" placeholder of template with vars[name].
// Placeholders without a value are left as is.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(vars)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// Locales lists the locales with a dedicated catalog.
func Locales() []string {
	out := make([]string, 0, len(catalogs))
	for l := range catalogs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
