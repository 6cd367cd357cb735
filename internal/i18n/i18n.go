package i18n

import (
    "strings"

    "golang.org/x/text/language"
)

// Locale is one of the two display languages the site ships.
type Locale string

const (
    EN Locale = "en"
    AR Locale = "ar"
)

// Default is the locale used when nothing else is known about the visitor.
const Default = EN

// Text directions surfaced on the root element.
const (
    DirLTR = "ltr"
    DirRTL = "rtl"
)

var supported = []Locale{EN, AR}

// matcher order must follow supported so Match indexes line up.
var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Supported returns the closed set of locales in display order.
func Supported() []Locale {
    out := make([]Locale, len(supported))
    copy(out, supported)
    return out
}

// Valid reports whether l is a member of the closed set.
func (l Locale) Valid() bool {
    return l == EN || l == AR
}

// Toggle flips between the two locales. Unknown values toggle from the default.
func (l Locale) Toggle() Locale {
    if l == AR {
        return EN
    }
    return AR
}

// Dir returns the text direction for the locale.
func (l Locale) Dir() string {
    if l == AR {
        return DirRTL
    }
    return DirLTR
}

func (l Locale) String() string { return string(l) }

// Parse maps a language tag such as "ar-DZ" or "EN" onto a supported locale.
func Parse(s string) (Locale, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return "", false
    }
    tag, err := language.Parse(s)
    if err != nil {
        return "", false
    }
    base, _ := tag.Base()
    switch base.String() {
    case "en":
        return EN, true
    case "ar":
        return AR, true
    }
    return "", false
}

// Resolve chooses the best locale from an Accept-Language header, honoring q-values.
func Resolve(acceptLang string) Locale {
    acceptLang = strings.TrimSpace(acceptLang)
    if acceptLang == "" {
        return Default
    }
    tags, _, err := language.ParseAcceptLanguage(acceptLang)
    if err != nil || len(tags) == 0 {
        return Default
    }
    _, idx, conf := matcher.Match(tags...)
    if conf == language.No || idx < 0 || idx >= len(supported) {
        return Default
    }
    return supported[idx]
}
