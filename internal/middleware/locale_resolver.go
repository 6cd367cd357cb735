package middleware

import (
	"net/http"

	"hcdigital.dev/web/internal/i18n"
	"hcdigital.dev/web/internal/shell"
)

// Locale seeds the shell state for new sessions and applies the ?hl= override.
// Order: ?hl query, then Accept-Language, then en. Nothing outlives the session.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.Fresh() || !s.Shell.Locale.Valid() {
			s.SetShell(shell.Initial(i18n.Resolve(r.Header.Get("Accept-Language"))))
		}
		if q, ok := i18n.Parse(r.URL.Query().Get("hl")); ok {
			ctrl := shell.NewController(s.Shell, nil)
			ctrl.SetLocale(q)
			if ctrl.Changed() {
				s.SetShell(ctrl.State())
			}
		}
		w.Header().Set("Content-Language", Lang(r).String())
		next.ServeHTTP(w, r)
	})
}

// Lang returns the current locale from the session, or the default.
func Lang(r *http.Request) i18n.Locale {
	if s := GetSession(r); s.Shell.Locale.Valid() {
		return s.Shell.Locale
	}
	return i18n.Default
}
