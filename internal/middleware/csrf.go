package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

// CSRFField is the hidden form field carrying the token for plain form posts.
const CSRFField = "csrf_token"

// CSRFHeader carries the token on htmx requests.
const CSRFHeader = "X-CSRF-Token"

// CSRF verifies that modifying requests carry the session's token, either in
// the X-CSRF-Token header or in the csrf_token form field.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.CSRFToken == "" {
			s.CSRFToken = newCSRFToken()
			s.MarkDirty()
		}
		if !isSafeMethod(r.Method) {
			got := r.Header.Get(CSRFHeader)
			if got == "" {
				got = r.PostFormValue(CSRFField)
			}
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(s.CSRFToken)) != 1 {
				// the page holds a token of a lost session; reload it with a fresh one
				if IsHTMX(r.Context()) {
					Refresh(w)
				}
				WriteError(w, r, http.StatusForbidden, "invalid CSRF token")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CSRFToken returns the token to embed in forms and htmx headers.
func CSRFToken(r *http.Request) string { return GetSession(r).CSRFToken }

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
