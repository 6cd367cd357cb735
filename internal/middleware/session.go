package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/shell"
)

const sessionCookieName = "HC_WEB_SESSION"

// SessionData is the per-visitor state carried in a signed cookie.
type SessionData struct {
	ID        string      `json:"id"`
	Shell     shell.State `json:"shell"`
	CSRFToken string      `json:"csrf,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool `json:"-"`
	fresh bool `json:"-"`
}

// SessionOptions configures cookie signing.
type SessionOptions struct {
	// SigningKey signs the cookie payload. When empty an ephemeral key is generated (dev only).
	SigningKey string
	// Secure marks the cookie Secure (prod).
	Secure bool
	Logger *zap.Logger
}

type sessionCodec struct {
	key    []byte
	secure bool
}

// Session loads or initializes a session and stores it in request context.
func Session(opts SessionOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	codec := &sessionCodec{key: []byte(opts.SigningKey), secure: opts.Secure}
	if opts.SigningKey == "" {
		codec.key = make([]byte, 32)
		if _, err := rand.Read(codec.key); err != nil {
			logger.Error("session: failed to generate signing key", zap.Error(err))
			codec.key = []byte("insecure-dev-key-please-set-HC_WEB_SESSION_SIGNING_KEY")
		}
		logger.Warn("session: using ephemeral signing key (dev). Set HC_WEB_SESSION_SIGNING_KEY for production.")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd, fromCookie := codec.read(r)
			if sd.ID == "" {
				sd.ID = randID()
				sd.CreatedAt = time.Now().UTC()
				sd.UpdatedAt = sd.CreatedAt
				sd.CSRFToken = newCSRFToken()
				sd.dirty = true
				sd.fresh = true
			}
			ctx := context.WithValue(r.Context(), ctxKeySession, sd)
			rw := NewResponseRecorder(w)
			// ensure cookie is set just before first write if needed
			rw.SetBeforeWrite(func(w http.ResponseWriter) {
				if sd.dirty || !fromCookie {
					codec.write(w, sd)
				}
			})
			next.ServeHTTP(rw, r.WithContext(ctx))
			// If nothing was written yet (e.g., HEAD), persist cookie now
			if !rw.Wrote() && (sd.dirty || !fromCookie) {
				codec.write(w, sd)
			}
		})
	}
}

// GetSession returns session data from context
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Fresh reports whether the session was created by this request.
func (s *SessionData) Fresh() bool { return s.fresh }

// SetShell replaces the shell state and marks the session dirty when it changed.
func (s *SessionData) SetShell(st shell.State) {
	if s.Shell == st {
		return
	}
	s.Shell = st
	s.MarkDirty()
}

// read parses and verifies the session cookie
func (c *sessionCodec) read(r *http.Request) (*SessionData, bool) {
	ck, err := r.Cookie(sessionCookieName)
	if err != nil || ck.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(ck.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, c.key)
	mac.Write(payloadB)
	if !hmac.Equal(sigB, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	sd.Shell = shell.Normalize(sd.Shell)
	return &sd, true
}

func (c *sessionCodec) write(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, c.key)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	// session cookie: the page-view session ends with the browser session
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	sd.dirty = false
}

// helpers
func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
