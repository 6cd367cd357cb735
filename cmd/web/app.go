package main

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hcdigital.dev/web/internal/config"
	"hcdigital.dev/web/internal/contact"
	"hcdigital.dev/web/internal/content"
	mw "hcdigital.dev/web/internal/middleware"
	"hcdigital.dev/web/public"
	"hcdigital.dev/web/templates"
)

// app holds the long-lived dependencies shared by every handler.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	dict   *content.Dictionary
	flow   *contact.Flow
	views  *renderer
	assets fs.FS
}

// newApp wires the dictionary, the form registry and the renderer. sender is
// the outbound endpoint client; tests substitute one pointed at httptest.
func newApp(cfg config.Config, logger *zap.Logger, sender contact.Sender) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dict, err := content.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	forms, err := contact.NewRegistry(cfg.Form.MountTTL)
	if err != nil {
		return nil, err
	}
	tfs := templates.FS()
	if cfg.Dev {
		tfs = os.DirFS(cfg.TemplatesDir)
	}
	views, err := newRenderer(tfs, cfg.Dev)
	if err != nil {
		_ = forms.Close()
		return nil, err
	}
	assets, err := public.AssetsFS()
	if err != nil {
		_ = forms.Close()
		return nil, err
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		dict:   dict,
		flow:   contact.NewFlow(forms, sender),
		views:  views,
		assets: assets,
	}, nil
}

// Close releases the form registry.
func (a *app) Close() error {
	return a.flow.Forms().Close()
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(a.logger))
	r.Use(mw.Recoverer)
	r.Use(chimw.Compress(5))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	// Static assets under /assets/
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(a.assets)))

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(mw.Session(mw.SessionOptions{SigningKey: a.cfg.SigningKey, Secure: a.cfg.Prod(), Logger: a.logger}))
		r.Use(mw.Locale)
		r.Use(mw.CSRF)
		r.Use(mw.VaryLocale)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(30 * time.Second))
			r.Get("/", a.homeHandler)
			r.Post("/navigate", a.navigateHandler)
			r.Post("/locale", a.localeHandler)
			r.Post("/menu", a.menuHandler)
		})
		// The contact POST is bounded by the request context only.
		r.Post("/contact", a.contactHandler)
	})
	return r
}

func isStale(err error) bool {
	return errors.Is(err, contact.ErrUnmounted)
}
