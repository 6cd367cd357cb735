package main

import (
	"net/http"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/contact"
	"hcdigital.dev/web/internal/handlers"
	mw "hcdigital.dev/web/internal/middleware"
	"hcdigital.dev/web/internal/observability"
	"hcdigital.dev/web/internal/seo"
	"hcdigital.dev/web/internal/shell"
)

// controller binds the session's shell state to the form registry for one request.
func (a *app) controller(r *http.Request) *shell.Controller {
	return shell.NewController(mw.GetSession(r).Shell, a.flow.Forms())
}

// homeHandler renders the full shell for the session state.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	a.renderShell(w, r, a.controller(r), http.StatusOK, nil)
}

// navigateHandler activates a page from a nav link, CTA or hero button and closes the menu.
func (a *app) navigateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := shell.ParsePage(r.PostFormValue("page"))
	if !ok {
		mw.WriteError(w, r, http.StatusBadRequest, "unknown page")
		return
	}
	ctrl := a.controller(r)
	ctrl.Select(p)
	a.respond(w, r, ctrl)
}

// localeHandler flips the display language. The root element's lang and dir
// change, so htmx clients reload the document instead of swapping a fragment.
func (a *app) localeHandler(w http.ResponseWriter, r *http.Request) {
	ctrl := a.controller(r)
	ctrl.ToggleLocale()
	save(r, ctrl)
	if mw.IsHTMX(r.Context()) {
		mw.Refresh(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	redirectHome(w, r, ctrl.State())
}

func (a *app) menuHandler(w http.ResponseWriter, r *http.Request) {
	ctrl := a.controller(r)
	ctrl.ToggleMenu()
	a.respond(w, r, ctrl)
}

// respond finishes a shell action: htmx gets the re-rendered shell, plain
// browsers are redirected back to / (post/redirect/get).
func (a *app) respond(w http.ResponseWriter, r *http.Request, ctrl *shell.Controller) {
	if mw.IsHTMX(r.Context()) {
		a.renderShell(w, r, ctrl, http.StatusOK, nil)
		return
	}
	save(r, ctrl)
	redirectHome(w, r, ctrl.State())
}

// save writes the controller's state back to the session when a transition changed it.
func save(r *http.Request, ctrl *shell.Controller) {
	if ctrl.Changed() {
		mw.GetSession(r).SetShell(ctrl.State())
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request, st shell.State) {
	target := "/"
	if st.ScrollTop {
		target = "/#top"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// renderShell mounts the contact form when needed, consumes the scroll effect,
// persists the state and renders either the document or the #shell fragment.
// form overrides the stored mount view, e.g. to show validation errors.
func (a *app) renderShell(w http.ResponseWriter, r *http.Request, ctrl *shell.Controller, code int, form *contact.View) {
	logger := observability.FromContext(r.Context())
	if _, err := ctrl.EnsureMount(); err != nil {
		logger.Error("contact form mount failed", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	scroll := ctrl.ConsumeScroll()
	save(r, ctrl)
	st := ctrl.State()

	var view contact.View
	switch {
	case form != nil:
		view = *form
	case st.Mount != "":
		v, err := a.flow.View(st.Mount)
		if err != nil {
			logger.Warn("contact form view unavailable", zap.String("mount_id", st.Mount), zap.Error(err))
		}
		view = v
		view.MountID = st.Mount
	}

	data := a.pageData(r, st, view)
	w.Header().Set("Content-Language", st.Locale.String())
	name := "base"
	if mw.IsHTMX(r.Context()) {
		name = "shell"
		if scroll {
			mw.Reswap(w, "outerHTML show:window:top")
		}
	}
	a.views.render(w, r, code, name, data)
}

func (a *app) pageData(r *http.Request, st shell.State, view contact.View) handlers.PageData {
	pc := a.dict.For(st.Locale)
	return handlers.BuildPageData(handlers.PageInput{
		State:     st,
		Content:   pc,
		Form:      view,
		SEO:       seo.Build(a.cfg.SiteURL, st.Locale, pc),
		Analytics: handlers.AnalyticsFromConfig(a.cfg.Analytics),
		CSRFToken: mw.CSRFToken(r),
	})
}
