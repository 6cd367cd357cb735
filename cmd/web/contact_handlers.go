package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hcdigital.dev/web/internal/contact"
	mw "hcdigital.dev/web/internal/middleware"
	"hcdigital.dev/web/internal/observability"
	"hcdigital.dev/web/internal/shell"
)

// contactHandler submits the contact form of the session's current mount.
//
// A mount id that is not the one the session holds belongs to a form that is
// no longer on screen; it is rejected with 409 and nothing is sent.
func (a *app) contactHandler(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())
	ctrl := a.controller(r)
	st := ctrl.State()
	mountID := r.PostFormValue("mount")
	if st.Page != shell.Contact || mountID == "" || mountID != st.Mount {
		logger.Info("stale contact submission rejected", zap.String("mount_id", mountID))
		a.rejectStale(w, r, ctrl)
		return
	}

	in := contact.Fields{
		Name:    r.PostFormValue(contact.FieldName),
		Email:   r.PostFormValue(contact.FieldEmail),
		Message: r.PostFormValue(contact.FieldMessage),
	}
	view, err := a.flow.Submit(r.Context(), mountID, in)
	switch {
	case err == nil:
	case isStale(err):
		a.rejectStale(w, r, ctrl)
		return
	case errors.Is(err, contact.ErrBusy), errors.Is(err, contact.ErrClosed):
		// the submit control is disabled in these states; show the current one
		a.respond(w, r, ctrl)
		return
	default:
		logger.Error("contact submission failed", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	switch {
	case len(view.Errors) > 0:
		// errors live only in this response, so there is no redirect
		code := http.StatusUnprocessableEntity
		if mw.IsHTMX(r.Context()) {
			code = http.StatusOK
		}
		a.renderShell(w, r, ctrl, code, &view)
	case mw.IsHTMX(r.Context()):
		a.renderShell(w, r, ctrl, http.StatusOK, &view)
	default:
		save(r, ctrl)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// rejectStale answers 409 for a form that is no longer mounted. htmx clients
// get the live shell in place of the stale one.
func (a *app) rejectStale(w http.ResponseWriter, r *http.Request, ctrl *shell.Controller) {
	if !mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusConflict, "form is no longer active")
		return
	}
	mw.Retarget(w, "#shell")
	mw.Reswap(w, "outerHTML")
	a.renderShell(w, r, ctrl, http.StatusConflict, nil)
}
