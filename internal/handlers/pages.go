package handlers

import (
    "hcdigital.dev/web/internal/contact"
    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/i18n"
    "hcdigital.dev/web/internal/nav"
    "hcdigital.dev/web/internal/seo"
    "hcdigital.dev/web/internal/shell"
)

// PageData is the view model of the shell: navbar, one panel, footer.
type PageData struct {
    Lang      i18n.Locale
    Dir       string
    FontClass string
    SEO       seo.Meta
    Analytics Analytics
    CSRFToken string

    Page      shell.Page
    MenuOpen  bool
    Nav       []nav.RenderedItem
    // Switch is the label and target of the locale toggle: always the other locale.
    Switch LocaleSwitch

    Content content.PageContent
    Form    FormView
}

// LocaleSwitch describes the navbar language toggle.
type LocaleSwitch struct {
    Label  string
    Aria   string
    Target i18n.Locale
}

// FormView is the render state of the contact form.
type FormView struct {
    MountID     string
    Status      contact.Status
    Name        string
    Email       string
    Message     string
    Disabled    bool
    SubmitLabel string
    // ErrorText is set only in the error status.
    ErrorText   string
    FieldErrors map[string]string
}

// HasError reports whether field has an inline validation message.
func (f FormView) HasError(field string) bool { return f.FieldErrors[field] != "" }

// FieldError returns the localized message for field.
func (f FormView) FieldError(field string) string { return f.FieldErrors[field] }

// Is reports whether p is the active page. Templates use it to pick the single panel.
func (d PageData) Is(p string) bool { return d.Page.String() == p }

// PageInput is everything needed to build a PageData.
type PageInput struct {
    State     shell.State
    Content   content.PageContent
    Form      contact.View
    SEO       seo.Meta
    Analytics Analytics
    CSRFToken string
}

// BuildPageData constructs the view model for one render of the shell.
func BuildPageData(in PageInput) PageData {
    st := shell.Normalize(in.State)
    pc := in.Content
    d := PageData{
        Lang:      st.Locale,
        Dir:       st.Dir(),
        FontClass: "font-" + st.Locale.String(),
        SEO:       in.SEO,
        Analytics: in.Analytics,
        CSRFToken: in.CSRFToken,
        Page:      st.Page,
        MenuOpen:  st.MenuOpen,
        Nav:       nav.Build(pc.Nav, st.Page),
        Switch: LocaleSwitch{
            Label:  pc.Nav.SwitchLabel,
            Aria:   pc.Nav.SwitchAria,
            Target: st.Locale.Toggle(),
        },
        Content: pc,
    }
    if st.Page == shell.Contact {
        d.Form = BuildFormView(pc.Contact.Form, in.Form)
    }
    return d
}

// BuildFormView applies the contact form rendering rules to a mount view.
func BuildFormView(labels content.FormContent, v contact.View) FormView {
    status := v.Status
    if status == "" {
        status = contact.StatusIdle
    }
    fv := FormView{
        MountID:  v.MountID,
        Status:   status,
        Name:     v.Fields.Name,
        Email:    v.Fields.Email,
        Message:  v.Fields.Message,
        Disabled: v.Disabled(),
    }
    switch status {
    case contact.StatusSubmitting:
        fv.SubmitLabel = labels.Sending
    case contact.StatusSuccess:
        fv.SubmitLabel = labels.Success
    default:
        fv.SubmitLabel = labels.Submit
    }
    if status == contact.StatusError {
        fv.ErrorText = labels.Error
    }
    if len(v.Errors) > 0 {
        fv.FieldErrors = make(map[string]string, len(v.Errors))
        for field, fe := range v.Errors {
            switch fe {
            case contact.ErrFieldInvalidEmail:
                fv.FieldErrors[field] = labels.InvalidEmail
            default:
                fv.FieldErrors[field] = labels.Required
            }
        }
    }
    return fv
}
