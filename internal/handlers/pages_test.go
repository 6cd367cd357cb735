package handlers

import (
    "testing"

    "github.com/stretchr/testify/require"

    "hcdigital.dev/web/internal/config"
    "hcdigital.dev/web/internal/contact"
    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/i18n"
    "hcdigital.dev/web/internal/shell"
)

func loadDict(t *testing.T) *content.Dictionary {
    t.Helper()
    dict, err := content.LoadEmbedded()
    require.NoError(t, err)
    return dict
}

func TestBuildPageDataArabic(t *testing.T) {
    dict := loadDict(t)
    st := shell.Navigate(shell.Initial(i18n.AR), shell.Services)
    d := BuildPageData(PageInput{State: st, Content: dict.For(i18n.AR), CSRFToken: "tok"})
    require.Equal(t, i18n.AR, d.Lang)
    require.Equal(t, "rtl", d.Dir)
    require.Equal(t, "font-ar", d.FontClass)
    require.True(t, d.Is("services"))
    require.False(t, d.Is("home"))
    require.Equal(t, "EN", d.Switch.Label)
    require.Equal(t, i18n.EN, d.Switch.Target)
    require.Equal(t, "tok", d.CSRFToken)
    require.Len(t, d.Content.Services.Cards, 3)
    require.Empty(t, d.Form.SubmitLabel, "form view only on the contact page")
}

func TestBuildPageDataSanitisesState(t *testing.T) {
    dict := loadDict(t)
    d := BuildPageData(PageInput{State: shell.State{Locale: "fr", Page: "blog"}, Content: dict.For(i18n.EN)})
    require.Equal(t, i18n.EN, d.Lang)
    require.Equal(t, "ltr", d.Dir)
    require.True(t, d.Is("home"))
}

func TestBuildFormViewStatuses(t *testing.T) {
    dict := loadDict(t)
    labels := dict.For(i18n.EN).Contact.Form
    fields := contact.Fields{Name: "A", Email: "a@b.co", Message: "m"}

    idle := BuildFormView(labels, contact.View{MountID: "m1"})
    require.Equal(t, contact.StatusIdle, idle.Status)
    require.Equal(t, "Send Message", idle.SubmitLabel)
    require.False(t, idle.Disabled)
    require.Empty(t, idle.ErrorText)

    sending := BuildFormView(labels, contact.View{Status: contact.StatusSubmitting, Fields: fields})
    require.Equal(t, "Sending...", sending.SubmitLabel)
    require.True(t, sending.Disabled)

    ok := BuildFormView(labels, contact.View{Status: contact.StatusSuccess})
    require.Equal(t, "Message sent successfully!", ok.SubmitLabel)
    require.True(t, ok.Disabled)
    require.Empty(t, ok.Name)
    require.Empty(t, ok.ErrorText)

    failed := BuildFormView(labels, contact.View{Status: contact.StatusError, Fields: fields})
    require.Equal(t, "Send Message", failed.SubmitLabel)
    require.Equal(t, "Something went wrong. Please try again.", failed.ErrorText)
    require.False(t, failed.Disabled)
    require.Equal(t, "A", failed.Name)
}

func TestBuildFormViewFieldErrorsLocalized(t *testing.T) {
    dict := loadDict(t)
    labels := dict.For(i18n.AR).Contact.Form
    fv := BuildFormView(labels, contact.View{Errors: contact.FieldErrors{
        contact.FieldName:  contact.ErrFieldRequired,
        contact.FieldEmail: contact.ErrFieldInvalidEmail,
    }})
    require.True(t, fv.HasError(contact.FieldName))
    require.False(t, fv.HasError(contact.FieldMessage))
    require.Equal(t, labels.Required, fv.FieldError(contact.FieldName))
    require.Equal(t, labels.InvalidEmail, fv.FieldError(contact.FieldEmail))
}

func TestAnalyticsFromConfig(t *testing.T) {
    require.False(t, AnalyticsFromConfig(config.AnalyticsConfig{}).Enabled())
    require.True(t, AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-1"}).Enabled())
}
