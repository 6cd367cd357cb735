package seo

import (
    "encoding/json"
    "testing"

    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/i18n"
)

func TestBuildAlternatesAndCanonical(t *testing.T) {
    dict := loadDict(t)
    m := Build("https://hcdigital.dev/", i18n.AR, dict.For(i18n.AR))
    if m.Canonical != "https://hcdigital.dev/" {
        t.Fatalf("unexpected canonical %q", m.Canonical)
    }
    if m.Title != dict.For(i18n.AR).Meta.Title {
        t.Fatalf("expected arabic title, got %q", m.Title)
    }
    if m.OG.Locale != "ar_DZ" {
        t.Fatalf("unexpected og locale %q", m.OG.Locale)
    }
    want := map[string]string{
        "en":        "https://hcdigital.dev/?hl=en",
        "ar":        "https://hcdigital.dev/?hl=ar",
        "x-default": "https://hcdigital.dev/?hl=en",
    }
    if len(m.Alternates) != len(want) {
        t.Fatalf("expected %d alternates, got %d", len(want), len(m.Alternates))
    }
    for _, a := range m.Alternates {
        if want[a.Hreflang] != a.Href {
            t.Fatalf("alternate %s: got %q", a.Hreflang, a.Href)
        }
    }
}

func TestOrganizationContactPoint(t *testing.T) {
    dict := loadDict(t)
    m := Build("https://hcdigital.dev", i18n.EN, dict.For(i18n.EN))
    if len(m.JSONLD) != 1 {
        t.Fatalf("expected one json-ld block, got %d", len(m.JSONLD))
    }
    var org struct {
        Type         string   `json:"@type"`
        Name         string   `json:"name"`
        SameAs       []string `json:"sameAs"`
        ContactPoint struct {
            Email     string `json:"email"`
            Telephone string `json:"telephone"`
        } `json:"contactPoint"`
    }
    if err := json.Unmarshal([]byte(m.JSONLD[0]), &org); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }
    if org.Type != "Organization" || org.Name != SiteName {
        t.Fatalf("unexpected org %+v", org)
    }
    if org.ContactPoint.Telephone != "+213778855566" || org.ContactPoint.Email != "cheikhhicham007@gmail.com" {
        t.Fatalf("unexpected contact point %+v", org.ContactPoint)
    }
    if len(org.SameAs) != 2 {
        t.Fatalf("expected 2 social profiles, got %v", org.SameAs)
    }
}

func TestBuildWithoutSiteURL(t *testing.T) {
    m := Build("", i18n.EN, loadDict(t).For(i18n.EN))
    if m.Canonical != "" {
        t.Fatalf("expected no canonical, got %q", m.Canonical)
    }
    if m.Alternates[0].Href != "/?hl=en" {
        t.Fatalf("expected relative alternate, got %q", m.Alternates[0].Href)
    }
}

func loadDict(t *testing.T) *content.Dictionary {
    t.Helper()
    dict, err := content.LoadEmbedded()
    if err != nil {
        t.Fatalf("load dictionary: %v", err)
    }
    return dict
}
