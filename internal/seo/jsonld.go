package seo

import (
    "encoding/json"

    "github.com/samber/lo"

    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/format"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
    b, err := json.Marshal(v)
    if err != nil {
        return ""
    }
    return string(b)
}

// Organization returns the Organization schema with the agency's contact point
// and social profiles.
func Organization(url string, pc content.PageContent) map[string]any {
    m := map[string]any{
        "@context":    "https://schema.org",
        "@type":       "Organization",
        "name":        SiteName,
        "description": pc.Meta.Description,
    }
    if url != "" {
        m["url"] = url + "/"
        m["logo"] = url + "/assets/logo.svg"
    }
    info := pc.Contact.Info
    point := map[string]any{
        "@type":             "ContactPoint",
        "contactType":       "customer service",
        "email":             info.Email,
        "availableLanguage": []string{"en", "ar"},
    }
    if tel := format.TelHref(info.Phone); tel != "" {
        point["telephone"] = tel[len("tel:"):]
    }
    m["contactPoint"] = point
    if info.Address != "" {
        m["address"] = map[string]any{"@type": "PostalAddress", "addressLocality": info.Address}
    }
    if len(pc.Contact.Social) > 0 {
        m["sameAs"] = lo.Map(pc.Contact.Social, func(s content.SocialLink, _ int) string { return s.URL })
    }
    return m
}
