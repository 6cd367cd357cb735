package seo

import (
    "net/url"
    "strings"

    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/i18n"
)

type OpenGraph struct {
    Title       string
    Description string
    Image       string
    Type        string
    URL         string
    SiteName    string
    Locale      string
}

type Twitter struct {
    Card  string
    Site  string
    Image string
}

// Alternate is one hreflang link.
type Alternate struct {
    Href     string
    Hreflang string
}

type Meta struct {
    Title       string
    Description string
    Canonical   string
    Robots      string
    OG          OpenGraph
    Twitter     Twitter
    Alternates  []Alternate
    JSONLD      []string
}

// Build assembles page metadata for one locale. siteURL is the public origin
// ("https://hcdigital.dev"); an empty value disables absolute URLs.
func Build(siteURL string, l i18n.Locale, pc content.PageContent) Meta {
    base := strings.TrimRight(strings.TrimSpace(siteURL), "/")
    m := Meta{
        Title:       pc.Meta.Title,
        Description: pc.Meta.Description,
        Robots:      "index,follow",
        OG: OpenGraph{
            Title:       pc.Meta.Title,
            Description: pc.Meta.Description,
            Type:        "website",
            SiteName:    SiteName,
            Locale:      ogLocale(l),
        },
        Twitter: Twitter{Card: "summary"},
    }
    if base != "" {
        m.Canonical = base + "/"
        m.OG.URL = m.Canonical
    }
    for _, alt := range i18n.Supported() {
        m.Alternates = append(m.Alternates, Alternate{Href: localeURL(base, alt), Hreflang: alt.String()})
    }
    m.Alternates = append(m.Alternates, Alternate{Href: localeURL(base, i18n.Default), Hreflang: "x-default"})
    m.JSONLD = append(m.JSONLD, JSON(Organization(base, pc)))
    return m
}

// SiteName is the brand name; it is never translated.
const SiteName = "HC Digital"

func localeURL(base string, l i18n.Locale) string {
    return base + "/?" + url.Values{"hl": {l.String()}}.Encode()
}

func ogLocale(l i18n.Locale) string {
    if l == i18n.AR {
        return "ar_DZ"
    }
    return "en_US"
}
