// Package format holds the small rendering helpers templates call into.
package format

import (
    "bytes"
    "html/template"
    "strings"
    "sync"

    "github.com/microcosm-cc/bluemonday"
    "github.com/yuin/goldmark"
)

var (
    md     = goldmark.New()
    policy = newCopyPolicy()
    cache  sync.Map // source -> template.HTML
)

// newCopyPolicy allows the inline markup dictionary copy may use.
func newCopyPolicy() *bluemonday.Policy {
    p := bluemonday.UGCPolicy()
    p.AllowAttrs("class").OnElements("p", "span")
    p.RequireNoFollowOnLinks(true)
    p.AddTargetBlankToFullyQualifiedLinks(true)
    return p
}

// Markdown renders dictionary copy as sanitized block HTML.
func Markdown(src string) template.HTML {
    if strings.TrimSpace(src) == "" {
        return ""
    }
    if v, ok := cache.Load(src); ok {
        return v.(template.HTML)
    }
    var buf bytes.Buffer
    if err := md.Convert([]byte(src), &buf); err != nil {
        return template.HTML(template.HTMLEscapeString(src))
    }
    out := template.HTML(strings.TrimSpace(policy.Sanitize(buf.String())))
    cache.Store(src, out)
    return out
}

// Inline renders a single paragraph of copy without the wrapping <p>, for use
// inside elements that already are one.
func Inline(src string) template.HTML {
    out := string(Markdown(src))
    if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
        out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
    }
    return template.HTML(out)
}

// TelHref turns a display phone number into a tel: link target.
// Example: TelHref("+213 778 85 55 66") => "tel:+213778855566"
func TelHref(phone string) string {
    var b strings.Builder
    for i, r := range strings.TrimSpace(phone) {
        switch {
        case r >= '0' && r <= '9':
            b.WriteRune(r)
        case r == '+' && i == 0:
            b.WriteRune(r)
        }
    }
    if b.Len() == 0 {
        return ""
    }
    return "tel:" + b.String()
}

// MailtoHref returns a mailto: link target.
func MailtoHref(email string) string {
    email = strings.TrimSpace(email)
    if email == "" {
        return ""
    }
    return "mailto:" + email
}
