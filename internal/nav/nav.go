package nav

import (
    "github.com/samber/lo"

    "hcdigital.dev/web/internal/content"
    "hcdigital.dev/web/internal/shell"
)

// Item represents a top-level navigation entry.
type Item struct {
    Page  shell.Page
    Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
    Page   shell.Page
    Label  string
    Active bool
}

// Main returns the primary navigation in display order, labelled for one locale.
func Main(labels content.NavContent) []Item {
    return lo.Map(shell.Pages, func(p shell.Page, _ int) Item {
        return Item{Page: p, Label: Label(labels, p)}
    })
}

// Build renders navigation items with active state given the current page.
func Build(labels content.NavContent, current shell.Page) []RenderedItem {
    return lo.Map(Main(labels), func(it Item, _ int) RenderedItem {
        return RenderedItem{
            Page:   it.Page,
            Label:  it.Label,
            Active: it.Page == current,
        }
    })
}

// Label returns the dictionary label of a page.
func Label(labels content.NavContent, p shell.Page) string {
    switch p {
    case shell.Services:
        return labels.Services
    case shell.Contact:
        return labels.Contact
    default:
        return labels.Home
    }
}
