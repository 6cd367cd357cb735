// Package templates embeds the html/template sources of the site.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.tmpl partials/*.tmpl
var files embed.FS

// FS returns the embedded template tree.
func FS() fs.FS { return files }
