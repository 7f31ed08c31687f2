// Package views holds the embedded admin page templates.
package views

import "embed"

//go:embed *.html
var FS embed.FS
