// Package templates embeds the web UI templates into the binary.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
