// Package web embeds the admin pages and static assets.
package web

import "embed"

//go:embed templates static
var FS embed.FS
