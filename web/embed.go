// Package web embeds the site templates and static assets so the server
// ships as a single binary.
package web

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS
