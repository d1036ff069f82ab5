package views

import "embed"

// FS holds the page templates under templates/.
//
//go:embed templates
var FS embed.FS
