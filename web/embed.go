// Package web contiene las plantillas y los scripts de cliente embebidos en
// el binario.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var Static embed.FS
