// Package views embeds the built-in page shell used when the gallery root
// carries no template of its own.
package views

import _ "embed"

//go:embed index.pug
var Index string
