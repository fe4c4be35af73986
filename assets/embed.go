// Package assets embeds the viewer page and icon.
package assets

import _ "embed"

// Index is the single-file viewer page built by cmd/minify.
//
//go:embed index.html
var Index []byte

// Favicon is the site icon.
//
//go:embed favicon.svg
var Favicon []byte
