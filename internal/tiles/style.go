package tiles

import "strings"

// Style is a map style identifier understood by the tile provider.
type Style string

// DefaultStyle is used when no valid preference exists.
const DefaultStyle Style = "outdoor"

// Styles lists every supported style in display order.
var Styles = []Style{
	"aquarelle", "backdrop", "basic", "bright", "dataviz", "landscape", "ocean",
	"openstreetmap", "outdoor", "satellite", "streets", "toner", "topo", "winter",
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the display name, e.g. "OpenStreetMap" or "Topo".
func (s Style) Label() string {
	if s == "openstreetmap" {
		return "OpenStreetMap"
	}
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
