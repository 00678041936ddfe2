package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// iconPaths holds the stroke paths of the line icons used across the portal,
// drawn on a 24x24 grid.
var iconPaths = map[string][]string{
	"building":     {"M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z", "M6 12H4a2 2 0 0 0-2 2v8h4", "M18 9h2a2 2 0 0 1 2 2v11h-4", "M10 6h4", "M10 10h4", "M10 14h4", "M10 18h4"},
	"mail":         {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2Z", "m22 6-10 7L2 6"},
	"lock":         {"M5 11h14a2 2 0 0 1 2 2v7a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a2 2 0 0 1 2-2Z", "M7 11V7a5 5 0 0 1 10 0v4"},
	"eye":          {"M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7Z", "M12 15a3 3 0 1 0 0-6 3 3 0 0 0 0 6Z"},
	"eye-off":      {"M9.88 9.88a3 3 0 1 0 4.24 4.24", "M10.73 5.08A10.43 10.43 0 0 1 12 5c7 0 10 7 10 7a13.16 13.16 0 0 1-1.67 2.68", "M6.61 6.61A13.53 13.53 0 0 0 2 12s3 7 10 7a9.74 9.74 0 0 0 5.39-1.61", "m2 2 20 20"},
	"file-text":    {"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8Z", "M14 2v6h6", "M16 13H8", "M16 17H8", "M10 9H8"},
	"calculator":   {"M6 2h12a2 2 0 0 1 2 2v16a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2V4a2 2 0 0 1 2-2Z", "M8 6h8", "M16 14v4", "M16 10h.01", "M12 10h.01", "M8 10h.01", "M12 14h.01", "M8 14h.01", "M12 18h.01", "M8 18h.01"},
	"trending-up":  {"m22 7-8.5 8.5-5-5L2 17", "M16 7h6v6"},
	"shield":       {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10Z"},
	"check-circle": {"M22 11.08V12a10 10 0 1 1-5.93-9.14", "m9 11 3 3L22 4"},
	"clock":        {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20Z", "M12 6v6l4 2"},
	"download":     {"M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4", "m7 10 5 5 5-5", "M12 15V3"},
	"arrow-right":  {"M5 12h14", "m12 5 7 7-7 7"},
	"bell":         {"M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9", "M10.3 21a1.94 1.94 0 0 0 3.4 0"},
	"search":       {"M11 19a8 8 0 1 0 0-16 8 8 0 0 0 0 16Z", "m21 21-4.3-4.3"},
	"user":         {"M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2", "M12 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8Z"},
	"log-out":      {"M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4", "m16 17 5-5-5-5", "M21 12H9"},
	"help-circle":  {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20Z", "M9.09 9a3 3 0 0 1 5.83 1c0 2-3 3-3 3", "M12 17h.01"},
}

// Icon renders the named line icon, or nothing for an unknown name.
func Icon(name string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	nodes := make([]g.Node, 0, len(paths))
	for _, d := range paths {
		nodes = append(nodes, g.El("path", g.Attr("d", d)))
	}
	return h.SVG(
		h.Class("icon icon--"+name),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Aria("hidden", "true"),
		g.Group(nodes),
	)
}
