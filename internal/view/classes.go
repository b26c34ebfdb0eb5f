package view

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// classes merges utility classes left to right; later classes override
// conflicting earlier ones ("px-4 px-8" becomes "px-8").
func classes(base string, overrides ...string) g.Node {
	return Class(twmerge.Merge(append([]string{base}, overrides...)...))
}

const (
	container   = "container mx-auto px-4"
	sectionPad  = "py-16"
	cardBase    = "group bg-white p-6 rounded-lg shadow-lg transition-all duration-300"
	buttonBase  = "px-8 py-3 rounded-lg font-bold transition-colors duration-300"
	inputBase   = "w-full px-4 py-2 rounded bg-white/20 border border-white/30 text-white placeholder-white/70 focus:outline-none focus:ring-2 focus:ring-white/50"
	overlayBase = "absolute inset-0"
)
