// Package theme resolves the CSS theme embedded into a rendered page.
//
// A theme reference is either a path to a CSS file, used byte for byte, or
// the name of one of the bundled themes. Bundled themes may @import the
// partials shipped alongside them (files starting with "_"); those imports
// are inlined so the page stays self-contained.
package theme
