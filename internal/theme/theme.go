package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// importRegex matches @import "file.css"; or @import 'file.css'; or @import url("file.css");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// DefaultPath is the theme file read when no theme is configured.
const DefaultPath = "white_elephant.css"

// Theme is a CSS blob plus where it came from.
type Theme struct {
	Name      string // Theme name (file name without .css for user themes)
	Path      string // Source file; empty for bundled themes
	CSS       string
	IsBundled bool
}

// LoadError reports a theme reference that could not be resolved.
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return "failed to load theme " + e.Ref + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load resolves a theme reference.
// Resolution order:
//  1. A file at ref, read verbatim.
//  2. A bundled theme named ref (with or without the .css extension).
//
// Anything else is an error wrapping the file's not-found error.
func Load(ref string) (*Theme, error) {
	css, err := os.ReadFile(ref)
	if err == nil {
		return &Theme{
			Name: strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)),
			Path: ref,
			CSS:  string(css),
		}, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		if t, ok := LoadEmbedded(strings.TrimSuffix(ref, ".css")); ok {
			return t, nil
		}
	}

	return nil, &LoadError{Ref: ref, Err: err}
}

// LoadEmbedded returns a bundled theme with its imports inlined.
func LoadEmbedded(name string) (*Theme, bool) {
	css, found := GetEmbeddedTheme(name)
	if !found {
		return nil, false
	}
	return &Theme{
		Name:      name,
		CSS:       ProcessImports(css, nil),
		IsBundled: true,
	}, true
}

// ProcessImports inlines @import statements that refer to bundled partials
// or themes. The seen map prevents circular imports.
func ProcessImports(css string, seen map[string]bool) string {
	if seen == nil {
		seen = make(map[string]bool)
	}

	return importRegex.ReplaceAllStringFunc(css, func(match string) string {
		submatch := importRegex.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}

		importPath := submatch[1]
		baseName := filepath.Base(importPath)

		if seen[baseName] {
			return "/* circular import prevented: " + importPath + " */"
		}
		seen[baseName] = true

		var (
			imported string
			found    bool
		)
		if strings.HasPrefix(baseName, "_") {
			imported, found = GetEmbeddedPartial(baseName)
		} else {
			imported, found = GetEmbeddedTheme(strings.TrimSuffix(baseName, ".css"))
		}
		if !found {
			// Leave it for the browser to resolve.
			return match
		}

		return "/* imported: " + importPath + " */\n" + ProcessImports(imported, seen)
	})
}

// Export writes a bundled theme, imports inlined, to path.
// An existing file is only replaced when force is set.
func Export(name, path string, force bool) error {
	t, ok := LoadEmbedded(name)
	if !ok {
		return fmt.Errorf("unknown bundled theme %q (available: %s)",
			name, strings.Join(ListEmbeddedThemes(), ", "))
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}

	if _, err := f.WriteString(t.CSS); err != nil {
		f.Close()
		return fmt.Errorf("failed to export theme: %w", err)
	}
	return f.Close()
}
