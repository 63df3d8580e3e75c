package cards

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayTitle derives a human-readable deck title from an archive
// filename: extension stripped, separators spaced, title-cased.
func DisplayTitle(archiveName string) string {
	base := strings.TrimSpace(filepath.Base(archiveName))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled Deck"
	}
	return cases.Title(language.Und, cases.NoLower).String(base)
}
