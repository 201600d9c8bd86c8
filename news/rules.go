// Package news — page filtering rules.
package news

import (
	"path/filepath"
	"strings"
)

// pageExtensions are the file extensions that count as pages.
var pageExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// IsNewsPage reports whether a file in the news tree is an
// announceable page. Listing pages (index.html) and hidden files are
// build artifacts, not announcements.
func IsNewsPage(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
		return false
	}
	if !pageExtensions[strings.ToLower(filepath.Ext(base))] {
		return false
	}
	return base != "index.html" && base != "index.htm"
}
