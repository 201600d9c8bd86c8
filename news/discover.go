// Package news discovers built news pages awaiting announcement.
// It walks the built site tree instead of crawling URLs: the site is
// already on disk, so discovery is a directory walk filtered down to
// announcement pages.
package news

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover walks newsDir under siteDir and returns every news page,
// as paths relative to siteDir. The result is sorted lexically so
// announcement order is stable across runs (news filenames carry a
// date prefix in the site layout this tool serves).
func Discover(siteDir, newsDir string) ([]string, error) {
	root := filepath.Join(siteDir, newsDir)

	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !IsNewsPage(path) {
			return nil
		}
		rel, err := filepath.Rel(siteDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(pages)
	return pages, nil
}
