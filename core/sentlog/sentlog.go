// Package sentlog tracks which news pages have already been
// announced. The log is a plain line-oriented file of page paths,
// appended after each successful send, so interrupting a run never
// loses more than the in-flight page.
package sentlog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Log is the on-disk sent log.
type Log struct {
	path string
	seen map[string]bool
}

// Load reads the log at path. A missing file is an empty log, not an
// error.
func Load(path string) (*Log, error) {
	l := &Log{path: path, seen: map[string]bool{}}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening sent log: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			l.seen[line] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading sent log: %w", err)
	}
	return l, nil
}

// Contains reports whether the page path has been announced.
func (l *Log) Contains(path string) bool {
	return l.seen[path]
}

// Append records a page as announced and flushes it to disk.
func (l *Log) Append(path string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening sent log for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, path); err != nil {
		return fmt.Errorf("appending to sent log: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing sent log: %w", err)
	}
	l.seen[path] = true
	return nil
}
