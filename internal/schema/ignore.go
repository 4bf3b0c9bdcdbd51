package schema

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
)

// ignoreFileName is the optional pattern file at the schema root.
const ignoreFileName = "ignore_files"

// IgnoreSet holds the glob patterns read from the schema root's ignore_files.
// Patterns apply to payload file names only — directory names are never
// filtered through the set.
type IgnoreSet struct {
	patterns []string
}

// loadIgnoreSet reads <root>/ignore_files if present; a missing file yields
// an empty set, not an error. Each line is stripped from the first '#' on
// (comments may start mid-line) and trimmed; blank lines are dropped. What
// survives is kept verbatim — patterns are not validated here.
func loadIgnoreSet(fsys billy.Filesystem, root string) (*IgnoreSet, error) {
	set := &IgnoreSet{}

	f, err := fsys.Open(fsys.Join(root, ignoreFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return set, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			set.patterns = append(set.patterns, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// Match reports whether the file name matches any ignore pattern. A pattern
// filepath.Match cannot parse simply never matches.
func (s *IgnoreSet) Match(name string) bool {
	for _, p := range s.patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the loaded patterns in file order.
func (s *IgnoreSet) Patterns() []string {
	return s.patterns
}
