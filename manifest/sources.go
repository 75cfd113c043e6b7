package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Sources lists the target's source files relative to its source path
// under root, sorted. Explicit Files are checked for existence; otherwise
// the directory is walked. Exclude globs match slash-separated relative
// paths, where '*' stays within one path element and '**' crosses them.
// An excluded directory is skipped whole. Hidden files are never included.
func (t *Target) Sources(root string) ([]string, error) {
	dir := filepath.Join(root, filepath.FromSlash(t.SourcePath()))
	excludes, err := compileGlobs(t.Exclude)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", t.Name, err)
	}
	excluded := func(rel string) bool {
		for _, g := range excludes {
			if g.Match(rel) {
				return true
			}
		}
		return false
	}

	var out []string
	if len(t.Files) > 0 {
		for _, f := range t.Files {
			rel := path.Clean(filepath.ToSlash(f))
			if path.IsAbs(rel) || filepath.IsAbs(f) || rel == ".." || strings.HasPrefix(rel, "../") {
				return nil, fmt.Errorf("target %q: %q: %w", t.Name, f, ErrSourceOutsideTarget)
			}
			if excluded(rel) {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
				return nil, fmt.Errorf("target %q: %w", t.Name, err)
			}
			out = append(out, rel)
		}
		sort.Strings(out)
		return out, nil
	}

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden || excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || excluded(rel) || !d.Type().IsRegular() {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", t.Name, err)
	}
	sort.Strings(out)
	return out, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude %q: %w", pat, err)
		}
		out = append(out, g)
	}
	return out, nil
}
