package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Format is a descriptor encoding.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatStarlark Format = "star"
	FormatBinary   Format = "binary"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "star", "starlark", "build":
		return FormatStarlark, nil
	case "binary", "bin":
		return FormatBinary, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFor picks the format of a descriptor file from its name.
func FormatFor(name string) (Format, error) {
	base := filepath.Base(name)
	switch base {
	case "BUILD", "BUILD.bazel", "VSL.build":
		return FormatStarlark, nil
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".star", ".bzl", ".build":
		return FormatStarlark, nil
	case ".vslb", ".bin":
		return FormatBinary, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrUnknownFormat)
}

// Parse decodes a descriptor. Binary data is recognised by its magic
// whatever the name; otherwise the format follows the file name.
func Parse(name string, data []byte) (*Package, error) {
	if IsBinary(data) {
		p := &Package{}
		if err := p.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return p, nil
	}
	f, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatYAML, FormatJSON:
		p, err := decodeYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return p, nil
	case FormatStarlark:
		return decodeStarlark(name, data)
	}
	return nil, fmt.Errorf("%s: %w", name, ErrCorrupt)
}

// ParseFile reads and decodes the descriptor at path.
func ParseFile(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Marshal renders p in the canonical layout of format f.
func Marshal(p *Package, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return encodeYAML(p)
	case FormatJSON:
		return encodeJSON(p)
	case FormatStarlark:
		return encodeStarlark(p), nil
	case FormatBinary:
		return p.MarshalBinary()
	}
	return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// Diff returns a unified diff between the canonical renderings of a and b
// in format f, or "" when they render the same. Binary is not diffable.
func Diff(a, b *Package, f Format) (string, error) {
	if f == FormatBinary {
		return "", fmt.Errorf("diff: %w", ErrUnknownFormat)
	}
	x, err := Marshal(a, f)
	if err != nil {
		return "", err
	}
	y, err := Marshal(b, f)
	if err != nil {
		return "", err
	}
	return diffText("a/vsl."+string(f), "b/vsl."+string(f), string(x), string(y)), nil
}

func diffText(from, to, a, b string) string {
	if a == b {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(from), a, b)
	return fmt.Sprint(gotextdiff.ToUnified(from, to, a, edits))
}

// FormatSource re-renders descriptor source canonically and reports a diff
// from the input when they differ. name selects the input format; out may
// differ from it.
func FormatSource(name string, data []byte, out Format) ([]byte, string, error) {
	p, err := Parse(name, data)
	if err != nil {
		return nil, "", err
	}
	formatted, err := Marshal(p, out)
	if err != nil {
		return nil, "", err
	}
	if out == FormatBinary || IsBinary(data) {
		return formatted, "", nil
	}
	return formatted, diffText(name, name, string(data), string(formatted)), nil
}
