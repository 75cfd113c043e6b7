// Package manifest models the vsl package descriptor: which products the
// package publishes, which targets back them, how targets depend on each
// other and which C++ language standard native code is built with.
//
// A descriptor can be written as YAML, JSON or a Starlark call and is
// checked by Validate before anything is built from it.
package manifest

import "fmt"

// Kind is the kind of artifact a product publishes.
type Kind string

const (
	KindLibrary    Kind = "library"
	KindExecutable Kind = "executable"
)

func (k Kind) valid() bool { return k == KindLibrary || k == KindExecutable }

// DefaultSourceRoot is the directory targets live under when no path is
// given.
const DefaultSourceRoot = "Sources"

// Package is the root of a descriptor.
type Package struct {
	Name     string    `yaml:"name" json:"name"`
	Products []Product `yaml:"products" json:"products"`
	Targets  []Target  `yaml:"targets" json:"targets"`
	// CXXLanguageStandard applies to every target. Empty means
	// DefaultStandard.
	CXXLanguageStandard Standard `yaml:"cxxLanguageStandard,omitempty" json:"cxxLanguageStandard,omitempty"`
}

// Product is an artifact the package makes available to consumers.
type Product struct {
	Name    string   `yaml:"name" json:"name"`
	Kind    Kind     `yaml:"kind" json:"kind"`
	Targets []string `yaml:"targets" json:"targets"`
}

// Target is a unit of compilation.
type Target struct {
	Name         string   `yaml:"name" json:"name"`
	Dependencies []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	// Path is relative to the package root; empty means Sources/<name>.
	Path    string   `yaml:"path,omitempty" json:"path,omitempty"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	// Files lists sources explicitly, relative to Path. Empty means every
	// file under Path that is not excluded.
	Files []string `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// SourcePath returns the directory holding the target's sources, relative to
// the package root.
func (t *Target) SourcePath() string {
	if t.Path != "" {
		return t.Path
	}
	return DefaultSourceRoot + "/" + t.Name
}

// Product returns the product called name, or nil.
func (p *Package) Product(name string) *Product {
	for i := range p.Products {
		if p.Products[i].Name == name {
			return &p.Products[i]
		}
	}
	return nil
}

// Target returns the target called name, or nil.
func (p *Package) Target(name string) *Target {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i]
		}
	}
	return nil
}

// EffectiveStandard returns the language standard target is compiled with.
func (p *Package) EffectiveStandard(target string) (Standard, error) {
	if p.Target(target) == nil {
		return "", fmt.Errorf("target %q: %w", target, ErrUnknownTarget)
	}
	if p.CXXLanguageStandard == "" {
		return DefaultStandard, nil
	}
	return ParseStandard(string(p.CXXLanguageStandard))
}

// normalize canonicalizes the standard spelling and maps empty lists to nil
// so that every decoder yields the same value for the same descriptor.
func (p *Package) normalize() {
	if s, err := ParseStandard(string(p.CXXLanguageStandard)); err == nil && p.CXXLanguageStandard != "" {
		p.CXXLanguageStandard = s
	}
	if len(p.Products) == 0 {
		p.Products = nil
	}
	if len(p.Targets) == 0 {
		p.Targets = nil
	}
	for i := range p.Products {
		p.Products[i].Targets = nilIfEmpty(p.Products[i].Targets)
	}
	for i := range p.Targets {
		t := &p.Targets[i]
		t.Dependencies = nilIfEmpty(t.Dependencies)
		t.Exclude = nilIfEmpty(t.Exclude)
		t.Files = nilIfEmpty(t.Files)
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

// VSL returns the descriptor of the vsl package itself: one library product
// backed by one dependency-free target, built as C++20.
func VSL() *Package {
	return &Package{
		Name: "vsl",
		Products: []Product{
			{Name: "vsl", Kind: KindLibrary, Targets: []string{"vsl"}},
		},
		Targets: []Target{
			{Name: "vsl"},
		},
		CXXLanguageStandard: CXX20,
	}
}
