package manifest

import (
	"errors"
	"fmt"
)

// Validate checks the descriptor and reports every violation it finds,
// joined into one error. Each violation wraps one of the Err values of this
// package so callers can test for it with errors.Is.
func (p *Package) Validate() error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if p.Name == "" {
		fail("package: %w", ErrEmptyName)
	}
	if p.CXXLanguageStandard != "" {
		if _, err := ParseStandard(string(p.CXXLanguageStandard)); err != nil {
			fail("package %q: %w", p.Name, err)
		}
	}

	targets := make(map[string]*Target, len(p.Targets))
	for i := range p.Targets {
		t := &p.Targets[i]
		switch {
		case t.Name == "":
			fail("target #%d: %w", i, ErrEmptyName)
			continue
		case targets[t.Name] != nil:
			fail("target %q: %w", t.Name, ErrDuplicateTarget)
			continue
		}
		targets[t.Name] = t
	}
	for i := range p.Targets {
		t := &p.Targets[i]
		for _, dep := range t.Dependencies {
			if targets[dep] == nil {
				fail("target %q: dependency %q: %w", t.Name, dep, ErrUnknownDependency)
			}
		}
	}

	products := make(map[string]bool, len(p.Products))
	for i := range p.Products {
		pr := &p.Products[i]
		if pr.Name == "" {
			fail("product #%d: %w", i, ErrEmptyName)
		} else if products[pr.Name] {
			fail("product %q: %w", pr.Name, ErrDuplicateProduct)
		}
		products[pr.Name] = true
		if !pr.Kind.valid() {
			fail("product %q: kind %q: %w", pr.Name, pr.Kind, ErrUnknownKind)
		}
		if len(pr.Targets) == 0 {
			fail("product %q: %w", pr.Name, ErrNoTargets)
		}
		for _, ref := range pr.Targets {
			if targets[ref] == nil {
				fail("product %q: target %q: %w", pr.Name, ref, ErrUnknownTarget)
			}
		}
	}

	if cycle := findCycle(p.Targets, targets); cycle != nil {
		fail("%v: %w", cycle, ErrDependencyCycle)
	}
	return errors.Join(errs...)
}

// findCycle returns the target names along the first dependency cycle, or
// nil when the graph is acyclic. Unknown dependencies are skipped.
func findCycle(order []Target, byName map[string]*Target) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(byName))
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		switch state[name] {
		case visiting:
			for i, n := range stack {
				if n == name {
					cycle = append(append([]string{}, stack[i:]...), name)
					break
				}
			}
			return true
		case done:
			return false
		}
		t := byName[name]
		if t == nil {
			return false
		}
		state[name] = visiting
		stack = append(stack, name)
		for _, dep := range t.Dependencies {
			if visit(dep) {
				return true
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return false
	}

	for i := range order {
		if state[order[i].Name] == unvisited && visit(order[i].Name) {
			return cycle
		}
	}
	return nil
}
