package manifest

import "fmt"

// Resolution is what a build tool needs to produce one product.
type Resolution struct {
	Product Product
	// Targets holds the product's targets and everything they depend on,
	// each once, dependencies before dependents.
	Targets  []Target
	Standard Standard
}

// Dependencies returns the number of dependency edges among the resolved
// targets.
func (r *Resolution) Dependencies() int {
	n := 0
	for _, t := range r.Targets {
		n += len(t.Dependencies)
	}
	return n
}

// TargetNames returns the resolved target names in build order.
func (r *Resolution) TargetNames() []string {
	names := make([]string, len(r.Targets))
	for i, t := range r.Targets {
		names[i] = t.Name
	}
	return names
}

// Resolve validates the package and returns the named product together
// with the targets needed to build it.
func (p *Package) Resolve(product string) (*Resolution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pr := p.Product(product)
	if pr == nil {
		return nil, fmt.Errorf("product %q: %w", product, ErrUnknownProduct)
	}

	var order []Target
	seen := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		t := p.Target(name)
		for _, dep := range t.Dependencies {
			visit(dep)
		}
		order = append(order, *t)
	}
	for _, ref := range pr.Targets {
		visit(ref)
	}

	std := DefaultStandard
	if p.CXXLanguageStandard != "" {
		// already validated
		std, _ = ParseStandard(string(p.CXXLanguageStandard))
	}
	return &Resolution{Product: *pr, Targets: order, Standard: std}, nil
}
