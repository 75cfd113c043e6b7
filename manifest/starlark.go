package manifest

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"
)

// The Starlark form is a single call:
//
//	package(
//	    name = "vsl",
//	    products = [library(name = "vsl", targets = ["vsl"])],
//	    targets = [target(name = "vsl", dependencies = [])],
//	    cxx_language_standard = "c++20",
//	)
//
// Other top-level statements are ignored.

func decodeStarlark(name string, data []byte) (*Package, error) {
	file, err := build.Parse(name, data)
	if err != nil {
		return nil, err
	}
	for _, stmt := range file.Stmt {
		call, ok := callNamed(stmt, "package")
		if !ok {
			continue
		}
		p, err := parsePackageCall(call)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p.normalize()
		return p, nil
	}
	return nil, fmt.Errorf("%s: no package() call", name)
}

func callNamed(expr build.Expr, names ...string) (*build.CallExpr, bool) {
	call, ok := expr.(*build.CallExpr)
	if !ok {
		return nil, false
	}
	ident, ok := call.X.(*build.Ident)
	if !ok {
		return nil, false
	}
	for _, n := range names {
		if ident.Name == n {
			return call, true
		}
	}
	return nil, false
}

// kwargs calls fn for every named argument of call.
func kwargs(call *build.CallExpr, fn func(name string, rhs build.Expr) error) error {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			return fmt.Errorf("a non-named argument passed to %s()", build.FormatString(call.X))
		}
		argname, _ := build.GetParamName(assign.LHS)
		if err := fn(argname, assign.RHS); err != nil {
			return fmt.Errorf("%s: %w", argname, err)
		}
	}
	return nil
}

func parsePackageCall(call *build.CallExpr) (*Package, error) {
	p := &Package{}
	err := kwargs(call, func(name string, rhs build.Expr) (err error) {
		switch name {
		case "name":
			p.Name, err = parseString(rhs)
		case "cxx_language_standard":
			var s string
			s, err = parseString(rhs)
			p.CXXLanguageStandard = Standard(s)
		case "products":
			p.Products, err = parseCalls(rhs, parseProductCall, "library", "executable")
		case "targets":
			p.Targets, err = parseCalls(rhs, parseTargetCall, "target")
		default:
			err = fmt.Errorf("unknown argument")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parseProductCall(call *build.CallExpr) (Product, error) {
	pr := Product{Kind: Kind(call.X.(*build.Ident).Name)}
	err := kwargs(call, func(name string, rhs build.Expr) (err error) {
		switch name {
		case "name":
			pr.Name, err = parseString(rhs)
		case "targets":
			pr.Targets, err = parseStringList(rhs)
		default:
			err = fmt.Errorf("unknown argument")
		}
		return err
	})
	return pr, err
}

func parseTargetCall(call *build.CallExpr) (Target, error) {
	var t Target
	err := kwargs(call, func(name string, rhs build.Expr) (err error) {
		switch name {
		case "name":
			t.Name, err = parseString(rhs)
		case "dependencies":
			t.Dependencies, err = parseStringList(rhs)
		case "path":
			t.Path, err = parseString(rhs)
		case "exclude":
			t.Exclude, err = parseStringList(rhs)
		case "sources":
			t.Files, err = parseStringList(rhs)
		default:
			err = fmt.Errorf("unknown argument")
		}
		return err
	})
	return t, err
}

func parseCalls[T any](expr build.Expr, parse func(*build.CallExpr) (T, error), names ...string) ([]T, error) {
	list, ok := expr.(*build.ListExpr)
	if !ok {
		return nil, fmt.Errorf("expected a list")
	}
	out := make([]T, 0, len(list.List))
	for _, e := range list.List {
		call, ok := callNamed(e, names...)
		if !ok {
			return nil, fmt.Errorf("expected one of %v, got %s", names, build.FormatString(e))
		}
		v, err := parse(call)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseString(expr build.Expr) (string, error) {
	str, ok := expr.(*build.StringExpr)
	if !ok {
		return "", fmt.Errorf("expected a string")
	}
	return str.Value, nil
}

func parseStringList(expr build.Expr) ([]string, error) {
	list, ok := expr.(*build.ListExpr)
	if !ok {
		return nil, fmt.Errorf("expected a list of strings")
	}
	out := make([]string, 0, len(list.List))
	for _, e := range list.List {
		s, err := parseString(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func encodeStarlark(p *Package) []byte {
	products := &build.ListExpr{ForceMultiLine: len(p.Products) > 0}
	for _, pr := range p.Products {
		products.List = append(products.List, call(string(pr.Kind), false,
			kwarg("name", str(pr.Name)),
			kwarg("targets", strList(pr.Targets)),
		))
	}
	targets := &build.ListExpr{ForceMultiLine: len(p.Targets) > 0}
	for _, t := range p.Targets {
		args := []build.Expr{
			kwarg("name", str(t.Name)),
			kwarg("dependencies", strList(t.Dependencies)),
		}
		if t.Path != "" {
			args = append(args, kwarg("path", str(t.Path)))
		}
		if len(t.Exclude) > 0 {
			args = append(args, kwarg("exclude", strList(t.Exclude)))
		}
		if len(t.Files) > 0 {
			args = append(args, kwarg("sources", strList(t.Files)))
		}
		targets.List = append(targets.List, call("target", false, args...))
	}

	args := []build.Expr{
		kwarg("name", str(p.Name)),
		kwarg("products", products),
		kwarg("targets", targets),
	}
	if p.CXXLanguageStandard != "" {
		args = append(args, kwarg("cxx_language_standard", str(string(p.CXXLanguageStandard))))
	}
	f := &build.File{
		Type: build.TypeDefault,
		Stmt: []build.Expr{call("package", true, args...)},
	}
	return build.Format(f)
}

func call(name string, multiline bool, args ...build.Expr) *build.CallExpr {
	return &build.CallExpr{X: &build.Ident{Name: name}, List: args, ForceMultiLine: multiline}
}

func kwarg(name string, rhs build.Expr) *build.AssignExpr {
	return &build.AssignExpr{LHS: &build.Ident{Name: name}, Op: "=", RHS: rhs}
}

func str(s string) *build.StringExpr { return &build.StringExpr{Value: s} }

func strList(ss []string) *build.ListExpr {
	l := &build.ListExpr{}
	for _, s := range ss {
		l.List = append(l.List, str(s))
	}
	return l
}
