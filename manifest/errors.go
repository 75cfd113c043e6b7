package manifest

import "errors"

var (
	ErrEmptyName           = errors.New("empty name")
	ErrDuplicateProduct    = errors.New("duplicate product")
	ErrDuplicateTarget     = errors.New("duplicate target")
	ErrUnknownTarget       = errors.New("unknown target")
	ErrUnknownDependency   = errors.New("unknown dependency")
	ErrDependencyCycle     = errors.New("dependency cycle")
	ErrUnsupportedStandard = errors.New("unsupported language standard")
	ErrNoTargets           = errors.New("product has no targets")
	ErrUnknownKind         = errors.New("unknown product kind")
	ErrUnknownProduct      = errors.New("unknown product")
	ErrUnknownFormat       = errors.New("unknown descriptor format")
	ErrCorrupt             = errors.New("corrupt descriptor")
	ErrSourceOutsideTarget = errors.New("source outside target directory")
)
